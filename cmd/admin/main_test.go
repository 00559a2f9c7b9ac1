package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvite/internal/domain"
	"weddinginvite/internal/repository/memory"
	"weddinginvite/internal/repository/workbook"
	"weddinginvite/internal/services"
)

func TestRun(t *testing.T) {
	store := memory.NewTableStore(map[string][][]string{
		domain.TableFamilies: {
			{"family_id", "family_name", "member_name"},
			{"", "Shah", "Asha"},
			{"", "Shah", "Ravi"},
			{"", "Mehta", "Kiran"},
		},
	})
	families := workbook.NewFamilyRepository(store)
	admin := services.NewAdminService(store, families, domain.SchemaPerEvent, time.Second)
	responses := workbook.NewResponseRepository(store, domain.SchemaPerEvent)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, run(ctx, "family-ids", admin, responses, "", &out))
	assert.Contains(t, out.String(), "FAMILY_001  Shah")
	assert.Contains(t, out.String(), "3 rows updated")

	out.Reset()
	require.NoError(t, run(ctx, "links", admin, responses, "https://wedding.example.com", &out))
	assert.Contains(t, out.String(), "https://wedding.example.com/rsvp?id=FAMILY_002")
	assert.Contains(t, out.String(), "2 invite links written")

	out.Reset()
	require.NoError(t, run(ctx, "setup", admin, responses, "", &out))
	assert.Contains(t, out.String(), "per_event")

	out.Reset()
	require.NoError(t, run(ctx, "responses", admin, responses, "", &out))
	assert.Contains(t, out.String(), "response_id")
	assert.Contains(t, out.String(), "0 responses")

	require.Error(t, run(ctx, "drop", admin, responses, "", &out))
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		cmd     string
		wantOut string
		wantErr string
	}{
		{
			name:    "setup on memory store",
			env:     map[string]string{"STORE_DRIVER": "memory"},
			cmd:     "setup",
			wantOut: "headers written (responses schema per_event)",
		},
		{
			name:    "unknown command",
			env:     map[string]string{"STORE_DRIVER": "memory"},
			cmd:     "bogus",
			wantErr: `unknown command "bogus"`,
		},
		{
			name:    "invalid config",
			env:     map[string]string{"STORE_DRIVER": "mongo"},
			cmd:     "setup",
			wantErr: "config:",
		},
		{
			name: "unreachable database",
			env: map[string]string{
				"STORE_DRIVER": "postgres",
				"DATABASE_URL": "postgres://wedding@127.0.0.1:1/wedding?sslmode=disable&connect_timeout=1",
			},
			cmd:     "setup",
			wantErr: "open store:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "production")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			var out bytes.Buffer
			err := execute(tt.cmd, "", &out)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out.String(), tt.wantOut)
		})
	}
}
