package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvite/internal/domain"
	"weddinginvite/internal/repository/memory"
)

func TestAdminService_SetupSheets(t *testing.T) {
	store := memory.NewTableStore(map[string][][]string{
		domain.TableConfig: {{"old", "header"}, {"bride_name", "Riddhi"}},
	})
	svc := NewAdminService(store, &fakeFamilyRepo{}, domain.SchemaPerMemberDay, testTimeout)

	require.NoError(t, svc.SetupSheets(context.Background()))

	assert.Equal(t, [][]string{{"key", "value"}, {"bride_name", "Riddhi"}}, store.Rows(domain.TableConfig))
	assert.Equal(t, [][]string{domain.SchemaPerMemberDay.Columns()}, store.Rows(domain.TableResponses))
	assert.Equal(t, "family_id", store.Rows(domain.TableFamilies)[0][0])
	assert.Equal(t, "dress_code", store.Rows(domain.TableWardrobe)[0][2])
}

func TestAdminService_RegenerateFamilyIDs(t *testing.T) {
	tests := []struct {
		name        string
		rows        []domain.FamilyRow
		wantMapping map[string]string
		wantChanged int
		wantUpdate  []string
	}{
		{
			name: "assigns by first appearance",
			rows: []domain.FamilyRow{
				{Name: "Shah"}, {Name: "Mehta"}, {ID: "X", Name: "Shah"}, {Name: ""},
			},
			wantMapping: map[string]string{"Shah": "FAMILY_001", "Mehta": "FAMILY_002"},
			wantChanged: 3,
			wantUpdate:  []string{"FAMILY_001", "FAMILY_002", "FAMILY_001", ""},
		},
		{
			name:        "already numbered",
			rows:        []domain.FamilyRow{{ID: "FAMILY_001", Name: "Shah"}, {ID: "FAMILY_001", Name: "Shah"}},
			wantMapping: map[string]string{"Shah": "FAMILY_001"},
			wantChanged: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeFamilyRepo{rows: tt.rows}
			svc := NewAdminService(memory.NewTableStore(nil), repo, domain.SchemaPerEvent, testTimeout)

			mapping, changed, err := svc.RegenerateFamilyIDs(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantMapping, mapping)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantUpdate, repo.updated)
		})
	}
}

func TestAdminService_GenerateInviteLinks(t *testing.T) {
	store := memory.NewTableStore(map[string][][]string{
		domain.TableInviteLinks: {{"stale"}, {"a", "b"}, {"c", "d"}, {"e", "f"}},
	})
	repo := &fakeFamilyRepo{rows: []domain.FamilyRow{
		{ID: "FAMILY_001", Name: "Shah"},
		{ID: "FAMILY_001", Name: "Shah"},
		{ID: "", Name: "Unnumbered"},
		{ID: "FAMILY_002", Name: "Mehta"},
	}}
	svc := NewAdminService(store, repo, domain.SchemaPerEvent, testTimeout)

	links, err := svc.GenerateInviteLinks(context.Background(), "https://wedding.example.com/")
	require.NoError(t, err)
	assert.Equal(t, []domain.InviteLink{
		{FamilyID: "FAMILY_001", FamilyName: "Shah", URL: "https://wedding.example.com/rsvp?id=FAMILY_001"},
		{FamilyID: "FAMILY_002", FamilyName: "Mehta", URL: "https://wedding.example.com/rsvp?id=FAMILY_002"},
	}, links)

	assert.Equal(t, [][]string{
		{"Family Name", "RSVP Link"},
		{"Shah", "https://wedding.example.com/rsvp?id=FAMILY_001"},
		{"Mehta", "https://wedding.example.com/rsvp?id=FAMILY_002"},
		{},
	}, store.Rows(domain.TableInviteLinks))
}
