package workbook

import (
	"context"
	"fmt"
	"strings"

	"weddinginvite/internal/domain"
)

type configRepository struct {
	store domain.TableStore
}

// NewConfigRepository returns a domain.ConfigRepository backed by the Config sheet: a header
// row, then key in column A and value in column B.
func NewConfigRepository(store domain.TableStore) domain.ConfigRepository {
	return &configRepository{store: store}
}

func (r *configRepository) All(ctx context.Context) (map[string]string, error) {
	table, err := r.store.Read(ctx, domain.TableConfig, "")
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := make(map[string]string)
	if len(table) == 0 {
		return cfg, nil
	}
	for _, row := range table[1:] {
		if len(row) == 0 {
			continue
		}
		key := strings.TrimSpace(row[0])
		if key == "" {
			continue
		}
		value := ""
		if len(row) > 1 {
			value = row[1]
		}
		cfg[key] = value
	}
	return cfg, nil
}

// Get treats a key with an empty value as absent.
func (r *configRepository) Get(ctx context.Context, key string) (string, bool, error) {
	cfg, err := r.All(ctx)
	if err != nil {
		return "", false, err
	}
	v := cfg[strings.TrimSpace(key)]
	if v == "" {
		return "", false, nil
	}
	return v, true, nil
}
