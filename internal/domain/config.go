package domain

import "context"

// ConfigRepository defines read access to the Config table (key/value rows).
type ConfigRepository interface {
	All(ctx context.Context) (map[string]string, error)
	// Get returns ("", false, nil) when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
}
