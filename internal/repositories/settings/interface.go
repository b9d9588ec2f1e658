// Package settings is the key/value side of the persistent store: the
// serialized resume document, the cached text export, remembered window
// size, and the legacy flat tag map consumed once during migration.
package settings

import "context"

// Well-known store keys.
const (
	KeyDocument   = "resumeSections"
	KeyExportText = "resumeMarkdown"
	KeyFileName   = "fileName"
	KeyWindowSize = "windowSize"
	KeyLegacyData = "resumeData"
)

// Repository describes the opaque get/set store shared by all contexts.
// Get returns nil (no error) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
