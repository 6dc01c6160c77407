package ports

import "context"

// DataFileProvider serves the raw game data tables the registry was built from.
type DataFileProvider interface {
	File(ctx context.Context, name string) ([]byte, error)
}
