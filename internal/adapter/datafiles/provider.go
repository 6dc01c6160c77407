package datafiles

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gamecodex/internal/app/ports"
)

var ErrInvalidDataPath = errors.New("invalid data file path")

// Provider reads tables from the same filesystem the registry was loaded from,
// so the served files always match the objects in memory.
type Provider struct {
	FS fs.FS
}

func (p Provider) File(_ context.Context, name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" || !fs.ValidPath(name) || strings.Contains(name, "/") {
		return nil, ErrInvalidDataPath
	}
	b, err := fs.ReadFile(p.FS, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("data file %q: %w", name, ports.ErrNotFound)
	}
	return b, err
}
