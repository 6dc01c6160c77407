package datafiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gamecodex/internal/app/ports"
	catalogdomain "gamecodex/internal/domain/catalog"
	"gamecodex/internal/gamedata"
)

var ErrInvalidRequest = errors.New("invalid data file request")

type FileInfo struct {
	Name  string             `json:"name"`
	Kind  catalogdomain.Kind `json:"kind"`
	Count int                `json:"count"`
}

type IndexResponse struct {
	Files []FileInfo `json:"files"`
}

type UseCase struct {
	Provider ports.DataFileProvider
	Registry *catalogdomain.Registry
}

// Index lists every table with the number of objects it contributed.
func (u UseCase) Index(_ context.Context) (IndexResponse, error) {
	out := IndexResponse{Files: make([]FileInfo, 0, len(gamedata.Files))}
	for _, f := range gamedata.Files {
		out.Files = append(out.Files, FileInfo{
			Name:  f.Name,
			Kind:  f.Kind,
			Count: len(u.Registry.AllOfKind(f.Kind)),
		})
	}
	return out, nil
}

// File returns the raw bytes of a known table. Names outside the table list
// are reported as not found without touching the provider.
func (u UseCase) File(ctx context.Context, name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidRequest
	}
	for _, f := range gamedata.Files {
		if f.Name == name {
			return u.Provider.File(ctx, name)
		}
	}
	return nil, fmt.Errorf("data file %q: %w", name, ports.ErrNotFound)
}
