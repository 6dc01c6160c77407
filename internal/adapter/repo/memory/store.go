package memory

import (
	"sync"

	settingsdomain "gamecodex/internal/domain/settings"
)

// Store keeps settings in process memory. mu guards the maps; txMu serialises
// transactions so a read-modify-write in RunInTx sees no interleaved writer.
type Store struct {
	txMu     sync.Mutex
	mu       sync.RWMutex
	settings map[string]settingsdomain.GameSettings
}

func NewStore() *Store {
	return &Store{
		settings: make(map[string]settingsdomain.GameSettings),
	}
}

func (s *Store) SeedSettings(gs settingsdomain.GameSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings[gs.ProfileID] = gs
}
