package inmemory

import "sync"

type Snapshot struct {
	LookupTotal       uint64            `json:"lookup_total"`
	LookupMisses      uint64            `json:"lookup_misses"`
	LookupsByKind     map[string]uint64 `json:"lookups_by_kind"`
	AnalysisTotal     uint64            `json:"analysis_total"`
	AnalysisFailure   uint64            `json:"analysis_failure"`
	CropsRanked       uint64            `json:"crops_ranked"`
	SettingsConflicts uint64            `json:"settings_conflicts"`
}

// Recorder counts catalog lookups, farming analyses and settings conflicts.
// It satisfies every metrics port so one instance can back all use cases.
type Recorder struct {
	mu        sync.Mutex
	lookups   uint64
	misses    uint64
	byKind    map[string]uint64
	analyses  uint64
	failures  uint64
	crops     uint64
	conflicts uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byKind: map[string]uint64{},
	}
}

func (r *Recorder) RecordLookup(kind string, found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups++
	r.byKind[kind]++
	if !found {
		r.misses++
	}
}

func (r *Recorder) RecordAnalysis(crops int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses++
	if crops > 0 {
		r.crops += uint64(crops)
	}
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		LookupTotal:       r.lookups,
		LookupMisses:      r.misses,
		LookupsByKind:     make(map[string]uint64, len(r.byKind)),
		AnalysisTotal:     r.analyses + r.failures,
		AnalysisFailure:   r.failures,
		CropsRanked:       r.crops,
		SettingsConflicts: r.conflicts,
	}
	for k, v := range r.byKind {
		out.LookupsByKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
