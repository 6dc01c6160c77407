package inmemory

import (
	"testing"

	"gamecodex/internal/app/ports"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordLookup("object", true)
	r.RecordLookup("object", false)
	r.RecordLookup("search", true)
	r.RecordAnalysis(7)
	r.RecordAnalysis(3)
	r.RecordFailure()
	r.RecordConflict()

	s := r.Snapshot()
	if s.LookupTotal != 3 || s.LookupMisses != 1 {
		t.Fatalf("lookup mismatch: got=%d/%d want=3/1", s.LookupTotal, s.LookupMisses)
	}
	if s.LookupsByKind["object"] != 2 || s.LookupsByKind["search"] != 1 {
		t.Fatalf("unexpected by-kind counts: %v", s.LookupsByKind)
	}
	if s.AnalysisTotal != 3 || s.AnalysisFailure != 1 || s.CropsRanked != 10 {
		t.Fatalf("analysis mismatch: got=%+v", s)
	}
	if s.SettingsConflicts != 1 {
		t.Fatalf("expected conflict 1, got %d", s.SettingsConflicts)
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	r := NewRecorder()
	r.RecordLookup("object", true)
	s := r.Snapshot()
	s.LookupsByKind["object"] = 99
	if r.Snapshot().LookupsByKind["object"] != 1 {
		t.Fatalf("snapshot must not alias recorder state")
	}
}

var (
	_ ports.LookupMetrics   = (*Recorder)(nil)
	_ ports.AnalysisMetrics = (*Recorder)(nil)
	_ ports.SettingsMetrics = (*Recorder)(nil)
)
