package ports

type LookupMetrics interface {
	RecordLookup(kind string, found bool)
}

type AnalysisMetrics interface {
	RecordAnalysis(crops int)
	RecordFailure()
}

type SettingsMetrics interface {
	RecordConflict()
}
