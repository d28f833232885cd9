package value

// Phase стадия страницы поиска.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseSearching Phase = "searching"
	PhasePaused    Phase = "paused"
	PhaseResults   Phase = "results"
)

// DocumentStatus стадия формирования ТЗ.
type DocumentStatus string

const (
	DocumentNone       DocumentStatus = "none"
	DocumentGenerating DocumentStatus = "generating"
	DocumentReady      DocumentStatus = "ready"
)
