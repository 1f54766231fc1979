package domain

// Quote is a single reading unit sliced from an uploaded text or a built-in
// pack. Immutable once parsed; owned by the collection it was parsed into.
type Quote struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	SourceLabel string `json:"source_label"`
	Index       int    `json:"index"`
	Length      int    `json:"length"`
}

// FocusModeAll reads from every available quote pool.
const FocusModeAll = "all"

// FocusModeFile reads only from a single tracked text.
const FocusModeFile = "focus"

// FocusState selects the active quote pool. Mode is either FocusModeAll or
// FocusModeFile; FileID is set only in file mode.
type FocusState struct {
	Mode   string `json:"mode"`
	FileID string `json:"file_id,omitempty"`
}

// DefaultFocusState returns the safe fallback focus selection.
func DefaultFocusState() FocusState {
	return FocusState{Mode: FocusModeAll}
}
