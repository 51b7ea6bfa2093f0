package calculator

// Template is a named, reusable cart bundle. Unlike history it has no cap
// and is deleted explicitly.
type Template struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Lines []SnapshotLine `json:"lines"`
}
