package models

// Subtask is a weighted unit of work inside a worklet (e.g. "20 pages").
// Progress is measured in the same unit space as Weight and only ever grows
// through completion actions, never through planning.
type Subtask struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Weight     float64 `json:"weight"`
	Progress   float64 `json:"progress"`
	Completed  bool    `json:"completed"`
	MaterialID string  `json:"material_id,omitempty"`
}

// Remaining returns the unconsumed portion of the subtask.
func (s Subtask) Remaining() float64 {
	r := s.Weight - s.Progress
	if r < 0 {
		return 0
	}
	return r
}

// MaterialKind describes how a material's length is measured
type MaterialKind string

const (
	MaterialPages   MaterialKind = "pages"
	MaterialMinutes MaterialKind = "minutes"
	MaterialUnits   MaterialKind = "units"
)

// Material is a minimal descriptor for paginated or timed source material
// backing a subtask. File contents are not stored here.
type Material struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Kind   MaterialKind `json:"kind"`
	Length float64      `json:"length"`
}
