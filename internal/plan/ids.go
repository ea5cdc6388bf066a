package plan

import "fmt"

// TaskID identifies a task within a single Plan. IDs are never reused: a
// merged-away task's ID stays retired rather than being recycled, so a
// stale reference fails lookups instead of silently hitting a different
// task.
type TaskID int64

// String returns a diagnostic representation.
func (id TaskID) String() string { return fmt.Sprintf("task#%d", int64(id)) }

// EdgeID identifies an edge within a single Plan.
type EdgeID int64

// String returns a diagnostic representation.
func (id EdgeID) String() string { return fmt.Sprintf("edge#%d", int64(id)) }
