package rename

import (
	"fmt"

	"github.com/vivienm/nominal/pkg/paths"
)

// ConflictKind tells why a rename would fail
type ConflictKind int

const (
	// ConflictTargetExists means the target is present when its turn comes
	ConflictTargetExists ConflictKind = iota
	// ConflictSourceMissing means the source is absent when its turn comes
	ConflictSourceMissing
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictTargetExists:
		return "target exists"
	case ConflictSourceMissing:
		return "source missing"
	default:
		return "unknown"
	}
}

// Conflict is a rename that Apply is expected to reject
type Conflict struct {
	// Index is the position of the rename in the plan
	Index  int
	Rename Rename
	Kind   ConflictKind
}

func (c Conflict) String() string {
	return fmt.Sprintf("#%d %s: %s", c.Index+1, c.Rename, c.Kind)
}

// Check replays the plan against the current filesystem without changing it
// and returns the renames Apply would reject.
//
// Apply stops at the first failure; Check keeps going as if rejected renames
// were skipped, so every conflict is reported at once. Only the paths named
// in the plan are tracked: moving a directory does not update what Check
// knows about the entries below it.
func (p *Plan) Check() ([]Conflict, error) {
	overlay := make(map[string]bool)
	present := func(path string) (bool, error) {
		if v, ok := overlay[path]; ok {
			return v, nil
		}
		return paths.Exists(p.fs, path)
	}

	var conflicts []Conflict
	for i, rn := range p.renames {
		taken, err := present(rn.Target)
		if err != nil {
			return nil, fmt.Errorf("failed to check target %s: %w", rn.Target, err)
		}
		if taken {
			conflicts = append(conflicts, Conflict{Index: i, Rename: rn, Kind: ConflictTargetExists})
			continue
		}

		found, err := present(rn.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to check source %s: %w", rn.Source, err)
		}
		if !found {
			conflicts = append(conflicts, Conflict{Index: i, Rename: rn, Kind: ConflictSourceMissing})
			continue
		}

		overlay[rn.Source] = false
		overlay[rn.Target] = true
	}
	return conflicts, nil
}
