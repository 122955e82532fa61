package rename

import (
	"io"
	"slices"

	nomerrors "github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/logging"
	"github.com/vivienm/nominal/pkg/types"
)

// ConfirmPrompt is the question asked before applying a plan
const ConfirmPrompt = "Proceed?"

// Decision is the outcome of Plan.Confirm
type Decision int

const (
	// DecisionNone means nothing had to be decided: the plan is empty
	DecisionNone Decision = iota
	// DecisionYes means the user accepted the plan
	DecisionYes
	// DecisionNo means the user declined the plan
	DecisionNo
)

func (d Decision) String() string {
	switch d {
	case DecisionNone:
		return "none"
	case DecisionYes:
		return "yes"
	case DecisionNo:
		return "no"
	default:
		return "unknown"
	}
}

// Plan is an ordered list of renames, built by Renamer.Plan.
// No rename in it is a no-op and renames are sorted by target.
type Plan struct {
	renames []Rename
	fs      types.FS
	applied bool
	done    int
}

// IsEmpty returns true if the plan has no renames
func (p *Plan) IsEmpty() bool {
	return len(p.renames) == 0
}

// Len returns the number of renames in the plan
func (p *Plan) Len() int {
	return len(p.renames)
}

// Renames returns a copy of the renames in execution order
func (p *Plan) Renames() []Rename {
	return slices.Clone(p.renames)
}

// WriteTo writes the plan, one rename per line
func (p *Plan) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, rn := range p.renames {
		n, err := rn.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteStyledTo writes the plan like WriteTo, styling paths with s
func (p *Plan) WriteStyledTo(w io.Writer, s types.PathStyler) (int64, error) {
	var total int64
	for _, rn := range p.renames {
		n, err := rn.WriteStyledTo(w, s)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Confirm asks c whether the plan should be applied.
// An empty plan needs no decision and c is not consulted.
func (p *Plan) Confirm(c types.Confirmer) (Decision, error) {
	if p.IsEmpty() {
		return DecisionNone, nil
	}
	if c == nil {
		return DecisionNone, nomerrors.New(nomerrors.ErrPromptFailure, "no way to confirm a non-empty plan")
	}

	ok, err := c.Confirm(ConfirmPrompt)
	if err != nil {
		return DecisionNone, nomerrors.Wrap(err, nomerrors.ErrPromptFailure, "confirmation failed")
	}
	if ok {
		return DecisionYes, nil
	}
	return DecisionNo, nil
}

// Apply runs the renames in plan order and returns the first *ApplyError.
//
// Renames completed before a failure are not undone, and the renames after
// it are not attempted. A plan can be applied once; later calls return
// ErrPlanConsumed without touching the filesystem.
func (p *Plan) Apply() error {
	if p.applied {
		return ErrPlanConsumed
	}
	p.applied = true

	logger := logging.GetLogger("rename")
	done := logging.LogOperationStart(logger, "apply")
	defer done()

	// TODO: run several rounds so acyclic chains (a => b, b => c) succeed in any order.
	for i, rn := range p.renames {
		if err := rn.Apply(p.fs); err != nil {
			logger.Debug().
				Int("applied", i).
				Int("remaining", len(p.renames)-i).
				Err(err).
				Msg("Apply stopped")
			return err
		}
		p.done++
	}
	return nil
}

// Completed returns how many renames Apply performed
func (p *Plan) Completed() int {
	return p.done
}
