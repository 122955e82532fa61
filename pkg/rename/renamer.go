package rename

import (
	"slices"

	"github.com/vivienm/nominal/pkg/filesystem"
	"github.com/vivienm/nominal/pkg/logging"
	"github.com/vivienm/nominal/pkg/types"
)

// Renamer accumulates rename requests until they are planned.
// Requests are not validated while pending.
type Renamer struct {
	renames   []Rename
	collation Collation
	fs        types.FS
	consumed  bool
}

// Option configures a Renamer
type Option func(*Renamer)

// WithCapacity preallocates room for n requests
func WithCapacity(n int) Option {
	return func(r *Renamer) {
		r.renames = slices.Grow(r.renames, n)
	}
}

// WithCollation sets the ordering of the plan's targets (default ByteOrder)
func WithCollation(c Collation) Option {
	return func(r *Renamer) {
		r.collation = c
	}
}

// WithFS sets the filesystem the plan is checked and applied against
func WithFS(fsys types.FS) Option {
	return func(r *Renamer) {
		r.fs = fsys
	}
}

// NewRenamer creates an empty Renamer
func NewRenamer(opts ...Option) *Renamer {
	r := &Renamer{
		collation: ByteOrder{},
		fs:        filesystem.NewOS(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromRenames creates a Renamer holding renames
func FromRenames(renames []Rename, opts ...Option) *Renamer {
	r := NewRenamer(append([]Option{WithCapacity(len(renames))}, opts...)...)
	r.Extend(renames...)
	return r
}

// Add appends a rename request
func (r *Renamer) Add(source, target string) {
	r.Extend(New(source, target))
}

// Extend appends rename requests in order
func (r *Renamer) Extend(renames ...Rename) {
	if r.consumed {
		panic("rename: Renamer used after Plan")
	}
	r.renames = append(r.renames, renames...)
}

// Len returns the number of pending requests
func (r *Renamer) Len() int {
	return len(r.renames)
}

// Plan consumes the Renamer and returns its Plan.
//
// Requests whose source equals their target are dropped. The remaining
// ones are sorted by target with a stable sort, so requests sharing a
// target keep their insertion order; such duplicates are not rejected
// here and fail when the plan is applied.
//
// The only failure is a *PlanError from the collation. A second call
// returns ErrRenamerConsumed.
func (r *Renamer) Plan() (*Plan, error) {
	if r.consumed {
		return nil, ErrRenamerConsumed
	}
	r.consumed = true
	pending := r.renames
	r.renames = nil

	compare, err := r.collation.Comparer()
	if err != nil {
		return nil, &PlanError{Err: err}
	}

	renames := make([]Rename, 0, len(pending))
	for _, rn := range pending {
		if !rn.IsNoop() {
			renames = append(renames, rn)
		}
	}
	slices.SortStableFunc(renames, func(a, b Rename) int {
		return compare(a.Target, b.Target)
	})

	logger := logging.GetLogger("rename")
	logger.Debug().
		Int("requested", len(pending)).
		Int("planned", len(renames)).
		Msg("Plan built")

	return &Plan{renames: renames, fs: r.fs}, nil
}
