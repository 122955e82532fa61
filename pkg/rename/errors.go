package rename

import (
	"errors"
	"fmt"

	nomerrors "github.com/vivienm/nominal/pkg/errors"
)

var (
	// ErrTargetExists matches ApplyErrors caused by an existing target
	ErrTargetExists = errors.New("target already exists")

	// ErrPlanConsumed is returned when a Plan is applied a second time
	ErrPlanConsumed = nomerrors.New(nomerrors.ErrPlanConsumed, "plan has already been applied")

	// ErrRenamerConsumed is returned when a Renamer is planned a second time
	ErrRenamerConsumed = nomerrors.New(nomerrors.ErrRenamerConsumed, "renamer has already been planned")
)

// ApplyErrorKind tells why a rename failed
type ApplyErrorKind int

const (
	// KindTargetExists means the target path was already present
	KindTargetExists ApplyErrorKind = iota
	// KindIO means a filesystem operation failed
	KindIO
)

func (k ApplyErrorKind) String() string {
	switch k {
	case KindTargetExists:
		return "target exists"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// ApplyError reports which rename of a plan failed and why.
type ApplyError struct {
	Source string
	Target string
	Kind   ApplyErrorKind
	// Err is the underlying filesystem error for KindIO, nil otherwise.
	Err error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("failed to rename %q to %q: %s", e.Source, e.Target, e.details())
}

func (e *ApplyError) details() string {
	if e.Kind == KindTargetExists || e.Err == nil {
		return ErrTargetExists.Error()
	}
	return e.Err.Error()
}

// Unwrap exposes ErrTargetExists or the underlying filesystem error
func (e *ApplyError) Unwrap() error {
	if e.Kind == KindTargetExists {
		return ErrTargetExists
	}
	return e.Err
}

// Code implements errors.Coder
func (e *ApplyError) Code() nomerrors.ErrorCode {
	if e.Kind == KindTargetExists {
		return nomerrors.ErrTargetExists
	}
	return nomerrors.ErrRenameIO
}

func targetExists(r Rename) *ApplyError {
	return &ApplyError{Source: r.Source, Target: r.Target, Kind: KindTargetExists}
}

func ioFailure(r Rename, err error) *ApplyError {
	return &ApplyError{Source: r.Source, Target: r.Target, Kind: KindIO, Err: err}
}

// PlanError is returned by Renamer.Plan when the collator cannot be created.
// No data condition produces it.
type PlanError struct {
	Err error
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("could not create collator: %v", e.Err)
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

// Code implements errors.Coder
func (e *PlanError) Code() nomerrors.ErrorCode {
	return nomerrors.ErrCollator
}
