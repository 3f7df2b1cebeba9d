package game

import "errors"

// RejectionKind groups rejections by what the caller has to change.
type RejectionKind uint8

const (
	KindNone       RejectionKind = iota // not a rejection
	KindValidation                      // bad input; fix the arguments
	KindState                           // legal input at the wrong time; change intent
)

func (k RejectionKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindState:
		return "state"
	default:
		return "none"
	}
}

// Rejection is a non-fatal refusal of a command. A rejected command leaves
// the session unchanged.
type Rejection struct {
	Kind   RejectionKind
	Reason string
}

func (r *Rejection) Error() string { return r.Reason }

func validation(reason string) *Rejection { return &Rejection{Kind: KindValidation, Reason: reason} }
func stateErr(reason string) *Rejection   { return &Rejection{Kind: KindState, Reason: reason} }

// Validation rejections.
var (
	ErrOutOfBounds       = validation("out of bounds")
	ErrOverlap           = validation("overlaps another unit")
	ErrInvalidQueryInput = validation("invalid query input")
	ErrShapeMismatch     = validation("cells do not match the unit shape")
	ErrUnknownUnit       = validation("unknown unit")
	ErrUnknownPlayer     = validation("unknown player")
)

// State rejections.
var (
	ErrAlreadyTargeted     = stateErr("cell already targeted")
	ErrIncompletePlacement = stateErr("not all units are placed")
	ErrNoSuperiority       = stateErr("no air superiority")
	ErrQueryAlreadyUsed    = stateErr("query already used this turn")
	ErrWrongPhase          = stateErr("not allowed in this phase")
	ErrOutOfTurn           = stateErr("not this player's turn")
	ErrActionSpent         = stateErr("no actions left this turn")
)

// KindOf returns the rejection kind carried by err, or KindNone.
func KindOf(err error) RejectionKind {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Kind
	}
	return KindNone
}
