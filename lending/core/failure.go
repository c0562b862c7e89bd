package core

import (
	"errors"
)

// FailureKind classifies why a lending operation was rejected.
type FailureKind string

const (
	HolderNotFound       FailureKind = "HolderNotFound"
	ItemNotFound         FailureKind = "ItemNotFound"
	ItemUnavailable      FailureKind = "ItemUnavailable"
	BorrowLimitReached   FailureKind = "BorrowLimitReached"
	NoActiveLoan         FailureKind = "NoActiveLoan"
	DuplicateIdentity    FailureKind = "DuplicateIdentity"
	UnknownPolicyVariant FailureKind = "UnknownPolicyVariant"
)

// Sentinels for errors.Is, one per FailureKind.
var (
	ErrHolderNotFound       = &Failure{Kind: HolderNotFound}
	ErrItemNotFound         = &Failure{Kind: ItemNotFound}
	ErrItemUnavailable      = &Failure{Kind: ItemUnavailable}
	ErrBorrowLimitReached   = &Failure{Kind: BorrowLimitReached}
	ErrNoActiveLoan         = &Failure{Kind: NoActiveLoan}
	ErrDuplicateIdentity    = &Failure{Kind: DuplicateIdentity}
	ErrUnknownPolicyVariant = &Failure{Kind: UnknownPolicyVariant}
)

// ErrLoanAlreadyClosed is returned when closing a loan record twice.
var ErrLoanAlreadyClosed = errors.New("loan record is already closed")

// Failure is a rejected business operation: an expected, recoverable outcome with a reason.
type Failure struct {
	Kind   FailureKind
	Reason string
}

// NewFailure builds a Failure of the given kind.
func NewFailure(kind FailureKind, reason string) *Failure {
	return &Failure{Kind: kind, Reason: reason}
}

func (f *Failure) Error() string {
	if f.Reason == "" {
		return string(f.Kind)
	}

	return string(f.Kind) + ": " + f.Reason
}

// Is reports whether target is a Failure of the same kind, so the per-kind sentinels work with errors.Is.
func (f *Failure) Is(target error) bool {
	other, ok := target.(*Failure)

	return ok && other.Kind == f.Kind
}

// KindOf returns the FailureKind wrapped in err, or "" if err is not a Failure.
func KindOf(err error) FailureKind {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Kind
	}

	return ""
}
