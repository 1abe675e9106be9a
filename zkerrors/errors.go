// Package zkerrors defines the error kinds shared across the field, curve,
// pairing, and SNARK layers. Each kind wraps a sentinel so callers can use
// errors.Is/errors.As while still getting operation-specific context.
package zkerrors

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is comparisons.
var (
	ErrDomain               = errors.New("zk: domain error")
	ErrNotOnCurve           = errors.New("zk: point not on curve")
	ErrNotInSubgroup        = errors.New("zk: point not in prime-order subgroup")
	ErrParse                = errors.New("zk: parse error")
	ErrUnsatisfiedConstraint = errors.New("zk: unsatisfied constraint")
	ErrVerificationFailed   = errors.New("zk: verification failed")
)

// DomainError reports an out-of-domain operation: inversion or division by
// zero, or a field element constructed from a value >= the modulus.
type DomainError struct {
	Op string
}

func (e *DomainError) Error() string { return fmt.Sprintf("zk: domain error in %s", e.Op) }
func (e *DomainError) Unwrap() error { return ErrDomain }

// NewDomainError builds a DomainError naming the failing operation.
func NewDomainError(op string) error { return &DomainError{Op: op} }

// NotOnCurveError reports a deserialized or constructed point that fails
// the curve equation.
type NotOnCurveError struct {
	Curve string
}

func (e *NotOnCurveError) Error() string {
	return fmt.Sprintf("zk: point not on curve %s", e.Curve)
}
func (e *NotOnCurveError) Unwrap() error { return ErrNotOnCurve }

// NewNotOnCurveError builds a NotOnCurveError naming the curve.
func NewNotOnCurveError(curve string) error { return &NotOnCurveError{Curve: curve} }

// NotInSubgroupError reports a point off the prime-order subgroup.
type NotInSubgroupError struct {
	Group string
}

func (e *NotInSubgroupError) Error() string {
	return fmt.Sprintf("zk: point not in subgroup %s", e.Group)
}
func (e *NotInSubgroupError) Unwrap() error { return ErrNotInSubgroup }

// NewNotInSubgroupError builds a NotInSubgroupError naming the group.
func NewNotInSubgroupError(group string) error { return &NotInSubgroupError{Group: group} }

// ParseError reports a malformed equation, with the byte offset of the
// offending token.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("zk: parse error at %d: %s", e.Pos, e.Msg)
}
func (e *ParseError) Unwrap() error { return ErrParse }

// NewParseError builds a ParseError at the given position.
func NewParseError(pos int, msg string) error { return &ParseError{Pos: pos, Msg: msg} }

// UnsatisfiedConstraintError reports a witness that fails an R1CS row, or a
// QAP quotient with a nonzero remainder.
type UnsatisfiedConstraintError struct {
	Row int // -1 when the failure is a QAP-level divisibility check
}

func (e *UnsatisfiedConstraintError) Error() string {
	if e.Row < 0 {
		return "zk: unsatisfied constraint: QAP quotient has a remainder"
	}
	return fmt.Sprintf("zk: unsatisfied constraint at row %d", e.Row)
}
func (e *UnsatisfiedConstraintError) Unwrap() error { return ErrUnsatisfiedConstraint }

// NewUnsatisfiedConstraintError builds an UnsatisfiedConstraintError for the
// given row, or -1 for a QAP-level divisibility failure.
func NewUnsatisfiedConstraintError(row int) error {
	return &UnsatisfiedConstraintError{Row: row}
}

// VerificationFailedError reports a pairing-equation or IPA check that
// returned false. The verifier treats any caught error as a verification
// failure; this type exists so a caller that wants the distinction can ask
// for it explicitly.
type VerificationFailedError struct {
	Reason string
}

func (e *VerificationFailedError) Error() string {
	return fmt.Sprintf("zk: verification failed: %s", e.Reason)
}
func (e *VerificationFailedError) Unwrap() error { return ErrVerificationFailed }

// NewVerificationFailedError builds a VerificationFailedError with a reason.
func NewVerificationFailedError(reason string) error {
	return &VerificationFailedError{Reason: reason}
}
