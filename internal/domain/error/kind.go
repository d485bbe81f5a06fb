// Package error defines domain-specific errors for the Budget Buddy application.
package error

import "errors"

// Kind classifies an error for callers that decide how to present or retry it.
type Kind int

const (
	// KindStore is an underlying persistence failure. Retrying may succeed.
	KindStore Kind = iota
	// KindValidation is an input rule violation.
	KindValidation
	// KindNotFound means the addressed record does not exist.
	KindNotFound
	// KindReferentialIntegrity means the operation would break a reference between records.
	KindReferentialIntegrity
	// KindIntegrityViolation means stored data breaks an invariant. It is fatal and never retried.
	KindIntegrityViolation
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindReferentialIntegrity:
		return "referential_integrity"
	case KindIntegrityViolation:
		return "integrity_violation"
	default:
		return "store"
	}
}

// ErrIntegrityViolation is returned when stored data is inconsistent,
// e.g. a transaction references a category that no longer exists.
var ErrIntegrityViolation = errors.New("data integrity violation")

// kinded is implemented by every coded domain error.
type kinded interface {
	Kind() Kind
}

// KindOf classifies err. Errors that carry no domain code are store failures.
func KindOf(err error) Kind {
	if errors.Is(err, ErrIntegrityViolation) {
		return KindIntegrityViolation
	}
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindStore
}

// kindFromCode reads the kind from the two digits after the dash in codes like "CAT-010001".
func kindFromCode(code string) Kind {
	if len(code) < 6 {
		return KindStore
	}
	switch code[4:6] {
	case "01":
		return KindValidation
	case "02":
		return KindNotFound
	case "03":
		return KindReferentialIntegrity
	}
	return KindStore
}
