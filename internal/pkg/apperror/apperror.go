// FILE: internal/pkg/apperror/apperror.go
// Package apperror classifies domain errors so transport layers can map
// them onto response codes without string matching.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindInvalidState
	KindAuthorization
	KindNotFound
	KindCoupon
)

// Error carries a kind alongside a user-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...interface{}) error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validation marks input that failed a business or format rule.
func Validation(format string, args ...interface{}) error {
	return newError(KindValidation, format, args...)
}

// InvalidState marks an operation attempted against a record whose current
// state does not allow it, including lost conditional updates.
func InvalidState(format string, args ...interface{}) error {
	return newError(KindInvalidState, format, args...)
}

// Authorization marks an actor lacking the capability for an operation.
func Authorization(format string, args ...interface{}) error {
	return newError(KindAuthorization, format, args...)
}

// NotFound marks a missing record, including records hidden from the caller.
func NotFound(format string, args ...interface{}) error {
	return newError(KindNotFound, format, args...)
}

// Coupon marks a coupon that cannot be redeemed.
func Coupon(format string, args ...interface{}) error {
	return newError(KindCoupon, format, args...)
}

// KindOf returns the kind of err, or KindUnknown for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
