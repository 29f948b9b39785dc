package addressspace

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/awcullen/opcua/ua"
)

// errUnexpectedResultCount marks a Read response whose Results slice
// didn't match the number of ReadValueIDs requested.
var errUnexpectedResultCount = errors.New("read response result count mismatch")

// Kind classifies an Error into the small taxonomy this façade exposes to
// callers (§7). Concrete OPC UA status codes are wrapped, not replaced —
// KindServiceError carries the code a caller may still need to branch on.
type Kind int

const (
	// KindUnexpectedError covers anything not classified below: a
	// transport failure, a context cancellation, a bug.
	KindUnexpectedError Kind = iota
	// KindNodeClassInvalid means a NodeClass value read from the server
	// (or carried by a browsed reference) was missing or unrecognized, or
	// a registered type constructor returned a node of the wrong variant.
	KindNodeClassInvalid
	// KindServiceError wraps a non-Good OPC UA service call outcome.
	KindServiceError
	// KindVariantMismatch means GetObject/GetVariable (or their
	// WithTypeDefinition forms) found a cached node of a different
	// variant than the one asked for.
	KindVariantMismatch
)

func (k Kind) String() string {
	switch k {
	case KindNodeClassInvalid:
		return "NodeClassInvalid"
	case KindServiceError:
		return "ServiceError"
	case KindVariantMismatch:
		return "VariantMismatch"
	default:
		return "UnexpectedError"
	}
}

// Error is the error type every exported Resolver operation returns.
type Error struct {
	Kind       Kind
	StatusCode ua.StatusCode // only meaningful when Kind == KindServiceError
	err        error
}

func (e *Error) Error() string {
	if e.Kind == KindServiceError {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.err, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.err)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.err }

// newUnexpectedError wraps cause with a stack trace via pkg/errors and
// tags it KindUnexpectedError.
func newUnexpectedError(cause error) *Error {
	return &Error{Kind: KindUnexpectedError, err: errors.WithStack(cause)}
}

// newNodeClassInvalidError tags msg KindNodeClassInvalid.
func newNodeClassInvalidError(msg string) *Error {
	return &Error{Kind: KindNodeClassInvalid, err: errors.New(msg)}
}

// newServiceError wraps a non-Good service outcome, keeping the status
// code so a caller can inspect it directly.
func newServiceError(code ua.StatusCode) *Error {
	return &Error{Kind: KindServiceError, StatusCode: code, err: errors.Errorf("service call returned %s", code)}
}

// newVariantMismatchError reports a cached node whose variant differs
// from the one the caller asked for.
func newVariantMismatchError(msg string) *Error {
	return &Error{Kind: KindVariantMismatch, err: errors.New(msg)}
}
