package customer

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/custkeeper/internal/common"
)

// FailureKind classifies why a mutation was rejected.
type FailureKind string

const (
	NotFound     FailureKind = "not_found"
	NotRemovable FailureKind = "not_removable"
	StoreError   FailureKind = "store_error"
	Invalid      FailureKind = "invalid"
)

// MutationFailure is the typed outcome of a rejected add, update or remove.
// It matches the common sentinels with errors.Is (NotFound → ErrorNotFound,
// NotRemovable → ErrorNotRemovable, Invalid → ErrorValidation).
type MutationFailure struct {
	Kind FailureKind
	ID   string
	Err  error

	// Message replaces the generated text. It is set on failures decoded
	// from a server response.
	Message string
}

func (f *MutationFailure) Error() string {
	if f.Message != "" {
		return f.Message
	}
	switch f.Kind {
	case NotFound:
		return fmt.Sprintf("customer %s not found", f.ID)
	case NotRemovable:
		return fmt.Sprintf("customer %s cannot be removed", f.ID)
	case Invalid:
		if f.Err != nil {
			return fmt.Sprintf("invalid customer: %v", f.Err)
		}
		return "invalid customer"
	}
	if f.Err != nil {
		return fmt.Sprintf("store error: %v", f.Err)
	}
	return "store error"
}

func (f *MutationFailure) Unwrap() error {
	return f.Err
}

func (f *MutationFailure) Is(target error) bool {
	switch target {
	case common.ErrorNotFound:
		return f.Kind == NotFound
	case common.ErrorNotRemovable:
		return f.Kind == NotRemovable
	case common.ErrorValidation:
		return f.Kind == Invalid
	}
	return false
}

// FailureKindOf extracts the kind of a *MutationFailure anywhere in err's
// chain. ok is false when err carries no mutation failure.
func FailureKindOf(err error) (kind FailureKind, ok bool) {
	var mf *MutationFailure
	if errors.As(err, &mf) {
		return mf.Kind, true
	}
	return "", false
}
