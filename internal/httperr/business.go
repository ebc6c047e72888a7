package httperr

import "errors"

// Kind classifies domain failures. NotFound and Conflict are the only kinds
// the core produces; anything else is a boundary or infrastructure problem.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
)

type BusinessError struct {
	Code string
	Kind Kind
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrNotFound(code string) error {
	return BusinessError{Code: code, Kind: KindNotFound}
}

func ErrConflict(code string) error {
	return BusinessError{Code: code, Kind: KindConflict}
}

func AsBusiness(err error, target *BusinessError) bool {
	return errors.As(err, target)
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsNotFound(err error) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Kind == KindNotFound
}

func IsConflict(err error) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Kind == KindConflict
}
