package vietqr

import "fmt"

var (
	ErrMissingAccount      = fmt.Errorf("missing account number")
	ErrInvalidTag          = fmt.Errorf("invalid field tag")
	ErrValueTooLong        = fmt.Errorf("field value too long")
	ErrInvalidRoutingEntry = fmt.Errorf("invalid routing entry")
	ErrUnknownDefaultBank  = fmt.Errorf("default bank not in routing table")
	ErrNonASCII            = fmt.Errorf("field value is not ASCII")
)

// FieldError reports which field broke which rule.
type FieldError struct {
	Tag  string
	Rule string
	Err  error
}

func (fe *FieldError) Error() string {
	if fe.Rule == "" {
		return fmt.Sprintf("field %s: %v", fe.Tag, fe.Err)
	}
	return fmt.Sprintf("field %s (%s): %v", fe.Tag, fe.Rule, fe.Err)
}

func (fe *FieldError) Unwrap() error {
	return fe.Err
}

type RoutingError struct {
	Code string
	Err  error
}

func (re *RoutingError) Error() string {
	return fmt.Sprintf("bank %q: %v", re.Code, re.Err)
}

func (re *RoutingError) Unwrap() error {
	return re.Err
}
