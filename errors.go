package springs

import "fmt"

// ConfigurationError reports a user-supplied parameter or shape attribute
// which violates a constraint. Param names the offending parameter. Err
// optionally holds a more general error, e.g. one of the sentinels below.
type ConfigurationError struct {
	Param  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// Unwrap returns the underlying error, if any.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

var (
	// ErrInvalidN indicates a point density n <= 0.
	ErrInvalidN = &ConfigurationError{Param: "n", Reason: "n must be greater than 0"}
	// ErrZeroDiameter indicates a coil diameter of exactly 0.
	ErrZeroDiameter = &ConfigurationError{Param: "diameter", Reason: "diameter of 0 is not permitted"}
	// ErrInvalidTension indicates a coil tension <= 0.
	ErrInvalidTension = &ConfigurationError{Param: "tension", Reason: "tension must be greater than 0"}
	// ErrTooManyPoints indicates a spring too dense to be generated, usually
	// caused by a tiny diameter.
	ErrTooManyPoints = &ConfigurationError{Param: "diameter", Reason: "spring has too many points"}
)

// NotNumeric creates an error for a parameter whose value cannot be
// interpreted as a number.
func NotNumeric(param string, value interface{}) error {
	err := &ConfigurationError{
		Param:  param,
		Reason: fmt.Sprintf("%s must be numeric, is %T(%v)", param, value, value),
	}
	tracer().Errorf("%s", err.Reason)
	return err
}

// NotFinite creates an error for a parameter which is NaN or infinite.
func NotFinite(param string, value float64) error {
	err := &ConfigurationError{
		Param:  param,
		Reason: fmt.Sprintf("%s must be a finite number, is %g", param, value),
	}
	tracer().Errorf("%s", err.Reason)
	return err
}
