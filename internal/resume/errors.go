package resume

import "fmt"

// ExtractError reports that text could not be pulled out of an uploaded document.
type ExtractError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract error (%s): %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract error (%s): %s", e.Format, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// PanicError carries a value recovered while analyzing resume text.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}
