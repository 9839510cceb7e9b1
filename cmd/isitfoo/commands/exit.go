package commands

// ExitError carries the process exit code a failed command wants,
// so main can distinguish classifier errors from plumbing failures
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitWithCode wraps err with an exit code. A nil err stays nil.
func ExitWithCode(code int, err error) *ExitError {
	if err == nil {
		return nil
	}
	return &ExitError{
		Code: code,
		Err:  err,
	}
}

// UsageError marks an error as the caller's fault, for commands that
// want cobra to print usage on bad arguments
type UsageError struct{ error }

func (e *UsageError) Unwrap() error {
	return e.error
}
