package loginform

import "errors"

// ErrSubmitInProgress is returned by Submit while a previous submit is still
// waiting on the authenticator.
var ErrSubmitInProgress = errors.New("loginform: submit already in progress")

// RequiredError reports an empty required field.
type RequiredError struct {
	Field   Field
	Message string
}

func (e *RequiredError) Error() string { return e.Message }

// FormatError reports a field whose value does not have the expected shape.
type FormatError struct {
	Field   Field
	Message string
}

func (e *FormatError) Error() string { return e.Message }

// AuthenticationError reports a failed authenticate call. Rejected
// credentials and transport failures are not distinguished for the visitor.
type AuthenticationError struct {
	// Reason is the authenticator's error code, empty for transport failures.
	Reason string
	Err    error
}

func (e *AuthenticationError) Error() string {
	switch {
	case e.Err != nil:
		return "authentication failed: " + e.Err.Error()
	case e.Reason != "":
		return "authentication failed: " + e.Reason
	default:
		return "authentication failed"
	}
}

func (e *AuthenticationError) Unwrap() error { return e.Err }
