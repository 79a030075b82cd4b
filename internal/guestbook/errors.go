package guestbook

import "errors"

// ErrStorage marks a failure of the backing store (connectivity, query or
// transaction errors). Repository errors wrap it, so callers can match with
// errors.Is. Storage failures are never retried here.
var ErrStorage = errors.New("storage failure")

// ValidationError reports malformed caller input. It is raised before any
// repository call and carries a human-readable reason for the client.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
