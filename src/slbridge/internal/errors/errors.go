package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// ErrParseParams reports that the parameters of an inbound request could not be decoded.
	ErrParseParams = New("unable to parse request params")
	// ErrMissingScopeID reports that a request referenced an empty configuration scope id.
	ErrMissingScopeID = New("configuration scope id is required")
)

// IsBadRequest reports whether the error is a bad request from the caller.
func IsBadRequest(e error) bool {
	return stderr.Is(e, ErrParseParams) || stderr.Is(e, ErrMissingScopeID)
}
