package common

import (
	"errors"
	"fmt"
)

// common errors
var (
	ErrConnection         = errors.New("ledger connection error")
	ErrMalformedValue     = errors.New("malformed ledger value")
	ErrSigning            = errors.New("signing error")
	ErrSubmissionRejected = errors.New("transaction submission rejected")
	ErrInvalidRecordKey   = errors.New("invalid record key")
	ErrInvalidEndpoint    = errors.New("invalid endpoint")
	ErrStorage            = errors.New("storage error")
)

// RejectedError is returned when the ledger refuses a submitted transaction.
type RejectedError struct {
	StatusCode int
	Reason     string
	Body       string
}

// Error impl error interface
func (e *RejectedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%v: status %v, reason %v", ErrSubmissionRejected, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("%v: status %v, body %v", ErrSubmissionRejected, e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrSubmissionRejected) hold
func (e *RejectedError) Is(target error) bool {
	return target == ErrSubmissionRejected
}
