package walletapi

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("resource not found")

const genericSubmissionMessage = "We could not process your request. Please try again."

// RemoteFetchError means a read from the wallet service failed or returned
// something that could not be decoded.
type RemoteFetchError struct {
	Resource string
	Status   int
	Err      error
}

func (e *RemoteFetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("error fetching %s: status %d: %v", e.Resource, e.Status, e.Err)
	}
	return fmt.Sprintf("error fetching %s: %v", e.Resource, e.Err)
}

func (e *RemoteFetchError) Unwrap() error {
	return e.Err
}

// RemoteSubmissionError means the wallet service did not accept a deposit or
// withdrawal. Message carries the server's explanation when it sent one.
type RemoteSubmissionError struct {
	Status  int
	Message string
	Err     error
}

func (e *RemoteSubmissionError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("submission rejected (status %d): %s", e.Status, msg)
}

func (e *RemoteSubmissionError) Unwrap() error {
	return e.Err
}

// UserMessage is what the user sees: the server message or a generic retry prompt.
func (e *RemoteSubmissionError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return genericSubmissionMessage
}
