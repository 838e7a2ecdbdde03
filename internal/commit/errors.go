package commit

import "fmt"

// CommitmentStateError reports a commitment used out of order.
type CommitmentStateError struct {
	Op    string
	State State
}

func (e *CommitmentStateError) Error() string {
	return fmt.Sprintf("cannot %s commitment in state %s", e.Op, e.State)
}

// EntropyUnavailableError reports a failure reading from the secure random source.
type EntropyUnavailableError struct {
	Err error
}

func (e *EntropyUnavailableError) Error() string {
	return fmt.Sprintf("secure random source unavailable: %v", e.Err)
}

func (e *EntropyUnavailableError) Unwrap() error {
	return e.Err
}
