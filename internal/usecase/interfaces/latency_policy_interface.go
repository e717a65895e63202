package interfaces

import "context"

// ILatencyPolicy simulates the cost of a remote call before a repository answers.
//
// Wait blocks for the configured delay and may return a transient error so UI
// error states can be exercised without a real backend.
type ILatencyPolicy interface {
	Wait(ctx context.Context) error
}
