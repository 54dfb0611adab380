package swap

import "context"

// Repository - interface for the swap_requests table
type Repository interface {
	// GetDetails resolves a swap request together with both employees'
	// names and shift timings.
	GetDetails(ctx context.Context, id int64) (SwapRequest, error)
	ListPending(ctx context.Context) ([]SwapRequest, error)
}
