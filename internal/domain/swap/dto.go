package swap

// ReadjustResult confirms a processed swap. The shifts themselves were
// exchanged when the swap was approved, so there is nothing left to mutate.
type ReadjustResult struct {
	SwapDetails SwapRequest `json:"swap_details"`
	Message     string      `json:"message"`
}
