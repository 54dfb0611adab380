package swap

import (
	"context"
	"log/slog"

	"github.com/krooster/krooster-backend-go/internal/domain/swap"
)

type Service struct {
	swaps swap.Repository
}

func NewService(swaps swap.Repository) *Service {
	return &Service{swaps: swaps}
}

// Readjust reports the schedule impact of an approved swap. The approval flow
// already exchanged the two shifts, so this only resolves and confirms.
func (s *Service) Readjust(ctx context.Context, swapID int64) (swap.ReadjustResult, error) {
	details, err := s.swaps.GetDetails(ctx, swapID)
	if err != nil {
		return swap.ReadjustResult{}, err
	}

	slog.Info("swap readjusted", "swap_id", swapID)

	return swap.ReadjustResult{
		SwapDetails: details,
		Message:     "Shift swap processed (shifts already exchanged during approval)",
	}, nil
}

func (s *Service) ListPending(ctx context.Context) ([]swap.SwapRequest, error) {
	return s.swaps.ListPending(ctx)
}
