package http

import (
	"net/http"

	"github.com/krooster/krooster-backend-go/internal/handler/http/response"
	swapService "github.com/krooster/krooster-backend-go/internal/service/swap"
)

type SwapHandler interface {
	Readjust(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type SwapHandlerImpl struct {
	swapService *swapService.Service
}

func NewSwapHandler(svc *swapService.Service) SwapHandler {
	return &SwapHandlerImpl{swapService: svc}
}

// Readjust implements SwapHandler.
func (h *SwapHandlerImpl) Readjust(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamID(r)
	if !ok {
		response.BadRequest(w, "Swap ID is required", nil)
		return
	}

	result, err := h.swapService.Readjust(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// ListPending implements SwapHandler.
func (h *SwapHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	swaps, err := h.swapService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, swaps)
}
