package quote_price

import (
	"errors"
	"net/http"

	"github.com/drufus/serenity/internal/api/handlers"
	quotePrice "github.com/drufus/serenity/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid quote parameters"
	msgInvalidRange       = "check-out must be after check-in"
	msgAddonNotFound      = "one or more selected add-ons are not available"
	msgTemporarilyDown    = "pricing is temporarily unavailable, please retry"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /quotes - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, quotePrice.ErrAddonNotFound):
			handlers.RespondBadRequest(w, msgAddonNotFound)

		case errors.Is(err, quotePrice.ErrUnavailable):
			h.logger.Error("POST /quotes - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgTemporarilyDown)

		default:
			h.logger.Error("POST /quotes - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
