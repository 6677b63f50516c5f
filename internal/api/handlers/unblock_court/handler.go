package unblock_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/elitetenis/court-booking-service/internal/api/handlers"
	"github.com/elitetenis/court-booking-service/internal/api/middleware"
	unblockCourt "github.com/elitetenis/court-booking-service/internal/usecase/unblock_court"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidCourtID     = "ID de quadra inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingUserCPF     = "CPF do usuário ausente"
	msgAdminNotFound      = "administrador não encontrado"
	msgRoleNotPermitted   = "apenas administradores podem liberar quadras"
	msgRangeTooLong       = "intervalo de datas longo demais"
)

type Handler struct {
	useCase UnblockCourtUseCase
	logger  Logger
}

func NewHandler(useCase UnblockCourtUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/courts/{courtId}/unblock
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorCPF, ok := middleware.GetUserCPF(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	courtID, err := strconv.Atoi(mux.Vars(r)["courtId"])
	if err != nil {
		h.logger.Warn("POST /courts/{id}/unblock - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	var req UnblockCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courts/{id}/unblock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(courtID, actorCPF)
	if err != nil {
		h.logger.Warn("POST /courts/{id}/unblock - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, unblockCourt.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, unblockCourt.ErrRangeTooLong):
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, unblockCourt.ErrAdminNotFound):
			handlers.RespondNotFound(w, msgAdminNotFound)

		case errors.Is(err, unblockCourt.ErrRoleNotPermitted):
			h.logger.Warn("POST /courts/{id}/unblock - Not an admin: actor=%s", actorCPF)
			handlers.RespondForbidden(w, msgRoleNotPermitted)

		default:
			h.logger.Error("POST /courts/{id}/unblock - Failed: court=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courts/{id}/unblock - Court unblocked: court=%d, actor=%s", courtID, actorCPF)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
