package block_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/elitetenis/court-booking-service/internal/api/handlers"
	"github.com/elitetenis/court-booking-service/internal/api/middleware"
	blockCourt "github.com/elitetenis/court-booking-service/internal/usecase/block_court"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidCourtID     = "ID de quadra inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingUserCPF     = "CPF do usuário ausente"
	msgAdminNotFound      = "administrador não encontrado"
	msgRoleNotPermitted   = "apenas administradores podem interditar quadras"
	msgRangeTooLong       = "intervalo de datas longo demais"
)

type Handler struct {
	useCase BlockCourtUseCase
	logger  Logger
}

func NewHandler(useCase BlockCourtUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/courts/{courtId}/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorCPF, ok := middleware.GetUserCPF(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	courtID, err := strconv.Atoi(mux.Vars(r)["courtId"])
	if err != nil {
		h.logger.Warn("POST /courts/{id}/block - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	var req BlockCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courts/{id}/block - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(courtID, actorCPF)
	if err != nil {
		h.logger.Warn("POST /courts/{id}/block - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockCourt.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, blockCourt.ErrRangeTooLong):
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, blockCourt.ErrAdminNotFound):
			handlers.RespondNotFound(w, msgAdminNotFound)

		case errors.Is(err, blockCourt.ErrRoleNotPermitted):
			h.logger.Warn("POST /courts/{id}/block - Not an admin: actor=%s", actorCPF)
			handlers.RespondForbidden(w, msgRoleNotPermitted)

		default:
			h.logger.Error("POST /courts/{id}/block - Failed: court=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /courts/{id}/block - Court blocked: court=%d, range=%s..%s, actor=%s",
		courtID, req.StartDate, req.EndDate, actorCPF)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
