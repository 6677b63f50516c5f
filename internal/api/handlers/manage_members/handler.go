package manage_members

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elitetenis/court-booking-service/internal/api/handlers"
	"github.com/elitetenis/court-booking-service/internal/api/middleware"
	"github.com/elitetenis/court-booking-service/internal/service/members"
	"github.com/elitetenis/court-booking-service/internal/service/members/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingUserCPF     = "CPF do usuário ausente"
	msgMemberNotFound     = "membro não encontrado"
	msgDuplicateCPF       = "CPF já cadastrado"
	msgForbidden          = "acesso negado"
	msgMasterAdmin        = "o administrador principal não pode ser alterado"
	msgNothingToChange    = "informe role ou blocked no corpo da requisição"
)

type Handler struct {
	service MemberService
	logger  Logger
}

func NewHandler(service MemberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// PatchMemberRequest тело PATCH запроса: либо переключение роли,
// либо смена флага блокировки
type PatchMemberRequest struct {
	Role    *string `json:"role,omitempty"`
	Blocked *bool   `json:"blocked,omitempty"`
}

// HandleList GET /api/v1/members
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	actorCPF, ok := middleware.GetUserCPF(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	result, err := h.service.List(r.Context(), actorCPF)
	if err != nil {
		h.respondServiceError(w, "GET /members", actorCPF, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleRegister POST /api/v1/members
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	actorCPF, ok := middleware.GetUserCPF(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	var req models.RegisterMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /members - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.ActorCPF = actorCPF

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, members.ErrDuplicateCPF) {
			h.logger.Warn("POST /members - Duplicate CPF: %s", req.CPF)
			handlers.RespondConflict(w, msgDuplicateCPF)
			return
		}
		h.respondServiceError(w, "POST /members", actorCPF, err)
		return
	}

	h.logger.Info("POST /members - Member registered: cpf=%s, actor=%s", result.CPF, actorCPF)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandlePatch PATCH /api/v1/members/{cpf}
func (h *Handler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	actorCPF, ok := middleware.GetUserCPF(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	memberCPF := mux.Vars(r)["cpf"]

	var req PatchMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /members/{cpf} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var result *models.MemberResponse
	var err error

	switch {
	case req.Role != nil:
		result, err = h.service.ToggleRole(r.Context(), &models.ToggleRoleRequest{
			MemberCPF: memberCPF,
			Role:      *req.Role,
			ActorCPF:  actorCPF,
		})
	case req.Blocked != nil:
		result, err = h.service.SetBlocked(r.Context(), &models.SetBlockedRequest{
			MemberCPF: memberCPF,
			Blocked:   *req.Blocked,
			ActorCPF:  actorCPF,
		})
	default:
		handlers.RespondBadRequest(w, msgNothingToChange)
		return
	}

	if err != nil {
		h.respondServiceError(w, "PATCH /members/{cpf}", actorCPF, err)
		return
	}

	h.logger.Info("PATCH /members/{cpf} - Member updated: cpf=%s, actor=%s", memberCPF, actorCPF)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDeactivate DELETE /api/v1/members/{cpf}
func (h *Handler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	actorCPF, ok := middleware.GetUserCPF(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	memberCPF := mux.Vars(r)["cpf"]

	if err := h.service.Deactivate(r.Context(), memberCPF, actorCPF); err != nil {
		h.respondServiceError(w, "DELETE /members/{cpf}", actorCPF, err)
		return
	}

	h.logger.Info("DELETE /members/{cpf} - Member deactivated: cpf=%s, actor=%s", memberCPF, actorCPF)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// respondServiceError транслирует ошибки сервиса участников в HTTP статусы
func (h *Handler) respondServiceError(w http.ResponseWriter, op, actorCPF string, err error) {
	switch {
	case errors.Is(err, members.ErrInvalidInput):
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, members.ErrMemberNotFound):
		handlers.RespondNotFound(w, msgMemberNotFound)

	case errors.Is(err, members.ErrMasterAdminImmutable):
		h.logger.Warn("%s - Master admin immutable: actor=%s", op, actorCPF)
		handlers.RespondForbidden(w, msgMasterAdmin)

	case errors.Is(err, members.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: actor=%s", op, actorCPF)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Failed: actor=%s, error=%v", op, actorCPF, err)
		handlers.RespondInternalError(w)
	}
}
