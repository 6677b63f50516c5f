package get_notifications

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/elitetenis/court-booking-service/internal/api/handlers"
	"github.com/elitetenis/court-booking-service/internal/api/middleware"
	"github.com/elitetenis/court-booking-service/internal/service/reservations"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
)

const (
	msgMissingUserCPF = "CPF do usuário ausente"
	msgForbidden      = "acesso negado"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/members/{cpf}/notifications
// Уведомления читает только их получатель
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	actorCPF, ok := middleware.GetUserCPF(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	recipientCPF := mux.Vars(r)["cpf"]
	if !cpf.Equal(recipientCPF, actorCPF) {
		h.logger.Warn("GET /members/{cpf}/notifications - Access denied: actor=%s, recipient=%s",
			actorCPF, recipientCPF)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.GetNotifications(r.Context(), recipientCPF)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /members/{cpf}/notifications - Failed: recipient=%s, error=%v", recipientCPF, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleMarkRead PATCH /api/v1/notifications/{notificationId}/read
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserCPF(r.Context()); !ok {
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	id := mux.Vars(r)["notificationId"]
	if err := h.service.MarkNotificationRead(r.Context(), id); err != nil {
		h.logger.Error("PATCH /notifications/{id}/read - Failed: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
