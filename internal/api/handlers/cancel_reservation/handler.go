package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/elitetenis/court-booking-service/internal/api/handlers"
	"github.com/elitetenis/court-booking-service/internal/api/middleware"
	"github.com/elitetenis/court-booking-service/internal/service/reservations"
)

const (
	msgInvalidReservationID = "ID de reserva inválido"
	msgMissingUserCPF       = "CPF do usuário ausente"
	msgNotFound             = "reserva não encontrada"
	msgForbidden            = "acesso negado"
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

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorCPF, ok := middleware.GetUserCPF(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Cancel(r.Context(), reservationID, actorCPF); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrMemberNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /reservations/{id} - Access denied: actor=%s, id=%d", actorCPF, reservationID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /reservations/{id} - Failed: id=%d, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation cancelled: id=%d, actor=%s", reservationID, actorCPF)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
