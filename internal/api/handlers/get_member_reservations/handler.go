package get_member_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/elitetenis/court-booking-service/internal/api/handlers"
	"github.com/elitetenis/court-booking-service/internal/api/middleware"
	"github.com/elitetenis/court-booking-service/internal/service/reservations"
	"github.com/elitetenis/court-booking-service/internal/service/reservations/models"
)

const (
	msgMissingUserCPF = "CPF do usuário ausente"
	msgMemberNotFound = "membro não encontrado"
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

// Handle GET /api/v1/members/{cpf}/reservations?limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorCPF, ok := middleware.GetUserCPF(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	memberCPF := mux.Vars(r)["cpf"]

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, "parâmetro limit inválido")
			return
		}
		limit = parsed
	}

	result, err := h.service.GetMemberReservations(r.Context(), &models.GetMemberReservationsRequest{
		MemberCPF: memberCPF,
		ActorCPF:  actorCPF,
		Limit:     limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, reservations.ErrMemberNotFound):
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /members/{cpf}/reservations - Access denied: actor=%s, member=%s",
				actorCPF, memberCPF)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /members/{cpf}/reservations - Failed: member=%s, error=%v", memberCPF, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
