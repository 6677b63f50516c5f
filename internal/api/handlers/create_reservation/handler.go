package create_reservation

import (
	"errors"
	"net/http"

	"github.com/elitetenis/court-booking-service/internal/api/handlers"
	"github.com/elitetenis/court-booking-service/internal/api/middleware"
	createReservation "github.com/elitetenis/court-booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingUserCPF     = "CPF do usuário ausente"
	msgMemberNotFound     = "membro não encontrado"
	msgOpponentNotFound   = "adversário não encontrado"
	msgMemberBlocked      = "membro bloqueado"
	msgOpponentBlocked    = "adversário bloqueado"
	msgClubClosed         = "o clube está fechado nesta data"
	msgDoubleBooked       = "horário já reservado"
	msgRoleNotPermitted   = "seu perfil não permite esta reserva"
	msgDailyLimit         = "limite diário de jogos de tênis atingido"
	msgWeeklyLimitNormal  = "limite semanal de jogos normais atingido"
	msgWeeklyLimitLadder  = "limite semanal de jogos de pirâmide atingido"
	msgWeeklyLimitBeach   = "limite semanal de jogos de areia atingido"
	msgOpponentOverLimit  = "o adversário já atingiu o limite de jogos"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorCPF, ok := middleware.GetUserCPF(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user CPF")
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actorCPF)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createReservation.ErrMemberNotFound):
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, createReservation.ErrOpponentNotFound):
			handlers.RespondNotFound(w, msgOpponentNotFound)

		case errors.Is(err, createReservation.ErrMemberBlocked):
			handlers.RespondForbidden(w, msgMemberBlocked)

		case errors.Is(err, createReservation.ErrOpponentBlocked):
			handlers.RespondForbidden(w, msgOpponentBlocked)

		case errors.Is(err, createReservation.ErrClubClosed):
			handlers.RespondBadRequest(w, msgClubClosed)

		case errors.Is(err, createReservation.ErrDoubleBooked):
			h.logger.Warn("POST /reservations - Double booked: court=%d, date=%s, slot=%s",
				req.CourtID, req.Date, req.TimeSlotStart)
			handlers.RespondConflict(w, msgDoubleBooked)

		case errors.Is(err, createReservation.ErrNotReleased):
			// Текст usecase содержит точный момент открытия брони
			handlers.RespondForbidden(w, err.Error())

		case errors.Is(err, createReservation.ErrRoleNotPermitted):
			handlers.RespondForbidden(w, msgRoleNotPermitted)

		case errors.Is(err, createReservation.ErrDailyLimit):
			handlers.RespondForbidden(w, msgDailyLimit)

		case errors.Is(err, createReservation.ErrWeeklyLimitNormal):
			handlers.RespondForbidden(w, msgWeeklyLimitNormal)

		case errors.Is(err, createReservation.ErrWeeklyLimitLadder):
			handlers.RespondForbidden(w, msgWeeklyLimitLadder)

		case errors.Is(err, createReservation.ErrWeeklyLimitBeach):
			handlers.RespondForbidden(w, msgWeeklyLimitBeach)

		case errors.Is(err, createReservation.ErrOpponentOverLimit):
			handlers.RespondForbidden(w, msgOpponentOverLimit)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: actor=%s, error=%v",
				actorCPF, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, court=%d, date=%s, actor=%s",
		result.ID, result.CourtID, req.Date, actorCPF)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
