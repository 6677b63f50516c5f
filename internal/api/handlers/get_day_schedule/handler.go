package get_day_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/elitetenis/court-booking-service/internal/api/handlers"
	"github.com/elitetenis/court-booking-service/internal/api/middleware"
	"github.com/elitetenis/court-booking-service/internal/domain"
	getDaySchedule "github.com/elitetenis/court-booking-service/internal/usecase/get_day_schedule"
)

const (
	msgInvalidCourtID = "ID de quadra inválido"
	msgInvalidDate    = "formato de data inválido, esperado YYYY-MM-DD"
	msgClubClosed     = "o clube está fechado nesta data"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courtID, err := strconv.Atoi(vars["courtId"])
	if err != nil {
		h.logger.Warn("GET /courts/{id}/schedule - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /courts/{id}/schedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Расписание видно и без аутентификации; CPF нужен только для того,
	// чтобы учитель или админ видели ещё не открытые недели
	viewerCPF, _ := middleware.GetUserCPF(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{
		CourtID:   courtID,
		Date:      date,
		ViewerCPF: viewerCPF,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getDaySchedule.ErrClubClosed):
			handlers.RespondBadRequest(w, msgClubClosed)

		default:
			h.logger.Error("GET /courts/{id}/schedule - Failed: court=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
