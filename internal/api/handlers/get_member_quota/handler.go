package get_member_quota

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/elitetenis/court-booking-service/internal/api/handlers"
	"github.com/elitetenis/court-booking-service/internal/api/middleware"
	"github.com/elitetenis/court-booking-service/internal/domain"
	getMemberQuota "github.com/elitetenis/court-booking-service/internal/usecase/get_member_quota"
)

const (
	msgInvalidDate    = "formato de data inválido, esperado YYYY-MM-DD"
	msgMissingUserCPF = "CPF do usuário ausente"
	msgMemberNotFound = "membro não encontrado"
)

type Handler struct {
	useCase GetMemberQuotaUseCase
	logger  Logger
}

func NewHandler(useCase GetMemberQuotaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// QuotaResponse HTTP response model
type QuotaResponse struct {
	MemberCPF string           `json:"memberCpf"`
	WeekStart string           `json:"weekStart"`
	WeekEnd   string           `json:"weekEnd"`
	Buckets   []BucketResponse `json:"buckets"`
}

// BucketResponse один лимит с текущим расходом
type BucketResponse struct {
	Name      string `json:"name"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}

// Handle GET /api/v1/members/{cpf}/quota?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserCPF(r.Context()); !ok {
		handlers.RespondUnauthorized(w, msgMissingUserCPF)
		return
	}

	memberCPF := mux.Vars(r)["cpf"]

	var date time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /members/{cpf}/quota - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getMemberQuota.Request{
		MemberCPF: memberCPF,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getMemberQuota.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getMemberQuota.ErrMemberNotFound):
			handlers.RespondNotFound(w, msgMemberNotFound)

		default:
			h.logger.Error("GET /members/{cpf}/quota - Failed: member=%s, error=%v", memberCPF, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := &QuotaResponse{
		MemberCPF: result.MemberCPF,
		WeekStart: result.WeekStart.Format(domain.DateFormat),
		WeekEnd:   result.WeekEnd.Format(domain.DateFormat),
		Buckets:   make([]BucketResponse, 0, len(result.Buckets)),
	}
	for _, b := range result.Buckets {
		resp.Buckets = append(resp.Buckets, BucketResponse{
			Name:      b.Name,
			Used:      b.Used,
			Limit:     b.Limit,
			Remaining: b.Remaining,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
