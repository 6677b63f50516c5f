package get_member_quota

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitetenis/court-booking-service/internal/domain"
	memberRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/member"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
	"github.com/elitetenis/court-booking-service/pkg/types"
)

const (
	holderCPF = "529.982.247-25"
	otherCPF  = "153.509.460-56"
)

var (
	tuesday  = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC)
)

type fakeReservationRepo struct {
	snapshot []*domain.Reservation
}

func (f *fakeReservationRepo) GetActiveWithFilter(_ context.Context, _ domain.ReservationFilter) ([]*domain.Reservation, error) {
	return f.snapshot, nil
}

type fakeMemberRepo struct {
	members map[string]*domain.Member
}

func (f *fakeMemberRepo) GetByCPF(_ context.Context, memberCPF string) (*domain.Member, error) {
	if m, ok := f.members[cpf.Normalize(memberCPF)]; ok {
		return m, nil
	}
	return nil, memberRepo.ErrMemberNotFound
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func res(courtID int, day time.Time, start string, game domain.GameType) *domain.Reservation {
	return &domain.Reservation{
		CourtID:       courtID,
		Date:          day,
		TimeSlotStart: types.TimeString(start),
		MemberCPF:     holderCPF,
		OpponentCPF:   otherCPF,
		GameType:      game,
		Status:        domain.StatusActive,
		CreatedAt:     day.AddDate(0, 0, -2),
	}
}

func newUseCase(repo *fakeReservationRepo) *UseCase {
	members := &fakeMemberRepo{members: map[string]*domain.Member{
		cpf.Normalize(holderCPF): {CPF: holderCPF, FirstName: "Paulo", Roles: []domain.Role{domain.RoleMember}},
	}}
	uc := NewUseCase(repo, members, domain.DefaultRulePolicy(), nopLogger{})
	return uc.WithTimeProvider(fixedClock{now: tuesday.Add(12 * time.Hour)})
}

func TestExecute_Buckets(t *testing.T) {
	repo := &fakeReservationRepo{snapshot: []*domain.Reservation{
		res(1, tuesday, "09:00", domain.GameNormal),
		res(1, saturday, "09:00", domain.GamePyramid),
		res(3, tuesday, "19:00", domain.GameBeachTennis),
	}}
	uc := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{MemberCPF: holderCPF, Date: tuesday})
	require.NoError(t, err)

	assert.Equal(t, domain.WeekStart(tuesday), resp.WeekStart)
	assert.Equal(t, domain.WeekStart(tuesday).AddDate(0, 0, 6), resp.WeekEnd)

	byName := make(map[string]Bucket, len(resp.Buckets))
	for _, b := range resp.Buckets {
		byName[b.Name] = b
	}

	policy := domain.DefaultRulePolicy()
	assert.Equal(t, Bucket{Name: "normal_weekday", Used: 1, Limit: policy.MaxNormalWeekdayPerWeek, Remaining: policy.MaxNormalWeekdayPerWeek - 1}, byName["normal_weekday"])
	assert.Equal(t, 1, byName["pyramid"].Used)
	assert.Equal(t, 1, byName["beach_weekday"].Used)
	assert.Zero(t, byName["normal_weekend"].Used)
	assert.Zero(t, byName["beach_weekend"].Used)
}

func TestExecute_ZeroDateUsesCurrentWeek(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{MemberCPF: holderCPF})
	require.NoError(t, err)
	assert.Equal(t, domain.WeekStart(tuesday), resp.WeekStart)
}

func TestExecute_Errors(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{MemberCPF: "123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{MemberCPF: otherCPF})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
