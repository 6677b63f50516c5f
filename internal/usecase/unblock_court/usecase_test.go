package unblock_court

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitetenis/court-booking-service/internal/domain"
	memberRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/member"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
)

const (
	adminCPF  = "358.350.678-28"
	memberCPF = "529.982.247-25"
)

var tuesday = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

type deleteCall struct {
	courtID int
	date    time.Time
}

type fakeReservationRepo struct {
	removedByDate map[string]int64
	calls         []deleteCall
}

func (f *fakeReservationRepo) DeleteInterdictions(_ context.Context, courtID int, date time.Time) (int64, error) {
	f.calls = append(f.calls, deleteCall{courtID: courtID, date: date})
	return f.removedByDate[date.Format(domain.DateFormat)], nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func defaultMembers() *fakeMemberRepo {
	return &fakeMemberRepo{members: map[string]*domain.Member{
		cpf.Normalize(adminCPF):  {CPF: adminCPF, FirstName: "Admin", Roles: []domain.Role{domain.RoleMember, domain.RoleAdmin}},
		cpf.Normalize(memberCPF): {CPF: memberCPF, FirstName: "Socio", Roles: []domain.Role{domain.RoleMember}},
	}}
}

func TestExecute_RemovesInterdictionsPerDay(t *testing.T) {
	wednesday := tuesday.AddDate(0, 0, 1)
	repo := &fakeReservationRepo{removedByDate: map[string]int64{
		tuesday.Format(domain.DateFormat):   11,
		wednesday.Format(domain.DateFormat): 3,
	}}
	uc := NewUseCase(repo, defaultMembers(), domain.DefaultRulePolicy(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, StartDate: tuesday, EndDate: wednesday, AdminCPF: adminCPF})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	assert.Equal(t, int64(11), resp.Days[0].Removed)
	assert.Equal(t, int64(3), resp.Days[1].Removed)
	require.Len(t, repo.calls, 2)
	assert.Equal(t, 1, repo.calls[0].courtID)
}

func TestExecute_IdempotentOnCleanDay(t *testing.T) {
	repo := &fakeReservationRepo{removedByDate: map[string]int64{}}
	uc := NewUseCase(repo, defaultMembers(), domain.DefaultRulePolicy(), nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 2, StartDate: tuesday, EndDate: tuesday, AdminCPF: adminCPF})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Zero(t, resp.Days[0].Removed)
	assert.Empty(t, resp.Days[0].Error)
}

func TestExecute_RequiresAdminRole(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, defaultMembers(), domain.DefaultRulePolicy(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 1, StartDate: tuesday, EndDate: tuesday, AdminCPF: memberCPF})
	assert.ErrorIs(t, err, ErrRoleNotPermitted)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, StartDate: tuesday, EndDate: tuesday, AdminCPF: "111.444.777-35"})
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeReservationRepo{}, defaultMembers(), domain.DefaultRulePolicy(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{CourtID: 5, StartDate: tuesday, EndDate: tuesday, AdminCPF: adminCPF})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, StartDate: tuesday, EndDate: tuesday.AddDate(0, 0, 31), AdminCPF: adminCPF})
	assert.ErrorIs(t, err, ErrRangeTooLong)
}
