package block_court

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

var (
	tuesday   = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	wednesday = time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
)

type fakeReservationRepo struct {
	existing []*domain.Reservation
	created  []*domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	out := *res
	out.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &out)
	return &out, nil
}

func (f *fakeReservationRepo) GetActiveWithFilter(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.existing {
		if filter.CourtID != nil && r.CourtID != *filter.CourtID {
			continue
		}
		if filter.StartDate != nil && !domain.SameDay(r.Date, *filter.StartDate) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

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

func newUseCase(repo *fakeReservationRepo, members *fakeMemberRepo) *UseCase {
	uc := NewUseCase(repo, members, fakeTxManager{}, domain.DefaultRulePolicy(), nopLogger{})
	return uc.WithTimeProvider(fixedClock{now: time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)})
}

func TestExecute_FillsFreeSlots(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newUseCase(repo, defaultMembers())

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, StartDate: tuesday, EndDate: tuesday, AdminCPF: adminCPF})
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)

	day := resp.Days[0]
	assert.Equal(t, len(domain.WeekdayTimeSlots), day.Blocked)
	assert.Zero(t, day.Skipped)
	assert.False(t, day.Closed)

	require.NotEmpty(t, repo.created)
	first := repo.created[0]
	assert.Equal(t, domain.GameInterdiction, first.GameType)
	assert.Equal(t, adminCPF, first.MemberCPF)
	assert.Empty(t, first.OpponentCPF)
}

func TestExecute_SkipsOccupiedSlots(t *testing.T) {
	repo := &fakeReservationRepo{existing: []*domain.Reservation{
		{ID: 7, CourtID: 1, Date: tuesday, TimeSlotStart: "19:00", TimeSlotEnd: "20:00",
			MemberCPF: memberCPF, GameType: domain.GameNormal, Status: domain.StatusActive},
	}}
	uc := newUseCase(repo, defaultMembers())

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, StartDate: tuesday, EndDate: tuesday, AdminCPF: adminCPF})
	require.NoError(t, err)

	day := resp.Days[0]
	assert.Equal(t, len(domain.WeekdayTimeSlots)-1, day.Blocked)
	assert.Equal(t, 1, day.Skipped)

	// существующая бронь осталась нетронутой
	for _, r := range repo.created {
		assert.NotEqual(t, "19:00", string(r.TimeSlotStart))
	}
}

func TestExecute_MondayMarkedClosed(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newUseCase(repo, defaultMembers())

	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	nextTuesday := monday.AddDate(0, 0, 1)
	resp, err := uc.Execute(context.Background(), &Request{CourtID: 2, StartDate: monday, EndDate: nextTuesday, AdminCPF: adminCPF})
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)

	assert.True(t, resp.Days[0].Closed)
	assert.Zero(t, resp.Days[0].Blocked)
	assert.False(t, resp.Days[1].Closed)
	assert.Equal(t, len(domain.WeekdayTimeSlots), resp.Days[1].Blocked)
}

func TestExecute_RequiresAdminRole(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, defaultMembers())

	_, err := uc.Execute(context.Background(), &Request{CourtID: 1, StartDate: tuesday, EndDate: tuesday, AdminCPF: memberCPF})
	assert.ErrorIs(t, err, ErrRoleNotPermitted)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, StartDate: tuesday, EndDate: tuesday, AdminCPF: "111.444.777-35"})
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, defaultMembers())

	_, err := uc.Execute(context.Background(), &Request{CourtID: 9, StartDate: tuesday, EndDate: tuesday, AdminCPF: adminCPF})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, StartDate: wednesday, EndDate: tuesday, AdminCPF: adminCPF})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// 32 дня при максимуме 31
	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, StartDate: tuesday, EndDate: tuesday.AddDate(0, 0, 31), AdminCPF: adminCPF})
	assert.ErrorIs(t, err, ErrRangeTooLong)
}
