package get_day_schedule

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
	viewerCPF = "529.982.247-25"
	adminCPF  = "358.350.678-28"
)

var (
	tuesday  = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	released = time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
)

type fakeReservationRepo struct {
	reservations []*domain.Reservation
}

func (f *fakeReservationRepo) GetActiveWithFilter(_ context.Context, _ domain.ReservationFilter) ([]*domain.Reservation, error) {
	return f.reservations, nil
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

func newUseCase(repo *fakeReservationRepo, members *fakeMemberRepo, now time.Time) *UseCase {
	uc := NewUseCase(repo, members, domain.DefaultRulePolicy(), nopLogger{})
	return uc.WithTimeProvider(fixedClock{now: now})
}

func knownMembers() *fakeMemberRepo {
	return &fakeMemberRepo{members: map[string]*domain.Member{
		cpf.Normalize(viewerCPF): {CPF: viewerCPF, FirstName: "Paulo", Roles: []domain.Role{domain.RoleMember}},
		cpf.Normalize(adminCPF):  {CPF: adminCPF, FirstName: "Admin", Roles: []domain.Role{domain.RoleMember, domain.RoleAdmin}},
	}}
}

func TestExecute_GridOverlay(t *testing.T) {
	repo := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 5, CourtID: 1, Date: tuesday, TimeSlotStart: "19:00", TimeSlotEnd: "20:00",
			MemberCPF: viewerCPF, OpponentCPF: adminCPF, GameType: domain.GameNormal, Status: domain.StatusActive},
		{ID: 6, CourtID: 1, Date: tuesday, TimeSlotStart: "09:00", TimeSlotEnd: "10:30",
			MemberCPF: adminCPF, GameType: domain.GameInterdiction, Status: domain.StatusActive},
	}}
	uc := newUseCase(repo, knownMembers(), released)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: tuesday, ViewerCPF: viewerCPF})
	require.NoError(t, err)

	assert.Equal(t, "Quadra 1", resp.CourtName)
	assert.True(t, resp.Released)
	require.Len(t, resp.Slots, len(domain.WeekdayTimeSlots))

	byStart := make(map[string]Slot, len(resp.Slots))
	for _, s := range resp.Slots {
		byStart[string(s.Start)] = s
	}

	booked := byStart["19:00"]
	assert.Equal(t, SlotBooked, booked.Status)
	require.NotNil(t, booked.ReservationID)
	assert.Equal(t, int64(5), *booked.ReservationID)
	assert.Equal(t, viewerCPF, booked.MemberCPF)

	blocked := byStart["09:00"]
	assert.Equal(t, SlotBlocked, blocked.Status)

	free := byStart["12:00"]
	assert.Equal(t, SlotFree, free.Status)
	assert.Nil(t, free.ReservationID)
}

func TestExecute_UnreleasedWeekStillShowsGrid(t *testing.T) {
	beforeRelease := time.Date(2026, time.August, 31, 7, 0, 0, 0, time.UTC)
	uc := newUseCase(&fakeReservationRepo{}, knownMembers(), beforeRelease)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: tuesday, ViewerCPF: viewerCPF})
	require.NoError(t, err)

	assert.False(t, resp.Released)
	require.NotNil(t, resp.ReleaseAt)
	assert.Contains(t, resp.ReleaseMessage, "08:00")
	assert.Len(t, resp.Slots, len(domain.WeekdayTimeSlots))
}

func TestExecute_AdminSeesFarWeeksReleased(t *testing.T) {
	farTuesday := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	uc := newUseCase(&fakeReservationRepo{}, knownMembers(), released)

	resp, err := uc.Execute(context.Background(), &Request{CourtID: 1, Date: farTuesday, ViewerCPF: adminCPF})
	require.NoError(t, err)
	assert.True(t, resp.Released)

	resp, err = uc.Execute(context.Background(), &Request{CourtID: 1, Date: farTuesday, ViewerCPF: viewerCPF})
	require.NoError(t, err)
	assert.False(t, resp.Released)
}

func TestExecute_AnonymousAndUnknownViewer(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, knownMembers(), released)

	// анонимный просмотр разрешен
	resp, err := uc.Execute(context.Background(), &Request{CourtID: 3, Date: tuesday})
	require.NoError(t, err)
	assert.Equal(t, string(domain.CategoryBeach), resp.Category)

	// неизвестный CPF трактуется как участник без ролей
	_, err = uc.Execute(context.Background(), &Request{CourtID: 3, Date: tuesday, ViewerCPF: "111.444.777-35"})
	assert.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&fakeReservationRepo{}, knownMembers(), released)

	_, err := uc.Execute(context.Background(), &Request{CourtID: 7, Date: tuesday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	monday := time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, Date: monday})
	assert.ErrorIs(t, err, ErrClubClosed)

	_, err = uc.Execute(context.Background(), &Request{CourtID: 1, Date: tuesday, ViewerCPF: "000"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
