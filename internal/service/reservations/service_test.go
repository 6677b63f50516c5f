package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitetenis/court-booking-service/internal/domain"
	memberRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/member"
	reservationRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/reservation"
	"github.com/elitetenis/court-booking-service/internal/service/reservations/models"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
)

const (
	holderCPF   = "529.982.247-25"
	opponentCPF = "153.509.460-56"
	otherCPF    = "111.444.777-35"
	adminCPF    = "358.350.678-28"
)

var tuesday = time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

type fakeReservationRepo struct {
	byID      map[int64]*domain.Reservation
	deleted   []int64
	history   []*domain.Reservation
	historyBy string
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) GetActiveWithFilter(_ context.Context, _ domain.ReservationFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.byID {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReservationRepo) GetByMember(_ context.Context, memberCPF string, _ uint64) ([]*domain.Reservation, error) {
	f.historyBy = memberCPF
	return f.history, nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
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

type fakeNotificationRepo struct {
	created []*domain.Notification
	marked  []string
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) GetByRecipient(_ context.Context, _ string) ([]*domain.Notification, error) {
	return f.created, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id string) error {
	f.marked = append(f.marked, id)
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func member(memberCPF, name string, roles ...domain.Role) *domain.Member {
	if len(roles) == 0 {
		roles = []domain.Role{domain.RoleMember}
	}
	return &domain.Member{CPF: memberCPF, FirstName: name, Roles: roles}
}

func defaultMembers() *fakeMemberRepo {
	return &fakeMemberRepo{members: map[string]*domain.Member{
		cpf.Normalize(holderCPF):   member(holderCPF, "Paulo"),
		cpf.Normalize(opponentCPF): member(opponentCPF, "Rafael"),
		cpf.Normalize(otherCPF):    member(otherCPF, "Marcos"),
		cpf.Normalize(adminCPF):    member(adminCPF, "Diretoria", domain.RoleMember, domain.RoleAdmin),
	}}
}

func reservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:            id,
		CourtID:       1,
		Date:          tuesday,
		TimeSlotStart: "19:00",
		TimeSlotEnd:   "20:00",
		MemberCPF:     holderCPF,
		OpponentCPF:   opponentCPF,
		GameType:      domain.GameNormal,
		Status:        domain.StatusActive,
		BookedByCPF:   holderCPF,
		CreatedAt:     tuesday.Add(-48 * time.Hour),
	}
}

func newService(repo *fakeReservationRepo, notifications *fakeNotificationRepo) *Service {
	svc := NewService(repo, defaultMembers(), notifications, nopLogger{})
	return svc.WithTimeProvider(fixedClock{now: tuesday.Add(10 * time.Hour)})
}

func TestGetByID_Access(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: reservation(42)}}
	svc := newService(repo, &fakeNotificationRepo{})

	for _, actor := range []string{holderCPF, opponentCPF, adminCPF} {
		resp, err := svc.GetByID(context.Background(), 42, actor)
		require.NoError(t, err, actor)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "Quadra 1", resp.CourtName)
	}

	_, err := svc.GetByID(context.Background(), 42, otherCPF)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 777, holderCPF)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetMemberReservations_OwnAndAdmin(t *testing.T) {
	repo := &fakeReservationRepo{history: []*domain.Reservation{reservation(1)}}
	svc := newService(repo, &fakeNotificationRepo{})

	resp, err := svc.GetMemberReservations(context.Background(), &models.GetMemberReservationsRequest{
		MemberCPF: holderCPF, ActorCPF: holderCPF,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	_, err = svc.GetMemberReservations(context.Background(), &models.GetMemberReservationsRequest{
		MemberCPF: holderCPF, ActorCPF: otherCPF,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetMemberReservations(context.Background(), &models.GetMemberReservationsRequest{
		MemberCPF: holderCPF, ActorCPF: adminCPF,
	})
	assert.NoError(t, err)
}

func TestGetCourtDay_AdminOnly(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{1: reservation(1)}}
	svc := newService(repo, &fakeNotificationRepo{})

	_, err := svc.GetCourtDay(context.Background(), 1, tuesday, holderCPF)
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.GetCourtDay(context.Background(), 1, tuesday, adminCPF)
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	_, err = svc.GetCourtDay(context.Background(), 9, tuesday, adminCPF)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_ByHolderNotifiesOpponent(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: reservation(42)}}
	notifications := &fakeNotificationRepo{}
	svc := newService(repo, notifications)

	err := svc.Cancel(context.Background(), 42, holderCPF)
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, repo.deleted)

	// уведомлен только соперник, не сам отменивший
	require.Len(t, notifications.created, 1)
	n := notifications.created[0]
	assert.True(t, cpf.Equal(n.RecipientCPF, opponentCPF))
	assert.NotEmpty(t, n.ID)
	assert.Contains(t, n.Message, "Quadra 1")
	assert.Contains(t, n.Message, "01/09/2026")
	assert.Contains(t, n.Message, "19:00")
	assert.Contains(t, n.Message, "Paulo")
}

func TestCancel_ByAdminNotifiesBothPlayers(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: reservation(42)}}
	notifications := &fakeNotificationRepo{}
	svc := newService(repo, notifications)

	err := svc.Cancel(context.Background(), 42, adminCPF)
	require.NoError(t, err)
	require.Len(t, notifications.created, 2)

	recipients := []string{notifications.created[0].RecipientCPF, notifications.created[1].RecipientCPF}
	assert.True(t, cpf.Equal(recipients[0], holderCPF))
	assert.True(t, cpf.Equal(recipients[1], opponentCPF))
	assert.Contains(t, notifications.created[0].Message, "Diretoria")
}

func TestCancel_OpponentMayNot(t *testing.T) {
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: reservation(42)}}
	svc := newService(repo, &fakeNotificationRepo{})

	err := svc.Cancel(context.Background(), 42, opponentCPF)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestCancel_ByBooker(t *testing.T) {
	res := reservation(42)
	res.BookedByCPF = otherCPF
	repo := &fakeReservationRepo{byID: map[int64]*domain.Reservation{42: res}}
	notifications := &fakeNotificationRepo{}
	svc := newService(repo, notifications)

	err := svc.Cancel(context.Background(), 42, otherCPF)
	require.NoError(t, err)
	// бронировавший не играет в брони, уведомляются оба игрока
	assert.Len(t, notifications.created, 2)
}

func TestNotifications_ListAndMarkRead(t *testing.T) {
	notifications := &fakeNotificationRepo{created: []*domain.Notification{
		{ID: "n-1", RecipientCPF: holderCPF, Message: "Sua reserva foi cancelada.", CreatedAt: tuesday},
	}}
	svc := newService(&fakeReservationRepo{}, notifications)

	resp, err := svc.GetNotifications(context.Background(), holderCPF)
	require.NoError(t, err)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, "n-1", resp.Notifications[0].ID)

	require.NoError(t, svc.MarkNotificationRead(context.Background(), "n-1"))
	assert.Equal(t, []string{"n-1"}, notifications.marked)

	_, err = svc.GetNotifications(context.Background(), "123")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
