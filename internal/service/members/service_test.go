package members

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitetenis/court-booking-service/internal/domain"
	memberRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/member"
	"github.com/elitetenis/court-booking-service/internal/service/members/models"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
)

const (
	masterCPF = domain.MasterAdminCPF
	adminCPF  = "529.982.247-25"
	plainCPF  = "153.509.460-56"
	newCPF    = "111.444.777-35"
)

type fakeMemberRepo struct {
	members map[string]*domain.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: map[string]*domain.Member{
		cpf.Normalize(masterCPF): {CPF: masterCPF, FirstName: "Master", Roles: []domain.Role{domain.RoleMember, domain.RoleAdmin}},
		cpf.Normalize(adminCPF):  {CPF: adminCPF, FirstName: "Admin", Roles: []domain.Role{domain.RoleMember, domain.RoleAdmin}},
		cpf.Normalize(plainCPF):  {CPF: plainCPF, FirstName: "Joao", LastName: "Silva", Roles: []domain.Role{domain.RoleMember}},
	}}
}

func (f *fakeMemberRepo) Create(_ context.Context, m *domain.Member) error {
	key := cpf.Normalize(m.CPF)
	if _, ok := f.members[key]; ok {
		return memberRepo.ErrDuplicateCPF
	}
	f.members[key] = m
	return nil
}

func (f *fakeMemberRepo) GetByCPF(_ context.Context, memberCPF string) (*domain.Member, error) {
	if m, ok := f.members[cpf.Normalize(memberCPF)]; ok {
		return m, nil
	}
	return nil, memberRepo.ErrMemberNotFound
}

func (f *fakeMemberRepo) List(_ context.Context) ([]*domain.Member, error) {
	out := make([]*domain.Member, 0, len(f.members))
	for _, m := range f.members {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMemberRepo) UpdateRoles(_ context.Context, memberCPF string, roles []domain.Role) error {
	m, ok := f.members[cpf.Normalize(memberCPF)]
	if !ok {
		return memberRepo.ErrMemberNotFound
	}
	m.Roles = roles
	return nil
}

func (f *fakeMemberRepo) SetBlocked(_ context.Context, memberCPF string, blocked bool) error {
	m, ok := f.members[cpf.Normalize(memberCPF)]
	if !ok {
		return memberRepo.ErrMemberNotFound
	}
	m.IsBlocked = blocked
	return nil
}

func (f *fakeMemberRepo) UpdateName(_ context.Context, memberCPF, firstName, lastName string) error {
	m, ok := f.members[cpf.Normalize(memberCPF)]
	if !ok {
		return memberRepo.ErrMemberNotFound
	}
	m.FirstName = firstName
	m.LastName = lastName
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(repo *fakeMemberRepo) *Service {
	return NewService(repo, nopLogger{})
}

func TestList_AdminOnly(t *testing.T) {
	svc := newService(newFakeMemberRepo())

	resp, err := svc.List(context.Background(), adminCPF)
	require.NoError(t, err)
	assert.Len(t, resp.Members, 3)

	_, err = svc.List(context.Background(), plainCPF)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestRegister(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := newService(repo)

	resp, err := svc.Register(context.Background(), &models.RegisterMemberRequest{
		CPF: "11144477735", FirstName: "Ana", Roles: []string{"teacher"}, ActorCPF: adminCPF,
	})
	require.NoError(t, err)
	assert.Equal(t, "111.444.777-35", resp.CPF)
	assert.ElementsMatch(t, []string{"member", "teacher"}, resp.Roles)

	// повторная регистрация того же CPF
	_, err = svc.Register(context.Background(), &models.RegisterMemberRequest{
		CPF: newCPF, FirstName: "Ana", ActorCPF: adminCPF,
	})
	assert.ErrorIs(t, err, ErrDuplicateCPF)

	_, err = svc.Register(context.Background(), &models.RegisterMemberRequest{
		CPF: "16899535009", FirstName: "Rui", ActorCPF: plainCPF,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Register(context.Background(), &models.RegisterMemberRequest{
		CPF: "123", FirstName: "Rui", ActorCPF: adminCPF,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(context.Background(), &models.RegisterMemberRequest{
		CPF: "16899535009", FirstName: "Rui", Roles: []string{"owner"}, ActorCPF: adminCPF,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestToggleRole(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := newService(repo)

	// включение роли
	resp, err := svc.ToggleRole(context.Background(), &models.ToggleRoleRequest{
		MemberCPF: plainCPF, Role: "teacher", ActorCPF: adminCPF,
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Roles, "teacher")

	// повторный вызов снимает роль
	resp, err = svc.ToggleRole(context.Background(), &models.ToggleRoleRequest{
		MemberCPF: plainCPF, Role: "teacher", ActorCPF: adminCPF,
	})
	require.NoError(t, err)
	assert.NotContains(t, resp.Roles, "teacher")

	// роль member не переключается
	_, err = svc.ToggleRole(context.Background(), &models.ToggleRoleRequest{
		MemberCPF: plainCPF, Role: "member", ActorCPF: adminCPF,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestToggleRole_MasterAdminKeepsAdmin(t *testing.T) {
	svc := newService(newFakeMemberRepo())

	_, err := svc.ToggleRole(context.Background(), &models.ToggleRoleRequest{
		MemberCPF: masterCPF, Role: "admin", ActorCPF: adminCPF,
	})
	assert.ErrorIs(t, err, ErrMasterAdminImmutable)

	// роль teacher мастер-админу добавить можно
	resp, err := svc.ToggleRole(context.Background(), &models.ToggleRoleRequest{
		MemberCPF: masterCPF, Role: "teacher", ActorCPF: masterCPF,
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Roles, "teacher")
}

func TestSetBlocked(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := newService(repo)

	resp, err := svc.SetBlocked(context.Background(), &models.SetBlockedRequest{
		MemberCPF: plainCPF, Blocked: true, ActorCPF: adminCPF,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsBlocked)

	resp, err = svc.SetBlocked(context.Background(), &models.SetBlockedRequest{
		MemberCPF: plainCPF, Blocked: false, ActorCPF: adminCPF,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsBlocked)
}

func TestSetBlocked_AdminProtection(t *testing.T) {
	svc := newService(newFakeMemberRepo())

	// мастер-админа не блокирует никто
	_, err := svc.SetBlocked(context.Background(), &models.SetBlockedRequest{
		MemberCPF: masterCPF, Blocked: true, ActorCPF: adminCPF,
	})
	assert.ErrorIs(t, err, ErrMasterAdminImmutable)

	// обычный админ не блокирует другого админа
	_, err = svc.SetBlocked(context.Background(), &models.SetBlockedRequest{
		MemberCPF: adminCPF, Blocked: true, ActorCPF: adminCPF,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// мастер-админ блокирует
	resp, err := svc.SetBlocked(context.Background(), &models.SetBlockedRequest{
		MemberCPF: adminCPF, Blocked: true, ActorCPF: masterCPF,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsBlocked)
}

func TestDeactivate(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := newService(repo)

	require.NoError(t, svc.Deactivate(context.Background(), plainCPF, adminCPF))

	m := repo.members[cpf.Normalize(plainCPF)]
	assert.True(t, m.IsBlocked)
	assert.Equal(t, DeactivatedName, m.FirstName)
	assert.Empty(t, m.LastName)

	assert.ErrorIs(t, svc.Deactivate(context.Background(), masterCPF, adminCPF), ErrMasterAdminImmutable)
	assert.ErrorIs(t, svc.Deactivate(context.Background(), newCPF, adminCPF), ErrMemberNotFound)
}
