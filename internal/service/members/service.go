package members

import (
	"context"
	"errors"
	"fmt"

	"github.com/elitetenis/court-booking-service/internal/domain"
	memberRepo "github.com/elitetenis/court-booking-service/internal/infra/storage/member"
	"github.com/elitetenis/court-booking-service/internal/service/members/models"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
)

// DeactivatedName имя, которым заменяются данные удалённого участника.
// История его броней сохраняется под этим именем.
const DeactivatedName = "[REMOVIDO]"

// Service сервис администрирования реестра участников
type Service struct {
	memberRepo MemberRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса участников
func NewService(memberRepo MemberRepository, logger Logger) *Service {
	return &Service{memberRepo: memberRepo, logger: logger}
}

// List возвращает всех участников клуба (только для админов)
func (s *Service) List(ctx context.Context, actorCPF string) (*models.MemberListResponse, error) {
	s.logger.Info("List: actor=%s", actorCPF)

	if _, err := s.requireAdmin(ctx, actorCPF); err != nil {
		return nil, err
	}

	list, err := s.memberRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMemberList(list), nil
}

// Get возвращает одного участника
func (s *Service) Get(ctx context.Context, memberCPF string) (*models.MemberResponse, error) {
	m, err := s.getMember(ctx, memberCPF)
	if err != nil {
		return nil, err
	}
	return models.FromDomainMember(m), nil
}

// Register регистрирует нового участника (только для админов)
func (s *Service) Register(ctx context.Context, req *models.RegisterMemberRequest) (*models.MemberResponse, error) {
	s.logger.Info("Register: cpf=%s, actor=%s", req.CPF, req.ActorCPF)

	if _, err := s.requireAdmin(ctx, req.ActorCPF); err != nil {
		return nil, err
	}

	if err := cpf.Validate(req.CPF); err != nil {
		s.logger.Warn("Register: invalid CPF %s: %v", req.CPF, err)
		return nil, fmt.Errorf("%w: CPF: %v", ErrInvalidInput, err)
	}
	if req.FirstName == "" {
		return nil, fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}

	roles := []domain.Role{domain.RoleMember}
	for _, raw := range req.Roles {
		role := domain.Role(raw)
		if role != domain.RoleMember && role != domain.RoleTeacher && role != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, raw)
		}
		if role != domain.RoleMember {
			roles = append(roles, role)
		}
	}

	m := &domain.Member{
		CPF:       cpf.Format(req.CPF),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Roles:     roles,
	}

	if err := s.memberRepo.Create(ctx, m); err != nil {
		if errors.Is(err, memberRepo.ErrDuplicateCPF) {
			s.logger.Warn("Register: CPF %s already registered", req.CPF)
			return nil, ErrDuplicateCPF
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: member %s registered", m.CPF)
	return models.FromDomainMember(m), nil
}

// ToggleRole включает роль участника, если её нет, и снимает, если есть.
// Роль member не переключается. С мастер-админа нельзя снять роль admin.
func (s *Service) ToggleRole(ctx context.Context, req *models.ToggleRoleRequest) (*models.MemberResponse, error) {
	s.logger.Info("ToggleRole: member=%s, role=%s, actor=%s", req.MemberCPF, req.Role, req.ActorCPF)

	if _, err := s.requireAdmin(ctx, req.ActorCPF); err != nil {
		return nil, err
	}

	role := domain.Role(req.Role)
	if role != domain.RoleTeacher && role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: role %q cannot be toggled", ErrInvalidInput, req.Role)
	}

	m, err := s.getMember(ctx, req.MemberCPF)
	if err != nil {
		return nil, err
	}

	if role == domain.RoleAdmin && m.IsMasterAdmin() && m.HasRole(role) {
		s.logger.Warn("ToggleRole: refusing to demote master admin")
		return nil, ErrMasterAdminImmutable
	}

	var roles []domain.Role
	if m.HasRole(role) {
		for _, r := range m.Roles {
			if r != role {
				roles = append(roles, r)
			}
		}
	} else {
		roles = append(append(roles, m.Roles...), role)
	}

	if err := s.memberRepo.UpdateRoles(ctx, req.MemberCPF, roles); err != nil {
		s.logger.Error("ToggleRole: repository error for member=%s: %v", req.MemberCPF, err)
		return nil, fmt.Errorf("%w: ToggleRole - repository error: %v", ErrInternal, err)
	}

	m.Roles = roles
	s.logger.Info("ToggleRole: member=%s now has roles %v", req.MemberCPF, roles)
	return models.FromDomainMember(m), nil
}

// SetBlocked блокирует или разблокирует участника. Мастер-админа
// заблокировать нельзя; другого админа блокирует только мастер-админ.
func (s *Service) SetBlocked(ctx context.Context, req *models.SetBlockedRequest) (*models.MemberResponse, error) {
	s.logger.Info("SetBlocked: member=%s, blocked=%t, actor=%s", req.MemberCPF, req.Blocked, req.ActorCPF)

	actor, err := s.requireAdmin(ctx, req.ActorCPF)
	if err != nil {
		return nil, err
	}

	m, err := s.getMember(ctx, req.MemberCPF)
	if err != nil {
		return nil, err
	}

	if req.Blocked {
		if m.IsMasterAdmin() {
			s.logger.Warn("SetBlocked: refusing to block master admin")
			return nil, ErrMasterAdminImmutable
		}
		if m.IsAdmin() && !actor.IsMasterAdmin() {
			s.logger.Warn("SetBlocked: actor=%s may not block another admin", req.ActorCPF)
			return nil, ErrAccessDenied
		}
	}

	if err := s.memberRepo.SetBlocked(ctx, req.MemberCPF, req.Blocked); err != nil {
		s.logger.Error("SetBlocked: repository error for member=%s: %v", req.MemberCPF, err)
		return nil, fmt.Errorf("%w: SetBlocked - repository error: %v", ErrInternal, err)
	}

	m.IsBlocked = req.Blocked
	return models.FromDomainMember(m), nil
}

// Deactivate анонимизирует участника: блокирует и заменяет имя.
// Строка реестра и история броней сохраняются.
func (s *Service) Deactivate(ctx context.Context, memberCPF, actorCPF string) error {
	s.logger.Info("Deactivate: member=%s, actor=%s", memberCPF, actorCPF)

	if _, err := s.requireAdmin(ctx, actorCPF); err != nil {
		return err
	}

	m, err := s.getMember(ctx, memberCPF)
	if err != nil {
		return err
	}
	if m.IsMasterAdmin() {
		s.logger.Warn("Deactivate: refusing to deactivate master admin")
		return ErrMasterAdminImmutable
	}

	if err := s.memberRepo.SetBlocked(ctx, memberCPF, true); err != nil {
		s.logger.Error("Deactivate: failed to block member=%s: %v", memberCPF, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}
	if err := s.memberRepo.UpdateName(ctx, memberCPF, DeactivatedName, ""); err != nil {
		s.logger.Error("Deactivate: failed to anonymize member=%s: %v", memberCPF, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: member=%s anonymized", memberCPF)
	return nil
}

// requireAdmin загружает действующего участника и требует роль админа
func (s *Service) requireAdmin(ctx context.Context, actorCPF string) (*domain.Member, error) {
	actor, err := s.getMember(ctx, actorCPF)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		s.logger.Warn("actor=%s does not hold admin role", actorCPF)
		return nil, ErrAccessDenied
	}
	return actor, nil
}

func (s *Service) getMember(ctx context.Context, memberCPF string) (*domain.Member, error) {
	if err := cpf.Validate(memberCPF); err != nil {
		return nil, fmt.Errorf("%w: CPF: %v", ErrInvalidInput, err)
	}
	m, err := s.memberRepo.GetByCPF(ctx, memberCPF)
	if err != nil {
		if errors.Is(err, memberRepo.ErrMemberNotFound) {
			s.logger.Warn("member %s not found", memberCPF)
			return nil, ErrMemberNotFound
		}
		s.logger.Error("failed to get member %s: %v", memberCPF, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}
	return m, nil
}
