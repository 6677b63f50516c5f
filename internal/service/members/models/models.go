package models

import "github.com/elitetenis/court-booking-service/internal/domain"

// Request модели

// RegisterMemberRequest запрос на регистрацию участника
type RegisterMemberRequest struct {
	CPF       string   `json:"cpf"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Phone     *string  `json:"phone,omitempty"`
	Roles     []string `json:"roles,omitempty"`
	ActorCPF  string   `json:"-"`
}

// ToggleRoleRequest запрос на включение/выключение роли участника
type ToggleRoleRequest struct {
	MemberCPF string `json:"-"`
	Role      string `json:"role"`
	ActorCPF  string `json:"-"`
}

// SetBlockedRequest запрос на блокировку/разблокировку участника
type SetBlockedRequest struct {
	MemberCPF string `json:"-"`
	Blocked   bool   `json:"blocked"`
	ActorCPF  string `json:"-"`
}

// Response модели

// MemberResponse участник в ответе API
type MemberResponse struct {
	CPF       string   `json:"cpf"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Phone     *string  `json:"phone,omitempty"`
	Roles     []string `json:"roles"`
	IsBlocked bool     `json:"isBlocked"`
}

// MemberListResponse список участников
type MemberListResponse struct {
	Members []*MemberResponse `json:"members"`
}

// FromDomainMember конвертирует domain модель в ответ API
func FromDomainMember(m *domain.Member) *MemberResponse {
	roles := make([]string, 0, len(m.Roles))
	for _, r := range m.Roles {
		roles = append(roles, string(r))
	}
	return &MemberResponse{
		CPF:       m.CPF,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Phone:     m.Phone,
		Roles:     roles,
		IsBlocked: m.IsBlocked,
	}
}

// FromDomainMemberList конвертирует список domain моделей
func FromDomainMemberList(list []*domain.Member) *MemberListResponse {
	out := make([]*MemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromDomainMember(m))
	}
	return &MemberListResponse{Members: out}
}
