package domain

type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "active"
	MemberStatusInactive  MemberStatus = "inactive"
	MemberStatusSuspended MemberStatus = "suspended"
)

// MemberStatuses lists every allowed member status value.
var MemberStatuses = []string{
	string(MemberStatusActive),
	string(MemberStatusInactive),
	string(MemberStatusSuspended),
}

type Member struct {
	Meta
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Status MemberStatus `json:"status"`
}

type MemberInput struct {
	Name   string       `json:"name"`
	Email  string       `json:"email"`
	Status MemberStatus `json:"status"`
}

type MemberRepository interface {
	GetAll() []Member
	GetByID(id string) (*Member, error)
	Create(input MemberInput) (*Member, error)
	Update(id string, input MemberInput) (*Member, error)
	Delete(id string) error
	Search(query string) []Member
	Count() int

	GetActive() []Member
}
