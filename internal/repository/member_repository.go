package repository

import (
	"strings"

	"bookflow/internal/domain"
	"bookflow/internal/storage"
	"bookflow/internal/validation"
	"bookflow/pkg/logger"
)

type MemberRepository struct {
	*entityRepository[domain.Member, *domain.Member]
}

func NewMemberRepository(store storage.Store, log logger.Logger) domain.MemberRepository {
	rules := Rules[domain.Member]{
		Validate: func(member *domain.Member, excludeID string) []string {
			var violations []string

			if !validation.NotEmpty(member.Name, 2) {
				violations = append(violations, "Name is required (minimum 2 characters)")
			}

			switch {
			case !validation.NotEmpty(member.Email, 1):
				violations = append(violations, "Email is required")
			case !validation.IsValidEmail(member.Email):
				violations = append(violations, "Invalid email format")
			default:
				for _, existing := range storage.ReadCollection[domain.Member](store, storage.KeyMembers) {
					if existing.ID != excludeID && strings.EqualFold(existing.Email, member.Email) {
						violations = append(violations, "A member with this email already exists")
						break
					}
				}
			}

			if !validation.IsInList(string(member.Status), domain.MemberStatuses) {
				violations = append(violations, "Status must be: active, inactive, or suspended")
			}

			return violations
		},
		CanDelete: func(id string) (string, bool) {
			for _, loan := range storage.ReadCollection[domain.Loan](store, storage.KeyLoans) {
				if loan.MemberID == id && !loan.Returned {
					return "Cannot delete member with active loans. Return the books first.", false
				}
			}
			return "", true
		},
		MatchesSearch: func(member *domain.Member, query string) bool {
			return strings.Contains(strings.ToLower(member.Name), query) ||
				strings.Contains(strings.ToLower(member.Email), query)
		},
	}

	return &MemberRepository{
		entityRepository: newEntityRepository[domain.Member](store, storage.KeyMembers, "member", log, rules),
	}
}

func (r *MemberRepository) Create(input domain.MemberInput) (*domain.Member, error) {
	return r.entityRepository.Create(memberFromInput(input))
}

func (r *MemberRepository) Update(id string, input domain.MemberInput) (*domain.Member, error) {
	return r.entityRepository.Update(id, memberFromInput(input))
}

func (r *MemberRepository) GetActive() []domain.Member {
	active := []domain.Member{}
	for _, member := range r.GetAll() {
		if member.Status == domain.MemberStatusActive {
			active = append(active, member)
		}
	}
	return active
}

func memberFromInput(input domain.MemberInput) domain.Member {
	return domain.Member{
		Name:   input.Name,
		Email:  input.Email,
		Status: input.Status,
	}
}
