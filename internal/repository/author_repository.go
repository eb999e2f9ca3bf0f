package repository

import (
	"strings"

	"bookflow/internal/domain"
	"bookflow/internal/storage"
	"bookflow/internal/validation"
	"bookflow/pkg/logger"
)

type AuthorRepository struct {
	*entityRepository[domain.Author, *domain.Author]
}

func NewAuthorRepository(store storage.Store, log logger.Logger) domain.AuthorRepository {
	rules := Rules[domain.Author]{
		Validate: func(author *domain.Author, _ string) []string {
			var violations []string
			if !validation.NotEmpty(author.Name, 2) {
				violations = append(violations, "Name is required (minimum 2 characters)")
			}
			if !validation.NotEmpty(author.Surname, 2) {
				violations = append(violations, "Surname is required (minimum 2 characters)")
			}
			return violations
		},
		CanDelete: func(id string) (string, bool) {
			for _, book := range storage.ReadCollection[domain.Book](store, storage.KeyBooks) {
				if book.AuthorID == id {
					return "Cannot delete author with existing books. Delete the books first.", false
				}
			}
			return "", true
		},
		MatchesSearch: func(author *domain.Author, query string) bool {
			return strings.Contains(strings.ToLower(author.Name), query) ||
				strings.Contains(strings.ToLower(author.Surname), query)
		},
	}

	return &AuthorRepository{
		entityRepository: newEntityRepository[domain.Author](store, storage.KeyAuthors, "author", log, rules),
	}
}

func (r *AuthorRepository) Create(input domain.AuthorInput) (*domain.Author, error) {
	return r.entityRepository.Create(domain.Author{
		Name:    input.Name,
		Surname: input.Surname,
	})
}

func (r *AuthorRepository) Update(id string, input domain.AuthorInput) (*domain.Author, error) {
	return r.entityRepository.Update(id, domain.Author{
		Name:    input.Name,
		Surname: input.Surname,
	})
}

func (r *AuthorRepository) FullName(id string) string {
	author := r.find(id)
	if author == nil {
		return "Unknown Author"
	}
	return author.Name + " " + author.Surname
}
