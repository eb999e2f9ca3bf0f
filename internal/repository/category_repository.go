package repository

import (
	"strings"

	"bookflow/internal/domain"
	"bookflow/internal/storage"
	"bookflow/internal/validation"
	"bookflow/pkg/logger"
)

type CategoryRepository struct {
	*entityRepository[domain.Category, *domain.Category]
}

func NewCategoryRepository(store storage.Store, log logger.Logger) domain.CategoryRepository {
	rules := Rules[domain.Category]{
		Validate: func(category *domain.Category, excludeID string) []string {
			var violations []string
			if !validation.NotEmpty(category.Name, 1) {
				violations = append(violations, "Category name is required")
			}

			// Name is unique case-insensitively; the record under edit
			// is excluded so renaming to itself stays legal.
			for _, existing := range storage.ReadCollection[domain.Category](store, storage.KeyCategories) {
				if existing.ID != excludeID && strings.EqualFold(existing.Name, category.Name) {
					violations = append(violations, "A category with this name already exists")
					break
				}
			}
			return violations
		},
		CanDelete: func(id string) (string, bool) {
			for _, book := range storage.ReadCollection[domain.Book](store, storage.KeyBooks) {
				if book.CategoryID == id {
					return "Cannot delete category with existing books. Reassign the books first.", false
				}
			}
			return "", true
		},
		MatchesSearch: func(category *domain.Category, query string) bool {
			return strings.Contains(strings.ToLower(category.Name), query) ||
				strings.Contains(strings.ToLower(category.Description), query)
		},
	}

	return &CategoryRepository{
		entityRepository: newEntityRepository[domain.Category](store, storage.KeyCategories, "category", log, rules),
	}
}

func (r *CategoryRepository) Create(input domain.CategoryInput) (*domain.Category, error) {
	return r.entityRepository.Create(domain.Category{
		Name:        input.Name,
		Description: input.Description,
	})
}

func (r *CategoryRepository) Update(id string, input domain.CategoryInput) (*domain.Category, error) {
	return r.entityRepository.Update(id, domain.Category{
		Name:        input.Name,
		Description: input.Description,
	})
}

func (r *CategoryRepository) BookCount(id string) int {
	count := 0
	for _, book := range storage.ReadCollection[domain.Book](r.store, storage.KeyBooks) {
		if book.CategoryID == id {
			count++
		}
	}
	return count
}
