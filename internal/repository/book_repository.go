package repository

import (
	"strings"

	"bookflow/internal/domain"
	"bookflow/internal/storage"
	"bookflow/internal/validation"
	"bookflow/pkg/logger"
)

type BookRepository struct {
	*entityRepository[domain.Book, *domain.Book]
}

func NewBookRepository(store storage.Store, log logger.Logger) domain.BookRepository {
	rules := Rules[domain.Book]{
		Validate: func(book *domain.Book, excludeID string) []string {
			var violations []string

			switch {
			case !validation.NotEmpty(book.ISBN, 1):
				violations = append(violations, "ISBN is required")
			case !validation.IsValidISBN(book.ISBN):
				violations = append(violations, "Invalid ISBN format (use XXX-X-XX-XXXXXX-X or 13 digits)")
			default:
				for _, existing := range storage.ReadCollection[domain.Book](store, storage.KeyBooks) {
					if existing.ID != excludeID && existing.ISBN == book.ISBN {
						violations = append(violations, "A book with this ISBN already exists")
						break
					}
				}
			}

			if !validation.NotEmpty(book.Title, 1) {
				violations = append(violations, "Title is required")
			}

			if book.AuthorID == "" {
				violations = append(violations, "Author is required")
			} else if findByID[domain.Author](store, storage.KeyAuthors, book.AuthorID) == nil {
				violations = append(violations, "Selected author does not exist")
			}

			if book.CategoryID == "" {
				violations = append(violations, "Category is required")
			} else if findByID[domain.Category](store, storage.KeyCategories, book.CategoryID) == nil {
				violations = append(violations, "Selected category does not exist")
			}

			return violations
		},
		CanDelete: func(id string) (string, bool) {
			for _, loan := range storage.ReadCollection[domain.Loan](store, storage.KeyLoans) {
				if loan.BookID == id && !loan.Returned {
					return "Cannot delete book with active loans. Return the book first.", false
				}
			}
			return "", true
		},
		MatchesSearch: func(book *domain.Book, query string) bool {
			if strings.Contains(strings.ToLower(book.Title), query) ||
				strings.Contains(strings.ToLower(book.ISBN), query) {
				return true
			}

			authorName := "Unknown Author"
			if author := findByID[domain.Author](store, storage.KeyAuthors, book.AuthorID); author != nil {
				authorName = author.Name + " " + author.Surname
			}
			return strings.Contains(strings.ToLower(authorName), query)
		},
	}

	return &BookRepository{
		entityRepository: newEntityRepository[domain.Book](store, storage.KeyBooks, "book", log, rules),
	}
}

func (r *BookRepository) Create(input domain.BookInput) (*domain.Book, error) {
	return r.entityRepository.Create(bookFromInput(input))
}

func (r *BookRepository) Update(id string, input domain.BookInput) (*domain.Book, error) {
	return r.entityRepository.Update(id, bookFromInput(input))
}

func (r *BookRepository) GetAvailable() []domain.Book {
	available := []domain.Book{}
	for _, book := range r.GetAll() {
		if book.Availability {
			available = append(available, book)
		}
	}
	return available
}

// SetAvailability is a partial edit of the derived availability flag. It
// goes through the regular update path so validation and the updatedAt
// timestamp still apply.
func (r *BookRepository) SetAvailability(id string, available bool) error {
	book := r.find(id)
	if book == nil {
		return &domain.NotFoundError{Entity: "book", ID: id}
	}

	_, err := r.Update(id, domain.BookInput{
		ISBN:         book.ISBN,
		Title:        book.Title,
		AuthorID:     book.AuthorID,
		CategoryID:   book.CategoryID,
		Availability: available,
	})
	return err
}

func bookFromInput(input domain.BookInput) domain.Book {
	return domain.Book{
		ISBN:         input.ISBN,
		Title:        input.Title,
		AuthorID:     input.AuthorID,
		CategoryID:   input.CategoryID,
		Availability: input.Availability,
	}
}
