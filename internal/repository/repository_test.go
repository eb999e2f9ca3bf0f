package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"bookflow/internal/domain"
	"bookflow/internal/storage"
	"bookflow/pkg/logger"
)

type testEnv struct {
	store      storage.Store
	authors    domain.AuthorRepository
	categories domain.CategoryRepository
	books      domain.BookRepository
	members    domain.MemberRepository
	loans      domain.LoanRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storage.NewMemoryStore()
	require.NoError(t, storage.InitDefaults(store))

	log := logger.NewNop()
	books := NewBookRepository(store, log)

	return &testEnv{
		store:      store,
		authors:    NewAuthorRepository(store, log),
		categories: NewCategoryRepository(store, log),
		books:      books,
		members:    NewMemberRepository(store, log),
		loans:      NewLoanRepository(store, books, log),
	}
}

// seedLibrary creates the minimal referential chain used by most tests:
// one category, one author, one available book, one active member.
func (e *testEnv) seedLibrary(t *testing.T) (*domain.Category, *domain.Author, *domain.Book, *domain.Member) {
	t.Helper()

	category, err := e.categories.Create(domain.CategoryInput{Name: "Fiction"})
	require.NoError(t, err)

	author, err := e.authors.Create(domain.AuthorInput{Name: "George", Surname: "Orwell"})
	require.NoError(t, err)

	book, err := e.books.Create(domain.BookInput{
		ISBN:         "978-0-45-152493-5",
		Title:        "1984",
		AuthorID:     author.ID,
		CategoryID:   category.ID,
		Availability: true,
	})
	require.NoError(t, err)

	member, err := e.members.Create(domain.MemberInput{
		Name:   "Alice",
		Email:  "alice@example.com",
		Status: domain.MemberStatusActive,
	})
	require.NoError(t, err)

	return category, author, book, member
}

// writeLoan bypasses the repository to plant a loan record directly in
// the store, e.g. one that is already overdue.
func (e *testEnv) writeLoan(t *testing.T, loan domain.Loan) {
	t.Helper()

	loans := storage.ReadCollection[domain.Loan](e.store, storage.KeyLoans)
	loans = append(loans, loan)
	require.NoError(t, storage.SaveCollection(e.store, storage.KeyLoans, loans))
}

func daysFromNow(days int) time.Time {
	return time.Now().UTC().AddDate(0, 0, days)
}
