package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookflow/internal/domain"
)

func TestBookCreateValidatesReferences(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.books.Create(domain.BookInput{
		ISBN:       "978-0-45-152493-5",
		Title:      "1984",
		AuthorID:   "ghost-author",
		CategoryID: "ghost-category",
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "Selected author does not exist")
	assert.Contains(t, validationErr.Violations, "Selected category does not exist")
}

func TestBookCreateRequiresEverything(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.books.Create(domain.BookInput{})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"ISBN is required",
		"Title is required",
		"Author is required",
		"Category is required",
	}, validationErr.Violations)
}

func TestBookISBNFormat(t *testing.T) {
	env := newTestEnv(t)
	category, author, _, _ := env.seedLibrary(t)

	_, err := env.books.Create(domain.BookInput{
		ISBN:       "123-456",
		Title:      "Animal Farm",
		AuthorID:   author.ID,
		CategoryID: category.ID,
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "Invalid ISBN format (use XXX-X-XX-XXXXXX-X or 13 digits)")

	// The bare 13-digit form is accepted too.
	_, err = env.books.Create(domain.BookInput{
		ISBN:       "9780451284567",
		Title:      "Animal Farm",
		AuthorID:   author.ID,
		CategoryID: category.ID,
	})
	require.NoError(t, err)
}

func TestBookISBNUniqueness(t *testing.T) {
	env := newTestEnv(t)
	category, author, book, _ := env.seedLibrary(t)

	_, err := env.books.Create(domain.BookInput{
		ISBN:       book.ISBN,
		Title:      "Another 1984",
		AuthorID:   author.ID,
		CategoryID: category.ID,
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "A book with this ISBN already exists")

	// Updating a book without changing its ISBN stays legal.
	_, err = env.books.Update(book.ID, domain.BookInput{
		ISBN:         book.ISBN,
		Title:        "Nineteen Eighty-Four",
		AuthorID:     author.ID,
		CategoryID:   category.ID,
		Availability: true,
	})
	require.NoError(t, err)
}

func TestBookDeleteGuardedByActiveLoan(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, member := env.seedLibrary(t)

	loan, err := env.loans.Create(domain.LoanInput{
		BookID:     book.ID,
		MemberID:   member.ID,
		ReturnDate: daysFromNow(14),
	})
	require.NoError(t, err)

	err = env.books.Delete(book.ID)
	require.Error(t, err)
	assert.True(t, domain.IsConstraint(err))
	assert.EqualError(t, err, "Cannot delete book with active loans. Return the book first.")

	_, err = env.loans.ReturnBook(loan.ID)
	require.NoError(t, err)
	require.NoError(t, env.books.Delete(book.ID))
}

func TestBookSetAvailabilityGoesThroughUpdate(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, _ := env.seedLibrary(t)

	require.NoError(t, env.books.SetAvailability(book.ID, false))

	flipped, err := env.books.GetByID(book.ID)
	require.NoError(t, err)
	assert.False(t, flipped.Availability)
	assert.Equal(t, book.CreatedAt, flipped.CreatedAt)
	assert.Equal(t, book.ISBN, flipped.ISBN, "other fields untouched")

	err = env.books.SetAvailability("missing", true)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestBookGetAvailable(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, _ := env.seedLibrary(t)

	assert.Len(t, env.books.GetAvailable(), 1)

	require.NoError(t, env.books.SetAvailability(book.ID, false))
	assert.Empty(t, env.books.GetAvailable())
}

func TestBookSearchByAuthorName(t *testing.T) {
	env := newTestEnv(t)
	env.seedLibrary(t)

	results := env.books.Search("orwell")
	require.Len(t, results, 1)
	assert.Equal(t, "1984", results[0].Title)

	assert.Len(t, env.books.Search("1984"), 1)
	assert.Len(t, env.books.Search("978-0-45"), 1)
	assert.Empty(t, env.books.Search("austen"))
}
