package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookflow/internal/domain"
)

func TestCategoryNameUniqueness(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.categories.Create(domain.CategoryInput{Name: "Fiction"})
	require.NoError(t, err)

	_, err = env.categories.Create(domain.CategoryInput{Name: "fiction"})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "A category with this name already exists")
}

func TestCategoryUpdateKeepsOwnNameLegal(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.categories.Create(domain.CategoryInput{Name: "Fiction", Description: "Novels"})
	require.NoError(t, err)

	// Re-saving the record under its own name must not trip the
	// uniqueness rule.
	updated, err := env.categories.Update(created.ID, domain.CategoryInput{Name: "Fiction", Description: "Fictional literature"})
	require.NoError(t, err)
	assert.Equal(t, "Fictional literature", updated.Description)

	other, err := env.categories.Create(domain.CategoryInput{Name: "Science"})
	require.NoError(t, err)

	_, err = env.categories.Update(other.ID, domain.CategoryInput{Name: "FICTION"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestCategoryNameRequired(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.categories.Create(domain.CategoryInput{Name: "   "})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "Category name is required")
}

func TestCategoryDeleteGuardedByBooks(t *testing.T) {
	env := newTestEnv(t)
	category, _, book, _ := env.seedLibrary(t)

	err := env.categories.Delete(category.ID)
	require.Error(t, err)
	assert.True(t, domain.IsConstraint(err))
	assert.EqualError(t, err, "Cannot delete category with existing books. Reassign the books first.")

	require.NoError(t, env.books.Delete(book.ID))
	require.NoError(t, env.categories.Delete(category.ID))
}

func TestCategorySearchMatchesDescription(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.categories.Create(domain.CategoryInput{Name: "Science", Description: "Educational books"})
	require.NoError(t, err)
	_, err = env.categories.Create(domain.CategoryInput{Name: "History"})
	require.NoError(t, err)

	assert.Len(t, env.categories.Search("educational"), 1)
	assert.Len(t, env.categories.Search("hist"), 1)
	assert.Empty(t, env.categories.Search("cooking"))
}

func TestCategoryBookCount(t *testing.T) {
	env := newTestEnv(t)
	category, author, _, _ := env.seedLibrary(t)

	_, err := env.books.Create(domain.BookInput{
		ISBN:         "978-0-45-128456-7",
		Title:        "Animal Farm",
		AuthorID:     author.ID,
		CategoryID:   category.ID,
		Availability: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, env.categories.BookCount(category.ID))
	assert.Equal(t, 0, env.categories.BookCount("missing"))
}
