package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookflow/internal/domain"
	"bookflow/internal/storage"
)

func TestLoanLifecycle(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, member := env.seedLibrary(t)

	loan, err := env.loans.Create(domain.LoanInput{
		BookID:     book.ID,
		MemberID:   member.ID,
		ReturnDate: daysFromNow(14),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, loan.ID)
	assert.False(t, loan.Returned)
	assert.Nil(t, loan.ActualReturnDate)
	assert.False(t, loan.LoanDate.IsZero())

	borrowed, err := env.books.GetByID(book.ID)
	require.NoError(t, err)
	assert.False(t, borrowed.Availability, "lending a book flags it unavailable")

	returned, err := env.loans.ReturnBook(loan.ID)
	require.NoError(t, err)
	assert.True(t, returned.Returned)
	require.NotNil(t, returned.ActualReturnDate)
	assert.WithinDuration(t, time.Now().UTC(), *returned.ActualReturnDate, 5*time.Second)

	restored, err := env.books.GetByID(book.ID)
	require.NoError(t, err)
	assert.True(t, restored.Availability, "returning a book makes it available again")

	_, err = env.loans.ReturnBook(loan.ID)
	require.Error(t, err)
	assert.True(t, domain.IsAlreadyReturned(err))
	assert.EqualError(t, err, "This loan has already been returned")
}

func TestLoanReturnUnknownID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.loans.ReturnBook("missing")
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestLoanRejectsUnavailableBook(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, member := env.seedLibrary(t)

	_, err := env.loans.Create(domain.LoanInput{
		BookID:     book.ID,
		MemberID:   member.ID,
		ReturnDate: daysFromNow(14),
	})
	require.NoError(t, err)

	// The same book cannot be lent twice while on loan.
	_, err = env.loans.Create(domain.LoanInput{
		BookID:     book.ID,
		MemberID:   member.ID,
		ReturnDate: daysFromNow(14),
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "Selected book is not available for loan")
}

func TestLoanRejectsInactiveMember(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, _ := env.seedLibrary(t)

	for _, status := range []domain.MemberStatus{domain.MemberStatusInactive, domain.MemberStatusSuspended} {
		member, err := env.members.Create(domain.MemberInput{
			Name:   "Member " + string(status),
			Email:  string(status) + "@example.com",
			Status: status,
		})
		require.NoError(t, err)

		_, err = env.loans.Create(domain.LoanInput{
			BookID:     book.ID,
			MemberID:   member.ID,
			ReturnDate: daysFromNow(14),
		})
		require.Error(t, err)

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Violations, "Selected member is not active")
	}
}

func TestLoanRejectsPastReturnDate(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, member := env.seedLibrary(t)

	_, err := env.loans.Create(domain.LoanInput{
		BookID:     book.ID,
		MemberID:   member.ID,
		ReturnDate: daysFromNow(-1),
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "Return date cannot be in the past")

	// Due today is still fine, the cutoff is day granular.
	_, err = env.loans.Create(domain.LoanInput{
		BookID:     book.ID,
		MemberID:   member.ID,
		ReturnDate: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestLoanRejectsDanglingReferences(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.loans.Create(domain.LoanInput{
		BookID:     "ghost-book",
		MemberID:   "ghost-member",
		ReturnDate: daysFromNow(7),
	})
	require.Error(t, err)

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, "Selected book does not exist")
	assert.Contains(t, validationErr.Violations, "Selected member does not exist")
}

func TestLoanGetOverdue(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, member := env.seedLibrary(t)

	onTime, err := env.loans.Create(domain.LoanInput{
		BookID:     book.ID,
		MemberID:   member.ID,
		ReturnDate: daysFromNow(14),
	})
	require.NoError(t, err)

	assert.Empty(t, env.loans.GetOverdue())

	// Creation refuses past due dates, so the overdue record is planted
	// straight into the store.
	past := daysFromNow(-3)
	overdue := domain.Loan{
		BookID:     book.ID,
		MemberID:   member.ID,
		LoanDate:   daysFromNow(-10),
		ReturnDate: past,
	}
	overdue.StampNew(storage.NewID(), daysFromNow(-10))
	env.writeLoan(t, overdue)

	got := env.loans.GetOverdue()
	require.Len(t, got, 1)
	assert.Equal(t, overdue.ID, got[0].ID)
	assert.NotEqual(t, onTime.ID, got[0].ID)
}

func TestLoanReturnOverdueLoanSucceeds(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, member := env.seedLibrary(t)

	overdue := domain.Loan{
		BookID:     book.ID,
		MemberID:   member.ID,
		LoanDate:   daysFromNow(-10),
		ReturnDate: daysFromNow(-3),
	}
	overdue.StampNew(storage.NewID(), daysFromNow(-10))
	env.writeLoan(t, overdue)

	// A late return must not trip the past-due-date rule.
	returned, err := env.loans.ReturnBook(overdue.ID)
	require.NoError(t, err)
	assert.True(t, returned.Returned)
	require.NotNil(t, returned.ActualReturnDate)
}

func TestLoanGetActive(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, member := env.seedLibrary(t)

	loan, err := env.loans.Create(domain.LoanInput{
		BookID:     book.ID,
		MemberID:   member.ID,
		ReturnDate: daysFromNow(14),
	})
	require.NoError(t, err)
	require.Len(t, env.loans.GetActive(), 1)

	_, err = env.loans.ReturnBook(loan.ID)
	require.NoError(t, err)
	assert.Empty(t, env.loans.GetActive())
	assert.Equal(t, 1, env.loans.Count(), "returned loans stay in the history")
}

func TestLoanGetByMemberAndBook(t *testing.T) {
	env := newTestEnv(t)
	category, author, book, member := env.seedLibrary(t)

	other, err := env.books.Create(domain.BookInput{
		ISBN:         "978-0-45-128456-7",
		Title:        "Animal Farm",
		AuthorID:     author.ID,
		CategoryID:   category.ID,
		Availability: true,
	})
	require.NoError(t, err)

	_, err = env.loans.Create(domain.LoanInput{BookID: book.ID, MemberID: member.ID, ReturnDate: daysFromNow(14)})
	require.NoError(t, err)
	_, err = env.loans.Create(domain.LoanInput{BookID: other.ID, MemberID: member.ID, ReturnDate: daysFromNow(21)})
	require.NoError(t, err)

	assert.Len(t, env.loans.GetByMember(member.ID), 2)
	assert.Empty(t, env.loans.GetByMember("missing"))

	byBook := env.loans.GetByBook(book.ID)
	require.Len(t, byBook, 1)
	assert.Equal(t, book.ID, byBook[0].BookID)
}

func TestLoanSearchByTitleAndMemberName(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, member := env.seedLibrary(t)

	_, err := env.loans.Create(domain.LoanInput{BookID: book.ID, MemberID: member.ID, ReturnDate: daysFromNow(14)})
	require.NoError(t, err)

	assert.Len(t, env.loans.Search("1984"), 1)
	assert.Len(t, env.loans.Search("alice"), 1)
	assert.Empty(t, env.loans.Search("bob"))
}

func TestLoanDeleteAlwaysAllowed(t *testing.T) {
	env := newTestEnv(t)
	_, _, book, member := env.seedLibrary(t)

	loan, err := env.loans.Create(domain.LoanInput{BookID: book.ID, MemberID: member.ID, ReturnDate: daysFromNow(14)})
	require.NoError(t, err)

	require.NoError(t, env.loans.Delete(loan.ID))
	assert.Equal(t, 0, env.loans.Count())

	// Deleting an open loan does not touch the book's availability.
	borrowed, err := env.books.GetByID(book.ID)
	require.NoError(t, err)
	assert.False(t, borrowed.Availability)
}
