package repository

import (
	"strings"
	"time"

	"bookflow/internal/domain"
	"bookflow/internal/storage"
	"bookflow/pkg/logger"
	"bookflow/pkg/metrics"
)

// LoanRepository drives the loan lifecycle: Open on create, Returned via
// ReturnBook, with "overdue" derived from the due date on read. It is
// the only repository that writes to another entity's collection, by
// flipping book availability through the book repository.
type LoanRepository struct {
	*entityRepository[domain.Loan, *domain.Loan]
	books domain.BookRepository
}

func NewLoanRepository(store storage.Store, books domain.BookRepository, log logger.Logger) domain.LoanRepository {
	rules := Rules[domain.Loan]{
		Validate: func(loan *domain.Loan, excludeID string) []string {
			var violations []string
			creating := excludeID == ""

			if loan.BookID == "" {
				violations = append(violations, "Book is required")
			} else if book := findByID[domain.Book](store, storage.KeyBooks, loan.BookID); book == nil {
				violations = append(violations, "Selected book does not exist")
			} else if creating && !book.Availability {
				violations = append(violations, "Selected book is not available for loan")
			}

			if loan.MemberID == "" {
				violations = append(violations, "Member is required")
			} else if member := findByID[domain.Member](store, storage.KeyMembers, loan.MemberID); member == nil {
				violations = append(violations, "Selected member does not exist")
			} else if creating && member.Status != domain.MemberStatusActive {
				violations = append(violations, "Selected member is not active")
			}

			if loan.ReturnDate.IsZero() {
				violations = append(violations, "Return date is required")
			} else if creating && startOfDay(loan.ReturnDate).Before(startOfDay(time.Now().UTC())) {
				violations = append(violations, "Return date cannot be in the past")
			}

			return violations
		},
		// No CanDelete guard: loan records may always be removed, in
		// any state, for history cleanup. A caller deleting an
		// unreturned loan is responsible for restoring the book's
		// availability itself.
		MatchesSearch: func(loan *domain.Loan, query string) bool {
			if book := findByID[domain.Book](store, storage.KeyBooks, loan.BookID); book != nil {
				if strings.Contains(strings.ToLower(book.Title), query) {
					return true
				}
			}
			if member := findByID[domain.Member](store, storage.KeyMembers, loan.MemberID); member != nil {
				if strings.Contains(strings.ToLower(member.Name), query) {
					return true
				}
			}
			return false
		},
	}

	return &LoanRepository{
		entityRepository: newEntityRepository[domain.Loan](store, storage.KeyLoans, "loan", log, rules),
		books:            books,
	}
}

// Create opens a loan and then flags the book unavailable. The two
// writes are sequential, not transactional: if the availability write
// fails the loan is already persisted and the book stays marked
// available. The gap is logged, not compensated.
func (r *LoanRepository) Create(input domain.LoanInput) (*domain.Loan, error) {
	loan := domain.Loan{
		BookID:           input.BookID,
		MemberID:         input.MemberID,
		LoanDate:         time.Now().UTC(),
		ReturnDate:       input.ReturnDate,
		Returned:         false,
		ActualReturnDate: nil,
	}

	created, err := r.entityRepository.Create(loan)
	if err != nil {
		return nil, err
	}

	if err := r.books.SetAvailability(created.BookID, false); err != nil {
		r.logger.Error("Loan persisted but book could not be flagged unavailable", map[string]interface{}{
			"loan_id": created.ID,
			"book_id": created.BookID,
			"error":   err.Error(),
		})
	}

	metrics.RecordLoanTransition("create")
	return created, nil
}

// ReturnBook closes an open loan and then restores the book's
// availability, with the same two-step caveat as Create.
func (r *LoanRepository) ReturnBook(id string) (*domain.Loan, error) {
	loan := r.find(id)
	if loan == nil {
		return nil, &domain.NotFoundError{Entity: "loan", ID: id}
	}

	if loan.Returned {
		return nil, &domain.AlreadyReturnedError{LoanID: id}
	}

	now := time.Now().UTC()
	closed := *loan
	closed.Returned = true
	closed.ActualReturnDate = &now

	updated, err := r.entityRepository.Update(id, closed)
	if err != nil {
		return nil, err
	}

	if err := r.books.SetAvailability(updated.BookID, true); err != nil {
		r.logger.Error("Loan returned but book could not be flagged available", map[string]interface{}{
			"loan_id": updated.ID,
			"book_id": updated.BookID,
			"error":   err.Error(),
		})
	}

	metrics.RecordLoanTransition("return")
	return updated, nil
}

func (r *LoanRepository) GetActive() []domain.Loan {
	active := []domain.Loan{}
	for _, loan := range r.GetAll() {
		if !loan.Returned {
			active = append(active, loan)
		}
	}
	return active
}

// GetOverdue derives the overdue state on read: open and due strictly
// before today, compared at day granularity.
func (r *LoanRepository) GetOverdue() []domain.Loan {
	today := startOfDay(time.Now().UTC())

	overdue := []domain.Loan{}
	for _, loan := range r.GetAll() {
		if !loan.Returned && startOfDay(loan.ReturnDate).Before(today) {
			overdue = append(overdue, loan)
		}
	}
	return overdue
}

func (r *LoanRepository) GetByMember(memberID string) []domain.Loan {
	loans := []domain.Loan{}
	for _, loan := range r.GetAll() {
		if loan.MemberID == memberID {
			loans = append(loans, loan)
		}
	}
	return loans
}

func (r *LoanRepository) GetByBook(bookID string) []domain.Loan {
	loans := []domain.Loan{}
	for _, loan := range r.GetAll() {
		if loan.BookID == bookID {
			loans = append(loans, loan)
		}
	}
	return loans
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
