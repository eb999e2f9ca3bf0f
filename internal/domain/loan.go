package domain

import "time"

// Loan binds one book to one member for its whole lifetime. A loan is
// either open (returned=false) or returned; "overdue" is never stored,
// it is derived from the due date on read.
type Loan struct {
	Meta
	BookID           string     `json:"bookId"`
	MemberID         string     `json:"memberId"`
	LoanDate         time.Time  `json:"loanDate"`
	ReturnDate       time.Time  `json:"returnDate"`
	Returned         bool       `json:"returned"`
	ActualReturnDate *time.Time `json:"actualReturnDate"`
}

type LoanInput struct {
	BookID     string    `json:"bookId"`
	MemberID   string    `json:"memberId"`
	ReturnDate time.Time `json:"returnDate"`
}

type LoanRepository interface {
	GetAll() []Loan
	GetByID(id string) (*Loan, error)
	Create(input LoanInput) (*Loan, error)
	Delete(id string) error
	Search(query string) []Loan
	Count() int

	// ReturnBook closes an open loan and restores the book's
	// availability. Returning an already-returned loan is an error.
	ReturnBook(id string) (*Loan, error)

	GetActive() []Loan
	GetOverdue() []Loan
	GetByMember(memberID string) []Loan
	GetByBook(bookID string) []Loan
}
