package storage

import (
	"time"

	"bookflow/internal/domain"
)

// Seed resets the store and loads the demo dataset: five categories and
// authors, eight books, five members, and three loans (one of them
// overdue, one already returned).
func Seed(store Store) error {
	if err := ClearAll(store); err != nil {
		return err
	}
	if err := InitDefaults(store); err != nil {
		return err
	}

	now := time.Now().UTC()
	stamped := func(id string) domain.Meta {
		return domain.Meta{ID: id, CreatedAt: now, UpdatedAt: now}
	}

	categories := []domain.Category{
		{Meta: stamped("cat1"), Name: "Fiction", Description: "Fictional literature and novels"},
		{Meta: stamped("cat2"), Name: "Science", Description: "Scientific and educational books"},
		{Meta: stamped("cat3"), Name: "History", Description: "Historical accounts and biographies"},
		{Meta: stamped("cat4"), Name: "Technology", Description: "Computer science and programming"},
		{Meta: stamped("cat5"), Name: "Philosophy", Description: "Philosophical works and essays"},
	}

	authors := []domain.Author{
		{Meta: stamped("auth1"), Name: "George", Surname: "Orwell"},
		{Meta: stamped("auth2"), Name: "Stephen", Surname: "Hawking"},
		{Meta: stamped("auth3"), Name: "Yuval Noah", Surname: "Harari"},
		{Meta: stamped("auth4"), Name: "Robert", Surname: "Martin"},
		{Meta: stamped("auth5"), Name: "Marcus", Surname: "Aurelius"},
	}

	books := []domain.Book{
		{Meta: stamped("book1"), ISBN: "978-0-45-152493-5", Title: "1984", AuthorID: "auth1", CategoryID: "cat1", Availability: true},
		{Meta: stamped("book2"), ISBN: "978-0-55-338016-8", Title: "A Brief History of Time", AuthorID: "auth2", CategoryID: "cat2", Availability: true},
		{Meta: stamped("book3"), ISBN: "978-0-06-231609-7", Title: "Sapiens: A Brief History of Humankind", AuthorID: "auth3", CategoryID: "cat3", Availability: false},
		{Meta: stamped("book4"), ISBN: "978-0-13-235088-4", Title: "Clean Code", AuthorID: "auth4", CategoryID: "cat4", Availability: true},
		{Meta: stamped("book5"), ISBN: "978-0-14-044933-4", Title: "Meditations", AuthorID: "auth5", CategoryID: "cat5", Availability: true},
		{Meta: stamped("book6"), ISBN: "978-0-45-128456-7", Title: "Animal Farm", AuthorID: "auth1", CategoryID: "cat1", Availability: false},
		{Meta: stamped("book7"), ISBN: "978-0-06-231610-3", Title: "Homo Deus", AuthorID: "auth3", CategoryID: "cat3", Availability: true},
		{Meta: stamped("book8"), ISBN: "978-0-13-468599-1", Title: "The Clean Coder", AuthorID: "auth4", CategoryID: "cat4", Availability: true},
	}

	members := []domain.Member{
		{Meta: stamped("mem1"), Name: "Alice Johnson", Email: "alice@example.com", Status: domain.MemberStatusActive},
		{Meta: stamped("mem2"), Name: "Bob Smith", Email: "bob@example.com", Status: domain.MemberStatusActive},
		{Meta: stamped("mem3"), Name: "Carol White", Email: "carol@example.com", Status: domain.MemberStatusActive},
		{Meta: stamped("mem4"), Name: "David Brown", Email: "david@example.com", Status: domain.MemberStatusInactive},
		{Meta: stamped("mem5"), Name: "Eva Green", Email: "eva@example.com", Status: domain.MemberStatusSuspended},
	}

	earlyReturn := now.AddDate(0, 0, -17)
	loans := []domain.Loan{
		{
			Meta:             stamped("loan1"),
			BookID:           "book3",
			MemberID:         "mem1",
			LoanDate:         now.AddDate(0, 0, -14),
			ReturnDate:       now.AddDate(0, 0, 14),
			Returned:         false,
			ActualReturnDate: nil,
		},
		{
			Meta:             stamped("loan2"),
			BookID:           "book6",
			MemberID:         "mem2",
			LoanDate:         now.AddDate(0, 0, -14),
			ReturnDate:       now.AddDate(0, 0, -7), // overdue
			Returned:         false,
			ActualReturnDate: nil,
		},
		{
			Meta:             stamped("loan3"),
			BookID:           "book1",
			MemberID:         "mem3",
			LoanDate:         now.AddDate(0, 0, -30),
			ReturnDate:       now.AddDate(0, 0, -16),
			Returned:         true,
			ActualReturnDate: &earlyReturn,
		},
	}

	if err := SaveCollection(store, KeyCategories, categories); err != nil {
		return err
	}
	if err := SaveCollection(store, KeyAuthors, authors); err != nil {
		return err
	}
	if err := SaveCollection(store, KeyBooks, books); err != nil {
		return err
	}
	if err := SaveCollection(store, KeyMembers, members); err != nil {
		return err
	}
	return SaveCollection(store, KeyLoans, loans)
}
