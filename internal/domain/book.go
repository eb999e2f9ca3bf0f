package domain

type Book struct {
	Meta
	ISBN         string `json:"isbn"`
	Title        string `json:"title"`
	AuthorID     string `json:"authorId"`
	CategoryID   string `json:"categoryId"`
	Availability bool   `json:"availability"`
}

type BookInput struct {
	ISBN         string `json:"isbn"`
	Title        string `json:"title"`
	AuthorID     string `json:"authorId"`
	CategoryID   string `json:"categoryId"`
	Availability bool   `json:"availability"`
}

type BookRepository interface {
	GetAll() []Book
	GetByID(id string) (*Book, error)
	Create(input BookInput) (*Book, error)
	Update(id string, input BookInput) (*Book, error)
	Delete(id string) error
	Search(query string) []Book
	Count() int

	GetAvailable() []Book

	// SetAvailability flips the derived availability flag through the
	// regular update path, so validation and timestamps still apply.
	// It is called by the loan repository and by direct book edits.
	SetAvailability(id string, available bool) error
}
