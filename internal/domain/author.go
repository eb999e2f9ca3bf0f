package domain

type Author struct {
	Meta
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type AuthorInput struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type AuthorRepository interface {
	GetAll() []Author
	GetByID(id string) (*Author, error)
	Create(input AuthorInput) (*Author, error)
	Update(id string, input AuthorInput) (*Author, error)
	Delete(id string) error
	Search(query string) []Author
	Count() int

	// FullName returns "Name Surname" or a placeholder when the
	// author does not exist.
	FullName(id string) string
}
