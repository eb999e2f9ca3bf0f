package domain

type Category struct {
	Meta
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CategoryRepository interface {
	GetAll() []Category
	GetByID(id string) (*Category, error)
	Create(input CategoryInput) (*Category, error)
	Update(id string, input CategoryInput) (*Category, error)
	Delete(id string) error
	Search(query string) []Category
	Count() int

	BookCount(id string) int
}
