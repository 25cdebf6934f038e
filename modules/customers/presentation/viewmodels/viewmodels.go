package viewmodels

type Title struct {
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}
