package title

import "context"

type FindParams struct {
	Query  string
	Limit  int
	Offset int
}

type Repository interface {
	Count(ctx context.Context) (int64, error)
	GetAll(ctx context.Context) ([]Title, error)
	GetPaginated(ctx context.Context, params *FindParams) ([]Title, error)
	GetByID(ctx context.Context, id uint) (Title, error)
	Create(ctx context.Context, data Title) (Title, error)
	Update(ctx context.Context, data Title) error
	Delete(ctx context.Context, id uint) error
}
