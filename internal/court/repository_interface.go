package court

import "context"

type Repository interface {
	CreateCourt(ctx context.Context, c *Court) (*Court, error)
	GetAllCourts(ctx context.Context) ([]Court, error)
	GetCourtByID(ctx context.Context, id int) (*Court, error)
	UpdateCourt(ctx context.Context, c *Court) (*Court, error)
	DeleteCourt(ctx context.Context, id int) error
}
