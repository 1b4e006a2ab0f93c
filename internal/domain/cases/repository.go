package cases

import "context"

type ListFilter struct {
	Status       Status
	AssignedToID string
	CreatedByID  string
}

type Repository interface {
	Create(ctx context.Context, c *Case) error
	// GetByID resolves either the opaque id or the "C-{n}" case id.
	GetByID(ctx context.Context, id string) (*Case, error)
	List(ctx context.Context, f ListFilter) ([]Case, error)
	Save(ctx context.Context, c *Case) error
	// NextNumber advances the case counter; call it inside a transaction
	// together with Create.
	NextNumber(ctx context.Context) (int64, error)
}
