package claim

import "context"

type ListFilter struct {
	Status    Status
	Type      Type
	UserID    string
	PartnerID string
}

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	GetByID(ctx context.Context, id string) (*Claim, error)
	// GetByIDForUpdate locks the row until the surrounding tx ends.
	GetByIDForUpdate(ctx context.Context, id string) (*Claim, error)
	List(ctx context.Context, f ListFilter) ([]Claim, error)
	Save(ctx context.Context, c *Claim) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
