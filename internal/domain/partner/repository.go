package partner

import (
	"context"
	"errors"

	"claims-backoffice/internal/domain/apperr"
)

type Repository interface {
	Create(ctx context.Context, p *Partner) error
	GetByID(ctx context.Context, id string) (*Partner, error)
	GetByIDs(ctx context.Context, ids []string) ([]Partner, error)
	List(ctx context.Context, t Type) ([]Partner, error)
	Save(ctx context.Context, p *Partner) error
	// Delete removes the partner, clears every partner link pointing at it and
	// detaches the claims and users that referenced it.
	Delete(ctx context.Context, id string) error
	LinkedIDs(ctx context.Context, id string) ([]string, error)
}

// Getter is the read other aggregates need to resolve a partner reference.
type Getter interface {
	GetByID(ctx context.Context, id string) (*Partner, error)
}

// CheckRef fails with a validation error on field when id is set but names
// no partner. A nil id passes.
func CheckRef(ctx context.Context, g Getter, field string, id *string) error {
	if id == nil {
		return nil
	}
	if _, err := g.GetByID(ctx, *id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return apperr.Invalid(field, "partner not found")
		}
		return err
	}
	return nil
}
