package financial

import (
	"fmt"

	"claims-backoffice/internal/domain/apperr"
)

// SyncPlan describes how to turn the stored rows of a collection into the
// submitted payload. Indexes refer to the incoming slice.
type SyncPlan struct {
	Update []int
	Create []int
	Delete []string
}

// PlanSync matches incoming rows to stored ones by id. Rows without an id
// are new, stored rows missing from the payload are dropped. An id that is
// not stored under this step belongs to someone else.
func PlanSync(existing []string, incoming []string) (SyncPlan, error) {
	stored := make(map[string]bool, len(existing))
	for _, id := range existing {
		stored[id] = true
	}
	var plan SyncPlan
	kept := map[string]bool{}
	for i, id := range incoming {
		if id == "" {
			plan.Create = append(plan.Create, i)
			continue
		}
		if !stored[id] {
			return SyncPlan{}, fmt.Errorf("%w: row %s", apperr.ErrOwnershipMismatch, id)
		}
		if kept[id] {
			return SyncPlan{}, apperr.Invalid(fmt.Sprintf("[%d].id", i), "duplicate id "+id)
		}
		kept[id] = true
		plan.Update = append(plan.Update, i)
	}
	for _, id := range existing {
		if !kept[id] {
			plan.Delete = append(plan.Delete, id)
		}
	}
	return plan, nil
}
