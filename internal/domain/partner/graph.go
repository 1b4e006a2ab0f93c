package partner

import (
	"context"
	"fmt"

	"claims-backoffice/internal/domain/apperr"
)

// LinkLoader returns the partner ids a partner links to.
type LinkLoader func(ctx context.Context, partnerID string) ([]string, error)

// CheckCycles walks the link graph from every link of p and fails when the
// walk reaches p itself. The partner's own links come from p, not the store,
// so pending edits are checked before they are saved.
func CheckCycles(ctx context.Context, p *Partner, load LinkLoader) error {
	for _, l := range p.Links() {
		if l.PartnerID == p.ID {
			return apperr.Invalid(l.Field, "partner cannot link to itself")
		}
		visited := map[string]bool{p.ID: true}
		stack := []string{l.PartnerID}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[cur] {
				continue
			}
			visited[cur] = true
			next, err := load(ctx, cur)
			if err != nil {
				return fmt.Errorf("load links of %s: %w", cur, err)
			}
			for _, n := range next {
				if n == p.ID {
					return apperr.Invalid(l.Field, fmt.Sprintf("link to %s creates a cycle", l.PartnerID))
				}
				if !visited[n] {
					stack = append(stack, n)
				}
			}
		}
	}
	return nil
}
