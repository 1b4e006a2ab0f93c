package cases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"claims-backoffice/internal/domain/apperr"
	domain "claims-backoffice/internal/domain/cases"
	"claims-backoffice/internal/domain/uow"
	"claims-backoffice/internal/domain/user"
	"claims-backoffice/pkg/id"
)

type Usecase struct {
	repo  domain.Repository
	users user.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(r domain.Repository, users user.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, users: users, uow: tx}
}

func parsePriority(raw string) (domain.Priority, error) {
	if raw == "" {
		return domain.PriorityMedium, nil
	}
	p := domain.Priority(strings.ToUpper(raw))
	if !p.Valid() {
		return "", apperr.Invalid("priority", "must be one of LOW, MEDIUM, HIGH")
	}
	return p, nil
}

func parseStatus(raw string) (domain.Status, error) {
	s := domain.Status(strings.ToUpper(raw))
	if !s.Valid() {
		return "", apperr.Invalid("status", "unknown case status "+raw)
	}
	return s, nil
}

// resolveAssignee normalizes a blank id to nil and checks the user exists.
func (u *Usecase) resolveAssignee(ctx context.Context, raw *string) (*string, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	v := strings.TrimSpace(*raw)
	if _, err := u.users.GetByID(ctx, v); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Invalid("assignedTo", "user not found")
		}
		return nil, err
	}
	return &v, nil
}

// Create allocates the next C-{n} and inserts the case in one transaction.
// The requested status is ignored: every case starts at INITIAL_ASSESSMENT.
func (u *Usecase) Create(ctx context.Context, in CreateCaseInput) (*domain.Case, error) {
	title, client := strings.TrimSpace(in.Title), strings.TrimSpace(in.Client)
	if title == "" {
		return nil, apperr.Invalid("title", "is required")
	}
	if client == "" {
		return nil, apperr.Invalid("client", "is required")
	}
	priority, err := parsePriority(in.Priority)
	if err != nil {
		return nil, err
	}
	assignee, err := u.resolveAssignee(ctx, in.AssignedTo)
	if err != nil {
		return nil, err
	}

	c := &domain.Case{
		ID:           id.NewID32(),
		Title:        title,
		Client:       client,
		Status:       domain.InitialStatus,
		Priority:     priority,
		AssignedToID: assignee,
		CreatedByID:  in.CreatedBy,
	}
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		n, err := r.Cases.NextNumber(ctx)
		if err != nil {
			return fmt.Errorf("allocate case number: %w", err)
		}
		c.CaseID = domain.FormatCaseID(n)
		return r.Cases.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) Get(ctx context.Context, caseID string) (*domain.Case, error) {
	return u.repo.GetByID(ctx, caseID)
}

func (u *Usecase) List(ctx context.Context, in ListCasesInput) ([]domain.Case, error) {
	f := domain.ListFilter{AssignedToID: in.AssignedTo, CreatedByID: in.CreatedBy}
	if in.Status != "" {
		s, err := parseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		f.Status = s
	}
	out, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Case{}
	}
	return out, nil
}

// Update applies a partial edit. Case status moves freely between the
// enumerated values.
func (u *Usecase) Update(ctx context.Context, caseID string, in UpdateCaseInput) (*domain.Case, error) {
	c, err := u.repo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		v := strings.TrimSpace(*in.Title)
		if v == "" {
			return nil, apperr.Invalid("title", "must not be blank")
		}
		c.Title = v
	}
	if in.Client != nil {
		v := strings.TrimSpace(*in.Client)
		if v == "" {
			return nil, apperr.Invalid("client", "must not be blank")
		}
		c.Client = v
	}
	if in.Priority != nil {
		p, err := parsePriority(*in.Priority)
		if err != nil {
			return nil, err
		}
		c.Priority = p
	}
	if in.Status != nil {
		s, err := parseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		c.Status = s
	}
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Assign sets or clears the assignee.
func (u *Usecase) Assign(ctx context.Context, caseID string, assignedTo *string) (*domain.Case, error) {
	c, err := u.repo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	assignee, err := u.resolveAssignee(ctx, assignedTo)
	if err != nil {
		return nil, err
	}
	c.AssignedToID = assignee
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
