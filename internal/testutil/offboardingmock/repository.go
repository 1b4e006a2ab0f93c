package offboardingmock

import (
	"context"
	"errors"

	domain "claims-backoffice/internal/domain/offboarding"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("offboardingmock: method not implemented")

// Repo is a function-backed mock of domain.Repository. Unset functions
// return errUnimplemented.
type Repo struct {
	GetStepByClaimIDFn  func(ctx context.Context, claimID string) (*domain.Step, error)
	EnsureStepFn        func(ctx context.Context, claimID string) (*domain.Step, error)
	SaveStepFn          func(ctx context.Context, s *domain.Step) error
	GetDocumentFn       func(ctx context.Context, id string) (*domain.Document, error)
	GetDocumentByTypeFn func(ctx context.Context, stepID, documentType string) (*domain.Document, error)
	CreateDocumentFn    func(ctx context.Context, d *domain.Document) error
	SaveDocumentFn      func(ctx context.Context, d *domain.Document) error
	DeleteDocumentFn    func(ctx context.Context, id string) error
	CountDocumentsFn    func(ctx context.Context, stepID string) (int64, error)
	DeleteByClaimIDFn   func(ctx context.Context, claimID string) ([]string, error)
}

func (m *Repo) GetStepByClaimID(ctx context.Context, claimID string) (*domain.Step, error) {
	if m.GetStepByClaimIDFn != nil {
		return m.GetStepByClaimIDFn(ctx, claimID)
	}
	return nil, errUnimplemented
}

func (m *Repo) EnsureStep(ctx context.Context, claimID string) (*domain.Step, error) {
	if m.EnsureStepFn != nil {
		return m.EnsureStepFn(ctx, claimID)
	}
	return nil, errUnimplemented
}

func (m *Repo) SaveStep(ctx context.Context, s *domain.Step) error {
	if m.SaveStepFn != nil {
		return m.SaveStepFn(ctx, s)
	}
	return errUnimplemented
}

func (m *Repo) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	if m.GetDocumentFn != nil {
		return m.GetDocumentFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetDocumentByType(ctx context.Context, stepID, documentType string) (*domain.Document, error) {
	if m.GetDocumentByTypeFn != nil {
		return m.GetDocumentByTypeFn(ctx, stepID, documentType)
	}
	return nil, errUnimplemented
}

func (m *Repo) CreateDocument(ctx context.Context, d *domain.Document) error {
	if m.CreateDocumentFn != nil {
		return m.CreateDocumentFn(ctx, d)
	}
	return errUnimplemented
}

func (m *Repo) SaveDocument(ctx context.Context, d *domain.Document) error {
	if m.SaveDocumentFn != nil {
		return m.SaveDocumentFn(ctx, d)
	}
	return errUnimplemented
}

func (m *Repo) DeleteDocument(ctx context.Context, id string) error {
	if m.DeleteDocumentFn != nil {
		return m.DeleteDocumentFn(ctx, id)
	}
	return errUnimplemented
}

func (m *Repo) CountDocuments(ctx context.Context, stepID string) (int64, error) {
	if m.CountDocumentsFn != nil {
		return m.CountDocumentsFn(ctx, stepID)
	}
	return 0, errUnimplemented
}

func (m *Repo) DeleteByClaimID(ctx context.Context, claimID string) ([]string, error) {
	if m.DeleteByClaimIDFn != nil {
		return m.DeleteByClaimIDFn(ctx, claimID)
	}
	return nil, errUnimplemented
}
