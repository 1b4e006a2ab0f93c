package offboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"claims-backoffice/internal/domain/apperr"
	"claims-backoffice/internal/domain/claim"
	domain "claims-backoffice/internal/domain/offboarding"
	"claims-backoffice/internal/domain/uow"
	"claims-backoffice/internal/infrastructure/storage"
	"claims-backoffice/pkg/id"
	"claims-backoffice/pkg/objkey"

	"github.com/sirupsen/logrus"
)

var nowUTC = func() time.Time { return time.Now().UTC() }

type Usecase struct {
	repo   domain.Repository
	claims claim.Repository
	uow    uow.UnitOfWork
	store  storage.ObjectStore
}

func NewUsecase(r domain.Repository, claims claim.Repository, tx uow.UnitOfWork, store storage.ObjectStore) *Usecase {
	return &Usecase{repo: r, claims: claims, uow: tx, store: store}
}

func withDocuments(s *domain.Step) *domain.Step {
	if s.Documents == nil {
		s.Documents = []domain.Document{}
	}
	return s
}

func (u *Usecase) GetStep(ctx context.Context, claimID string) (*domain.Step, error) {
	if _, err := u.claims.GetByID(ctx, claimID); err != nil {
		return nil, err
	}
	s, err := u.repo.GetStepByClaimID(ctx, claimID)
	if errors.Is(err, apperr.ErrNotFound) {
		return withDocuments(&domain.Step{ClaimID: claimID}), nil
	}
	if err != nil {
		return nil, err
	}
	return withDocuments(s), nil
}

func (u *Usecase) UpdateStep(ctx context.Context, claimID string, in StepInput) (*domain.Step, error) {
	var out *domain.Step
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *claim.Claim) error {
		s, err := r.Offboarding.EnsureStep(ctx, c.ID)
		if err != nil {
			return err
		}
		if in.Notes != nil {
			s.Notes = *in.Notes
		}
		switch {
		case in.CompletedAt != nil:
			t := in.CompletedAt.UTC()
			s.CompletedAt = &t
		case in.Completed != nil && *in.Completed && s.CompletedAt == nil:
			t := nowUTC()
			s.CompletedAt = &t
		case in.Completed != nil && !*in.Completed:
			s.CompletedAt = nil
		}
		if err := r.Offboarding.SaveStep(ctx, s); err != nil {
			return err
		}
		out, err = r.Offboarding.GetStepByClaimID(ctx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return withDocuments(out), nil
}

// UploadDocument stores f as the claim's document of docType. An existing
// document of that type is repointed at the new object and un-excluded.
func (u *Usecase) UploadDocument(ctx context.Context, claimID, docType string, f storage.File) (*domain.Document, error) {
	if !domain.ValidDocumentType(docType) {
		return nil, apperr.Invalid("documentType", "must match ^[A-Z][A-Z0-9_]{0,63}$")
	}
	if len(f.Body) == 0 {
		return nil, apperr.Invalid("file", "is required")
	}
	if _, err := u.claims.GetByID(ctx, claimID); err != nil {
		return nil, err
	}
	key := objkey.OffboardingDocument(claimID, docType, f.Name)
	if err := u.store.Put(ctx, key, f.ContentType, f.Body); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	var (
		out    *domain.Document
		oldKey string
	)
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *claim.Claim) error {
		s, err := r.Offboarding.EnsureStep(ctx, c.ID)
		if err != nil {
			return err
		}
		doc, err := r.Offboarding.GetDocumentByType(ctx, s.ID, docType)
		switch {
		case err == nil:
			oldKey = doc.Key
			doc.Replace(key, f.Name)
			if err := r.Offboarding.SaveDocument(ctx, doc); err != nil {
				return err
			}
		case errors.Is(err, apperr.ErrNotFound):
			doc = &domain.Document{
				ID:           id.NewID32(),
				StepID:       s.ID,
				ClaimID:      c.ID,
				DocumentType: docType,
				Key:          key,
				FileName:     f.Name,
			}
			if err := r.Offboarding.CreateDocument(ctx, doc); err != nil {
				return err
			}
		default:
			return err
		}
		out = doc
		return nil
	})
	if err != nil {
		u.removeObject(ctx, key)
		return nil, err
	}
	if oldKey != "" && oldKey != key {
		u.removeObject(ctx, oldKey)
	}
	return out, nil
}

// document loads docID and checks it hangs off claimID.
func (u *Usecase) document(ctx context.Context, claimID, docID string) (*domain.Document, error) {
	doc, err := u.repo.GetDocument(ctx, docID)
	if err != nil {
		return nil, err
	}
	if doc.ClaimID != claimID {
		return nil, fmt.Errorf("document %s: %w", docID, apperr.ErrOwnershipMismatch)
	}
	return doc, nil
}

func (u *Usecase) SetExcluded(ctx context.Context, claimID, docID string, excluded bool) (*domain.Document, error) {
	doc, err := u.document(ctx, claimID, docID)
	if err != nil {
		return nil, err
	}
	doc.SetExcluded(excluded, nowUTC())
	if err := u.repo.SaveDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (u *Usecase) DeleteDocument(ctx context.Context, claimID, docID string) error {
	doc, err := u.document(ctx, claimID, docID)
	if err != nil {
		return err
	}
	if err := u.repo.DeleteDocument(ctx, doc.ID); err != nil {
		return err
	}
	u.removeObject(ctx, doc.Key)
	return nil
}

func (u *Usecase) Download(ctx context.Context, claimID, key string) (*storage.Object, error) {
	if !objkey.Owns(objkey.OffboardingPrefix(claimID), key) {
		return nil, fmt.Errorf("document key outside claim %s: %w", claimID, apperr.ErrForbidden)
	}
	return u.store.Get(ctx, key)
}

func (u *Usecase) removeObject(ctx context.Context, key string) {
	if err := u.store.Delete(ctx, key); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("offboarding: object cleanup failed")
	}
}
