package claim

import (
	"context"
	"fmt"
	"strings"
	"time"

	"claims-backoffice/internal/domain/apperr"
	domain "claims-backoffice/internal/domain/claim"
	"claims-backoffice/internal/domain/partner"
	"claims-backoffice/internal/domain/uow"
	"claims-backoffice/internal/infrastructure/storage"
	"claims-backoffice/pkg/id"
	"claims-backoffice/pkg/objkey"

	"github.com/sirupsen/logrus"
)

type Usecase struct {
	repo     domain.Repository
	partners partner.Getter
	uow      uow.UnitOfWork
	store    storage.ObjectStore
	workflow *domain.Workflow
	observer TransitionObserver
	now      func() time.Time
}

// NewUsecase wires the claim flows. A nil workflow is permissive, a nil
// observer discards transitions.
func NewUsecase(r domain.Repository, partners partner.Getter, tx uow.UnitOfWork, store storage.ObjectStore, wf *domain.Workflow, obs TransitionObserver) *Usecase {
	if wf == nil {
		wf = domain.NewWorkflow(domain.PolicyPermissive)
	}
	if obs == nil {
		obs = noopObserver{}
	}
	return &Usecase{
		repo:     r,
		partners: partners,
		uow:      tx,
		store:    store,
		workflow: wf,
		observer: obs,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func parseType(raw string) (domain.Type, error) {
	t := domain.Type(strings.ToUpper(raw))
	if !t.Valid() {
		return "", apperr.Invalid("type", "must be FAULT or NON_FAULT")
	}
	return t, nil
}

func blankToNil(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}

// apply copies the non-status fields of in onto c.
func apply(c *domain.Claim, in ClaimInput) error {
	t, err := parseType(in.Type)
	if err != nil {
		return err
	}
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return apperr.Invalid("clientName", "is required")
	}
	c.Type = t
	c.ClientName = name
	c.ClientEmail = strings.TrimSpace(in.ClientEmail)
	c.ClientPhone = strings.TrimSpace(in.ClientPhone)
	c.ClientAddress = in.ClientAddress
	c.ClientDOB = in.ClientDOB
	c.AccidentDate = in.AccidentDate
	c.AccidentLocation = in.AccidentLocation
	c.AccidentDescription = in.AccidentDescription
	c.VehicleRegistration = strings.ToUpper(strings.TrimSpace(in.VehicleRegistration))
	c.ThirdPartyName = in.ThirdPartyName
	c.ThirdPartyInsurer = in.ThirdPartyInsurer
	c.ThirdPartyPolicyNumber = in.ThirdPartyPolicyNumber
	c.ThirdPartyVehicleRegistration = strings.ToUpper(strings.TrimSpace(in.ThirdPartyVehicleRegistration))
	c.ThirdPartyPhone = in.ThirdPartyPhone
	c.PartnerID = blankToNil(in.PartnerID)
	return nil
}

// Create files a claim for ownerID. Only intake stages are accepted; an
// empty status starts at PENDING_TRIAGE.
func (u *Usecase) Create(ctx context.Context, ownerID string, in ClaimInput) (*domain.Claim, error) {
	status, err := domain.IntakeStatus(strings.ToUpper(in.Status))
	if err != nil {
		return nil, err
	}
	c := &domain.Claim{ID: id.NewID32(), UserID: ownerID, Status: status, StatusUpdatedAt: u.now()}
	if err := apply(c, in); err != nil {
		return nil, err
	}
	if err := partner.CheckRef(ctx, u.partners, "partnerId", c.PartnerID); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *Usecase) Get(ctx context.Context, claimID string) (*domain.Claim, error) {
	return u.repo.GetByID(ctx, claimID)
}

func (u *Usecase) List(ctx context.Context, in ListClaimsInput) ([]domain.Claim, error) {
	f := domain.ListFilter{UserID: in.UserID, PartnerID: in.PartnerID}
	if in.Status != "" {
		s, err := domain.ParseStatus(strings.ToUpper(in.Status))
		if err != nil {
			return nil, err
		}
		f.Status = s
	}
	if in.Type != "" {
		t, err := parseType(in.Type)
		if err != nil {
			return nil, err
		}
		f.Type = t
	}
	out, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Claim{}
	}
	return out, nil
}

// setStatus runs the workflow check and stamps the change.
func (u *Usecase) setStatus(c *domain.Claim, raw string) (from domain.Status, changed bool, err error) {
	to, err := domain.ParseStatus(strings.ToUpper(raw))
	if err != nil {
		return "", false, err
	}
	if err := u.workflow.Transition(c.Status, to); err != nil {
		return "", false, err
	}
	if to == c.Status {
		return c.Status, false, nil
	}
	from = c.Status
	c.Status = to
	c.StatusUpdatedAt = u.now()
	return from, true, nil
}

// Update is the full edit. An empty status keeps the current one.
func (u *Usecase) Update(ctx context.Context, claimID string, in ClaimInput) (*domain.Claim, error) {
	var (
		out     *domain.Claim
		from    domain.Status
		changed bool
	)
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *domain.Claim) error {
		if err := apply(c, in); err != nil {
			return err
		}
		if err := partner.CheckRef(ctx, u.partners, "partnerId", c.PartnerID); err != nil {
			return err
		}
		if in.Status != "" {
			var err error
			if from, changed, err = u.setStatus(c, in.Status); err != nil {
				return err
			}
		}
		if err := r.Claims.Save(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		u.observer.ObserveTransition(from, out.Status)
	}
	return out, nil
}

func (u *Usecase) UpdateStatus(ctx context.Context, claimID, status string) (*domain.Claim, error) {
	var (
		out     *domain.Claim
		from    domain.Status
		changed bool
	)
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *domain.Claim) error {
		var err error
		if from, changed, err = u.setStatus(c, status); err != nil {
			return err
		}
		if changed {
			if err := r.Claims.Save(ctx, c); err != nil {
				return err
			}
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		u.observer.ObserveTransition(from, out.Status)
	}
	return out, nil
}

func (u *Usecase) Transitions(ctx context.Context, claimID string) (*TransitionsDTO, error) {
	c, err := u.repo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	return &TransitionsDTO{Current: c.Status, Policy: u.workflow.Policy(), Next: u.workflow.Next(c.Status)}, nil
}

func (u *Usecase) Stats(ctx context.Context) (domain.Stats, error) {
	counts, err := u.repo.CountByStatus(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.BuildStats(counts), nil
}

// Delete removes the claim with both steps and then, best effort, every
// stored object that belonged to it.
func (u *Usecase) Delete(ctx context.Context, claimID string) error {
	var keys []string
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *domain.Claim) error {
		finKeys, err := r.Financial.DeleteByClaimID(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("delete financial step: %w", err)
		}
		offKeys, err := r.Offboarding.DeleteByClaimID(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("delete offboarding step: %w", err)
		}
		if err := r.Claims.Delete(ctx, c.ID); err != nil {
			return err
		}
		keys = append(finKeys, offKeys...)
		if c.FileKey != nil {
			keys = append(keys, *c.FileKey)
		}
		return nil
	})
	if err != nil {
		return err
	}
	u.removeObjects(ctx, keys...)
	return nil
}

// AttachFile stores f under the claim namespace and points the claim at it.
// A previous file is removed from storage once the new one is recorded.
func (u *Usecase) AttachFile(ctx context.Context, claimID string, f storage.File) (*domain.Claim, error) {
	if len(f.Body) == 0 {
		return nil, apperr.Invalid("file", "is required")
	}
	if _, err := u.repo.GetByID(ctx, claimID); err != nil {
		return nil, err
	}
	key := objkey.Claim(claimID, f.Name)
	if err := u.store.Put(ctx, key, f.ContentType, f.Body); err != nil {
		return nil, fmt.Errorf("store claim file: %w", err)
	}

	var (
		out *domain.Claim
		old *string
	)
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *domain.Claim) error {
		old = c.FileKey
		name := f.Name
		c.FileKey, c.FileName = &key, &name
		if err := r.Claims.Save(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		u.removeObjects(ctx, key)
		return nil, err
	}
	if old != nil && *old != key {
		u.removeObjects(ctx, *old)
	}
	return out, nil
}

// GetFile serves key only when it lives under the claim's namespace.
func (u *Usecase) GetFile(ctx context.Context, claimID, key string) (*storage.Object, error) {
	if !objkey.Owns(objkey.ClaimPrefix(claimID), key) {
		return nil, fmt.Errorf("file key outside claim %s: %w", claimID, apperr.ErrForbidden)
	}
	if _, err := u.repo.GetByID(ctx, claimID); err != nil {
		return nil, err
	}
	return u.store.Get(ctx, key)
}

func (u *Usecase) removeObjects(ctx context.Context, keys ...string) {
	for _, k := range keys {
		if err := u.store.Delete(ctx, k); err != nil {
			logrus.WithError(err).WithField("key", k).Warn("claim: object cleanup failed")
		}
	}
}
