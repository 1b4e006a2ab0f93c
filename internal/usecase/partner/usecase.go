package partner

import (
	"context"
	"strings"

	"claims-backoffice/internal/domain/apperr"
	domain "claims-backoffice/internal/domain/partner"
	"claims-backoffice/internal/domain/uow"
	"claims-backoffice/pkg/id"
)

type Usecase struct {
	repo domain.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(r domain.Repository, tx uow.UnitOfWork) *Usecase { return &Usecase{repo: r, uow: tx} }

func apply(p *domain.Partner, in PartnerInput) error {
	t := domain.Type(strings.ToUpper(in.Type))
	if !t.Valid() {
		return apperr.Invalid("type", "must be one of DIRECT, BROKER, INSURER, BODYSHOP, DEALERSHIP, FLEET")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return apperr.Invalid("name", "is required")
	}
	p.Type = t
	p.Name = name
	p.ContactName = strings.TrimSpace(in.ContactName)
	p.Email = strings.TrimSpace(in.Email)
	p.Phone = strings.TrimSpace(in.Phone)
	p.Address = in.Address
	p.VehicleRecoveryID = domain.NormalizeLink(in.VehicleRecoveryID)
	p.VehicleStorageID = domain.NormalizeLink(in.VehicleStorageID)
	p.ReplacementHireID = domain.NormalizeLink(in.ReplacementHireID)
	p.VehicleRepairsID = domain.NormalizeLink(in.VehicleRepairsID)
	p.IndependentEngineerID = domain.NormalizeLink(in.IndependentEngineerID)
	p.VehicleInspectionID = domain.NormalizeLink(in.VehicleInspectionID)
	return nil
}

// checkLinks requires every link target to exist and the link graph to stay
// acyclic once p is saved.
func checkLinks(ctx context.Context, repo domain.Repository, p *domain.Partner) error {
	links := p.Links()
	if len(links) == 0 {
		return nil
	}
	ids := make([]string, 0, len(links))
	for _, l := range links {
		if l.PartnerID != p.ID {
			ids = append(ids, l.PartnerID)
		}
	}
	found, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	exists := make(map[string]bool, len(found))
	for _, f := range found {
		exists[f.ID] = true
	}
	var fields []apperr.FieldError
	for _, l := range links {
		if l.PartnerID != p.ID && !exists[l.PartnerID] {
			fields = append(fields, apperr.FieldError{Field: l.Field, Message: "partner not found"})
		}
	}
	if len(fields) > 0 {
		return &apperr.ValidationError{Fields: fields}
	}
	return domain.CheckCycles(ctx, p, repo.LinkedIDs)
}

func (u *Usecase) Create(ctx context.Context, in PartnerInput) (*domain.Partner, error) {
	p := &domain.Partner{ID: id.NewID32()}
	if err := apply(p, in); err != nil {
		return nil, err
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := checkLinks(ctx, r.Partners, p); err != nil {
			return err
		}
		return r.Partners.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Get returns the partner with each link resolved to a summary. Links whose
// target has gone missing are left out of the summary map.
func (u *Usecase) Get(ctx context.Context, partnerID string) (*PartnerDTO, error) {
	p, err := u.repo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	dto := &PartnerDTO{Partner: *p, Linked: map[string]LinkedPartner{}}
	links := p.Links()
	if len(links) == 0 {
		return dto, nil
	}
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.PartnerID)
	}
	found, err := u.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Partner, len(found))
	for _, f := range found {
		byID[f.ID] = f
	}
	for _, l := range links {
		if t, ok := byID[l.PartnerID]; ok {
			dto.Linked[l.Field] = LinkedPartner{ID: t.ID, Name: t.Name, Type: t.Type}
		}
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context, typ string) ([]domain.Partner, error) {
	var t domain.Type
	if typ != "" {
		t = domain.Type(strings.ToUpper(typ))
		if !t.Valid() {
			return nil, apperr.Invalid("type", "unknown partner type "+typ)
		}
	}
	out, err := u.repo.List(ctx, t)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Partner{}
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, partnerID string, in PartnerInput) (*domain.Partner, error) {
	var out *domain.Partner
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Partners.GetByID(ctx, partnerID)
		if err != nil {
			return err
		}
		if err := apply(p, in); err != nil {
			return err
		}
		if err := checkLinks(ctx, r.Partners, p); err != nil {
			return err
		}
		if err := r.Partners.Save(ctx, p); err != nil {
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Delete(ctx context.Context, partnerID string) error {
	return u.repo.Delete(ctx, partnerID)
}
