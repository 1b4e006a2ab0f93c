package mysql

import (
	"context"

	claimDomain "claims-backoffice/internal/domain/claim"
	partnerDomain "claims-backoffice/internal/domain/partner"
	userDomain "claims-backoffice/internal/domain/user"

	"gorm.io/gorm"
)

type PartnerRepository struct{ db *gorm.DB }

func NewPartnerRepository(db *gorm.DB) *PartnerRepository { return &PartnerRepository{db: db} }

func (r *PartnerRepository) Create(ctx context.Context, p *partnerDomain.Partner) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PartnerRepository) GetByID(ctx context.Context, id string) (*partnerDomain.Partner, error) {
	var out partnerDomain.Partner
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err, "partner "+id)
	}
	return &out, nil
}

func (r *PartnerRepository) GetByIDs(ctx context.Context, ids []string) ([]partnerDomain.Partner, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []partnerDomain.Partner
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *PartnerRepository) List(ctx context.Context, t partnerDomain.Type) ([]partnerDomain.Partner, error) {
	q := r.db.WithContext(ctx).Model(&partnerDomain.Partner{})
	if t != "" {
		q = q.Where("type = ?", t)
	}
	var out []partnerDomain.Partner
	err := q.Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *PartnerRepository) Save(ctx context.Context, p *partnerDomain.Partner) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PartnerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, col := range partnerDomain.LinkColumns {
			if err := tx.Model(&partnerDomain.Partner{}).
				Where(col+" = ?", id).
				UpdateColumn(col, nil).Error; err != nil {
				return err
			}
		}
		for _, m := range []any{&claimDomain.Claim{}, &userDomain.User{}} {
			if err := tx.Model(m).Where("partner_id = ?", id).UpdateColumn("partner_id", nil).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(&partnerDomain.Partner{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound(gorm.ErrRecordNotFound, "partner "+id)
		}
		return nil
	})
}

func (r *PartnerRepository) LinkedIDs(ctx context.Context, id string) ([]string, error) {
	var p partnerDomain.Partner
	err := r.db.WithContext(ctx).
		Select(append([]string{"id"}, partnerDomain.LinkColumns...)).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, notFound(err, "partner "+id)
	}
	out := make([]string, 0, 6)
	for _, l := range p.Links() {
		out = append(out, l.PartnerID)
	}
	return out, nil
}
