package mysql

import (
	"context"

	claimDomain "claims-backoffice/internal/domain/claim"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClaimRepository struct{ db *gorm.DB }

func NewClaimRepository(db *gorm.DB) *ClaimRepository { return &ClaimRepository{db: db} }

func (r *ClaimRepository) Create(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClaimRepository) GetByID(ctx context.Context, id string) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err, "claim "+id)
	}
	return &out, nil
}

func (r *ClaimRepository) GetByIDForUpdate(ctx context.Context, id string) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, "claim "+id)
	}
	return &out, nil
}

func (r *ClaimRepository) List(ctx context.Context, f claimDomain.ListFilter) ([]claimDomain.Claim, error) {
	q := r.db.WithContext(ctx).Model(&claimDomain.Claim{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.PartnerID != "" {
		q = q.Where("partner_id = ?", f.PartnerID)
	}
	var out []claimDomain.Claim
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *ClaimRepository) Save(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClaimRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&claimDomain.Claim{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "claim "+id)
	}
	return nil
}

func (r *ClaimRepository) CountByStatus(ctx context.Context) (map[claimDomain.Status]int64, error) {
	var rows []struct {
		Status claimDomain.Status
		N      int64
	}
	err := r.db.WithContext(ctx).
		Model(&claimDomain.Claim{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[claimDomain.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}
