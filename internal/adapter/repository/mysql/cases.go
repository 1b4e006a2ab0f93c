package mysql

import (
	"context"

	casesDomain "claims-backoffice/internal/domain/cases"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CaseRepository struct{ db *gorm.DB }

func NewCaseRepository(db *gorm.DB) *CaseRepository { return &CaseRepository{db: db} }

func (r *CaseRepository) Create(ctx context.Context, c *casesDomain.Case) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CaseRepository) GetByID(ctx context.Context, id string) (*casesDomain.Case, error) {
	col := "id"
	if casesDomain.LooksLikeCaseID(id) {
		col = "case_id"
	}
	var out casesDomain.Case
	if err := r.db.WithContext(ctx).Where(col+" = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err, "case "+id)
	}
	return &out, nil
}

func (r *CaseRepository) List(ctx context.Context, f casesDomain.ListFilter) ([]casesDomain.Case, error) {
	q := r.db.WithContext(ctx).Model(&casesDomain.Case{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AssignedToID != "" {
		q = q.Where("assigned_to_id = ?", f.AssignedToID)
	}
	if f.CreatedByID != "" {
		q = q.Where("created_by_id = ?", f.CreatedByID)
	}
	var out []casesDomain.Case
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *CaseRepository) Save(ctx context.Context, c *casesDomain.Case) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// NextNumber bumps the "case" counter row. The first call seeds the row from
// the ids already stored so numbering continues after legacy data. Run it in
// the same transaction as Create: the UPDATE holds the row lock until commit.
func (r *CaseRepository) NextNumber(ctx context.Context) (int64, error) {
	db := r.db.WithContext(ctx)

	var count int64
	if err := db.Model(&casesDomain.Sequence{}).Where("name = ?", casesDomain.SequenceName).Count(&count).Error; err != nil {
		return 0, err
	}
	if count == 0 {
		var existing []string
		if err := db.Model(&casesDomain.Case{}).Where("case_id LIKE ?", "C-%").Pluck("case_id", &existing).Error; err != nil {
			return 0, err
		}
		seed := &casesDomain.Sequence{Name: casesDomain.SequenceName, Value: casesDomain.NextCaseNumber(existing) - 1}
		// a concurrent seeder may win; its row is just as good
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
			return 0, err
		}
	}

	res := db.Model(&casesDomain.Sequence{}).
		Where("name = ?", casesDomain.SequenceName).
		UpdateColumn("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return 0, res.Error
	}

	var seq casesDomain.Sequence
	if err := db.Where("name = ?", casesDomain.SequenceName).First(&seq).Error; err != nil {
		return 0, err
	}
	return seq.Value, nil
}
