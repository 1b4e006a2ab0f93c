package mysql

import (
	"context"
	"errors"

	offDomain "claims-backoffice/internal/domain/offboarding"
	"claims-backoffice/pkg/id"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OffboardingRepository struct{ db *gorm.DB }

func NewOffboardingRepository(db *gorm.DB) *OffboardingRepository {
	return &OffboardingRepository{db: db}
}

func (r *OffboardingRepository) GetStepByClaimID(ctx context.Context, claimID string) (*offDomain.Step, error) {
	var out offDomain.Step
	err := r.db.WithContext(ctx).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("document_type ASC") }).
		Where("claim_id = ?", claimID).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, "offboarding step of claim "+claimID)
	}
	return &out, nil
}

func (r *OffboardingRepository) EnsureStep(ctx context.Context, claimID string) (*offDomain.Step, error) {
	db := r.db.WithContext(ctx)
	var out offDomain.Step
	err := db.Where("claim_id = ?", claimID).First(&out).Error
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	step := &offDomain.Step{ID: id.NewID32(), ClaimID: claimID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(step).Error; err != nil {
		return nil, err
	}
	if err := db.Where("claim_id = ?", claimID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *OffboardingRepository) SaveStep(ctx context.Context, s *offDomain.Step) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error
}

func (r *OffboardingRepository) GetDocument(ctx context.Context, docID string) (*offDomain.Document, error) {
	var out offDomain.Document
	if err := r.db.WithContext(ctx).Where("id = ?", docID).First(&out).Error; err != nil {
		return nil, notFound(err, "offboarding document "+docID)
	}
	return &out, nil
}

func (r *OffboardingRepository) GetDocumentByType(ctx context.Context, stepID, documentType string) (*offDomain.Document, error) {
	var out offDomain.Document
	err := r.db.WithContext(ctx).
		Where("step_id = ? AND document_type = ?", stepID, documentType).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, "offboarding document "+documentType)
	}
	return &out, nil
}

func (r *OffboardingRepository) CreateDocument(ctx context.Context, d *offDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *OffboardingRepository) SaveDocument(ctx context.Context, d *offDomain.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *OffboardingRepository) DeleteDocument(ctx context.Context, docID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", docID).Delete(&offDomain.Document{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "offboarding document "+docID)
	}
	return nil
}

func (r *OffboardingRepository) CountDocuments(ctx context.Context, stepID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&offDomain.Document{}).Where("step_id = ?", stepID).Count(&n).Error
	return n, err
}

func (r *OffboardingRepository) DeleteByClaimID(ctx context.Context, claimID string) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&offDomain.Document{}).Where("claim_id = ?", claimID).Pluck("object_key", &keys).Error; err != nil {
			return err
		}
		if err := tx.Where("claim_id = ?", claimID).Delete(&offDomain.Document{}).Error; err != nil {
			return err
		}
		return tx.Where("claim_id = ?", claimID).Delete(&offDomain.Step{}).Error
	})
	return keys, err
}
