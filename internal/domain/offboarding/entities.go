package offboarding

import (
	"context"
	"regexp"
	"time"
)

// Table: offboarding_steps, one per claim
type Step struct {
	ID          string     `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	ClaimID     string     `gorm:"column:claim_id;type:char(32);not null;uniqueIndex:ux_offboarding_steps_claim" json:"claimId"`
	Notes       string     `gorm:"column:notes;type:text" json:"notes"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	Documents []Document `gorm:"foreignKey:StepID" json:"documents"`
}

func (Step) TableName() string { return "offboarding_steps" }

// Table: offboarding_documents, at most one per (step, document type)
type Document struct {
	ID           string     `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	StepID       string     `gorm:"column:step_id;type:char(32);not null;uniqueIndex:ux_offboarding_documents_type" json:"stepId"`
	ClaimID      string     `gorm:"column:claim_id;type:char(32);not null;index" json:"claimId"`
	DocumentType string     `gorm:"column:document_type;size:64;not null;uniqueIndex:ux_offboarding_documents_type" json:"documentType"`
	Key          string     `gorm:"column:object_key;size:512;not null" json:"fileKey"`
	FileName     string     `gorm:"column:file_name;size:255" json:"fileName"`
	IsExcluded   bool       `gorm:"column:is_excluded;not null;default:false" json:"isExcluded"`
	ExcludedAt   *time.Time `gorm:"column:excluded_at" json:"excludedAt"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Document) TableName() string { return "offboarding_documents" }

var reDocumentType = regexp.MustCompile(`^[A-Z][A-Z0-9_]{0,63}$`)

func ValidDocumentType(s string) bool { return reDocumentType.MatchString(s) }

// Replace points an existing document row at a freshly uploaded object and
// clears any exclusion.
func (d *Document) Replace(key, fileName string) {
	d.Key = key
	d.FileName = fileName
	d.IsExcluded = false
	d.ExcludedAt = nil
}

func (d *Document) SetExcluded(excluded bool, now time.Time) {
	d.IsExcluded = excluded
	if excluded {
		t := now.UTC()
		d.ExcludedAt = &t
		return
	}
	d.ExcludedAt = nil
}

type Repository interface {
	GetStepByClaimID(ctx context.Context, claimID string) (*Step, error)
	EnsureStep(ctx context.Context, claimID string) (*Step, error)
	SaveStep(ctx context.Context, s *Step) error

	GetDocument(ctx context.Context, id string) (*Document, error)
	GetDocumentByType(ctx context.Context, stepID, documentType string) (*Document, error)
	CreateDocument(ctx context.Context, d *Document) error
	SaveDocument(ctx context.Context, d *Document) error
	DeleteDocument(ctx context.Context, id string) error
	CountDocuments(ctx context.Context, stepID string) (int64, error)

	// DeleteByClaimID removes the step and its documents, returning their keys.
	DeleteByClaimID(ctx context.Context, claimID string) ([]string, error)
}
