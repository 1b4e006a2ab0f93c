package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"claims-backoffice/internal/domain/apperr"
	offDomain "claims-backoffice/internal/domain/offboarding"
	"claims-backoffice/internal/testutil/testdb"
	"claims-backoffice/pkg/id"
)

func TestOffboardingRepository_Documents(t *testing.T) {
	ctx := context.Background()
	repo := NewOffboardingRepository(testdb.Open(t))

	step, err := repo.EnsureStep(ctx, "c1")
	if err != nil {
		t.Fatalf("EnsureStep: %v", err)
	}
	doc := &offDomain.Document{ID: id.NewID32(), StepID: step.ID, ClaimID: "c1", DocumentType: "SATISFACTION_NOTE", Key: "k1", FileName: "a.pdf"}
	if err := repo.CreateDocument(ctx, doc); err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}

	// the (step, type) pair is unique
	clash := &offDomain.Document{ID: id.NewID32(), StepID: step.ID, ClaimID: "c1", DocumentType: "SATISFACTION_NOTE", Key: "k2"}
	if err := repo.CreateDocument(ctx, clash); err == nil {
		t.Fatalf("expected unique violation")
	}

	got, err := repo.GetDocumentByType(ctx, step.ID, "SATISFACTION_NOTE")
	if err != nil || got.ID != doc.ID {
		t.Fatalf("GetDocumentByType: %v %+v", err, got)
	}
	got.SetExcluded(true, time.Now())
	if err := repo.SaveDocument(ctx, got); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	got, _ = repo.GetDocument(ctx, doc.ID)
	if !got.IsExcluded || got.ExcludedAt == nil {
		t.Fatalf("exclusion not saved: %+v", got)
	}

	n, _ := repo.CountDocuments(ctx, step.ID)
	if n != 1 {
		t.Fatalf("CountDocuments=%d", n)
	}
	full, _ := repo.GetStepByClaimID(ctx, "c1")
	if len(full.Documents) != 1 {
		t.Fatalf("preload documents=%d", len(full.Documents))
	}

	if err := repo.DeleteDocument(ctx, doc.ID); err != nil {
		t.Fatalf("DeleteDocument: %v", err)
	}
	if err := repo.DeleteDocument(ctx, doc.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestOffboardingRepository_DeleteByClaimID(t *testing.T) {
	ctx := context.Background()
	repo := NewOffboardingRepository(testdb.Open(t))
	step, _ := repo.EnsureStep(ctx, "c1")
	for i, typ := range []string{"A", "B"} {
		d := &offDomain.Document{ID: id.NewID32(), StepID: step.ID, ClaimID: "c1", DocumentType: typ, Key: "k" + string(rune('0'+i))}
		if err := repo.CreateDocument(ctx, d); err != nil {
			t.Fatalf("CreateDocument: %v", err)
		}
	}
	keys, err := repo.DeleteByClaimID(ctx, "c1")
	if err != nil || len(keys) != 2 {
		t.Fatalf("DeleteByClaimID: %v %v", keys, err)
	}
	if _, err := repo.GetStepByClaimID(ctx, "c1"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("step survived: %v", err)
	}
}
