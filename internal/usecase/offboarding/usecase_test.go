package offboarding

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"claims-backoffice/internal/adapter/repository/mysql"
	"claims-backoffice/internal/domain/apperr"
	"claims-backoffice/internal/domain/claim"
	"claims-backoffice/internal/infrastructure/storage"
	"claims-backoffice/internal/testutil/storagemock"
	"claims-backoffice/internal/testutil/testdb"
	"claims-backoffice/pkg/id"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newUsecase wires the real gorm repositories against sqlite.
func newUsecase(t *testing.T) (*Usecase, *storagemock.Store, string) {
	t.Helper()
	db := testdb.Open(t)
	claims := mysql.NewClaimRepository(db)
	c := &claim.Claim{
		ID:              id.NewID32(),
		Type:            claim.TypeFault,
		Status:          claim.StatusPendingOffboarding,
		ClientName:      "Ann Smith",
		UserID:          "u1",
		StatusUpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, claims.Create(context.Background(), c))
	objs := storagemock.New()
	uc := NewUsecase(mysql.NewOffboardingRepository(db), claims, mysql.NewGormUoW(db), objs)
	return uc, objs, c.ID
}

func note(body string) storage.File {
	return storage.File{Name: "note.pdf", ContentType: "application/pdf", Body: []byte(body)}
}

func TestGetStep_EmptyBeforeFirstWrite(t *testing.T) {
	uc, _, claimID := newUsecase(t)
	s, err := uc.GetStep(context.Background(), claimID)
	require.NoError(t, err)
	assert.Empty(t, s.ID)
	assert.NotNil(t, s.Documents)

	_, err = uc.GetStep(context.Background(), id.NewID32())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateStep_CreatesOnDemand(t *testing.T) {
	uc, _, claimID := newUsecase(t)
	notes, done := "all signed", true
	s, err := uc.UpdateStep(context.Background(), claimID, StepInput{Notes: &notes, Completed: &done})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "all signed", s.Notes)
	assert.NotNil(t, s.CompletedAt)
}

func TestUploadDocument_ReplacesByType(t *testing.T) {
	ctx := context.Background()
	uc, objs, claimID := newUsecase(t)

	first, err := uc.UploadDocument(ctx, claimID, "SATISFACTION_NOTE", note("v1"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.Key, "claims/offboarding/"+claimID+"/SATISFACTION_NOTE/"), first.Key)

	_, err = uc.SetExcluded(ctx, claimID, first.ID, true)
	require.NoError(t, err)

	second, err := uc.UploadDocument(ctx, claimID, "SATISFACTION_NOTE", note("v2"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.NotEqual(t, first.Key, second.Key)
	assert.False(t, second.IsExcluded)
	assert.Nil(t, second.ExcludedAt)
	assert.Equal(t, []string{second.Key}, objs.Keys())

	s, err := uc.GetStep(ctx, claimID)
	require.NoError(t, err)
	require.Len(t, s.Documents, 1)

	obj, err := uc.Download(ctx, claimID, second.Key)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(obj.Body))
}

func TestUploadDocument_Validation(t *testing.T) {
	ctx := context.Background()
	uc, objs, claimID := newUsecase(t)

	_, err := uc.UploadDocument(ctx, claimID, "lower_case", note("x"))
	require.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, "documentType", apperr.Fields(err)[0].Field)

	_, err = uc.UploadDocument(ctx, claimID, "V5C", storage.File{Name: "empty.pdf"})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = uc.UploadDocument(ctx, id.NewID32(), "V5C", note("x"))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Empty(t, objs.Keys())
}

func TestUploadDocument_StoreFailure(t *testing.T) {
	uc, objs, claimID := newUsecase(t)
	objs.PutErr = errors.New("s3 unavailable")
	_, err := uc.UploadDocument(context.Background(), claimID, "V5C", note("x"))
	require.Error(t, err)

	s, err := uc.GetStep(context.Background(), claimID)
	require.NoError(t, err)
	assert.Empty(t, s.Documents)
}

func TestSetExcluded_TogglesTimestamp(t *testing.T) {
	ctx := context.Background()
	uc, _, claimID := newUsecase(t)
	doc, err := uc.UploadDocument(ctx, claimID, "V5C", note("x"))
	require.NoError(t, err)

	doc, err = uc.SetExcluded(ctx, claimID, doc.ID, true)
	require.NoError(t, err)
	assert.True(t, doc.IsExcluded)
	assert.NotNil(t, doc.ExcludedAt)

	doc, err = uc.SetExcluded(ctx, claimID, doc.ID, false)
	require.NoError(t, err)
	assert.False(t, doc.IsExcluded)
	assert.Nil(t, doc.ExcludedAt)
}

func TestDocument_OtherClaim(t *testing.T) {
	ctx := context.Background()
	uc, _, claimID := newUsecase(t)
	doc, err := uc.UploadDocument(ctx, claimID, "V5C", note("x"))
	require.NoError(t, err)

	other := id.NewID32()
	_, err = uc.SetExcluded(ctx, other, doc.ID, true)
	assert.ErrorIs(t, err, apperr.ErrOwnershipMismatch)
	assert.ErrorIs(t, uc.DeleteDocument(ctx, other, doc.ID), apperr.ErrOwnershipMismatch)

	_, err = uc.Download(ctx, other, doc.Key)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestDeleteDocument(t *testing.T) {
	ctx := context.Background()
	uc, objs, claimID := newUsecase(t)
	doc, err := uc.UploadDocument(ctx, claimID, "V5C", note("x"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDocument(ctx, claimID, doc.ID))
	assert.Empty(t, objs.Keys())
	assert.ErrorIs(t, uc.DeleteDocument(ctx, claimID, doc.ID), apperr.ErrNotFound)
}
