package claim

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"claims-backoffice/internal/domain/apperr"
	domain "claims-backoffice/internal/domain/claim"
	"claims-backoffice/internal/domain/partner"
	"claims-backoffice/internal/domain/uow"
	"claims-backoffice/internal/infrastructure/storage"
	"claims-backoffice/internal/testutil/claimmock"
	"claims-backoffice/internal/testutil/financialmock"
	"claims-backoffice/internal/testutil/offboardingmock"
	"claims-backoffice/internal/testutil/partnermock"
	"claims-backoffice/internal/testutil/storagemock"
	"claims-backoffice/internal/testutil/uowmock"
)

type recorder struct{ seen []string }

func (r *recorder) ObserveTransition(from, to domain.Status) {
	r.seen = append(r.seen, string(from)+">"+string(to))
}

// memRepo keeps claims in a map behind the function mock.
func memRepo() (*claimmock.Repo, map[string]*domain.Claim) {
	store := map[string]*domain.Claim{}
	get := func(_ context.Context, id string) (*domain.Claim, error) {
		c, ok := store[id]
		if !ok {
			return nil, fmt.Errorf("claim %s: %w", id, apperr.ErrNotFound)
		}
		cp := *c
		return &cp, nil
	}
	return &claimmock.Repo{
		CreateFn:           func(_ context.Context, c *domain.Claim) error { store[c.ID] = c; return nil },
		GetByIDFn:          get,
		GetByIDForUpdateFn: get,
		SaveFn: func(_ context.Context, c *domain.Claim) error {
			cp := *c
			store[c.ID] = &cp
			return nil
		},
		DeleteFn: func(_ context.Context, id string) error { delete(store, id); return nil },
	}, store
}

const knownPartner = "0123456789abcdef0123456789abcdef"

type fixture struct {
	uc     *Usecase
	repo   *claimmock.Repo
	store  map[string]*domain.Claim
	fin    *financialmock.Repo
	off    *offboardingmock.Repo
	objs   *storagemock.Store
	events *recorder
}

func newFixture(p domain.Policy) *fixture {
	repo, store := memRepo()
	f := &fixture{
		repo:   repo,
		store:  store,
		fin:    &financialmock.Repo{},
		off:    &offboardingmock.Repo{},
		objs:   storagemock.New(),
		events: &recorder{},
	}
	tx := uowmock.Passthrough(uow.Repos{Claims: repo, Financial: f.fin, Offboarding: f.off})
	partners := &partnermock.Repo{
		GetByIDFn: func(_ context.Context, id string) (*partner.Partner, error) {
			if id == knownPartner {
				return &partner.Partner{ID: id}, nil
			}
			return nil, fmt.Errorf("partner %s: %w", id, apperr.ErrNotFound)
		},
	}
	f.uc = NewUsecase(repo, partners, tx, f.objs, domain.NewWorkflow(p), f.events)
	return f
}

func validInput() ClaimInput {
	return ClaimInput{Type: "NON_FAULT", ClientName: "Ann Smith", VehicleRegistration: " ab12 cde "}
}

func TestCreate_IntakeStatuses(t *testing.T) {
	f := newFixture(domain.PolicyPermissive)
	ctx := context.Background()

	c, err := f.uc.Create(ctx, "u1", validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Status != domain.StatusPendingTriage || c.UserID != "u1" || c.StatusUpdatedAt.IsZero() {
		t.Fatalf("unexpected claim %+v", c)
	}
	if c.VehicleRegistration != "AB12 CDE" {
		t.Fatalf("registration=%q", c.VehicleRegistration)
	}

	in := validInput()
	in.Status = "PENDING_OS_DOCS"
	blank := "   "
	in.PartnerID = &blank
	c, err = f.uc.Create(ctx, "u1", in)
	if err != nil || c.Status != domain.StatusPendingOSDocs || c.PartnerID != nil {
		t.Fatalf("intake status: %v %+v", err, c)
	}

	in.Status = "CLOSED"
	if _, err := f.uc.Create(ctx, "u1", in); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("lifecycle status at intake: want validation, got %v", err)
	}
	in = validInput()
	in.Type = "MAYBE"
	if _, err := f.uc.Create(ctx, "u1", in); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("bad type: want validation, got %v", err)
	}
	in = validInput()
	in.ClientName = " "
	if _, err := f.uc.Create(ctx, "u1", in); apperr.Fields(err)[0].Field != "clientName" {
		t.Fatalf("blank name: got %v", err)
	}
}

func TestPartnerReferenceMustResolve(t *testing.T) {
	f := newFixture(domain.PolicyPermissive)
	ctx := context.Background()

	in := validInput()
	ghost := "fedcba9876543210fedcba9876543210"
	in.PartnerID = &ghost
	_, err := f.uc.Create(ctx, "u1", in)
	if fields := apperr.Fields(err); len(fields) != 1 || fields[0].Field != "partnerId" {
		t.Fatalf("unknown partner on create: %v", err)
	}
	if len(f.store) != 0 {
		t.Fatalf("claim stored despite unknown partner")
	}

	known := knownPartner
	in.PartnerID = &known
	c, err := f.uc.Create(ctx, "u1", in)
	if err != nil || c.PartnerID == nil || *c.PartnerID != knownPartner {
		t.Fatalf("known partner: %v %+v", err, c)
	}

	in.PartnerID = &ghost
	if _, err := f.uc.Update(ctx, c.ID, in); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("unknown partner on update: %v", err)
	}
	if *f.store[c.ID].PartnerID != knownPartner {
		t.Fatalf("rejected update changed the stored claim")
	}
}

func TestUpdateStatus_PermissiveAcceptsAnyJump(t *testing.T) {
	f := newFixture(domain.PolicyPermissive)
	ctx := context.Background()
	c, _ := f.uc.Create(ctx, "u1", validInput())

	if _, err := f.uc.UpdateStatus(ctx, c.ID, "CLOSED"); err != nil {
		t.Fatalf("to CLOSED: %v", err)
	}
	got, err := f.uc.UpdateStatus(ctx, c.ID, "PENDING_TRIAGE")
	if err != nil {
		t.Fatalf("CLOSED -> PENDING_TRIAGE: %v", err)
	}
	if got.Status != domain.StatusPendingTriage || f.store[c.ID].Status != domain.StatusPendingTriage {
		t.Fatalf("status not persisted verbatim: %s", f.store[c.ID].Status)
	}
	want := []string{"PENDING_TRIAGE>CLOSED", "CLOSED>PENDING_TRIAGE"}
	if strings.Join(f.events.seen, ",") != strings.Join(want, ",") {
		t.Fatalf("transitions=%v", f.events.seen)
	}

	// same status is a no-op and not observed
	if _, err := f.uc.UpdateStatus(ctx, c.ID, "PENDING_TRIAGE"); err != nil || len(f.events.seen) != 2 {
		t.Fatalf("no-op: %v %v", err, f.events.seen)
	}
	if _, err := f.uc.UpdateStatus(ctx, c.ID, "SHIPPED"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("unknown status: want validation, got %v", err)
	}
}

func TestUpdateStatus_StrictRejectsIllegalJump(t *testing.T) {
	f := newFixture(domain.PolicyStrict)
	ctx := context.Background()
	c, _ := f.uc.Create(ctx, "u1", validInput())
	f.store[c.ID].Status = domain.StatusClosed

	_, err := f.uc.UpdateStatus(ctx, c.ID, "PENDING_TRIAGE")
	if !errors.Is(err, apperr.ErrInvalidTransition) {
		t.Fatalf("want invalid transition, got %v", err)
	}
	if f.store[c.ID].Status != domain.StatusClosed || len(f.events.seen) != 0 {
		t.Fatalf("rejected transition leaked")
	}

	tr, err := f.uc.Transitions(ctx, c.ID)
	if err != nil || tr.Current != domain.StatusClosed || len(tr.Next) != 0 || tr.Policy != domain.PolicyStrict {
		t.Fatalf("Transitions: %v %+v", err, tr)
	}
}

func TestUpdate_FullEditKeepsStatusWhenEmpty(t *testing.T) {
	f := newFixture(domain.PolicyPermissive)
	ctx := context.Background()
	c, _ := f.uc.Create(ctx, "u1", validInput())

	in := validInput()
	in.ClientName = "Ann Jones"
	in.ThirdPartyInsurer = "Acme"
	got, err := f.uc.Update(ctx, c.ID, in)
	if err != nil || got.ClientName != "Ann Jones" || got.Status != domain.StatusPendingTriage {
		t.Fatalf("Update: %v %+v", err, got)
	}
	in.Status = "ACCEPTED"
	got, err = f.uc.Update(ctx, c.ID, in)
	if err != nil || got.Status != domain.StatusAccepted || len(f.events.seen) != 1 {
		t.Fatalf("Update with status: %v %+v %v", err, got, f.events.seen)
	}
	if _, err := f.uc.Update(ctx, "missing", in); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestStats(t *testing.T) {
	f := newFixture(domain.PolicyPermissive)
	f.repo.CountByStatusFn = func(context.Context) (map[domain.Status]int64, error) { return nil, nil }
	st, err := f.uc.Stats(context.Background())
	if err != nil || st.Total != 0 || len(st.StatusCounts) != 8 {
		t.Fatalf("Stats: %v %+v", err, st)
	}
}

func TestAttachAndGetFile(t *testing.T) {
	f := newFixture(domain.PolicyPermissive)
	ctx := context.Background()
	c, _ := f.uc.Create(ctx, "u1", validInput())

	got, err := f.uc.AttachFile(ctx, c.ID, storage.File{Name: "Police Report.PDF", ContentType: "application/pdf", Body: []byte("%PDF")})
	if err != nil {
		t.Fatalf("AttachFile: %v", err)
	}
	key := *got.FileKey
	if !strings.HasPrefix(key, "claims/"+c.ID+"/") || !strings.HasSuffix(key, ".pdf") {
		t.Fatalf("key=%s", key)
	}
	obj, err := f.uc.GetFile(ctx, c.ID, key)
	if err != nil || string(obj.Body) != "%PDF" {
		t.Fatalf("GetFile: %v", err)
	}

	// replacing drops the old object
	got, _ = f.uc.AttachFile(ctx, c.ID, storage.File{Name: "v2.pdf", Body: []byte("v2")})
	if len(f.objs.Keys()) != 1 || f.objs.Keys()[0] != *got.FileKey {
		t.Fatalf("old object kept: %v", f.objs.Keys())
	}

	// a key under another claim is refused even though it exists
	other, _ := f.uc.Create(ctx, "u2", validInput())
	if _, err := f.uc.GetFile(ctx, other.ID, *got.FileKey); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("want forbidden, got %v", err)
	}
	if _, err := f.uc.GetFile(ctx, c.ID, "claims/"+c.ID+"/../x"); !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("traversal: want forbidden, got %v", err)
	}
	if _, err := f.uc.AttachFile(ctx, c.ID, storage.File{Name: "empty.pdf"}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("empty body: want validation, got %v", err)
	}
}

func TestAttachFile_SaveFailureRemovesUpload(t *testing.T) {
	f := newFixture(domain.PolicyPermissive)
	ctx := context.Background()
	c, _ := f.uc.Create(ctx, "u1", validInput())
	f.repo.SaveFn = func(context.Context, *domain.Claim) error { return errors.New("db down") }

	if _, err := f.uc.AttachFile(ctx, c.ID, storage.File{Name: "a.pdf", Body: []byte("x")}); err == nil {
		t.Fatal("expected error")
	}
	if len(f.objs.Keys()) != 0 {
		t.Fatalf("orphan object left: %v", f.objs.Keys())
	}
}

func TestDelete_RemovesStepsAndObjects(t *testing.T) {
	f := newFixture(domain.PolicyPermissive)
	ctx := context.Background()
	c, _ := f.uc.Create(ctx, "u1", validInput())
	attached, _ := f.uc.AttachFile(ctx, c.ID, storage.File{Name: "a.pdf", Body: []byte("x")})

	f.fin.DeleteByClaimIDFn = func(_ context.Context, id string) ([]string, error) { return []string{"fin-key"}, nil }
	f.off.DeleteByClaimIDFn = func(_ context.Context, id string) ([]string, error) { return []string{"off-key"}, nil }

	if err := f.uc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := f.store[c.ID]; ok {
		t.Fatalf("claim still stored")
	}
	deleted := strings.Join(f.objs.Deleted, ",")
	for _, k := range []string{"fin-key", "off-key", *attached.FileKey} {
		if !strings.Contains(deleted, k) {
			t.Fatalf("object %s not deleted: %s", k, deleted)
		}
	}
	if err := f.uc.Delete(ctx, c.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestDelete_StepFailureKeepsClaim(t *testing.T) {
	f := newFixture(domain.PolicyPermissive)
	ctx := context.Background()
	c, _ := f.uc.Create(ctx, "u1", validInput())
	f.fin.DeleteByClaimIDFn = func(context.Context, string) ([]string, error) { return nil, errors.New("boom") }

	if err := f.uc.Delete(ctx, c.ID); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := f.store[c.ID]; !ok {
		t.Fatalf("claim deleted despite failure")
	}
}
