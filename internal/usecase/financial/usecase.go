package financial

import (
	"context"
	"errors"
	"fmt"
	"time"

	"claims-backoffice/internal/domain/apperr"
	"claims-backoffice/internal/domain/claim"
	domain "claims-backoffice/internal/domain/financial"
	"claims-backoffice/internal/domain/uow"
	"claims-backoffice/internal/infrastructure/storage"
	"claims-backoffice/pkg/id"
	"claims-backoffice/pkg/objkey"

	"github.com/sirupsen/logrus"
)

var nowUTC = func() time.Time { return time.Now().UTC() }

type Usecase struct {
	repo   domain.Repository
	claims claim.Repository
	uow    uow.UnitOfWork
	store  storage.ObjectStore
}

func NewUsecase(r domain.Repository, claims claim.Repository, tx uow.UnitOfWork, store storage.ObjectStore) *Usecase {
	return &Usecase{repo: r, claims: claims, uow: tx, store: store}
}

// emptyCollections makes every collection serialize as [] rather than null.
func emptyCollections(s *domain.Step) *domain.Step {
	if s.BankAccounts == nil {
		s.BankAccounts = []domain.BankAccount{}
	}
	for i := range s.BankAccounts {
		if s.BankAccounts[i].Statements == nil {
			s.BankAccounts[i].Statements = []domain.BankStatement{}
		}
	}
	if s.CreditCards == nil {
		s.CreditCards = []domain.CreditCard{}
	}
	for i := range s.CreditCards {
		if s.CreditCards[i].Statements == nil {
			s.CreditCards[i].Statements = []domain.CardStatement{}
		}
	}
	if s.Loans == nil {
		s.Loans = []domain.Loan{}
	}
	if s.Mortgages == nil {
		s.Mortgages = []domain.Mortgage{}
	}
	if s.HirePurchaseAgreements == nil {
		s.HirePurchaseAgreements = []domain.HirePurchaseAgreement{}
	}
	return s
}

// GetStep returns the claim's step, or an unsaved empty one when nothing
// has been recorded yet.
func (u *Usecase) GetStep(ctx context.Context, claimID string) (*domain.Step, error) {
	if _, err := u.claims.GetByID(ctx, claimID); err != nil {
		return nil, err
	}
	s, err := u.repo.GetStepByClaimID(ctx, claimID)
	if errors.Is(err, apperr.ErrNotFound) {
		return emptyCollections(&domain.Step{ClaimID: claimID}), nil
	}
	if err != nil {
		return nil, err
	}
	return emptyCollections(s), nil
}

func (u *Usecase) UpdateStep(ctx context.Context, claimID string, in StepInput) (*domain.Step, error) {
	var out *domain.Step
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *claim.Claim) error {
		s, err := r.Financial.EnsureStep(ctx, c.ID)
		if err != nil {
			return err
		}
		if in.Notes != nil {
			s.Notes = *in.Notes
		}
		switch {
		case in.CompletedAt != nil:
			t := in.CompletedAt.UTC()
			s.CompletedAt = &t
		case in.Completed != nil && *in.Completed && s.CompletedAt == nil:
			t := nowUTC()
			s.CompletedAt = &t
		case in.Completed != nil && !*in.Completed:
			s.CompletedAt = nil
		}
		if err := r.Financial.SaveStep(ctx, s); err != nil {
			return err
		}
		out, err = r.Financial.GetStepByClaimID(ctx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return emptyCollections(out), nil
}

// replace runs one collection sync in the claim's transaction and returns the
// refreshed step. Statement objects of dropped rows are removed afterwards.
func (u *Usecase) replace(ctx context.Context, claimID string, sync func(r uow.Repos, stepID string) ([]string, error)) (*domain.Step, error) {
	var (
		out     *domain.Step
		removed []string
	)
	err := u.uow.WithinClaimTx(ctx, claimID, func(r uow.Repos, c *claim.Claim) error {
		s, err := r.Financial.EnsureStep(ctx, c.ID)
		if err != nil {
			return err
		}
		if removed, err = sync(r, s.ID); err != nil {
			return err
		}
		out, err = r.Financial.GetStepByClaimID(ctx, c.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	u.removeObjects(ctx, removed...)
	return emptyCollections(out), nil
}

func (u *Usecase) ReplaceBankAccounts(ctx context.Context, claimID string, items []domain.BankAccount) ([]domain.BankAccount, error) {
	s, err := u.replace(ctx, claimID, func(r uow.Repos, stepID string) ([]string, error) {
		return r.Financial.ReplaceBankAccounts(ctx, stepID, items)
	})
	if err != nil {
		return nil, err
	}
	return s.BankAccounts, nil
}

func (u *Usecase) ReplaceCreditCards(ctx context.Context, claimID string, items []domain.CreditCard) ([]domain.CreditCard, error) {
	s, err := u.replace(ctx, claimID, func(r uow.Repos, stepID string) ([]string, error) {
		return r.Financial.ReplaceCreditCards(ctx, stepID, items)
	})
	if err != nil {
		return nil, err
	}
	return s.CreditCards, nil
}

func (u *Usecase) ReplaceLoans(ctx context.Context, claimID string, items []domain.Loan) ([]domain.Loan, error) {
	s, err := u.replace(ctx, claimID, func(r uow.Repos, stepID string) ([]string, error) {
		return nil, r.Financial.ReplaceLoans(ctx, stepID, items)
	})
	if err != nil {
		return nil, err
	}
	return s.Loans, nil
}

func (u *Usecase) ReplaceMortgages(ctx context.Context, claimID string, items []domain.Mortgage) ([]domain.Mortgage, error) {
	s, err := u.replace(ctx, claimID, func(r uow.Repos, stepID string) ([]string, error) {
		return nil, r.Financial.ReplaceMortgages(ctx, stepID, items)
	})
	if err != nil {
		return nil, err
	}
	return s.Mortgages, nil
}

func (u *Usecase) ReplaceHirePurchaseAgreements(ctx context.Context, claimID string, items []domain.HirePurchaseAgreement) ([]domain.HirePurchaseAgreement, error) {
	s, err := u.replace(ctx, claimID, func(r uow.Repos, stepID string) ([]string, error) {
		return nil, r.Financial.ReplaceHirePurchaseAgreements(ctx, stepID, items)
	})
	if err != nil {
		return nil, err
	}
	return s.HirePurchaseAgreements, nil
}

// stepOf returns the stored step of the claim; a claim without one owns no
// accounts or statements.
func (u *Usecase) stepOf(ctx context.Context, claimID string) (*domain.Step, error) {
	s, err := u.repo.GetStepByClaimID(ctx, claimID)
	if errors.Is(err, apperr.ErrNotFound) {
		if _, cerr := u.claims.GetByID(ctx, claimID); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("claim %s has no financial step: %w", claimID, apperr.ErrOwnershipMismatch)
	}
	return s, err
}

func (u *Usecase) UploadBankStatement(ctx context.Context, claimID, accountID string, f storage.File) (*domain.BankStatement, error) {
	if len(f.Body) == 0 {
		return nil, apperr.Invalid("file", "is required")
	}
	s, err := u.stepOf(ctx, claimID)
	if err != nil {
		return nil, err
	}
	acc, err := u.repo.GetBankAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acc.StepID != s.ID {
		return nil, fmt.Errorf("bank account %s: %w", accountID, apperr.ErrOwnershipMismatch)
	}
	st := &domain.BankStatement{
		ID:            id.NewID32(),
		BankAccountID: acc.ID,
		Key:           objkey.BankStatement(claimID, acc.ID, f.Name),
		FileName:      f.Name,
	}
	if err := u.put(ctx, st.Key, f, func() error { return u.repo.AddBankStatement(ctx, st) }); err != nil {
		return nil, err
	}
	return st, nil
}

func (u *Usecase) UploadCardStatement(ctx context.Context, claimID, cardID string, f storage.File) (*domain.CardStatement, error) {
	if len(f.Body) == 0 {
		return nil, apperr.Invalid("file", "is required")
	}
	s, err := u.stepOf(ctx, claimID)
	if err != nil {
		return nil, err
	}
	card, err := u.repo.GetCreditCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card.StepID != s.ID {
		return nil, fmt.Errorf("credit card %s: %w", cardID, apperr.ErrOwnershipMismatch)
	}
	st := &domain.CardStatement{
		ID:           id.NewID32(),
		CreditCardID: card.ID,
		Key:          objkey.CardStatement(claimID, card.ID, f.Name),
		FileName:     f.Name,
	}
	if err := u.put(ctx, st.Key, f, func() error { return u.repo.AddCardStatement(ctx, st) }); err != nil {
		return nil, err
	}
	return st, nil
}

// put stores the object, then records it; a failed record removes the object.
func (u *Usecase) put(ctx context.Context, key string, f storage.File, record func() error) error {
	if err := u.store.Put(ctx, key, f.ContentType, f.Body); err != nil {
		return fmt.Errorf("store statement: %w", err)
	}
	if err := record(); err != nil {
		u.removeObjects(ctx, key)
		return err
	}
	return nil
}

// DownloadStatement serves key only when it lives under the claim's
// financial namespace.
func (u *Usecase) DownloadStatement(ctx context.Context, claimID, key string) (*storage.Object, error) {
	if !objkey.Owns(objkey.FinancialPrefix(claimID), key) {
		return nil, fmt.Errorf("statement key outside claim %s: %w", claimID, apperr.ErrForbidden)
	}
	return u.store.Get(ctx, key)
}

func (u *Usecase) DeleteBankStatement(ctx context.Context, claimID, statementID string) error {
	s, err := u.stepOf(ctx, claimID)
	if err != nil {
		return err
	}
	st, err := u.repo.GetBankStatement(ctx, statementID)
	if err != nil {
		return err
	}
	acc, err := u.repo.GetBankAccount(ctx, st.BankAccountID)
	if err != nil {
		return err
	}
	if acc.StepID != s.ID {
		return fmt.Errorf("bank statement %s: %w", statementID, apperr.ErrOwnershipMismatch)
	}
	if err := u.repo.DeleteBankStatement(ctx, st.ID); err != nil {
		return err
	}
	u.removeObjects(ctx, st.Key)
	return nil
}

func (u *Usecase) DeleteCardStatement(ctx context.Context, claimID, statementID string) error {
	s, err := u.stepOf(ctx, claimID)
	if err != nil {
		return err
	}
	st, err := u.repo.GetCardStatement(ctx, statementID)
	if err != nil {
		return err
	}
	card, err := u.repo.GetCreditCard(ctx, st.CreditCardID)
	if err != nil {
		return err
	}
	if card.StepID != s.ID {
		return fmt.Errorf("card statement %s: %w", statementID, apperr.ErrOwnershipMismatch)
	}
	if err := u.repo.DeleteCardStatement(ctx, st.ID); err != nil {
		return err
	}
	u.removeObjects(ctx, st.Key)
	return nil
}

func (u *Usecase) removeObjects(ctx context.Context, keys ...string) {
	for _, k := range keys {
		if err := u.store.Delete(ctx, k); err != nil {
			logrus.WithError(err).WithField("key", k).Warn("financial: object cleanup failed")
		}
	}
}
