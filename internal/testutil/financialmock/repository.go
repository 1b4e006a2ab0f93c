package financialmock

import (
	"context"
	"errors"

	domain "claims-backoffice/internal/domain/financial"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("financialmock: method not implemented")

// Repo is a function-backed mock of domain.Repository. Unset functions
// return errUnimplemented.
type Repo struct {
	GetStepByClaimIDFn              func(ctx context.Context, claimID string) (*domain.Step, error)
	EnsureStepFn                    func(ctx context.Context, claimID string) (*domain.Step, error)
	SaveStepFn                      func(ctx context.Context, s *domain.Step) error
	ReplaceBankAccountsFn           func(ctx context.Context, stepID string, items []domain.BankAccount) ([]string, error)
	ReplaceCreditCardsFn            func(ctx context.Context, stepID string, items []domain.CreditCard) ([]string, error)
	ReplaceLoansFn                  func(ctx context.Context, stepID string, items []domain.Loan) error
	ReplaceMortgagesFn              func(ctx context.Context, stepID string, items []domain.Mortgage) error
	ReplaceHirePurchaseAgreementsFn func(ctx context.Context, stepID string, items []domain.HirePurchaseAgreement) error
	GetBankAccountFn                func(ctx context.Context, id string) (*domain.BankAccount, error)
	GetCreditCardFn                 func(ctx context.Context, id string) (*domain.CreditCard, error)
	AddBankStatementFn              func(ctx context.Context, s *domain.BankStatement) error
	AddCardStatementFn              func(ctx context.Context, s *domain.CardStatement) error
	GetBankStatementFn              func(ctx context.Context, id string) (*domain.BankStatement, error)
	GetCardStatementFn              func(ctx context.Context, id string) (*domain.CardStatement, error)
	DeleteBankStatementFn           func(ctx context.Context, id string) error
	DeleteCardStatementFn           func(ctx context.Context, id string) error
	DeleteByClaimIDFn               func(ctx context.Context, claimID string) ([]string, error)
}

func (m *Repo) GetStepByClaimID(ctx context.Context, claimID string) (*domain.Step, error) {
	if m.GetStepByClaimIDFn != nil {
		return m.GetStepByClaimIDFn(ctx, claimID)
	}
	return nil, errUnimplemented
}

func (m *Repo) EnsureStep(ctx context.Context, claimID string) (*domain.Step, error) {
	if m.EnsureStepFn != nil {
		return m.EnsureStepFn(ctx, claimID)
	}
	return nil, errUnimplemented
}

func (m *Repo) SaveStep(ctx context.Context, s *domain.Step) error {
	if m.SaveStepFn != nil {
		return m.SaveStepFn(ctx, s)
	}
	return errUnimplemented
}

func (m *Repo) ReplaceBankAccounts(ctx context.Context, stepID string, items []domain.BankAccount) ([]string, error) {
	if m.ReplaceBankAccountsFn != nil {
		return m.ReplaceBankAccountsFn(ctx, stepID, items)
	}
	return nil, errUnimplemented
}

func (m *Repo) ReplaceCreditCards(ctx context.Context, stepID string, items []domain.CreditCard) ([]string, error) {
	if m.ReplaceCreditCardsFn != nil {
		return m.ReplaceCreditCardsFn(ctx, stepID, items)
	}
	return nil, errUnimplemented
}

func (m *Repo) ReplaceLoans(ctx context.Context, stepID string, items []domain.Loan) error {
	if m.ReplaceLoansFn != nil {
		return m.ReplaceLoansFn(ctx, stepID, items)
	}
	return errUnimplemented
}

func (m *Repo) ReplaceMortgages(ctx context.Context, stepID string, items []domain.Mortgage) error {
	if m.ReplaceMortgagesFn != nil {
		return m.ReplaceMortgagesFn(ctx, stepID, items)
	}
	return errUnimplemented
}

func (m *Repo) ReplaceHirePurchaseAgreements(ctx context.Context, stepID string, items []domain.HirePurchaseAgreement) error {
	if m.ReplaceHirePurchaseAgreementsFn != nil {
		return m.ReplaceHirePurchaseAgreementsFn(ctx, stepID, items)
	}
	return errUnimplemented
}

func (m *Repo) GetBankAccount(ctx context.Context, id string) (*domain.BankAccount, error) {
	if m.GetBankAccountFn != nil {
		return m.GetBankAccountFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetCreditCard(ctx context.Context, id string) (*domain.CreditCard, error) {
	if m.GetCreditCardFn != nil {
		return m.GetCreditCardFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) AddBankStatement(ctx context.Context, s *domain.BankStatement) error {
	if m.AddBankStatementFn != nil {
		return m.AddBankStatementFn(ctx, s)
	}
	return errUnimplemented
}

func (m *Repo) AddCardStatement(ctx context.Context, s *domain.CardStatement) error {
	if m.AddCardStatementFn != nil {
		return m.AddCardStatementFn(ctx, s)
	}
	return errUnimplemented
}

func (m *Repo) GetBankStatement(ctx context.Context, id string) (*domain.BankStatement, error) {
	if m.GetBankStatementFn != nil {
		return m.GetBankStatementFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetCardStatement(ctx context.Context, id string) (*domain.CardStatement, error) {
	if m.GetCardStatementFn != nil {
		return m.GetCardStatementFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) DeleteBankStatement(ctx context.Context, id string) error {
	if m.DeleteBankStatementFn != nil {
		return m.DeleteBankStatementFn(ctx, id)
	}
	return errUnimplemented
}

func (m *Repo) DeleteCardStatement(ctx context.Context, id string) error {
	if m.DeleteCardStatementFn != nil {
		return m.DeleteCardStatementFn(ctx, id)
	}
	return errUnimplemented
}

func (m *Repo) DeleteByClaimID(ctx context.Context, claimID string) ([]string, error) {
	if m.DeleteByClaimIDFn != nil {
		return m.DeleteByClaimIDFn(ctx, claimID)
	}
	return nil, errUnimplemented
}
