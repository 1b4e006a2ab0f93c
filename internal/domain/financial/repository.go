package financial

import "context"

type Repository interface {
	// GetStepByClaimID preloads every collection and statement.
	GetStepByClaimID(ctx context.Context, claimID string) (*Step, error)
	// EnsureStep returns the claim's step, creating an empty one if missing.
	EnsureStep(ctx context.Context, claimID string) (*Step, error)
	SaveStep(ctx context.Context, s *Step) error

	// Replace* rewrite a collection of the step per PlanSync and return the
	// object keys of statements that went away with their parent rows.
	ReplaceBankAccounts(ctx context.Context, stepID string, items []BankAccount) ([]string, error)
	ReplaceCreditCards(ctx context.Context, stepID string, items []CreditCard) ([]string, error)
	ReplaceLoans(ctx context.Context, stepID string, items []Loan) error
	ReplaceMortgages(ctx context.Context, stepID string, items []Mortgage) error
	ReplaceHirePurchaseAgreements(ctx context.Context, stepID string, items []HirePurchaseAgreement) error

	GetBankAccount(ctx context.Context, id string) (*BankAccount, error)
	GetCreditCard(ctx context.Context, id string) (*CreditCard, error)

	AddBankStatement(ctx context.Context, s *BankStatement) error
	AddCardStatement(ctx context.Context, s *CardStatement) error
	GetBankStatement(ctx context.Context, id string) (*BankStatement, error)
	GetCardStatement(ctx context.Context, id string) (*CardStatement, error)
	DeleteBankStatement(ctx context.Context, id string) error
	DeleteCardStatement(ctx context.Context, id string) error

	// DeleteByClaimID removes the step and everything under it, returning
	// the statement object keys.
	DeleteByClaimID(ctx context.Context, claimID string) ([]string, error)
}
