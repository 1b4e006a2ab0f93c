package mysql

import (
	"context"
	"errors"

	finDomain "claims-backoffice/internal/domain/financial"
	"claims-backoffice/pkg/id"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FinancialRepository struct{ db *gorm.DB }

func NewFinancialRepository(db *gorm.DB) *FinancialRepository { return &FinancialRepository{db: db} }

func (r *FinancialRepository) GetStepByClaimID(ctx context.Context, claimID string) (*finDomain.Step, error) {
	var out finDomain.Step
	err := r.db.WithContext(ctx).
		Preload("BankAccounts", orderByID).
		Preload("BankAccounts.Statements", orderByCreated).
		Preload("CreditCards", orderByID).
		Preload("CreditCards.Statements", orderByCreated).
		Preload("Loans", orderByID).
		Preload("Mortgages", orderByID).
		Preload("HirePurchaseAgreements", orderByID).
		Where("claim_id = ?", claimID).
		First(&out).Error
	if err != nil {
		return nil, notFound(err, "financial step of claim "+claimID)
	}
	return &out, nil
}

func orderByID(db *gorm.DB) *gorm.DB      { return db.Order("id ASC") }
func orderByCreated(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, id ASC") }

func (r *FinancialRepository) EnsureStep(ctx context.Context, claimID string) (*finDomain.Step, error) {
	db := r.db.WithContext(ctx)
	var out finDomain.Step
	err := db.Where("claim_id = ?", claimID).First(&out).Error
	if err == nil {
		return &out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	step := &finDomain.Step{ID: id.NewID32(), ClaimID: claimID}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(step).Error; err != nil {
		return nil, err
	}
	if err := db.Where("claim_id = ?", claimID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *FinancialRepository) SaveStep(ctx context.Context, s *finDomain.Step) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(s).Error
}

// syncRows applies financial.PlanSync to one collection of a step. field
// returns pointers to the row's ID and StepID; beforeDelete runs ahead of the
// row deletes so dependants can go first.
func syncRows[T any](tx *gorm.DB, stepID string, items []T, field func(*T) (rowID, rowStep *string), beforeDelete func(tx *gorm.DB, ids []string) error) error {
	var existing []string
	if err := tx.Model(new(T)).Where("step_id = ?", stepID).Order("id ASC").Pluck("id", &existing).Error; err != nil {
		return err
	}
	incoming := make([]string, len(items))
	for i := range items {
		rowID, _ := field(&items[i])
		incoming[i] = *rowID
	}
	plan, err := finDomain.PlanSync(existing, incoming)
	if err != nil {
		return err
	}

	if len(plan.Delete) > 0 {
		if beforeDelete != nil {
			if err := beforeDelete(tx, plan.Delete); err != nil {
				return err
			}
		}
		if err := tx.Where("id IN ?", plan.Delete).Delete(new(T)).Error; err != nil {
			return err
		}
	}
	for _, i := range plan.Update {
		_, rowStep := field(&items[i])
		*rowStep = stepID
		if err := tx.Omit(clause.Associations).Save(&items[i]).Error; err != nil {
			return err
		}
	}
	for _, i := range plan.Create {
		rowID, rowStep := field(&items[i])
		*rowID = id.NewID32()
		*rowStep = stepID
		if err := tx.Omit(clause.Associations).Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *FinancialRepository) ReplaceBankAccounts(ctx context.Context, stepID string, items []finDomain.BankAccount) ([]string, error) {
	var removed []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return syncRows(tx, stepID, items,
			func(a *finDomain.BankAccount) (*string, *string) { return &a.ID, &a.StepID },
			func(tx *gorm.DB, ids []string) error {
				keys, err := deleteStatements[finDomain.BankStatement](tx, "bank_account_id", ids)
				removed = keys
				return err
			})
	})
	return removed, err
}

func (r *FinancialRepository) ReplaceCreditCards(ctx context.Context, stepID string, items []finDomain.CreditCard) ([]string, error) {
	var removed []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return syncRows(tx, stepID, items,
			func(c *finDomain.CreditCard) (*string, *string) { return &c.ID, &c.StepID },
			func(tx *gorm.DB, ids []string) error {
				keys, err := deleteStatements[finDomain.CardStatement](tx, "credit_card_id", ids)
				removed = keys
				return err
			})
	})
	return removed, err
}

func (r *FinancialRepository) ReplaceLoans(ctx context.Context, stepID string, items []finDomain.Loan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return syncRows(tx, stepID, items,
			func(l *finDomain.Loan) (*string, *string) { return &l.ID, &l.StepID }, nil)
	})
}

func (r *FinancialRepository) ReplaceMortgages(ctx context.Context, stepID string, items []finDomain.Mortgage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return syncRows(tx, stepID, items,
			func(m *finDomain.Mortgage) (*string, *string) { return &m.ID, &m.StepID }, nil)
	})
}

func (r *FinancialRepository) ReplaceHirePurchaseAgreements(ctx context.Context, stepID string, items []finDomain.HirePurchaseAgreement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return syncRows(tx, stepID, items,
			func(h *finDomain.HirePurchaseAgreement) (*string, *string) { return &h.ID, &h.StepID }, nil)
	})
}

// deleteStatements removes statements whose parent column is in parentIDs
// and returns their object keys.
func deleteStatements[T any](tx *gorm.DB, parentCol string, parentIDs []string) ([]string, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var keys []string
	if err := tx.Model(new(T)).Where(parentCol+" IN ?", parentIDs).Pluck("object_key", &keys).Error; err != nil {
		return nil, err
	}
	if err := tx.Where(parentCol+" IN ?", parentIDs).Delete(new(T)).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *FinancialRepository) GetBankAccount(ctx context.Context, accountID string) (*finDomain.BankAccount, error) {
	var out finDomain.BankAccount
	if err := r.db.WithContext(ctx).Where("id = ?", accountID).First(&out).Error; err != nil {
		return nil, notFound(err, "bank account "+accountID)
	}
	return &out, nil
}

func (r *FinancialRepository) GetCreditCard(ctx context.Context, cardID string) (*finDomain.CreditCard, error) {
	var out finDomain.CreditCard
	if err := r.db.WithContext(ctx).Where("id = ?", cardID).First(&out).Error; err != nil {
		return nil, notFound(err, "credit card "+cardID)
	}
	return &out, nil
}

func (r *FinancialRepository) AddBankStatement(ctx context.Context, s *finDomain.BankStatement) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *FinancialRepository) AddCardStatement(ctx context.Context, s *finDomain.CardStatement) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *FinancialRepository) GetBankStatement(ctx context.Context, statementID string) (*finDomain.BankStatement, error) {
	var out finDomain.BankStatement
	if err := r.db.WithContext(ctx).Where("id = ?", statementID).First(&out).Error; err != nil {
		return nil, notFound(err, "bank statement "+statementID)
	}
	return &out, nil
}

func (r *FinancialRepository) GetCardStatement(ctx context.Context, statementID string) (*finDomain.CardStatement, error) {
	var out finDomain.CardStatement
	if err := r.db.WithContext(ctx).Where("id = ?", statementID).First(&out).Error; err != nil {
		return nil, notFound(err, "card statement "+statementID)
	}
	return &out, nil
}

func (r *FinancialRepository) DeleteBankStatement(ctx context.Context, statementID string) error {
	return r.db.WithContext(ctx).Where("id = ?", statementID).Delete(&finDomain.BankStatement{}).Error
}

func (r *FinancialRepository) DeleteCardStatement(ctx context.Context, statementID string) error {
	return r.db.WithContext(ctx).Where("id = ?", statementID).Delete(&finDomain.CardStatement{}).Error
}

func (r *FinancialRepository) DeleteByClaimID(ctx context.Context, claimID string) ([]string, error) {
	var removed []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var step finDomain.Step
		err := tx.Where("claim_id = ?", claimID).First(&step).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		var accountIDs, cardIDs []string
		if err := tx.Model(&finDomain.BankAccount{}).Where("step_id = ?", step.ID).Pluck("id", &accountIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(&finDomain.CreditCard{}).Where("step_id = ?", step.ID).Pluck("id", &cardIDs).Error; err != nil {
			return err
		}
		bankKeys, err := deleteStatements[finDomain.BankStatement](tx, "bank_account_id", accountIDs)
		if err != nil {
			return err
		}
		cardKeys, err := deleteStatements[finDomain.CardStatement](tx, "credit_card_id", cardIDs)
		if err != nil {
			return err
		}
		removed = append(bankKeys, cardKeys...)

		for _, model := range []any{
			&finDomain.BankAccount{},
			&finDomain.CreditCard{},
			&finDomain.Loan{},
			&finDomain.Mortgage{},
			&finDomain.HirePurchaseAgreement{},
		} {
			if err := tx.Where("step_id = ?", step.ID).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", step.ID).Delete(&finDomain.Step{}).Error
	})
	return removed, err
}
