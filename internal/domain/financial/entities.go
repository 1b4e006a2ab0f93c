package financial

import (
	"time"
)

// Table: financial_steps, one per claim
type Step struct {
	ID          string     `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	ClaimID     string     `gorm:"column:claim_id;type:char(32);not null;uniqueIndex:ux_financial_steps_claim" json:"claimId"`
	Notes       string     `gorm:"column:notes;type:text" json:"notes"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	BankAccounts           []BankAccount           `gorm:"foreignKey:StepID" json:"bankAccounts"`
	CreditCards            []CreditCard            `gorm:"foreignKey:StepID" json:"creditCards"`
	Loans                  []Loan                  `gorm:"foreignKey:StepID" json:"loans"`
	Mortgages              []Mortgage              `gorm:"foreignKey:StepID" json:"mortgages"`
	HirePurchaseAgreements []HirePurchaseAgreement `gorm:"foreignKey:StepID" json:"hirePurchaseAgreements"`
}

func (Step) TableName() string { return "financial_steps" }

type BankAccount struct {
	ID            string          `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	StepID        string          `gorm:"column:step_id;type:char(32);not null;index" json:"-"`
	BankName      string          `gorm:"column:bank_name;size:200" json:"bankName"`
	AccountName   string          `gorm:"column:account_name;size:200" json:"accountName"`
	AccountNumber string          `gorm:"column:account_number;size:34" json:"accountNumber"`
	SortCode      string          `gorm:"column:sort_code;size:16" json:"sortCode"`
	Balance       float64         `gorm:"column:balance;type:decimal(18,2)" json:"balance"`
	Statements    []BankStatement `gorm:"foreignKey:BankAccountID" json:"statements"`
}

func (BankAccount) TableName() string { return "bank_accounts" }

type BankStatement struct {
	ID            string    `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	BankAccountID string    `gorm:"column:bank_account_id;type:char(32);not null;index" json:"bankAccountId"`
	Key           string    `gorm:"column:object_key;size:512;not null" json:"fileKey"`
	FileName      string    `gorm:"column:file_name;size:255" json:"fileName"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (BankStatement) TableName() string { return "bank_statements" }

type CreditCard struct {
	ID          string          `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	StepID      string          `gorm:"column:step_id;type:char(32);not null;index" json:"-"`
	Provider    string          `gorm:"column:provider;size:200" json:"provider"`
	LastFour    string          `gorm:"column:last_four;size:4" json:"lastFour"`
	CreditLimit float64         `gorm:"column:credit_limit;type:decimal(18,2)" json:"creditLimit"`
	Balance     float64         `gorm:"column:balance;type:decimal(18,2)" json:"balance"`
	Statements  []CardStatement `gorm:"foreignKey:CreditCardID" json:"statements"`
}

func (CreditCard) TableName() string { return "credit_cards" }

type CardStatement struct {
	ID           string    `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	CreditCardID string    `gorm:"column:credit_card_id;type:char(32);not null;index" json:"creditCardId"`
	Key          string    `gorm:"column:object_key;size:512;not null" json:"fileKey"`
	FileName     string    `gorm:"column:file_name;size:255" json:"fileName"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (CardStatement) TableName() string { return "card_statements" }

type Loan struct {
	ID             string  `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	StepID         string  `gorm:"column:step_id;type:char(32);not null;index" json:"-"`
	Lender         string  `gorm:"column:lender;size:200" json:"lender"`
	Amount         float64 `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	MonthlyPayment float64 `gorm:"column:monthly_payment;type:decimal(18,2)" json:"monthlyPayment"`
}

func (Loan) TableName() string { return "loans" }

type Mortgage struct {
	ID             string  `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	StepID         string  `gorm:"column:step_id;type:char(32);not null;index" json:"-"`
	Lender         string  `gorm:"column:lender;size:200" json:"lender"`
	Balance        float64 `gorm:"column:balance;type:decimal(18,2)" json:"balance"`
	MonthlyPayment float64 `gorm:"column:monthly_payment;type:decimal(18,2)" json:"monthlyPayment"`
}

func (Mortgage) TableName() string { return "mortgages" }

type HirePurchaseAgreement struct {
	ID             string  `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	StepID         string  `gorm:"column:step_id;type:char(32);not null;index" json:"-"`
	Provider       string  `gorm:"column:provider;size:200" json:"provider"`
	Asset          string  `gorm:"column:asset;size:200" json:"asset"`
	Amount         float64 `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	MonthlyPayment float64 `gorm:"column:monthly_payment;type:decimal(18,2)" json:"monthlyPayment"`
}

func (HirePurchaseAgreement) TableName() string { return "hire_purchase_agreements" }
