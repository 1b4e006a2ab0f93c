package http

import (
	"net/http"

	domain "claims-backoffice/internal/domain/financial"
	"claims-backoffice/internal/usecase/financial"

	"github.com/labstack/echo/v4"
)

type FinancialHandler struct {
	uc        *financial.Usecase
	maxUpload int64
}

func NewFinancialHandler(uc *financial.Usecase, maxUpload int64) *FinancialHandler {
	return &FinancialHandler{uc: uc, maxUpload: maxUpload}
}

type stepReq struct {
	Notes       *string `json:"notes"`
	CompletedAt *string `json:"completedAt"`
	Completed   *bool   `json:"completed"`
}

type bankAccountReq struct {
	ID            string  `json:"id"            validate:"omitempty,hex32"`
	BankName      string  `json:"bankName"      validate:"required,max=200"`
	AccountName   string  `json:"accountName"   validate:"max=200"`
	AccountNumber string  `json:"accountNumber" validate:"max=34"`
	SortCode      string  `json:"sortCode"      validate:"max=16"`
	Balance       float64 `json:"balance"       validate:"dec2"`
}

type creditCardReq struct {
	ID          string  `json:"id"          validate:"omitempty,hex32"`
	Provider    string  `json:"provider"    validate:"required,max=200"`
	LastFour    string  `json:"lastFour"    validate:"omitempty,len=4,numeric"`
	CreditLimit float64 `json:"creditLimit" validate:"gte=0,dec2"`
	Balance     float64 `json:"balance"     validate:"dec2"`
}

type loanReq struct {
	ID             string  `json:"id"             validate:"omitempty,hex32"`
	Lender         string  `json:"lender"         validate:"required,max=200"`
	Amount         float64 `json:"amount"         validate:"gte=0,dec2"`
	MonthlyPayment float64 `json:"monthlyPayment" validate:"gte=0,dec2"`
}

type mortgageReq struct {
	ID             string  `json:"id"             validate:"omitempty,hex32"`
	Lender         string  `json:"lender"         validate:"required,max=200"`
	Balance        float64 `json:"balance"        validate:"gte=0,dec2"`
	MonthlyPayment float64 `json:"monthlyPayment" validate:"gte=0,dec2"`
}

type hirePurchaseReq struct {
	ID             string  `json:"id"             validate:"omitempty,hex32"`
	Provider       string  `json:"provider"       validate:"required,max=200"`
	Asset          string  `json:"asset"          validate:"max=200"`
	Amount         float64 `json:"amount"         validate:"gte=0,dec2"`
	MonthlyPayment float64 `json:"monthlyPayment" validate:"gte=0,dec2"`
}

func (r stepReq) input() (financial.StepInput, error) {
	at, err := parseDate("completedAt", r.CompletedAt)
	if err != nil {
		return financial.StepInput{}, err
	}
	return financial.StepInput{Notes: r.Notes, CompletedAt: at, Completed: r.Completed}, nil
}

func (h *FinancialHandler) Get(c echo.Context) error {
	out, err := h.uc.GetStep(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FinancialHandler) Update(c echo.Context) error {
	var req stepReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	in, err := req.input()
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.UpdateStep(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FinancialHandler) ReplaceBankAccounts(c echo.Context) error {
	reqs, err := bindArray[bankAccountReq](c)
	if err != nil {
		return fail(c, err)
	}
	items := make([]domain.BankAccount, len(reqs))
	for i, r := range reqs {
		items[i] = domain.BankAccount{
			ID: r.ID, BankName: r.BankName, AccountName: r.AccountName,
			AccountNumber: r.AccountNumber, SortCode: r.SortCode, Balance: r.Balance,
		}
	}
	out, err := h.uc.ReplaceBankAccounts(c.Request().Context(), c.Param("id"), items)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FinancialHandler) ReplaceCreditCards(c echo.Context) error {
	reqs, err := bindArray[creditCardReq](c)
	if err != nil {
		return fail(c, err)
	}
	items := make([]domain.CreditCard, len(reqs))
	for i, r := range reqs {
		items[i] = domain.CreditCard{
			ID: r.ID, Provider: r.Provider, LastFour: r.LastFour,
			CreditLimit: r.CreditLimit, Balance: r.Balance,
		}
	}
	out, err := h.uc.ReplaceCreditCards(c.Request().Context(), c.Param("id"), items)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FinancialHandler) ReplaceLoans(c echo.Context) error {
	reqs, err := bindArray[loanReq](c)
	if err != nil {
		return fail(c, err)
	}
	items := make([]domain.Loan, len(reqs))
	for i, r := range reqs {
		items[i] = domain.Loan{ID: r.ID, Lender: r.Lender, Amount: r.Amount, MonthlyPayment: r.MonthlyPayment}
	}
	out, err := h.uc.ReplaceLoans(c.Request().Context(), c.Param("id"), items)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FinancialHandler) ReplaceMortgages(c echo.Context) error {
	reqs, err := bindArray[mortgageReq](c)
	if err != nil {
		return fail(c, err)
	}
	items := make([]domain.Mortgage, len(reqs))
	for i, r := range reqs {
		items[i] = domain.Mortgage{ID: r.ID, Lender: r.Lender, Balance: r.Balance, MonthlyPayment: r.MonthlyPayment}
	}
	out, err := h.uc.ReplaceMortgages(c.Request().Context(), c.Param("id"), items)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FinancialHandler) ReplaceHirePurchaseAgreements(c echo.Context) error {
	reqs, err := bindArray[hirePurchaseReq](c)
	if err != nil {
		return fail(c, err)
	}
	items := make([]domain.HirePurchaseAgreement, len(reqs))
	for i, r := range reqs {
		items[i] = domain.HirePurchaseAgreement{
			ID: r.ID, Provider: r.Provider, Asset: r.Asset,
			Amount: r.Amount, MonthlyPayment: r.MonthlyPayment,
		}
	}
	out, err := h.uc.ReplaceHirePurchaseAgreements(c.Request().Context(), c.Param("id"), items)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FinancialHandler) UploadBankStatement(c echo.Context) error {
	f, err := readFile(c, "file", h.maxUpload)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.UploadBankStatement(c.Request().Context(), c.Param("id"), c.Param("accountId"), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FinancialHandler) UploadCardStatement(c echo.Context) error {
	f, err := readFile(c, "file", h.maxUpload)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.UploadCardStatement(c.Request().Context(), c.Param("id"), c.Param("cardId"), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *FinancialHandler) DeleteBankStatement(c echo.Context) error {
	if err := h.uc.DeleteBankStatement(c.Request().Context(), c.Param("id"), c.Param("statementId")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *FinancialHandler) DeleteCardStatement(c echo.Context) error {
	if err := h.uc.DeleteCardStatement(c.Request().Context(), c.Param("id"), c.Param("statementId")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *FinancialHandler) Statement(c echo.Context) error {
	key, err := fileKey(c)
	if err != nil {
		return fail(c, err)
	}
	obj, err := h.uc.DownloadStatement(c.Request().Context(), c.Param("id"), key)
	if err != nil {
		return fail(c, err)
	}
	return serveObject(c, key, obj)
}
