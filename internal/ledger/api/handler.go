package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/millbooks/backend/internal/ledger/domain"
	"github.com/millbooks/backend/internal/ledger/service"
)

// Handler exposes the accounting module over HTTP.
type Handler struct {
	accounts *service.AccountService
	journal  *service.JournalService
	invoices *service.InvoiceService
	ledger   *service.LedgerService
}

func NewHandler(accounts *service.AccountService, journal *service.JournalService, invoices *service.InvoiceService, ledger *service.LedgerService) *Handler {
	return &Handler{accounts: accounts, journal: journal, invoices: invoices, ledger: ledger}
}

// RegisterRoutes mounts all accounting routes on the given group.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/accounts", h.CreateAccount)
	r.GET("/accounts", h.ListAccounts)
	r.GET("/account-options", h.AccountOptions)

	r.POST("/journal-entries", h.CreateJournalEntry)
	r.GET("/journal-entries", h.ListJournalEntries)
	r.DELETE("/journal-entries/:id", h.DeleteJournalEntry)

	r.GET("/ledger", h.GetLedger)

	r.POST("/purchase-invoices", h.CreatePurchaseInvoice)
	r.GET("/purchase-invoices", h.ListPurchaseInvoices)
	r.GET("/purchase-invoices/:id", h.GetPurchaseInvoice)
	r.PUT("/purchase-invoices/:id", h.UpdatePurchaseInvoice)
	r.DELETE("/purchase-invoices/:id", h.DeletePurchaseInvoice)

	r.POST("/sales-invoices", h.CreateSalesInvoice)
	r.GET("/sales-invoices", h.ListSalesInvoices)
	r.GET("/sales-invoices/:id", h.GetSalesInvoice)
	r.PUT("/sales-invoices/:id", h.UpdateSalesInvoice)
	r.DELETE("/sales-invoices/:id", h.DeleteSalesInvoice)
}

func statusFor(code string) int {
	switch code {
	case domain.CodeValidation, domain.CodeImbalance, domain.CodeEmptyCreditSet:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError maps a domain error to its HTTP status with a {message} body.
func respondError(c *gin.Context, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		c.JSON(statusFor(derr.Code), gin.H{"message": derr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}

// respondInvoiceError is the invoice-route variant carrying a success flag.
func respondInvoiceError(c *gin.Context, err error) {
	var derr *domain.Error
	if errors.As(err, &derr) {
		c.JSON(statusFor(derr.Code), gin.H{"success": false, "message": derr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
}

// CreateAccount handles POST /accounts.
func (h *Handler) CreateAccount(c *gin.Context) {
	var req CreateAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	account, err := h.accounts.CreateAccount(c.Request.Context(), service.CreateAccountInput{
		AccountType:    req.AccountType,
		SubAccountType: req.SubAccountType,
		AccountName:    req.AccountName,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully!", "account": account})
}

// ListAccounts handles GET /accounts.
func (h *Handler) ListAccounts(c *gin.Context) {
	accounts, err := h.accounts.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// AccountOptions handles GET /account-options: the allowed sub-account types
// per account type, from the same table the validation uses.
func (h *Handler) AccountOptions(c *gin.Context) {
	c.JSON(http.StatusOK, domain.AllowedSubAccountTypes)
}

// CreateJournalEntry handles POST /journal-entries.
func (h *Handler) CreateJournalEntry(c *gin.Context) {
	var req CreateJournalEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}
	in := service.CreateJournalEntryInput{
		Description:   req.Description,
		Comments:      req.Comments,
		DebitAccount:  req.DebitAccount,
		DebitAmount:   req.DebitAmount,
		CreditEntries: make([]service.CreditEntryInput, len(req.CreditEntries)),
	}
	for i, ce := range req.CreditEntries {
		in.CreditEntries[i] = service.CreditEntryInput{Account: ce.Account, Amount: ce.Amount}
	}
	entry, err := h.journal.CreateJournalEntry(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Journal entry recorded successfully.", "entry": toJournalEntryResp(entry)})
}

// ListJournalEntries handles GET /journal-entries.
func (h *Handler) ListJournalEntries(c *gin.Context) {
	entries, err := h.journal.ListJournalEntries(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]JournalEntryResp, len(entries))
	for i := range entries {
		resp[i] = toJournalEntryResp(&entries[i])
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteJournalEntry handles DELETE /journal-entries/:id.
func (h *Handler) DeleteJournalEntry(c *gin.Context) {
	if err := h.journal.DeleteJournalEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted successfully."})
}

// GetLedger handles GET /ledger?startDate&endDate&account.
func (h *Handler) GetLedger(c *gin.Context) {
	view, err := h.ledger.GetLedger(c.Request.Context(), service.LedgerQuery{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Account:   c.Query("account"),
	})
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, LedgerResp{
		Success:     true,
		Entries:     view.Entries,
		TotalDebit:  view.TotalDebit,
		TotalCredit: view.TotalCredit,
	})
}

// CreatePurchaseInvoice handles POST /purchase-invoices.
func (h *Handler) CreatePurchaseInvoice(c *gin.Context) {
	var invoice domain.PurchaseInvoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.invoices.CreatePurchaseInvoice(c.Request.Context(), &invoice)
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "invoice": created})
}

// ListPurchaseInvoices handles GET /purchase-invoices.
func (h *Handler) ListPurchaseInvoices(c *gin.Context) {
	invoices, err := h.invoices.ListPurchaseInvoices(c.Request.Context())
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoices": invoices})
}

// GetPurchaseInvoice handles GET /purchase-invoices/:id.
func (h *Handler) GetPurchaseInvoice(c *gin.Context) {
	invoice, err := h.invoices.GetPurchaseInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": invoice})
}

// UpdatePurchaseInvoice handles PUT /purchase-invoices/:id.
func (h *Handler) UpdatePurchaseInvoice(c *gin.Context) {
	var invoice domain.PurchaseInvoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}
	updated, err := h.invoices.UpdatePurchaseInvoice(c.Request.Context(), c.Param("id"), &invoice)
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": updated})
}

// DeletePurchaseInvoice handles DELETE /purchase-invoices/:id.
func (h *Handler) DeletePurchaseInvoice(c *gin.Context) {
	if err := h.invoices.DeletePurchaseInvoice(c.Request.Context(), c.Param("id")); err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Invoice deleted"})
}

// CreateSalesInvoice handles POST /sales-invoices.
func (h *Handler) CreateSalesInvoice(c *gin.Context) {
	var invoice domain.SalesInvoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}
	created, err := h.invoices.CreateSalesInvoice(c.Request.Context(), &invoice)
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "invoice": created})
}

// ListSalesInvoices handles GET /sales-invoices.
func (h *Handler) ListSalesInvoices(c *gin.Context) {
	invoices, err := h.invoices.ListSalesInvoices(c.Request.Context())
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoices": invoices})
}

// GetSalesInvoice handles GET /sales-invoices/:id.
func (h *Handler) GetSalesInvoice(c *gin.Context) {
	invoice, err := h.invoices.GetSalesInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": invoice})
}

// UpdateSalesInvoice handles PUT /sales-invoices/:id.
func (h *Handler) UpdateSalesInvoice(c *gin.Context) {
	var invoice domain.SalesInvoice
	if err := c.ShouldBindJSON(&invoice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return
	}
	updated, err := h.invoices.UpdateSalesInvoice(c.Request.Context(), c.Param("id"), &invoice)
	if err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "invoice": updated})
}

// DeleteSalesInvoice handles DELETE /sales-invoices/:id.
func (h *Handler) DeleteSalesInvoice(c *gin.Context) {
	if err := h.invoices.DeleteSalesInvoice(c.Request.Context(), c.Param("id")); err != nil {
		respondInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Invoice deleted"})
}
