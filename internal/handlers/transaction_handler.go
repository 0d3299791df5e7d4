package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanza/internal/errors"
	"balanza/internal/models"
	"balanza/internal/pagination"
	"balanza/internal/services"
	"balanza/internal/uuid"
)

// TransactionHandler handles transaction submission and retrieval.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for submitting a transaction
type CreateTransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	Currency    string                 `json:"currency" binding:"omitempty,iso4217"`
	Description string                 `json:"description" binding:"max=500"`
	Reference   string                 `json:"reference" binding:"max=100"`
	CategoryID  *string                `json:"category_id" binding:"omitempty,uuid"`
	FundID      *string                `json:"fund_id" binding:"omitempty,uuid"`
	CardID      *string                `json:"card_id" binding:"omitempty,uuid"`
}

// CreateTransaction handles the submission of a new transaction
// @Summary     Submit a transaction
// @Description Validate a transaction, apply its balance deltas atomically, and return the final balances of every touched entity
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string                   true "Business ID"
// @Param       request       body   CreateTransactionRequest true "Transaction details"
// @Success     201 {object} services.TransactionResult "Transaction applied with final balances"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Referenced entity not found"
// @Failure     422 {object} ErrorResponse "Validation or credit limit violation"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	businessID, err := getBusinessID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.transactionService.CreateTransaction(userID, businessID, services.TransactionInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Reference:   req.Reference,
		CategoryID:  req.CategoryID,
		FundID:      req.FundID,
		CardID:      req.CardID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, businessID, "CREATE_TRANSACTION", "transaction", result.Transaction.ID, c.ClientIP(),
		map[string]interface{}{"type": req.Type, "amount": req.Amount})

	c.JSON(http.StatusCreated, result)
}

// GetBusinessTransactions lists the transactions of the active business
// @Summary     List transactions
// @Description Get a paginated list of transactions for the active business with optional filters
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string true  "Business ID"
// @Param       page          query  int    false "Page number (default 1)"
// @Param       page_size     query  int    false "Items per page (default 20, max 100)"
// @Param       from_date     query  string false "Filter by start date (RFC3339 or YYYY-MM-DD)"
// @Param       to_date       query  string false "Filter by end date (RFC3339 or YYYY-MM-DD)"
// @Param       type          query  string false "Filter by transaction type"
// @Param       category_id   query  string false "Filter by category ID"
// @Param       fund_id       query  string false "Filter by fund ID"
// @Param       card_id       query  string false "Filter by card ID"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetBusinessTransactions(c *gin.Context) {
	businessID, err := getBusinessID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetBusinessTransactions(businessID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("from_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to_date"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.ToDate = &t
	}

	if v := c.Query("type"); v != "" {
		txType := models.TransactionType(v)
		switch txType {
		case models.TransactionTypeExpense, models.TransactionTypeIncome,
			models.TransactionTypeTransfer, models.TransactionTypeCardCharge,
			models.TransactionTypeCardPayment:
			filter.Type = &txType
		default:
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput,
				"invalid type, must be EXPENSE, INCOME, TRANSFER, CARD_CHARGE, or CARD_PAYMENT")
		}
	}

	if v := c.Query("category_id"); v != "" {
		if !uuid.IsValid(v) {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid category_id")
		}
		filter.CategoryID = &v
	}

	if v := c.Query("fund_id"); v != "" {
		if !uuid.IsValid(v) {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid fund_id")
		}
		filter.FundID = &v
	}

	if v := c.Query("card_id"); v != "" {
		if !uuid.IsValid(v) {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid card_id")
		}
		filter.CardID = &v
	}

	return filter, nil
}

// GetTransactionByID retrieves a specific transaction with its legs
// @Summary     Get transaction by ID
// @Description Get a specific transaction including its balance legs
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string true "Business ID"
// @Param       id            path   string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	businessID, err := getBusinessID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(businessID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}
