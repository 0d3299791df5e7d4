package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanza/internal/errors"
	"balanza/internal/models"
	"balanza/internal/pagination"
	"balanza/internal/services"
)

// FundHandler handles fund-related requests.
type FundHandler struct {
	fundService  services.FundServicer
	auditService services.AuditServicer
}

// NewFundHandler creates a new FundHandler.
func NewFundHandler(fundService services.FundServicer, auditService services.AuditServicer) *FundHandler {
	return &FundHandler{fundService: fundService, auditService: auditService}
}

// CreateFundRequest represents the request payload for creating a fund
type CreateFundRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	FundType string `json:"fund_type" binding:"required,fund_type"`
	Currency string `json:"currency" binding:"omitempty,iso4217"`
}

// UpdateFundRequest represents the request payload for updating a fund
type UpdateFundRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=200"`
	IsActive *bool   `json:"is_active"`
}

// CreateFund handles the creation of a new fund
// @Summary     Create a fund
// @Description Create a new cash-like fund (cash box, bank account, wallet) starting at zero balance
// @Tags        funds
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string            true "Business ID"
// @Param       request       body   CreateFundRequest true "Fund details"
// @Success     201 {object} models.Fund "Fund created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds [post]
func (h *FundHandler) CreateFund(c *gin.Context) {
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

	var req CreateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fund, err := h.fundService.CreateFund(businessID, req.Name, models.FundType(req.FundType), req.Currency)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, businessID, "CREATE_FUND", "fund", fund.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "fund_type": req.FundType})

	c.JSON(http.StatusCreated, gin.H{"fund": fund})
}

// GetBusinessFunds lists the funds of the active business
// @Summary     List funds
// @Description Get a paginated list of funds for the active business with current balances
// @Tags        funds
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string true  "Business ID"
// @Param       page          query  int    false "Page number (default 1)"
// @Param       page_size     query  int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Fund] "Paginated funds"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds [get]
func (h *FundHandler) GetBusinessFunds(c *gin.Context) {
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

	result, err := h.fundService.GetBusinessFunds(businessID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetFund retrieves a single fund
// @Summary     Get fund by ID
// @Description Get a specific fund with its current balance
// @Tags        funds
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string true "Business ID"
// @Param       id            path   string true "Fund ID"
// @Success     200 {object} models.Fund "Fund details"
// @Failure     400 {object} ErrorResponse "Invalid fund ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id} [get]
func (h *FundHandler) GetFund(c *gin.Context) {
	businessID, err := getBusinessID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	fundID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	fund, err := h.fundService.GetFund(businessID, fundID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fund": fund})
}

// UpdateFund updates a fund's descriptive fields
// @Summary     Update fund
// @Description Update a fund's name or active flag. Balances are never edited directly.
// @Tags        funds
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string            true "Business ID"
// @Param       id            path   string            true "Fund ID"
// @Param       request       body   UpdateFundRequest true "Fields to update"
// @Success     200 {object} models.Fund "Fund updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Fund not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /funds/{id} [put]
func (h *FundHandler) UpdateFund(c *gin.Context) {
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

	fundID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateFundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fund, err := h.fundService.UpdateFund(businessID, fundID, services.FundUpdateFields{
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, businessID, "UPDATE_FUND", "fund", fund.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"fund": fund})
}
