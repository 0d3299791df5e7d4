package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanza/internal/errors"
	"balanza/internal/pagination"
	"balanza/internal/services"
)

// CardHandler handles credit card requests.
type CardHandler struct {
	cardService  services.CardServicer
	auditService services.AuditServicer
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService services.CardServicer, auditService services.AuditServicer) *CardHandler {
	return &CardHandler{cardService: cardService, auditService: auditService}
}

// CreateCardRequest represents the request payload for creating a card
type CreateCardRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	LastFour       string `json:"last_four" binding:"omitempty,len=4,numeric"`
	CreditLimit    int64  `json:"credit_limit" binding:"required,gt=0"`
	ClosingDay     int    `json:"closing_day" binding:"required,day_of_month"`
	DueDay         int    `json:"due_day" binding:"required,day_of_month"`
	AllowOverlimit bool   `json:"allow_overlimit"`
	OverlimitLimit int64  `json:"overlimit_limit" binding:"omitempty,gte=0"`
	Currency       string `json:"currency" binding:"omitempty,iso4217"`
}

// UpdateCardRequest represents the request payload for updating a card.
// Credit limit and available credit are not editable: available credit is
// mutated only by applied transactions.
type UpdateCardRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=200"`
	LastFour       *string `json:"last_four" binding:"omitempty,len=4,numeric"`
	ClosingDay     *int    `json:"closing_day" binding:"omitempty,day_of_month"`
	DueDay         *int    `json:"due_day" binding:"omitempty,day_of_month"`
	AllowOverlimit *bool   `json:"allow_overlimit"`
	OverlimitLimit *int64  `json:"overlimit_limit" binding:"omitempty,gte=0"`
	IsActive       *bool   `json:"is_active"`
}

// CreateCard handles the creation of a new card
// @Summary     Create a card
// @Description Create a new credit card starting with all of its credit available
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string            true "Business ID"
// @Param       request       body   CreateCardRequest true "Card details"
// @Success     201 {object} models.Card "Card created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
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

	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.CreateCard(businessID, services.CardInput{
		Name:           req.Name,
		LastFour:       req.LastFour,
		CreditLimit:    req.CreditLimit,
		ClosingDay:     req.ClosingDay,
		DueDay:         req.DueDay,
		AllowOverlimit: req.AllowOverlimit,
		OverlimitLimit: req.OverlimitLimit,
		Currency:       req.Currency,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, businessID, "CREATE_CARD", "card", card.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "credit_limit": req.CreditLimit})

	c.JSON(http.StatusCreated, gin.H{"card": card})
}

// GetBusinessCards lists the cards of the active business
// @Summary     List cards
// @Description Get a paginated list of cards for the active business
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string true  "Business ID"
// @Param       page          query  int    false "Page number (default 1)"
// @Param       page_size     query  int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Card] "Paginated cards"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards [get]
func (h *CardHandler) GetBusinessCards(c *gin.Context) {
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

	result, err := h.cardService.GetBusinessCards(businessID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCard retrieves a single card
// @Summary     Get card by ID
// @Description Get a specific card with its current available credit
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string true "Business ID"
// @Param       id            path   string true "Card ID"
// @Success     200 {object} models.Card "Card details"
// @Failure     400 {object} ErrorResponse "Invalid card ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	businessID, err := getBusinessID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	card, err := h.cardService.GetCard(businessID, cardID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": card})
}

// UpdateCard updates a card's descriptive fields and overlimit policy
// @Summary     Update card
// @Description Update a card's descriptive fields and overlimit policy. Credit limit and available credit cannot be edited.
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string            true "Business ID"
// @Param       id            path   string            true "Card ID"
// @Param       request       body   UpdateCardRequest true "Fields to update"
// @Success     200 {object} models.Card "Card updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
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

	cardID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.UpdateCard(businessID, cardID, services.CardUpdateFields{
		Name:           req.Name,
		LastFour:       req.LastFour,
		ClosingDay:     req.ClosingDay,
		DueDay:         req.DueDay,
		AllowOverlimit: req.AllowOverlimit,
		OverlimitLimit: req.OverlimitLimit,
		IsActive:       req.IsActive,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, businessID, "UPDATE_CARD", "card", card.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"card": card})
}
