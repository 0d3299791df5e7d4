package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanza/internal/errors"
	"balanza/internal/models"
	"balanza/internal/services"
)

// BalanceHandler serves the derived balance projection.
type BalanceHandler struct {
	ledger       services.LedgerServicer
	auditService services.AuditServicer
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(ledger services.LedgerServicer, auditService services.AuditServicer) *BalanceHandler {
	return &BalanceHandler{ledger: ledger, auditService: auditService}
}

// RecomputeRequest identifies the entity whose balance should be rebuilt
type RecomputeRequest struct {
	EntityType models.EntityType `json:"entity_type" binding:"required,oneof=FUND CARD"`
	EntityID   string            `json:"entity_id" binding:"required,uuid"`
}

// GetBalances lists the current balances of the active business
// @Summary     List balances
// @Description Get the current balance of every fund and card in the active business
// @Tags        balances
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string true "Business ID"
// @Success     200 {array} models.Balance "Current balances"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balances [get]
func (h *BalanceHandler) GetBalances(c *gin.Context) {
	businessID, err := getBusinessID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balances, err := h.ledger.GetBalances(businessID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balances": balances})
}

// Recompute rebuilds one entity's balance from its leg history
// @Summary     Recompute a balance
// @Description Rebuild an entity's projected balance by replaying its full leg history. Repair operation for projection drift.
// @Tags        balances
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Business-Id header string           true "Business ID"
// @Param       request       body   RecomputeRequest true "Entity to recompute"
// @Success     200 {object} models.Balance "Recomputed balance"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Entity not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /balances/recompute [post]
func (h *BalanceHandler) Recompute(c *gin.Context) {
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

	var req RecomputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	balance, err := h.ledger.Recompute(businessID, req.EntityType, req.EntityID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, businessID, "RECOMPUTE_BALANCE", string(req.EntityType), req.EntityID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}
