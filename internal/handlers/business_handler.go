package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "balanza/internal/errors"
	"balanza/internal/models"
	"balanza/internal/services"
)

// BusinessHandler handles business (tenant) management requests.
type BusinessHandler struct {
	businessService services.BusinessServicer
	auditService    services.AuditServicer
}

// NewBusinessHandler creates a new BusinessHandler.
func NewBusinessHandler(businessService services.BusinessServicer, auditService services.AuditServicer) *BusinessHandler {
	return &BusinessHandler{businessService: businessService, auditService: auditService}
}

// CreateBusinessRequest represents the request payload for creating a business
type CreateBusinessRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// AddMemberRequest represents the request payload for adding a member
type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required"`
}

// CreateBusiness handles the creation of a new business
// @Summary     Create a business
// @Description Create a new business with the authenticated user as owner
// @Tags        businesses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateBusinessRequest true "Business details"
// @Success     201 {object} models.Business "Business created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /businesses [post]
func (h *BusinessHandler) CreateBusiness(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	business, err := h.businessService.CreateBusiness(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, business.ID, "CREATE_BUSINESS", "business", business.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusCreated, gin.H{"business": business})
}

// GetUserBusinesses lists the businesses the authenticated user belongs to
// @Summary     List businesses
// @Description Get all businesses the authenticated user is a member of
// @Tags        businesses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Business "Businesses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /businesses [get]
func (h *BusinessHandler) GetUserBusinesses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	businesses, err := h.businessService.GetUserBusinesses(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"businesses": businesses})
}

// AddMember adds a user to a business
// @Summary     Add a member
// @Description Add a user to a business with a role. Requires owner or admin role.
// @Tags        businesses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string           true "Business ID"
// @Param       request body AddMemberRequest true "Member details"
// @Success     201 {object} models.BusinessMember "Member added"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Insufficient role"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /businesses/{id}/members [post]
func (h *BusinessHandler) AddMember(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	businessID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	member, err := h.businessService.AddMember(businessID, userID, req.UserID, models.BusinessRole(req.Role))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, businessID, "ADD_MEMBER", "business_member", member.ID, c.ClientIP(),
		map[string]interface{}{"user_id": req.UserID, "role": req.Role})

	c.JSON(http.StatusCreated, gin.H{"member": member})
}
