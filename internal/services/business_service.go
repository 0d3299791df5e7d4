package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "balanza/internal/errors"
	"balanza/internal/models"
)

// businessService handles tenant management.
type businessService struct {
	db *gorm.DB
}

// NewBusinessService creates a new BusinessServicer.
func NewBusinessService(db *gorm.DB) BusinessServicer {
	return &businessService{db: db}
}

// CreateBusiness creates a business and makes the creating user its OWNER,
// in one transaction.
func (s *businessService) CreateBusiness(userID, name string) (*models.Business, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "business name is required")
	}

	business := &models.Business{Name: name}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(business).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		member := &models.BusinessMember{
			BusinessID: business.ID,
			UserID:     userID,
			Role:       models.RoleOwner,
		}
		if err := tx.Create(member).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return business, nil
}

// GetUserBusinesses lists the businesses a user belongs to.
func (s *businessService) GetUserBusinesses(userID string) ([]models.Business, error) {
	var businesses []models.Business
	if err := s.db.
		Joins("JOIN business_members ON business_members.business_id = businesses.id").
		Where("business_members.user_id = ? AND business_members.deleted_at IS NULL", userID).
		Find(&businesses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return businesses, nil
}

// GetMembership returns the user's membership in a business, or ErrNotAMember.
func (s *businessService) GetMembership(businessID, userID string) (*models.BusinessMember, error) {
	var member models.BusinessMember
	if err := s.db.Where("business_id = ? AND user_id = ?", businessID, userID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotAMember
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &member, nil
}

// AddMember adds a user to a business. Only OWNER and ADMIN members may add
// others, and only an OWNER may grant the OWNER role.
func (s *businessService) AddMember(businessID, actorID, userID string, role models.BusinessRole) (*models.BusinessMember, error) {
	switch role {
	case models.RoleOwner, models.RoleAdmin, models.RoleMember, models.RoleViewer:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid role")
	}

	actor, err := s.GetMembership(businessID, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleOwner && actor.Role != models.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}
	if role == models.RoleOwner && actor.Role != models.RoleOwner {
		return nil, apperrors.ErrForbidden
	}

	member := &models.BusinessMember{
		BusinessID: businessID,
		UserID:     userID,
		Role:       role,
	}
	if err := s.db.Create(member).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return member, nil
}
