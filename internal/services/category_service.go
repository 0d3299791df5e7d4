package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "balanza/internal/errors"
	"balanza/internal/models"
	"balanza/internal/pagination"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// CreateCategory creates a new category. Nesting is one level deep: the
// parent must belong to the same business and must itself have no parent.
func (s *categoryService) CreateCategory(businessID, name, color, icon string, parentID *string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("business_id = ? AND name = ?", businessID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category with this name already exists")
	}

	if parentID != nil {
		parent, err := s.GetCategoryByID(businessID, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.ParentID != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "categories can only be nested one level deep")
		}
	}

	category := &models.Category{
		BusinessID: businessID,
		Name:       name,
		Color:      color,
		Icon:       icon,
		ParentID:   parentID,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// GetBusinessCategories retrieves a paginated list of categories.
func (s *categoryService) GetBusinessCategories(businessID string, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error) {
	page.Defaults()

	base := s.db.Model(&models.Category{}).Where("business_id = ?", businessID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var categories []models.Category
	if err := base.Scopes(pagination.Paginate(page)).Order("name").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(categories, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetCategoryByID retrieves a category by ID scoped to a business.
func (s *categoryService) GetCategoryByID(businessID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND business_id = ?", categoryID, businessID).
		First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory updates a category's descriptive fields and parent.
func (s *categoryService) UpdateCategory(businessID, categoryID string, name, color, icon string, parentID *string) (*models.Category, error) {
	category, err := s.GetCategoryByID(businessID, categoryID)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		if *parentID == categoryID {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "a category cannot be its own parent")
		}
		parent, err := s.GetCategoryByID(businessID, *parentID)
		if err != nil {
			return nil, err
		}
		if parent.ParentID != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "categories can only be nested one level deep")
		}
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if color != "" {
		updates["color"] = color
	}
	if icon != "" {
		updates["icon"] = icon
	}
	if parentID != nil {
		updates["parent_id"] = *parentID
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", category.ID).First(category).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return category, nil
}

// DeleteCategory removes a category that is not referenced by any
// transaction and has no children.
func (s *categoryService) DeleteCategory(businessID, categoryID string) error {
	category, err := s.GetCategoryByID(businessID, categoryID)
	if err != nil {
		return err
	}

	var txCount int64
	if err := s.db.Model(&models.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&txCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if txCount > 0 {
		return apperrors.ErrCategoryInUse
	}

	var childCount int64
	if err := s.db.Model(&models.Category{}).
		Where("parent_id = ?", categoryID).
		Count(&childCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if childCount > 0 {
		return apperrors.ErrCategoryHasChildren
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
