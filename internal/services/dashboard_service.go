package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "balanza/internal/errors"
	"balanza/internal/models"
)

// dashboardService aggregates the figures shown on the finance dashboard.
type dashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB) DashboardServicer {
	return &dashboardService{db: db}
}

// GetStats computes the dashboard aggregates for a business: income and
// expense totals for the current calendar month, the sum of all fund
// balances, the total debt across cards (credit used), and the most recent
// transactions.
func (s *dashboardService) GetStats(businessID string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	if err := s.sumAmount(businessID, models.TransactionTypeIncome, monthStart, &stats.TotalIncome); err != nil {
		return nil, err
	}
	if err := s.sumAmount(businessID, models.TransactionTypeExpense, monthStart, &stats.TotalExpense); err != nil {
		return nil, err
	}
	stats.Net = stats.TotalIncome - stats.TotalExpense

	if err := s.db.Model(&models.Balance{}).
		Where("business_id = ? AND entity_type = ?", businessID, models.EntityTypeFund).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&stats.FundsTotal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Model(&models.Card{}).
		Where("business_id = ? AND is_active = ?", businessID, true).
		Select("COALESCE(SUM(credit_limit - available_credit), 0)").
		Scan(&stats.CardsDebt).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Where("business_id = ?", businessID).
		Order("created_at DESC").
		Limit(10).
		Find(&stats.RecentTransactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return stats, nil
}

func (s *dashboardService) sumAmount(businessID string, txType models.TransactionType, since time.Time, out *int64) error {
	if err := s.db.Model(&models.Transaction{}).
		Where("business_id = ? AND type = ? AND created_at >= ?", businessID, txType, since).
		Select("COALESCE(SUM(amount), 0)").
		Scan(out).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
