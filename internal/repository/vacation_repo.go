package repository

import (
	"errors"
	"time"
	"vacation-calendar-bot/internal/models"

	"gorm.io/gorm"
)

// RequestFilter narrows List. The month window applies only when both Year
// and Month are set; empty Status and Employee match everything.
type RequestFilter struct {
	Year     int
	Month    int
	Status   models.VacationStatus
	Employee string
}

type VacationRepository interface {
	Create(request *models.VacationRequest) error
	GetByID(id uint) (*models.VacationRequest, error)
	HasOverlap(employee string, startDate, endDate time.Time, includePending bool) (bool, error)
	UpdateStatus(id uint, status models.VacationStatus, approvedBy *string, approvedAt *time.Time) (bool, error)
	Delete(id uint) (bool, error)
	DeleteOwnPending(id uint, employee string) (bool, error)
	List(filter RequestFilter) ([]models.VacationRequest, error)
	ListIntersecting(startDate, endDate time.Time) ([]models.VacationRequest, error)
}

type GormVacationRepository struct {
	db *gorm.DB
}

func NewGormVacationRepository(db *gorm.DB) (VacationRepository, error) {
	if err := db.AutoMigrate(&models.VacationRequest{}); err != nil {
		return nil, err
	}
	return &GormVacationRepository{db: db}, nil
}

func (r *GormVacationRepository) Create(request *models.VacationRequest) error {
	return r.db.Create(request).Error
}

func (r *GormVacationRepository) GetByID(id uint) (*models.VacationRequest, error) {
	var request models.VacationRequest
	err := r.db.First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *GormVacationRepository) HasOverlap(employee string, startDate, endDate time.Time, includePending bool) (bool, error) {
	statuses := []models.VacationStatus{models.StatusApproved}
	if includePending {
		statuses = append(statuses, models.StatusPending)
	}

	var count int64
	err := r.db.Model(&models.VacationRequest{}).
		Where("employee = ? AND status IN ?", employee, statuses).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
		Count(&count).Error
	return count > 0, err
}

func (r *GormVacationRepository) UpdateStatus(id uint, status models.VacationStatus, approvedBy *string, approvedAt *time.Time) (bool, error) {
	result := r.db.Model(&models.VacationRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"approved_by": approvedBy,
			"approved_at": approvedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormVacationRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.VacationRequest{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteOwnPending removes the request only while it is pending and belongs
// to employee. Anything else is a silent no-op.
func (r *GormVacationRepository) DeleteOwnPending(id uint, employee string) (bool, error) {
	result := r.db.
		Where("id = ? AND employee = ? AND status = ?", id, employee, models.StatusPending).
		Delete(&models.VacationRequest{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormVacationRepository) List(filter RequestFilter) ([]models.VacationRequest, error) {
	query := r.db.Model(&models.VacationRequest{})

	if filter.Year != 0 && filter.Month != 0 {
		first, last, _ := models.MonthBounds(filter.Year, filter.Month)
		query = query.Where("(start_date BETWEEN ? AND ?) OR (end_date BETWEEN ? AND ?)",
			first, last,
			first, last)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Employee != "" {
		query = query.Where("employee = ?", filter.Employee)
	}

	var requests []models.VacationRequest
	err := query.Order("start_date ASC").Order("id ASC").Find(&requests).Error
	return requests, err
}

// ListIntersecting returns every request whose range touches [startDate, endDate].
func (r *GormVacationRepository) ListIntersecting(startDate, endDate time.Time) ([]models.VacationRequest, error) {
	var requests []models.VacationRequest
	err := r.db.Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
		Order("start_date ASC").
		Order("id ASC").
		Find(&requests).Error
	return requests, err
}
