package repository

import (
	"errors"
	"vacation-calendar-bot/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmployeeRepository interface {
	List(activeOnly bool) ([]models.Employee, error)
	GetByName(name string) (*models.Employee, error)
	Add(name string) error
	Seed(names []string) error
	SetActive(name string, active bool) (bool, error)
}

type GormEmployeeRepository struct {
	db *gorm.DB
}

func NewGormEmployeeRepository(db *gorm.DB) (EmployeeRepository, error) {
	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		return nil, err
	}
	return &GormEmployeeRepository{db: db}, nil
}

func (r *GormEmployeeRepository) List(activeOnly bool) ([]models.Employee, error) {
	var employees []models.Employee
	query := r.db.Model(&models.Employee{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Order("name ASC").Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) GetByName(name string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.Where("name = ?", name).First(&employee).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// Add inserts an active employee; an existing name is left untouched.
func (r *GormEmployeeRepository) Add(name string) error {
	return insertEmployee(r.db, name)
}

// Seed adds every name in a single transaction.
func (r *GormEmployeeRepository) Seed(names []string) error {
	if len(names) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			if err := insertEmployee(tx, name); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetActive toggles the active flag and reports whether the name exists.
func (r *GormEmployeeRepository) SetActive(name string, active bool) (bool, error) {
	result := r.db.Model(&models.Employee{}).
		Where("name = ?", name).
		Update("active", active)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func insertEmployee(db *gorm.DB, name string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&models.Employee{Name: name, Active: true}).Error
}
