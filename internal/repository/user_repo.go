package repository

import (
	"errors"
	"vacation-calendar-bot/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByChatID(chatID int64) (*models.User, error)
	Update(user *models.User) error
	UpdateRole(chatID int64, role models.Role) error
	GetManagers() ([]*models.User, error)
	GetByEmployee(employee string) ([]*models.User, error)
}

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) (UserRepository, error) {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, err
	}
	return &GormUserRepository{db: db}, nil
}

func (r *GormUserRepository) Create(user *models.User) error {
	var existing models.User
	result := r.db.Where("chat_id = ?", user.ChatID).First(&existing)
	if result.Error == nil {
		return errors.New("user already exists")
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	return r.db.Create(user).Error
}

func (r *GormUserRepository) GetByChatID(chatID int64) (*models.User, error) {
	var user models.User
	result := r.db.Where("chat_id = ?", chatID).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

func (r *GormUserRepository) Update(user *models.User) error {
	if user.ID == 0 {
		return errors.New("user not found")
	}
	return r.db.Save(user).Error
}

func (r *GormUserRepository) UpdateRole(chatID int64, role models.Role) error {
	result := r.db.Model(&models.User{}).
		Where("chat_id = ?", chatID).
		Update("role", role)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("user not found")
	}

	return nil
}

func (r *GormUserRepository) GetManagers() ([]*models.User, error) {
	var managers []*models.User
	result := r.db.Where("role = ?", models.RoleManager).Find(&managers)

	if result.Error != nil {
		return nil, result.Error
	}

	return managers, nil
}

func (r *GormUserRepository) GetByEmployee(employee string) ([]*models.User, error) {
	var users []*models.User
	result := r.db.Where("employee = ?", employee).Find(&users)

	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}
