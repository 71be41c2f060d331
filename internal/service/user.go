package service

import (
	"fmt"
	"strings"
	"vacation-calendar-bot/internal/models"
	"vacation-calendar-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

type UserService struct {
	repo         repository.UserRepository
	employeeRepo repository.EmployeeRepository
	logger       *logrus.Logger
}

func NewUserService(repo repository.UserRepository, employeeRepo repository.EmployeeRepository) *UserService {
	return &UserService{
		repo:         repo,
		employeeRepo: employeeRepo,
		logger:       newLogger(),
	}
}

// Register binds the chat to an employee name and puts the name on the
// roster. A chat that is already registered is rebound, keeping its role.
func (s *UserService) Register(chatID int64, username, employee string) (*models.User, error) {
	employee = models.NormalizeEmployeeName(employee)
	if employee == "" {
		return nil, ErrEmptyEmployeeName
	}

	if err := s.employeeRepo.Add(employee); err != nil {
		return nil, fmt.Errorf("failed to add employee %s: %w", employee, err)
	}

	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user != nil {
		user.Employee = employee
		if username != "" {
			user.Username = username
		}
		if err := s.repo.Update(user); err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	} else {
		user = &models.User{
			ChatID:   chatID,
			Username: username,
			Employee: employee,
			Role:     models.RoleEmployee,
		}
		if err := s.repo.Create(user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"chat_id":  chatID,
		"employee": employee,
		"role":     user.Role,
	}).Info("User registered")

	return user, nil
}

// GetUser returns the user bound to chatID or ErrUserNotFound.
func (s *UserService) GetUser(chatID int64) (*models.User, error) {
	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) IsManager(chatID int64) (bool, error) {
	user, err := s.repo.GetByChatID(chatID)
	if err != nil {
		return false, err
	}
	return user != nil && user.IsManager(), nil
}

// InitializeManagers grants the manager role to the configured chats,
// creating placeholder users for chats that never wrote to the bot.
func (s *UserService) InitializeManagers(chatIDs []int64) error {
	for _, chatID := range chatIDs {
		if chatID == 0 {
			continue
		}

		existing, err := s.repo.GetByChatID(chatID)
		if err != nil {
			return err
		}

		if existing != nil {
			if err := s.repo.UpdateRole(chatID, models.RoleManager); err != nil {
				return err
			}
			continue
		}

		manager := &models.User{
			ChatID:   chatID,
			Username: "manager",
			Role:     models.RoleManager,
		}
		if err := s.repo.Create(manager); err != nil {
			return err
		}
	}
	return nil
}

// FormatUserInfo renders the binding for /whoami.
func (s *UserService) FormatUserInfo(user *models.User) string {
	var lines []string

	lines = append(lines, "👤 Profile:")
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("🆔 Chat ID: %d", user.ChatID))

	if user.Username != "" {
		lines = append(lines, fmt.Sprintf("📛 Username: @%s", user.Username))
	}

	if user.Employee != "" {
		lines = append(lines, fmt.Sprintf("👨‍💼 Employee: %s", user.Employee))
	} else {
		lines = append(lines, "👨‍💼 Employee: not registered (use /register NAME)")
	}

	roleEmoji := "👤"
	if user.IsManager() {
		roleEmoji = "👑"
	}
	lines = append(lines, fmt.Sprintf("%s Role: %s", roleEmoji, string(user.Role)))

	return strings.Join(lines, "\n")
}

// GetManagers returns every user allowed to decide on requests.
func (s *UserService) GetManagers() ([]*models.User, error) {
	return s.repo.GetManagers()
}

// ChatsForEmployee returns the users bound to an employee name.
func (s *UserService) ChatsForEmployee(employee string) ([]*models.User, error) {
	return s.repo.GetByEmployee(models.NormalizeEmployeeName(employee))
}
