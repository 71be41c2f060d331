package service

import (
	"fmt"
	"vacation-calendar-bot/internal/models"
	"vacation-calendar-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

type EmployeeService struct {
	repo   repository.EmployeeRepository
	logger *logrus.Logger
}

func NewEmployeeService(repo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		repo:   repo,
		logger: newLogger(),
	}
}

// ListEmployees returns the roster ordered by name.
func (s *EmployeeService) ListEmployees(activeOnly bool) ([]models.Employee, error) {
	return s.repo.List(activeOnly)
}

// EmployeeNames returns only the names of ListEmployees.
func (s *EmployeeService) EmployeeNames(activeOnly bool) ([]string, error) {
	employees, err := s.repo.List(activeOnly)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(employees))
	for _, e := range employees {
		names = append(names, e.Name)
	}
	return names, nil
}

// AddEmployee normalizes the name and adds it to the roster. Adding an
// existing name does nothing. The stored name is returned.
func (s *EmployeeService) AddEmployee(name string) (string, error) {
	name = models.NormalizeEmployeeName(name)
	if name == "" {
		return "", ErrEmptyEmployeeName
	}

	if err := s.repo.Add(name); err != nil {
		return "", fmt.Errorf("failed to add employee %s: %w", name, err)
	}

	s.logger.WithField("employee", name).Info("Employee added")
	return name, nil
}

// SeedEmployees adds the initial roster; blank names are skipped.
func (s *EmployeeService) SeedEmployees(names []string) error {
	normalized := make([]string, 0, len(names))
	for _, n := range names {
		if n = models.NormalizeEmployeeName(n); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return nil
	}

	if err := s.repo.Seed(normalized); err != nil {
		return fmt.Errorf("failed to seed employees: %w", err)
	}

	s.logger.WithField("count", len(normalized)).Info("Employee roster seeded")
	return nil
}

// SetEmployeeActive toggles the active flag. It reports false when the name
// is not on the roster.
func (s *EmployeeService) SetEmployeeActive(name string, active bool) (bool, error) {
	name = models.NormalizeEmployeeName(name)
	if name == "" {
		return false, ErrEmptyEmployeeName
	}

	found, err := s.repo.SetActive(name, active)
	if err != nil {
		return false, fmt.Errorf("failed to update employee %s: %w", name, err)
	}

	s.logger.WithFields(logrus.Fields{
		"employee": name,
		"active":   active,
		"found":    found,
	}).Info("Employee activation changed")

	return found, nil
}
