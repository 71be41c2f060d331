package service

import (
	"fmt"
	"strings"
	"time"
	"vacation-calendar-bot/internal/models"
	"vacation-calendar-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

type VacationService struct {
	repo   repository.VacationRepository
	now    func() time.Time
	logger *logrus.Logger
}

func NewVacationService(repo repository.VacationRepository) *VacationService {
	return &VacationService{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: newLogger(),
	}
}

// CreateRequest stores a pending request. The range is taken as given: the
// caller orders the dates and decides what to do with HasOverlap.
func (s *VacationService) CreateRequest(employee string, startDate, endDate time.Time, note string) (*models.VacationRequest, error) {
	employee = models.NormalizeEmployeeName(employee)
	if employee == "" {
		return nil, ErrEmptyEmployeeName
	}

	request := &models.VacationRequest{
		Employee:  employee,
		StartDate: models.NormalizeDate(startDate),
		EndDate:   models.NormalizeDate(endDate),
		Status:    models.StatusPending,
	}
	if note = strings.TrimSpace(note); note != "" {
		request.Note = &note
	}

	if err := s.repo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create vacation request: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":       request.ID,
		"employee": employee,
		"start":    request.StartDate.Format("2006-01-02"),
		"end":      request.EndDate.Format("2006-01-02"),
	}).Info("Vacation request created")

	return request, nil
}

// HasOverlap reports whether employee already holds an approved request, or a
// pending one when includePending is set, intersecting [startDate, endDate].
func (s *VacationService) HasOverlap(employee string, startDate, endDate time.Time, includePending bool) (bool, error) {
	employee = models.NormalizeEmployeeName(employee)
	if employee == "" {
		return false, ErrEmptyEmployeeName
	}
	return s.repo.HasOverlap(employee, models.NormalizeDate(startDate), models.NormalizeDate(endDate), includePending)
}

// UpdateStatus sets the status. Approved and rejected stamp the approver and
// the current time; any other status clears both.
func (s *VacationService) UpdateStatus(id uint, status models.VacationStatus, approver string) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var approvedBy *string
	var approvedAt *time.Time
	if status.IsDecision() {
		now := s.now()
		approvedBy = &approver
		approvedAt = &now
	}

	found, err := s.repo.UpdateStatus(id, status, approvedBy, approvedAt)
	if err != nil {
		return fmt.Errorf("failed to update vacation request %d: %w", id, err)
	}
	if !found {
		return ErrRequestNotFound
	}

	s.logger.WithFields(logrus.Fields{
		"id":       id,
		"status":   status,
		"approver": approver,
	}).Info("Vacation request status updated")

	return nil
}

func (s *VacationService) Approve(id uint, approver string) error {
	return s.UpdateStatus(id, models.StatusApproved, approver)
}

func (s *VacationService) Reject(id uint, approver string) error {
	return s.UpdateStatus(id, models.StatusRejected, approver)
}

// Reopen puts a decided request back to pending.
func (s *VacationService) Reopen(id uint) error {
	return s.UpdateStatus(id, models.StatusPending, "")
}

// DeleteOwnRequest removes a request only if it belongs to employee and is
// still pending. Otherwise nothing happens and false is returned.
func (s *VacationService) DeleteOwnRequest(id uint, employee string) (bool, error) {
	employee = models.NormalizeEmployeeName(employee)
	if employee == "" {
		return false, ErrEmptyEmployeeName
	}

	deleted, err := s.repo.DeleteOwnPending(id, employee)
	if err != nil {
		return false, fmt.Errorf("failed to delete vacation request %d: %w", id, err)
	}

	if deleted {
		s.logger.WithFields(logrus.Fields{"id": id, "employee": employee}).Info("Vacation request cancelled")
	}
	return deleted, nil
}

// DeleteRequest is the administrative delete: any status, any owner.
func (s *VacationService) DeleteRequest(id uint) (bool, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return false, fmt.Errorf("failed to delete vacation request %d: %w", id, err)
	}

	if deleted {
		s.logger.WithField("id", id).Info("Vacation request deleted")
	}
	return deleted, nil
}

func (s *VacationService) GetRequest(id uint) (*models.VacationRequest, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vacation request %d: %w", id, err)
	}
	if request == nil {
		return nil, ErrRequestNotFound
	}
	return request, nil
}

// ListRequests returns requests ordered by start date. Year and month narrow
// the list to requests starting or ending inside that month.
func (s *VacationService) ListRequests(filter repository.RequestFilter) ([]models.VacationRequest, error) {
	if filter.Month != 0 && (filter.Month < 1 || filter.Month > 12) {
		return nil, ErrInvalidMonth
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, filter.Status)
	}
	filter.Employee = models.NormalizeEmployeeName(filter.Employee)

	return s.repo.List(filter)
}

// EmployeeRequests returns every request of one employee.
func (s *VacationService) EmployeeRequests(employee string) ([]models.VacationRequest, error) {
	employee = models.NormalizeEmployeeName(employee)
	if employee == "" {
		return nil, ErrEmptyEmployeeName
	}
	return s.repo.List(repository.RequestFilter{Employee: employee})
}
