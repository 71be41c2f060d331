package service

import (
	"fmt"
	"time"
	"vacation-calendar-bot/internal/models"
	"vacation-calendar-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

type CalendarService struct {
	vacationRepo repository.VacationRepository
	employeeRepo repository.EmployeeRepository
	logger       *logrus.Logger
}

func NewCalendarService(vacationRepo repository.VacationRepository, employeeRepo repository.EmployeeRepository) *CalendarService {
	return &CalendarService{
		vacationRepo: vacationRepo,
		employeeRepo: employeeRepo,
		logger:       newLogger(),
	}
}

// GetCalendarMatrix projects every request touching the month onto the
// active roster. When requests overlap on a day the cell shows the strongest
// status (approved > pending > rejected); among equals the most recently
// created request wins.
func (s *CalendarService) GetCalendarMatrix(year, month int) (*models.CalendarMatrix, error) {
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	employees, err := s.employeeRepo.List(true)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	first, last, days := models.MonthBounds(year, month)

	requests, err := s.vacationRepo.ListIntersecting(first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}

	matrix := &models.CalendarMatrix{
		Year:        year,
		Month:       month,
		DaysInMonth: days,
		Employees:   make([]string, 0, len(employees)),
		Cells:       make(map[string][]models.VacationStatus, len(employees)),
	}

	winners := make(map[string][]*models.VacationRequest, len(employees))
	for _, e := range employees {
		matrix.Employees = append(matrix.Employees, e.Name)
		matrix.Cells[e.Name] = make([]models.VacationStatus, days)
		winners[e.Name] = make([]*models.VacationRequest, days)
	}

	for i := range requests {
		request := &requests[i]
		row, ok := winners[request.Employee]
		if !ok {
			continue
		}

		from := maxDate(models.NormalizeDate(request.StartDate), first)
		to := minDate(models.NormalizeDate(request.EndDate), last)
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			idx := d.Day() - 1
			if current := row[idx]; current == nil || outranks(request, current) {
				row[idx] = request
			}
		}
	}

	for name, row := range winners {
		cells := matrix.Cells[name]
		for i, request := range row {
			if request != nil {
				cells[i] = request.Status
			}
		}
	}

	s.logger.WithFields(logrus.Fields{
		"year":      year,
		"month":     month,
		"employees": len(employees),
		"requests":  len(requests),
	}).Debug("Calendar matrix built")

	return matrix, nil
}

// outranks reports whether a should replace b in a calendar cell.
func outranks(a, b *models.VacationRequest) bool {
	if a.Status.Rank() != b.Status.Rank() {
		return a.Status.Rank() > b.Status.Rank()
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
