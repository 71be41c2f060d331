package service

import (
	"errors"
	"sort"
	"time"
	"vacation-calendar-bot/internal/models"
	"vacation-calendar-bot/internal/repository"
)

// memVacationRepo mirrors GormVacationRepository on a map.
type memVacationRepo struct {
	nextID   uint
	clock    time.Time
	requests map[uint]models.VacationRequest
	failWith error
}

func newMemVacationRepo() *memVacationRepo {
	return &memVacationRepo{
		clock:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		requests: make(map[uint]models.VacationRequest),
	}
}

func (r *memVacationRepo) Create(request *models.VacationRequest) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	request.ID = r.nextID
	request.CreatedAt = r.clock
	r.requests[request.ID] = *request
	return nil
}

func (r *memVacationRepo) GetByID(id uint) (*models.VacationRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	return &request, nil
}

func (r *memVacationRepo) HasOverlap(employee string, startDate, endDate time.Time, includePending bool) (bool, error) {
	for _, request := range r.requests {
		if request.Employee != employee {
			continue
		}
		if request.Status != models.StatusApproved && !(includePending && request.Status == models.StatusPending) {
			continue
		}
		if request.Overlaps(startDate, endDate) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memVacationRepo) UpdateStatus(id uint, status models.VacationStatus, approvedBy *string, approvedAt *time.Time) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	if !status.IsValid() {
		return false, errors.New("CHECK constraint failed: chk_vacations_status")
	}
	request, ok := r.requests[id]
	if !ok {
		return false, nil
	}
	request.Status = status
	request.ApprovedBy = approvedBy
	request.ApprovedAt = approvedAt
	r.requests[id] = request
	return true, nil
}

func (r *memVacationRepo) Delete(id uint) (bool, error) {
	if _, ok := r.requests[id]; !ok {
		return false, nil
	}
	delete(r.requests, id)
	return true, nil
}

func (r *memVacationRepo) DeleteOwnPending(id uint, employee string) (bool, error) {
	request, ok := r.requests[id]
	if !ok || request.Employee != employee || request.Status != models.StatusPending {
		return false, nil
	}
	delete(r.requests, id)
	return true, nil
}

func (r *memVacationRepo) List(filter repository.RequestFilter) ([]models.VacationRequest, error) {
	var first, last time.Time
	byMonth := filter.Year != 0 && filter.Month != 0
	if byMonth {
		first, last, _ = models.MonthBounds(filter.Year, filter.Month)
	}

	in := func(t time.Time) bool { return !t.Before(first) && !t.After(last) }

	var out []models.VacationRequest
	for _, request := range r.requests {
		if byMonth && !in(request.StartDate) && !in(request.EndDate) {
			continue
		}
		if filter.Status != "" && request.Status != filter.Status {
			continue
		}
		if filter.Employee != "" && request.Employee != filter.Employee {
			continue
		}
		out = append(out, request)
	}
	sortByStart(out)
	return out, nil
}

func (r *memVacationRepo) ListIntersecting(startDate, endDate time.Time) ([]models.VacationRequest, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []models.VacationRequest
	for _, request := range r.requests {
		if request.Overlaps(startDate, endDate) {
			out = append(out, request)
		}
	}
	sortByStart(out)
	return out, nil
}

func sortByStart(requests []models.VacationRequest) {
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].StartDate.Equal(requests[j].StartDate) {
			return requests[i].StartDate.Before(requests[j].StartDate)
		}
		return requests[i].ID < requests[j].ID
	})
}

type memEmployeeRepo struct {
	employees map[string]bool
}

func newMemEmployeeRepo(names ...string) *memEmployeeRepo {
	r := &memEmployeeRepo{employees: make(map[string]bool)}
	for _, n := range names {
		r.employees[n] = true
	}
	return r
}

func (r *memEmployeeRepo) List(activeOnly bool) ([]models.Employee, error) {
	var out []models.Employee
	for name, active := range r.employees {
		if activeOnly && !active {
			continue
		}
		out = append(out, models.Employee{Name: name, Active: active})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memEmployeeRepo) GetByName(name string) (*models.Employee, error) {
	active, ok := r.employees[name]
	if !ok {
		return nil, nil
	}
	return &models.Employee{Name: name, Active: active}, nil
}

func (r *memEmployeeRepo) Add(name string) error {
	if _, ok := r.employees[name]; !ok {
		r.employees[name] = true
	}
	return nil
}

func (r *memEmployeeRepo) Seed(names []string) error {
	for _, n := range names {
		_ = r.Add(n)
	}
	return nil
}

func (r *memEmployeeRepo) SetActive(name string, active bool) (bool, error) {
	if _, ok := r.employees[name]; !ok {
		return false, nil
	}
	r.employees[name] = active
	return true, nil
}

type memUserRepo struct {
	nextID uint
	users  map[int64]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*models.User)}
}

func (r *memUserRepo) Create(user *models.User) error {
	if _, ok := r.users[user.ChatID]; ok {
		return errors.New("user already exists")
	}
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ChatID] = &copied
	return nil
}

func (r *memUserRepo) GetByChatID(chatID int64) (*models.User, error) {
	user, ok := r.users[chatID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) Update(user *models.User) error {
	copied := *user
	r.users[user.ChatID] = &copied
	return nil
}

func (r *memUserRepo) UpdateRole(chatID int64, role models.Role) error {
	user, ok := r.users[chatID]
	if !ok {
		return errors.New("user not found")
	}
	user.Role = role
	return nil
}

func (r *memUserRepo) GetManagers() ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		if u.IsManager() {
			copied := *u
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memUserRepo) GetByEmployee(employee string) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.users {
		if u.Employee == employee {
			copied := *u
			out = append(out, &copied)
		}
	}
	return out, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
