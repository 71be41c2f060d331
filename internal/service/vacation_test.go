package service

import (
	"errors"
	"testing"
	"time"
	"vacation-calendar-bot/internal/models"
	"vacation-calendar-bot/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVacationService(repo repository.VacationRepository) *VacationService {
	s := NewVacationService(repo)
	s.now = func() time.Time { return time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestVacationService_CreateRequest(t *testing.T) {
	repo := newMemVacationRepo()
	s := newVacationService(repo)

	local := time.FixedZone("CET", 3600)
	request, err := s.CreateRequest("  ana ", time.Date(2024, 3, 30, 18, 0, 0, 0, local), day(2024, 4, 2), "  ")
	require.NoError(t, err)

	assert.Equal(t, "ANA", request.Employee)
	assert.Equal(t, models.StatusPending, request.Status)
	assert.Equal(t, day(2024, 3, 30), request.StartDate)
	assert.Nil(t, request.Note)

	all, err := s.ListRequests(repository.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, request.ID, all[0].ID)
	assert.Equal(t, models.StatusPending, all[0].Status)
}

func TestVacationService_CreateRequestKeepsReversedRange(t *testing.T) {
	s := newVacationService(newMemVacationRepo())

	request, err := s.CreateRequest("ANA", day(2024, 3, 10), day(2024, 3, 1), "oops")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 3, 10), request.StartDate)
	assert.Equal(t, day(2024, 3, 1), request.EndDate)
	assert.Equal(t, "oops", request.NoteText())
}

func TestVacationService_CreateRequestErrors(t *testing.T) {
	repo := newMemVacationRepo()
	s := newVacationService(repo)

	_, err := s.CreateRequest("   ", day(2024, 3, 1), day(2024, 3, 2), "")
	assert.ErrorIs(t, err, ErrEmptyEmployeeName)

	boom := errors.New("disk full")
	repo.failWith = boom
	_, err = s.CreateRequest("ANA", day(2024, 3, 1), day(2024, 3, 2), "")
	assert.ErrorIs(t, err, boom)
}

func TestVacationService_HasOverlap(t *testing.T) {
	s := newVacationService(newMemVacationRepo())

	pending, err := s.CreateRequest("ANA", day(2024, 3, 1), day(2024, 3, 5), "")
	require.NoError(t, err)

	overlap, err := s.HasOverlap("ana", day(2024, 3, 5), day(2024, 3, 8), true)
	require.NoError(t, err)
	assert.True(t, overlap)

	overlap, err = s.HasOverlap("ANA", day(2024, 3, 5), day(2024, 3, 8), false)
	require.NoError(t, err)
	assert.False(t, overlap)

	require.NoError(t, s.Reject(pending.ID, "BOSS"))
	overlap, err = s.HasOverlap("ANA", day(2024, 3, 5), day(2024, 3, 8), true)
	require.NoError(t, err)
	assert.False(t, overlap, "rejected requests never overlap")

	require.NoError(t, s.Approve(pending.ID, "BOSS"))
	overlap, err = s.HasOverlap("ANA", day(2024, 3, 5), day(2024, 3, 8), false)
	require.NoError(t, err)
	assert.True(t, overlap)
}

func TestVacationService_UpdateStatus(t *testing.T) {
	repo := newMemVacationRepo()
	s := newVacationService(repo)

	request, err := s.CreateRequest("ANA", day(2024, 3, 1), day(2024, 3, 5), "")
	require.NoError(t, err)

	require.NoError(t, s.UpdateStatus(request.ID, models.StatusApproved, "X"))
	got, err := s.GetRequest(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, got.Status)
	assert.Equal(t, "X", got.ApproverName())
	require.NotNil(t, got.ApprovedAt)
	assert.Equal(t, time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC), *got.ApprovedAt)

	require.NoError(t, s.UpdateStatus(request.ID, models.StatusPending, "X"))
	got, err = s.GetRequest(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Nil(t, got.ApprovedBy)
	assert.Nil(t, got.ApprovedAt)

	require.NoError(t, s.Reject(request.ID, "Y"))
	got, err = s.GetRequest(request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, got.Status)
	assert.Equal(t, "Y", got.ApproverName())

	require.NoError(t, s.Reopen(request.ID))
	got, err = s.GetRequest(request.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPending())
}

func TestVacationService_UpdateStatusErrors(t *testing.T) {
	s := newVacationService(newMemVacationRepo())

	request, err := s.CreateRequest("ANA", day(2024, 3, 1), day(2024, 3, 5), "")
	require.NoError(t, err)

	err = s.UpdateStatus(request.ID, models.VacationStatus("cancelled"), "X")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = s.Approve(request.ID+100, "X")
	assert.ErrorIs(t, err, ErrRequestNotFound)

	_, err = s.GetRequest(request.ID + 100)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestVacationService_DeleteOwnRequest(t *testing.T) {
	s := newVacationService(newMemVacationRepo())

	pending, err := s.CreateRequest("ANA", day(2024, 3, 1), day(2024, 3, 5), "")
	require.NoError(t, err)
	approved, err := s.CreateRequest("ANA", day(2024, 4, 1), day(2024, 4, 5), "")
	require.NoError(t, err)
	require.NoError(t, s.Approve(approved.ID, "BOSS"))

	tests := []struct {
		name     string
		id       uint
		employee string
		want     bool
	}{
		{"other employee", pending.ID, "BOB", false},
		{"not pending", approved.ID, "ANA", false},
		{"missing", 999, "ANA", false},
		{"own pending, any case", pending.ID, "ana", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			deleted, err := s.DeleteOwnRequest(tc.id, tc.employee)
			require.NoError(t, err)
			assert.Equal(t, tc.want, deleted)
		})
	}

	all, err := s.ListRequests(repository.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, approved.ID, all[0].ID)

	deleted, err := s.DeleteRequest(approved.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestVacationService_ListRequests(t *testing.T) {
	s := newVacationService(newMemVacationRepo())

	a, err := s.CreateRequest("ANA", day(2024, 3, 30), day(2024, 4, 2), "")
	require.NoError(t, err)
	b, err := s.CreateRequest("BOB", day(2024, 4, 10), day(2024, 4, 11), "")
	require.NoError(t, err)
	require.NoError(t, s.Approve(b.ID, "BOSS"))

	got, err := s.ListRequests(repository.RequestFilter{Year: 2024, Month: 4, Status: models.StatusPending})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	got, err = s.EmployeeRequests("bob")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)

	_, err = s.ListRequests(repository.RequestFilter{Year: 2024, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = s.ListRequests(repository.RequestFilter{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
