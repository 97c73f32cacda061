package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"foodchef/entity"
	"foodchef/pkg/notify"
	"foodchef/repository"
)

func newReservationService(t *testing.T, totalTables int) *ReservationService {
	t.Helper()
	db := testDB(t)
	return NewReservationService(db, repository.NewReservationRepository(db), testLogger(), notify.Noop{}, totalTables)
}

func validReservationReq() *CreateReservationReq {
	return &CreateReservationReq{
		Name:            "Jordan Blake",
		Email:           "jordan@example.com",
		Phone:           "555-0101",
		ReservationDate: "2026-09-15",
		ReservationTime: "19:00",
		Guests:          4,
	}
}

func TestCreateReservationDefaults(t *testing.T) {
	s := newReservationService(t, 20)

	res, err := s.Create(validReservationReq())
	require.NoError(t, err)
	require.NotZero(t, res.ID)

	got, err := s.Get(res.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ReservationPending, got.Status)
	require.False(t, got.ReminderSent)
	require.Equal(t, "2026-09-15", got.ReservationDate)
	require.Equal(t, "19:00", got.ReservationTime)
}

func TestCreateReservationValidation(t *testing.T) {
	s := newReservationService(t, 20)

	tests := []struct {
		name   string
		mutate func(*CreateReservationReq)
	}{
		{"missing name", func(r *CreateReservationReq) { r.Name = "  " }},
		{"missing email", func(r *CreateReservationReq) { r.Email = "" }},
		{"missing date", func(r *CreateReservationReq) { r.ReservationDate = "" }},
		{"missing time", func(r *CreateReservationReq) { r.ReservationTime = "" }},
		{"zero guests", func(r *CreateReservationReq) { r.Guests = 0 }},
		{"bad date format", func(r *CreateReservationReq) { r.ReservationDate = "15/09/2026" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validReservationReq()
			tt.mutate(req)
			_, err := s.Create(req)
			require.True(t, IsValidation(err), "want validation error, got %v", err)
		})
	}

	var count int64
	require.NoError(t, s.DB.Model(&entity.Reservation{}).Count(&count).Error)
	require.Zero(t, count, "rejected requests must not insert rows")
}

func TestCreateReservationSlotFull(t *testing.T) {
	s := newReservationService(t, 2)

	for i := 0; i < 2; i++ {
		_, err := s.Create(validReservationReq())
		require.NoError(t, err)
	}

	_, err := s.Create(validReservationReq())
	require.ErrorIs(t, err, ErrNoAvailability)

	// a different slot is unaffected
	other := validReservationReq()
	other.ReservationTime = "20:00"
	_, err = s.Create(other)
	require.NoError(t, err)
}

func TestCancelledReservationFreesSlot(t *testing.T) {
	s := newReservationService(t, 1)

	res, err := s.Create(validReservationReq())
	require.NoError(t, err)

	_, err = s.Create(validReservationReq())
	require.ErrorIs(t, err, ErrNoAvailability)

	require.NoError(t, s.Cancel(res.ID, "change of plans"))

	_, err = s.Create(validReservationReq())
	require.NoError(t, err)
}

func TestCheckAvailability(t *testing.T) {
	s := newReservationService(t, 20)

	_, err := s.Create(validReservationReq())
	require.NoError(t, err)

	av, err := s.CheckAvailability("2026-09-15", "19:00", 2)
	require.NoError(t, err)
	require.True(t, av.Available)
	require.Equal(t, int64(1), av.BookedTables)
	require.Equal(t, int64(19), av.AvailableTables)
	require.Equal(t, 20, av.TotalTables)
}

func TestCancelAppendsReason(t *testing.T) {
	s := newReservationService(t, 20)

	req := validReservationReq()
	req.Message = "window seat please"
	res, err := s.Create(req)
	require.NoError(t, err)

	require.NoError(t, s.Cancel(res.ID, "weather"))

	got, err := s.Get(res.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ReservationCancelled, got.Status)
	require.Equal(t, "window seat please Cancelled: weather", got.Message)
}

func TestCancelAnyStatus(t *testing.T) {
	s := newReservationService(t, 20)

	res, err := s.Create(validReservationReq())
	require.NoError(t, err)
	require.NoError(t, s.UpdateStatus(res.ID, entity.ReservationCompleted))

	// unlike orders, reservations can be cancelled from any state
	require.NoError(t, s.Cancel(res.ID, "admin correction"))

	got, err := s.Get(res.ID)
	require.NoError(t, err)
	require.Equal(t, entity.ReservationCancelled, got.Status)
}

func TestUpdateReservationStatus(t *testing.T) {
	s := newReservationService(t, 20)

	res, err := s.Create(validReservationReq())
	require.NoError(t, err)

	require.NoError(t, s.UpdateStatus(res.ID, entity.ReservationConfirmed))

	err = s.UpdateStatus(res.ID, "seated")
	require.True(t, IsValidation(err))

	require.ErrorIs(t, s.UpdateStatus(9999, entity.ReservationConfirmed), ErrNotFound)
}

func TestSendRemindersFlipsFlagOnce(t *testing.T) {
	s := newReservationService(t, 20)

	res, err := s.Create(validReservationReq())
	require.NoError(t, err)
	require.NoError(t, s.UpdateStatus(res.ID, entity.ReservationConfirmed))

	// point the slot at tomorrow so the reservation is due
	tomorrow := tomorrowDate()
	require.NoError(t, s.DB.Model(&entity.Reservation{}).
		Where("id = ?", res.ID).
		Update("reservation_date", tomorrow).Error)

	report, err := s.SendReminders(1)
	require.NoError(t, err)
	require.Equal(t, 1, report.Sent)
	require.Equal(t, 1, report.Total)

	got, err := s.Get(res.ID)
	require.NoError(t, err)
	require.True(t, got.ReminderSent)

	// second run finds nothing due
	report, err = s.SendReminders(1)
	require.NoError(t, err)
	require.Zero(t, report.Total)
}

func TestReservationStatistics(t *testing.T) {
	s := newReservationService(t, 20)

	for _, tm := range []string{"18:00", "18:00", "19:00"} {
		req := validReservationReq()
		req.ReservationTime = tm
		res, err := s.Create(req)
		require.NoError(t, err)
		require.NoError(t, s.UpdateStatus(res.ID, entity.ReservationConfirmed))
	}

	stats, err := s.Statistics("2026-09-01", "2026-09-30")
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalReservations)
	require.Equal(t, int64(3), stats.Confirmed)
	require.NotEmpty(t, stats.PopularTimes)
	require.Equal(t, "18:00", stats.PopularTimes[0].ReservationTime)
	require.Equal(t, int64(2), stats.PopularTimes[0].Count)
}
