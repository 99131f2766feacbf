package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zahrirmdn/loreomah/internal/models"
	"github.com/zahrirmdn/loreomah/internal/service"
	"github.com/zahrirmdn/loreomah/internal/statemachine"
)

func makeReservation(t *testing.T, svc *service.ReservationService, owner string) *models.Reservation {
	t.Helper()
	reservation, err := svc.Create(models.ReservationRequest{
		Name:   "Budi",
		Phone:  "081234567890",
		Guests: 4,
		Date:   "2026-09-01T19:00:00",
	}, owner)
	require.NoError(t, err)
	return reservation
}

func TestCreateReservation(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, &emailRecorder{}, &waRecorder{})

	reservation := makeReservation(t, svc, "guest@example.com")

	require.NotEmpty(t, reservation.ID)
	require.Equal(t, models.StatusPending, reservation.Status)
	require.NotNil(t, reservation.UserEmail)
	require.Equal(t, "guest@example.com", *reservation.UserEmail)
	require.True(t, reservation.IsRead)
	require.False(t, reservation.IsReadByAdmin)
}

func TestCancelReservation(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, &emailRecorder{}, &waRecorder{})

	reservation := makeReservation(t, svc, "guest@example.com")

	_, err := svc.Cancel(reservation.ID, "other@example.com")
	require.ErrorIs(t, err, service.ErrNotYourReservation)

	cancelled, err := svc.Cancel(reservation.ID, "guest@example.com")
	require.NoError(t, err)
	require.Equal(t, models.StatusCancelled, cancelled.Status)

	// cancelling again is a no-op
	again, err := svc.Cancel(reservation.ID, "guest@example.com")
	require.NoError(t, err)
	require.Equal(t, models.StatusCancelled, again.Status)
}

func TestCancelConfirmedReservationRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, &emailRecorder{}, &waRecorder{})

	reservation := makeReservation(t, svc, "guest@example.com")
	_, err := svc.Confirm(reservation.ID)
	require.NoError(t, err)

	_, err = svc.Cancel(reservation.ID, "guest@example.com")
	require.ErrorIs(t, err, statemachine.ErrInvalidTransition)
}

func TestConfirmReservationNotifiesGuest(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{}
	wa := &waRecorder{}
	svc := newReservationService(t, db, mail, wa)

	reservation := makeReservation(t, svc, "guest@example.com")

	confirmed, err := svc.Confirm(reservation.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusConfirmed, confirmed.Status)
	require.False(t, confirmed.IsRead, "owner should see the status change as unread")

	require.Equal(t, []string{"guest@example.com"}, mail.confirmed)
	require.Len(t, wa.messages, 1)
	require.Contains(t, wa.messages[0].Message, "Disetujui")
}

func TestConfirmSurvivesNotifierFailure(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, &emailRecorder{fail: true}, &waRecorder{fail: true})

	reservation := makeReservation(t, svc, "guest@example.com")

	confirmed, err := svc.Confirm(reservation.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusConfirmed, confirmed.Status)
}

func TestConfirmIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	mail := &emailRecorder{}
	svc := newReservationService(t, db, mail, &waRecorder{})

	reservation := makeReservation(t, svc, "guest@example.com")
	_, err := svc.Confirm(reservation.ID)
	require.NoError(t, err)

	again, err := svc.Confirm(reservation.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusConfirmed, again.Status)
}

func TestDeclineReservation(t *testing.T) {
	db := newTestDB(t)
	wa := &waRecorder{}
	svc := newReservationService(t, db, &emailRecorder{}, wa)

	reservation := makeReservation(t, svc, "guest@example.com")

	declined, err := svc.Decline(reservation.ID)
	require.NoError(t, err)
	require.Equal(t, models.StatusDeclined, declined.Status)
	require.Len(t, wa.messages, 1)
	require.Contains(t, wa.messages[0].Message, "Tidak Dapat Diproses")

	// declined is terminal
	_, err = svc.Confirm(reservation.ID)
	require.ErrorIs(t, err, statemachine.ErrInvalidTransition)
}

func TestReservationNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, &emailRecorder{}, &waRecorder{})

	_, err := svc.Confirm("missing")
	require.ErrorIs(t, err, service.ErrReservationNotFound)
	_, err = svc.Cancel("missing", "guest@example.com")
	require.ErrorIs(t, err, service.ErrReservationNotFound)
	require.ErrorIs(t, svc.Delete("missing"), service.ErrReservationNotFound)
}

func TestListMinePagination(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, &emailRecorder{}, &waRecorder{})

	for i := 0; i < 15; i++ {
		reservation, err := svc.Create(models.ReservationRequest{
			Name:   fmt.Sprintf("Guest %d", i),
			Phone:  "081234567890",
			Guests: 2,
			Date:   "2026-09-01T19:00:00",
		}, "guest@example.com")
		require.NoError(t, err)
		_ = reservation
	}
	makeReservation(t, svc, "other@example.com")

	page1, err := svc.ListMine("guest@example.com", 1, 10, "")
	require.NoError(t, err)
	require.Equal(t, int64(15), page1.Total)
	require.Len(t, page1.Items, 10)

	page2, err := svc.ListMine("guest@example.com", 2, 10, "")
	require.NoError(t, err)
	require.Len(t, page2.Items, 5)

	// out-of-range pages clamp back to defaults
	clamped, err := svc.ListMine("guest@example.com", 0, 0, "")
	require.NoError(t, err)
	require.Equal(t, 1, clamped.Page)
	require.Equal(t, 10, clamped.Size)

	// oversized pages clamp to the maximum, not the default
	capped, err := svc.ListMine("guest@example.com", 1, 500, "")
	require.NoError(t, err)
	require.Equal(t, 100, capped.Size)
	require.Len(t, capped.Items, 15)
}

func TestListMineStatusFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, &emailRecorder{}, &waRecorder{})

	first := makeReservation(t, svc, "guest@example.com")
	makeReservation(t, svc, "guest@example.com")
	_, err := svc.Confirm(first.ID)
	require.NoError(t, err)

	confirmed, err := svc.ListMine("guest@example.com", 1, 10, models.StatusConfirmed)
	require.NoError(t, err)
	require.Len(t, confirmed.Items, 1)
	require.Equal(t, first.ID, confirmed.Items[0].ID)

	pending, err := svc.ListMine("guest@example.com", 1, 10, models.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending.Items, 1)
}

func TestMarkReadFlags(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, &emailRecorder{}, &waRecorder{})

	first := makeReservation(t, svc, "guest@example.com")
	second := makeReservation(t, svc, "guest@example.com")

	_, err := svc.Confirm(first.ID)
	require.NoError(t, err)
	_, err = svc.Decline(second.ID)
	require.NoError(t, err)

	_, err = svc.MarkRead(first.ID, "other@example.com")
	require.ErrorIs(t, err, service.ErrNotYourReservation)

	marked, err := svc.MarkRead(first.ID, "guest@example.com")
	require.NoError(t, err)
	require.True(t, marked.IsRead)

	count, err := svc.MarkAllRead("guest@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), count, "only the still-unread reservation should be touched")

	adminCount, err := svc.MarkAllReadByAdmin()
	require.NoError(t, err)
	require.Equal(t, int64(2), adminCount)
}

func TestUpdateReservation(t *testing.T) {
	db := newTestDB(t)
	svc := newReservationService(t, db, &emailRecorder{}, &waRecorder{})

	reservation := makeReservation(t, svc, "guest@example.com")

	_, err := svc.Update(reservation.ID, models.UpdateReservationRequest{})
	require.ErrorIs(t, err, service.ErrNoFieldsToUpdate)

	name := "Siti"
	guests := 6
	updated, err := svc.Update(reservation.ID, models.UpdateReservationRequest{Name: &name, Guests: &guests})
	require.NoError(t, err)
	require.Equal(t, "Siti", updated.Name)
	require.Equal(t, 6, updated.Guests)
	require.Equal(t, models.StatusPending, updated.Status)
}
