package appointment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
	"github.com/BruksfildServices01/barbershop-manager/internal/models"
)

var grid = Grid{OpenHour: 9, CloseHour: 20, SlotMinutes: 30}

func TestSlots(t *testing.T) {
	slots := grid.Slots()
	require.Len(t, slots, 22)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "19:30", slots[len(slots)-1])
	assert.Equal(t, slots, grid.Slots())

	odd := Grid{OpenHour: 9, CloseHour: 10, SlotMinutes: 45}
	assert.Equal(t, []string{"09:00"}, odd.Slots())
	assert.Nil(t, Grid{OpenHour: 10, CloseHour: 9, SlotMinutes: 30}.Slots())
}

func TestAvailableSlotsExcludesHeld(t *testing.T) {
	existing := []models.Appointment{
		{BarberID: "b1", Date: "2024-05-10", Time: "14:00", Status: string(StatusConfirmed)},
		{BarberID: "b1", Date: "2024-05-10", Time: "15:00", Status: string(StatusCancelled)},
		{BarberID: "b2", Date: "2024-05-10", Time: "16:00", Status: string(StatusPending)},
		{BarberID: "b1", Date: "2024-05-11", Time: "09:00", Status: string(StatusPending)},
	}

	free := grid.AvailableSlots("b1", "2024-05-10", existing)
	assert.Len(t, free, 21)
	assert.NotContains(t, free, "14:00")
	assert.Contains(t, free, "15:00")
	assert.Contains(t, free, "16:00")
	assert.Contains(t, free, "09:00")
}

func TestAvailableSlotsPendingAlsoHolds(t *testing.T) {
	existing := []models.Appointment{
		{BarberID: "b1", Date: "2024-05-10", Time: "09:00", Status: string(StatusPending)},
		{BarberID: "b1", Date: "2024-05-10", Time: "09:30", Status: string(StatusCompleted)},
	}
	free := grid.AvailableSlots("b1", "2024-05-10", existing)
	assert.NotContains(t, free, "09:00")
	assert.Contains(t, free, "09:30")
}

func TestTransitions(t *testing.T) {
	to, err := Machine.Apply(EventConfirm, StatusPending)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, to)

	to, err = Machine.Apply(EventComplete, to)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, to)

	_, err = Machine.Apply(EventComplete, StatusPending)
	assert.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))

	for _, from := range []Status{StatusPending, StatusConfirmed} {
		to, err := Machine.Apply(EventCancel, from)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, to)
	}

	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		assert.True(t, Machine.IsTerminal(terminal))
		for _, ev := range []string{EventConfirm, EventComplete, EventCancel} {
			assert.False(t, Machine.Can(ev, terminal), "%s from %s", ev, terminal)
		}
	}
}

func TestValidateBooking(t *testing.T) {
	base := func() BookingInput {
		return BookingInput{
			ShopID: "s1", BarberID: "b1", ServiceID: "sv1",
			Date: "2024-05-10", Time: "15:00",
			Client: Client{Name: " Ana ", Phone: "1199"},
		}
	}

	in := base()
	require.NoError(t, grid.ValidateBooking(&in))
	assert.Equal(t, "Ana", in.Client.Name)

	cases := map[string]func(in *BookingInput){
		"invalid_date":          func(in *BookingInput) { in.Date = "10/05/2024" },
		"invalid_slot":          func(in *BookingInput) { in.Time = "15:15" },
		"client_name_required":  func(in *BookingInput) { in.Client.Name = "" },
		"client_phone_required": func(in *BookingInput) { in.Client.Phone = " " },
	}
	for code, mutate := range cases {
		t.Run(code, func(t *testing.T) {
			in := base()
			mutate(&in)
			assert.True(t, httperr.IsBusiness(grid.ValidateBooking(&in), code))
		})
	}

	in = base()
	in.Time = "20:00"
	assert.Error(t, grid.ValidateBooking(&in))
}

func TestNewAppointmentSnapshot(t *testing.T) {
	barber := &models.User{Base: models.Base{ID: "b1"}, ShopID: "s1", Name: "João"}
	svc := &models.Service{Base: models.Base{ID: "sv1"}, ShopID: "s1", Name: "Corte", Price: decimal.NewFromInt(40), Active: true}
	in := BookingInput{ShopID: "s1", Date: "2024-05-10", Time: "15:00", Client: Client{Name: "Ana", Phone: "1"}}

	ap, err := NewAppointment(in, barber, svc, time.Now())
	require.NoError(t, err)
	assert.Equal(t, string(StatusPending), ap.Status)
	assert.Equal(t, "Corte", ap.ServiceName)
	assert.True(t, decimal.NewFromInt(40).Equal(ap.Price))

	svc.Active = false
	_, err = NewAppointment(in, barber, svc, time.Now())
	assert.True(t, httperr.IsBusiness(err, "service_inactive"))
}
