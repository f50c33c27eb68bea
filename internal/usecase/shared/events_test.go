//go:build unit

package shared_test

import (
	"testing"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/uint128"
)

func TestEventFields(t *testing.T) {
	big, _ := uint128.FromString("340282366920938463463374607431768211455")

	tests := []struct {
		name  string
		event fleet.Event
		want  map[string]any
	}{
		{"owner created", fleet.OwnerCreated{OwnerID: "o1"}, map[string]any{"owner_id": "o1"}},
		{"user created", fleet.UserCreated{UserID: "u1"}, map[string]any{"user_id": "u1"}},
		{"car added", fleet.CarAdded{CarID: "c1", Owner: "o1"}, map[string]any{"car_id": "c1", "owner": "o1"}},
		{"car deleted", fleet.CarDeleted{CarID: "c1"}, map[string]any{"car_id": "c1"}},
		{
			"car booked keeps 128-bit deposit exact",
			fleet.CarBooked{CarID: "c1", User: "u1", StartTime: 10, EndTime: 20, Deposit: big},
			map[string]any{"car_id": "c1", "user": "u1", "start_time": uint64(10), "end_time": uint64(20), "deposit": big.String()},
		},
		{
			"booking cancelled",
			fleet.BookingCancelled{BookingID: "b1", User: "u1", DepositRetained: uint128.From64(90)},
			map[string]any{"booking_id": "b1", "user": "u1", "deposit_retained": "90"},
		},
		{"car rented", fleet.CarRented{CarID: "c1", User: "u1", Duration: 3}, map[string]any{"car_id": "c1", "user": "u1", "duration": uint32(3)}},
		{"car returned", fleet.CarReturned{CarID: "c1"}, map[string]any{"car_id": "c1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.EventFields(tt.event))
		})
	}
}
