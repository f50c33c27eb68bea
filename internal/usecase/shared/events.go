package shared

import "fleet-ledger/internal/domain/fleet"

// EventFields flattens an event into its wire fields. Amounts are decimal
// strings so no consumer has to handle 128-bit numbers.
func EventFields(e fleet.Event) map[string]any {
	switch ev := e.(type) {
	case fleet.OwnerCreated:
		return map[string]any{"owner_id": ev.OwnerID.String()}
	case fleet.UserCreated:
		return map[string]any{"user_id": ev.UserID.String()}
	case fleet.CarAdded:
		return map[string]any{"car_id": ev.CarID, "owner": ev.Owner.String()}
	case fleet.CarDeleted:
		return map[string]any{"car_id": ev.CarID}
	case fleet.CarBooked:
		return map[string]any{
			"car_id":     ev.CarID,
			"user":       ev.User.String(),
			"start_time": ev.StartTime,
			"end_time":   ev.EndTime,
			"deposit":    ev.Deposit.String(),
		}
	case fleet.BookingCancelled:
		return map[string]any{
			"booking_id":       ev.BookingID,
			"user":             ev.User.String(),
			"deposit_retained": ev.DepositRetained.String(),
		}
	case fleet.CarRented:
		return map[string]any{"car_id": ev.CarID, "user": ev.User.String(), "duration": ev.Duration}
	case fleet.CarReturned:
		return map[string]any{"car_id": ev.CarID}
	default:
		return map[string]any{}
	}
}
