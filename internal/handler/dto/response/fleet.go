package response

import (
	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/usecase/queries"
	"fleet-ledger/internal/usecase/shared"

	"github.com/jinzhu/copier"
	"lukechampine.com/uint128"
)

// Amounts leave the service as decimal strings.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uint128.Uint128{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uint128.Uint128).String(), nil
			},
		},
		{
			SrcType: fleet.Identity(""),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(fleet.Identity).String(), nil
			},
		},
	},
}

type EventResponse struct {
	Kind string         `json:"kind"`
	Data map[string]any `json:"data"`
}

type EventsResponse struct {
	Events []EventResponse `json:"events"`
}

func FromEvents(events []fleet.Event) EventsResponse {
	res := EventsResponse{Events: make([]EventResponse, len(events))}
	for i, e := range events {
		res.Events[i] = EventResponse{Kind: string(e.Kind()), Data: shared.EventFields(e)}
	}
	return res
}

type CarResponse struct {
	CarID      string `json:"car_id"`
	OwnerID    string `json:"owner_id"`
	Available  bool   `json:"available"`
	HourlyRate string `json:"hourly_rate"`
}

func FromCar(c fleet.Car) (CarResponse, error) {
	var res CarResponse
	err := copier.CopyWithOption(&res, &c, copyOption)
	return res, err
}

func FromCars(cars []fleet.Car) ([]CarResponse, error) {
	res := make([]CarResponse, 0, len(cars))
	for _, c := range cars {
		r, err := FromCar(c)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

type BookingResponse struct {
	BookingID string `json:"booking_id"`
	CarID     string `json:"car_id"`
	UserID    string `json:"user_id"`
	StartTime uint64 `json:"start_time"`
	EndTime   uint64 `json:"end_time"`
	Deposit   string `json:"deposit"`
}

func FromBookings(bookings []fleet.Booking) ([]BookingResponse, error) {
	res := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		var r BookingResponse
		if err := copier.CopyWithOption(&r, &b, copyOption); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

type IdentityResponse struct {
	ID      string `json:"id"`
	IsOwner bool   `json:"is_owner"`
	IsUser  bool   `json:"is_user"`
}

func FromIdentityView(v queries.IdentityView) IdentityResponse {
	return IdentityResponse{ID: v.ID.String(), IsOwner: v.IsOwner, IsUser: v.IsUser}
}

type AvailabilityResponse struct {
	CarID     string `json:"car_id"`
	Available bool   `json:"available"`
}
