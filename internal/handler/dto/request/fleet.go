package request

import (
	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/usecase/commands"
)

// Identities are validated by the ledger, not by binding, so that syntax
// errors surface as the ledger's own error kinds.

type RegisterOwnerRequest struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
}

type RegisterUserRequest struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	DrivingLicense string `json:"driving_license"`
}

type AddCarRequest struct {
	CarID      string `json:"car_id" binding:"required"`
	OwnerID    string `json:"owner_id"`
	HourlyRate string `json:"hourly_rate" binding:"required"`
}

func (r *AddCarRequest) ToCommand() (commands.AddCarRequest, error) {
	rate, err := fleet.ParseAmount(r.HourlyRate)
	if err != nil {
		return commands.AddCarRequest{}, err
	}
	return commands.AddCarRequest{
		CarID:      r.CarID,
		OwnerID:    fleet.Identity(r.OwnerID),
		HourlyRate: rate,
	}, nil
}

type BookCarRequest struct {
	CarID     string `json:"car_id" binding:"required"`
	UserID    string `json:"user_id"`
	StartTime uint64 `json:"start_time"`
	EndTime   uint64 `json:"end_time"`
	Deposit   string `json:"deposit"`
}

func (r *BookCarRequest) ToCommand() (commands.BookCarRequest, error) {
	deposit, err := fleet.ParseAmount(r.Deposit)
	if err != nil {
		return commands.BookCarRequest{}, err
	}
	return commands.BookCarRequest{
		CarID:     r.CarID,
		UserID:    fleet.Identity(r.UserID),
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Deposit:   deposit,
	}, nil
}

type RentCarRequest struct {
	CarID         string `json:"car_id" binding:"required"`
	UserID        string `json:"user_id"`
	DurationHours uint32 `json:"duration_hours"`
}

func (r *RentCarRequest) ToCommand() commands.RentCarRequest {
	return commands.RentCarRequest{
		CarID:         r.CarID,
		UserID:        fleet.Identity(r.UserID),
		DurationHours: r.DurationHours,
	}
}
