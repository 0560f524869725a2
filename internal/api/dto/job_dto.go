package dto

import "github.com/ljchuang/sweepbook/internal/api/domain"

// CreateJobRequest is the booking payload. Required-field checks live in
// the service so the error body can list every missing field at once.
type CreateJobRequest struct {
	Date       string  `json:"date"`
	ClientName string  `json:"client_name"`
	Hours      float64 `json:"hours"`
	HourlyRate float64 `json:"hourly_rate"`
	TimeSlot   string  `json:"time_slot"`
	Address    string  `json:"address"`
}

// UpdateJobRequest carries any subset of the mutable fields. Pointer
// fields distinguish "absent" from "set to zero value".
type UpdateJobRequest struct {
	Date       *string  `json:"date"`
	ClientName *string  `json:"client_name"`
	Hours      *float64 `json:"hours"`
	HourlyRate *float64 `json:"hourly_rate"`
	TimeSlot   *string  `json:"time_slot"`
	Address    *string  `json:"address"`
}

// Patch converts the request into a domain patch.
func (r *UpdateJobRequest) Patch() domain.Patch {
	return domain.Patch{
		Date:       r.Date,
		ClientName: r.ClientName,
		Hours:      r.Hours,
		HourlyRate: r.HourlyRate,
		TimeSlot:   r.TimeSlot,
		Address:    r.Address,
	}
}
