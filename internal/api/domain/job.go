package domain

// Job is one booked cleaning engagement. The id is assigned once at
// creation and is the only identity a record has; where a row sits in
// the underlying table is never visible outside the storage package.
type Job struct {
	ID         string  `json:"id" db:"job_id"`
	Date       string  `json:"date" db:"date"`
	ClientName string  `json:"client_name" db:"client_name"`
	Hours      float64 `json:"hours" db:"hours"`
	HourlyRate float64 `json:"hourly_rate" db:"hourly_rate"`
	Total      float64 `json:"total" db:"total"`
	TimeSlot   string  `json:"time_slot" db:"time_slot"`
	Address    string  `json:"address" db:"address"`
}

// ComputeTotal derives the job total from its hours and rate. Total is
// never settable on its own; every write path that touches hours or
// hourly_rate goes through this.
func (j *Job) ComputeTotal() {
	j.Total = j.Hours * j.HourlyRate
}

// Patch is a partial update. Nil fields are left untouched on merge.
// Total is intentionally absent, it is always derived.
type Patch struct {
	Date       *string
	ClientName *string
	Hours      *float64
	HourlyRate *float64
	TimeSlot   *string
	Address    *string
}

// TouchesPricing reports whether applying the patch requires the total
// to be recomputed.
func (p Patch) TouchesPricing() bool {
	return p.Hours != nil || p.HourlyRate != nil
}

// Apply merges the patch onto a job and recomputes the total when the
// pricing inputs changed. The recomputation uses the resulting hours
// and rate, not the raw patch values.
func (p Patch) Apply(j *Job) {
	if p.Date != nil {
		j.Date = *p.Date
	}
	if p.ClientName != nil {
		j.ClientName = *p.ClientName
	}
	if p.Hours != nil {
		j.Hours = *p.Hours
	}
	if p.HourlyRate != nil {
		j.HourlyRate = *p.HourlyRate
	}
	if p.TimeSlot != nil {
		j.TimeSlot = *p.TimeSlot
	}
	if p.Address != nil {
		j.Address = *p.Address
	}
	if p.TouchesPricing() {
		j.ComputeTotal()
	}
}
