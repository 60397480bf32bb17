package service

// RecordParams carries the caller-supplied fields of a new record.
type RecordParams struct {
	Amount      float64
	Description string
}

// recordDateLayout renders the day/month stamp stored on each record.
const recordDateLayout = "02/01"
