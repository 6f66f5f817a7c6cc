package response_models

type BookingResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // "accommodation" or "activity"
	RefID     string `json:"ref_id"`
	GuestName string `json:"guest_name"`
	CheckIn   string `json:"check_in,omitempty"`
	CheckOut  string `json:"check_out,omitempty"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Status    string `json:"status"`
}

// BookingResult reports a single idempotent booking attempt. Created is false
// when an identical booking already existed.
type BookingResult struct {
	Created bool            `json:"created"`
	Booking BookingResponse `json:"booking"`
}

// BookingError is one collected per-item failure from the reconciler.
type BookingError struct {
	Type  string `json:"type"`
	RefID string `json:"ref_id"`
	Error string `json:"error"`
}
