package domain

// Slot is one of the two fixed daily collection windows.
type Slot string

const (
	SlotTwoToThree  Slot = "2-3"
	SlotThreeToFour Slot = "3-4"
)

// Valid reports whether the slot is one of the two bookable windows.
func (s Slot) Valid() bool {
	return s == SlotTwoToThree || s == SlotThreeToFour
}

// SlotOption pairs a slot value with its display label and booking-cutoff
// note. The cutoff text is informational only; enforcement happens in the
// records API.
type SlotOption struct {
	Value  Slot   `json:"value"`
	Label  string `json:"label"`
	Cutoff string `json:"cutoff"`
}

// SlotOptions returns the two bookable windows in display order.
func SlotOptions() []SlotOption {
	return []SlotOption{
		{Value: SlotTwoToThree, Label: "2:00 PM – 3:00 PM", Cutoff: "Booking closes at 11:00 AM"},
		{Value: SlotThreeToFour, Label: "3:00 PM – 4:00 PM", Cutoff: "Booking closes at 12:00 PM"},
	}
}

type Appointment struct {
	ID              string  `json:"id"`
	CandidateID     string  `json:"candidateId"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Position        string  `json:"position"`
	Date            string  `json:"date"`
	Slot            Slot    `json:"slot"`
	LetterCollected bool    `json:"letterCollected"`
	CollectedAt     *string `json:"collectedAt,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}

// BookingRequest is the appointment submission payload. Email is locked to
// the value carried by the booking link; the remaining fields are editable.
type BookingRequest struct {
	CandidateID string `json:"candidateId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
	Date        string `json:"date"`
	Slot        Slot   `json:"slot"`
}
