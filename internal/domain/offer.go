package domain

// OfferStatus is the lifecycle state of an offer. Transitions are one-way:
// pending moves to accepted or declined through an explicit response, or to
// expired once the response window closes. The records API is the sole
// arbiter of transitions; this service never mutates a terminal status.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
	OfferExpired  OfferStatus = "expired"
)

// IsTerminal reports whether no further transition leaves this status.
func (s OfferStatus) IsTerminal() bool {
	return s == OfferAccepted || s == OfferDeclined || s == OfferExpired
}

// ResponseAction is a candidate's answer to a pending offer.
type ResponseAction string

const (
	ActionAccept  ResponseAction = "accept"
	ActionDecline ResponseAction = "decline"
)

// Valid reports whether the action is one of the two answerable choices.
func (a ResponseAction) Valid() bool {
	return a == ActionAccept || a == ActionDecline
}

type Offer struct {
	ID          string      `json:"id"`
	CandidateID string      `json:"candidateId"`
	Email       string      `json:"email"`
	Status      OfferStatus `json:"status"`
	SentAt      string      `json:"sentAt"`
	ExpiresAt   string      `json:"expiresAt"`
	RespondedAt *string     `json:"respondedAt,omitempty"`
}

// OfferCandidate carries the candidate fields the offer listing embeds.
type OfferCandidate struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile"`
}

// OfferListing is an offer row as returned by GET /offers, with the
// candidate reference expanded by the records API.
type OfferListing struct {
	ID          string         `json:"_id"`
	Candidate   OfferCandidate `json:"candidateId"`
	Email       string         `json:"email"`
	Status      OfferStatus    `json:"status"`
	SentAt      string         `json:"sentAt"`
	ExpiresAt   string         `json:"expiresAt"`
	RespondedAt *string        `json:"respondedAt,omitempty"`
}

// ResponseState is the client-visible outcome of one response-page load.
// checking is the only non-terminal state; it renders the accept/decline
// prompt for a still-pending offer.
type ResponseState string

const (
	StateChecking         ResponseState = "checking"
	StateSuccess          ResponseState = "success"
	StateAlreadyProcessed ResponseState = "already_processed"
	StateExpired          ResponseState = "expired"
	StateError            ResponseState = "error"
)
