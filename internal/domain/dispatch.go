package domain

// DispatchRecord is a saga journal entry for an offer whose notification
// email went out but whose backend record creation has not been confirmed.
// Entries are reconciled out of band until the records API accepts the
// create-record call.
type DispatchRecord struct {
	ID          string  `json:"id"`
	CandidateID string  `json:"candidate_id"`
	Email       string  `json:"email"`
	EmailSentOn string  `json:"email_sent_on"`
	Recorded    bool    `json:"recorded"`
	Attempts    int32   `json:"attempts"`
	LastError   *string `json:"last_error,omitempty"`
	CreatedOn   string  `json:"created_on"`
}

// DispatchOutcome reports the two-phase send-offer result. EmailSent without
// RecordCreated is the qualified-success case: the notification went out but
// the backend has no offer record yet.
type DispatchOutcome struct {
	CandidateID   string `json:"candidateId"`
	EmailSent     bool   `json:"emailSent"`
	RecordCreated bool   `json:"recordCreated"`
	Message       string `json:"message"`
}
