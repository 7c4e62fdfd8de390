package domain

// Student is a candidate record as owned by the records API. Read-only from
// this system's perspective.
type Student struct {
	ID              string   `json:"_id"`
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	Mobile          string   `json:"mobile"`
	CityState       string   `json:"cityState"`
	Address         string   `json:"address"`
	CollegeName     string   `json:"collegeName"`
	Degree          string   `json:"degree"`
	Branch          string   `json:"branch"`
	YearOfStudy     string   `json:"yearOfStudy"`
	PreferredDomain string   `json:"preferredDomain"`
	TechnicalSkills []string `json:"technicalSkills"`
	PriorExperience string   `json:"priorExperience"`
	PortfolioURL    string   `json:"portfolioUrl"`
	AssignmentSent  bool     `json:"assignmentSent"`
	SentAt          *string  `json:"sentAt,omitempty"`
	CreatedAt       string   `json:"createdAt"`
}
