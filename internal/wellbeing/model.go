package wellbeing

// MoodEntry is a single day of the mood diary as returned by the portal.
type MoodEntry struct {
	ID   int     `json:"id"`
	Date string  `json:"date"`
	Mood int     `json:"mood"`
	Note *string `json:"note,omitempty"`
}

// BurnoutTestResult is the latest self-assessment of the user.
type BurnoutTestResult struct {
	ID             int     `json:"id"`
	CreatedAt      string  `json:"created_at"`
	PhysicalScore  int     `json:"physical_score"`
	EmotionalScore int     `json:"emotional_score"`
	CognitiveScore int     `json:"cognitive_score"`
	TotalScore     int     `json:"total_score"`
	CommentWork    *string `json:"comment_work,omitempty"`
	CommentFactors *string `json:"comment_factors,omitempty"`
}

// User is the subset of the portal user record the dashboard consumes.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Role         string `json:"role"`
	BurnoutScore *int   `json:"burn_out_score,omitempty"`
}
