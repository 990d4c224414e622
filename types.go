package polydub

import "time"

// JobState represents the lifecycle state of an asynchronous job.
type JobState string

const (
	// Non-terminal states
	JobStateQueued JobState = "queued" // Accepted, waiting for a worker
	JobStateActive JobState = "active" // Actively processing

	// Terminal states (no further transitions)
	JobStateCompleted JobState = "completed"
	JobStateFailed    JobState = "failed"
	JobStateCancelled JobState = "cancelled"
)

// IsTerminal returns true if the state is a terminal state.
func (s JobState) IsTerminal() bool {
	return s == JobStateCompleted || s == JobStateFailed || s == JobStateCancelled
}

// String returns the string representation of the state.
func (s JobState) String() string {
	return string(s)
}

// Job is an asynchronous unit of work (dubbing, cloning, synthesis)
// tracked by id and state until terminal.
type Job struct {
	ID          string     `json:"id"`
	State       JobState   `json:"state"`
	Type        string     `json:"type,omitempty"`
	Progress    float64    `json:"progress,omitempty"`
	OutputURL   string     `json:"outputUrl,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"createdAt,omitempty"`
	ProcessedOn *time.Time `json:"processedOn,omitempty"`
	FinishedOn  *time.Time `json:"finishedOn,omitempty"`
}

// JobPage is one page of a job listing.
type JobPage struct {
	Jobs  []Job `json:"data"`
	Total int   `json:"total"`
}

// Language describes a dubbing target language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Voice is a cloned or stock voice available for synthesis.
type Voice struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	PreviewURL  string    `json:"previewUrl,omitempty"`
	IsCloned    bool      `json:"isCloned,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// UploadTarget is a pre-signed destination for voice sample uploads.
type UploadTarget struct {
	UploadURL string     `json:"uploadUrl"`
	FileURL   string     `json:"fileUrl,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Usage summarizes the account's current billing period.
type Usage struct {
	Plan             string     `json:"plan,omitempty"`
	CreditsUsed      float64    `json:"creditsUsed"`
	CreditsRemaining float64    `json:"creditsRemaining"`
	PeriodStartedAt  *time.Time `json:"periodStartedAt,omitempty"`
	PeriodEndsAt     *time.Time `json:"periodEndsAt,omitempty"`
}

// UsageRecord is a single entry in the account's usage history.
type UsageRecord struct {
	JobID       string    `json:"jobId,omitempty"`
	Description string    `json:"description,omitempty"`
	Credits     float64   `json:"credits"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// UsagePage is one page of usage history.
type UsagePage struct {
	Records []UsageRecord `json:"data"`
	Total   int           `json:"total"`
}

// User is the authenticated account profile.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Plan      string    `json:"plan,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// RateLimitInfo reports the account's request budget.
type RateLimitInfo struct {
	Limit     int        `json:"limit"`
	Remaining int        `json:"remaining"`
	ResetsAt  *time.Time `json:"resetsAt,omitempty"`
}

// Response envelopes. Job-creating endpoints wrap the job under a "job"
// key, user updates under "user", deletions return a success flag.
type jobEnvelope struct {
	Job Job `json:"job"`
}

type userEnvelope struct {
	User User `json:"user"`
}

type successResponse struct {
	Success bool `json:"success"`
}
