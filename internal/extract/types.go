package extract

import "time"

// KeyDates holds the five fixed date roles. All five keys are always present
// in JSON output; a null value means the role was not found.
type KeyDates struct {
	Closing           *string `json:"closing_date"`
	QuestionsDeadline *string `json:"questions_deadline"`
	SiteVisit         *string `json:"site_visit_date"`
	AddendaDeadline   *string `json:"addenda_deadline"`
	Opening           *string `json:"opening_date"`
}

// Submission groups the hints found near submission anchors.
type Submission struct {
	Snippet     string   `json:"snippet,omitempty"`
	Platforms   []string `json:"platforms"`
	Emails      []string `json:"emails"`
	AddressHint string   `json:"address_hint,omitempty"`
}

// Fields is the aggregated extraction record for one document.
type Fields struct {
	ReferenceNumber string   `json:"reference_number,omitempty"`
	ClosingDate     *string  `json:"closing_date"`
	Buyer           string   `json:"buyer,omitempty"`
	EstimatedValue  string   `json:"estimated_value,omitempty"`
	Title           string   `json:"title,omitempty"`
	URL             string   `json:"url,omitempty"`
	PortalName      string   `json:"portal_name,omitempty"`
	PublishedAt     string   `json:"published_at,omitempty"`
	Country         string   `json:"country,omitempty"`
	Region          string   `json:"region,omitempty"`
	ContractType    string   `json:"contract_type,omitempty"`
	Language        string   `json:"language,omitempty"`
	KeyDates        KeyDates `json:"key_dates"`
	ScopeSummary    string   `json:"scope_summary,omitempty"`

	MandatoryRequirements []string `json:"mandatory_requirements"`
	SubmissionDocuments   []string `json:"submission_documents"`
	Deliverables          []string `json:"deliverables"`
	EvaluationCriteria    []string `json:"evaluation_criteria"`

	Submission    Submission `json:"submission"`
	ContactEmails []string   `json:"contact_emails"`
	ContactPhones []string   `json:"contact_phones"`
	SecurityTerms []string   `json:"security_terms"`
}

// Fit is an advisory go/no-go signal with the reasons behind each adjustment.
type Fit struct {
	Score   int      `json:"score"`
	Verdict string   `json:"verdict"`
	Reasons []string `json:"reasons"`
}

// Profile carries the caller's free-text specialty keywords, used as an
// optional fit-score input.
type Profile struct {
	ActivityType  string `json:"activity_type"`
	MainSpecialty string `json:"main_specialty"`
}

// RegistryRecord is a sparse pre-fetched tender record used to backfill
// fields the document text does not yield. Empty strings mean unknown.
type RegistryRecord struct {
	Title       string `json:"title,omitempty"`
	URL         string `json:"url,omitempty"`
	PortalName  string `json:"portal_name,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	Buyer       string `json:"buyer,omitempty"`
	Country     string `json:"country,omitempty"`
	Region      string `json:"region,omitempty"`
}

// Result is the complete structured output of one analysis run.
type Result struct {
	Summary             string   `json:"summary"`
	Fields              Fields   `json:"extracted_fields"`
	Fit                 Fit      `json:"fit"`
	ComplianceChecklist []string `json:"compliance_checklist"`
	ProposalOutline     []string `json:"proposal_outline"`
	Risks               []string `json:"risks"`
	NextActions         []string `json:"next_actions"`
	Confidence          float64  `json:"confidence"`
	Warnings            []string `json:"warnings"`
	TextChars           int      `json:"text_chars"`
	TextSample          string   `json:"text_sample,omitempty"`
}

// Options are the optional inputs to Analyze. The zero value is valid.
type Options struct {
	// Profile, when set, lets the fit scorer reward specialty overlap.
	Profile *Profile
	// Registry, when set, backfills metadata gaps and cross-checks the
	// extracted closing date against the known publication date.
	Registry *RegistryRecord
	// Now anchors deadline-proximity scoring. Zero means time.Now().
	Now time.Time
}
