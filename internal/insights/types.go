package insights

const (
	// MinPilotScore is the cutoff below which an interview is not worth
	// approaching for a pilot.
	MinPilotScore = 30

	// PilotTargetCount is the number of pilot candidates the scorecard
	// treats as "enough to start".
	PilotTargetCount = 3

	// MaxPilotCandidatesShown caps the dashboard's quick candidate list.
	MaxPilotCandidatesShown = 8
)

type FounderTheme string

const (
	ThemeFXDemand        FounderTheme = "fx_demand"
	ThemeFXReferral      FounderTheme = "fx_referral"
	ThemeCustomerSupport FounderTheme = "customer_support"
	ThemeFraud           FounderTheme = "fraud"
	ThemeTrust           FounderTheme = "trust"
	ThemeCompliance      FounderTheme = "compliance"
	ThemePayments        FounderTheme = "payments"
)

// AllThemes is the evidence extraction order used by the dashboard.
var AllThemes = []FounderTheme{
	ThemeFXDemand,
	ThemeFXReferral,
	ThemeFraud,
	ThemeTrust,
	ThemeCustomerSupport,
	ThemeCompliance,
	ThemePayments,
}

// EvidenceQuote is a verbatim transcript excerpt tagged with a theme for
// founder review.
type EvidenceQuote struct {
	Theme              FounderTheme `json:"theme"`
	Quote              string       `json:"quote"`
	SourceLabel        string       `json:"source_label"`
	InterviewID        string       `json:"interview_id,omitempty"`
	TranscriptFileName string       `json:"transcript_file_name,omitempty"`
}

type ReadinessSegment string

const (
	SegmentReadyNow       ReadinessSegment = "ready_now"
	SegmentPromising      ReadinessSegment = "promising_but_cautious"
	SegmentDigitalNoFXYet ReadinessSegment = "digital_no_fx_yet"
	SegmentCashFirst      ReadinessSegment = "cash_first"
)

// AllSegments is the presentation order; it also drives the partition
// summary so every segment appears even at count 0.
var AllSegments = []ReadinessSegment{
	SegmentReadyNow,
	SegmentPromising,
	SegmentDigitalNoFXYet,
	SegmentCashFirst,
}

type SegmentSummary struct {
	Segment     ReadinessSegment `json:"segment"`
	Label       string           `json:"label"`
	Count       int              `json:"count"`
	Share       float64          `json:"share"`
	Description string           `json:"description"`
	Color       string           `json:"color"`
}

// BarDatum is a named count used by every distribution view. Within one
// distribution names are unique and values are non-negative.
type BarDatum struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color,omitempty"`
}

type Experiment struct {
	Title         string `json:"title"`
	SuccessMetric string `json:"success_metric"`
	WhyNow        string `json:"why_now"`
}

type PilotCandidate struct {
	InterviewID string `json:"interview_id"`
	Label       string `json:"label"`
	Reason      string `json:"reason"`
}

// DashboardData is the single aggregate the founder views are built from.
// It is recomputed from the full interview+transcript snapshot and never
// mutated afterwards.
type DashboardData struct {
	TotalInterviews        int              `json:"total_interviews"`
	FXInquiryCount         int              `json:"fx_inquiry_count"`
	HelpRequestCount       int              `json:"help_request_count"`
	FraudStoryCount        int              `json:"fraud_story_count"`
	BusyTimeDistribution   []BarDatum       `json:"busy_time_distribution"`
	PaymentMethodMentions  []BarDatum       `json:"payment_method_mentions"`
	FXReferralDestinations []BarDatum       `json:"fx_referral_destinations"`
	WhyNotHandleFXBuckets  []BarDatum       `json:"why_not_handle_fx_buckets"`
	FraudPatternBuckets    []BarDatum       `json:"fraud_pattern_buckets"`
	Segments               []SegmentSummary `json:"segments"`
	TopOpportunities       []string         `json:"top_opportunities"`
	KeyRisks               []string         `json:"key_risks"`
	RecommendedExperiments []Experiment     `json:"recommended_experiments"`
	PilotCandidates        []PilotCandidate `json:"pilot_candidates"`
	EvidenceQuotes         []EvidenceQuote  `json:"evidence_quotes"`
	DataQualityNotes       []string         `json:"data_quality_notes"`
}

type ValidationVerdict string

const (
	VerdictPersevere   ValidationVerdict = "persevere"
	VerdictInvestigate ValidationVerdict = "investigate"
	VerdictPivot       ValidationVerdict = "pivot"
	VerdictKill        ValidationVerdict = "kill"
)

type ValidationSignal string

const (
	SignalStrong   ValidationSignal = "strong"
	SignalModerate ValidationSignal = "moderate"
	SignalWeak     ValidationSignal = "weak"
	SignalAbsent   ValidationSignal = "absent"
)

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

type DimensionID string

const (
	DimensionProblem     DimensionID = "problem"
	DimensionWillingness DimensionID = "willingness"
	DimensionFriction    DimensionID = "friction"
	DimensionTrust       DimensionID = "trust"
	DimensionPilots      DimensionID = "pilots"
)

type ValidationDimension struct {
	ID      DimensionID      `json:"id"`
	Name    string           `json:"name"`
	Score   int              `json:"score"`
	Signal  ValidationSignal `json:"signal"`
	Summary string           `json:"summary"`
}

type ValidationScorecard struct {
	OverallVerdict   ValidationVerdict     `json:"overall_verdict"`
	VerdictRationale string                `json:"verdict_rationale"`
	ConfidenceLevel  ConfidenceLevel       `json:"confidence_level"`
	Dimensions       []ValidationDimension `json:"dimensions"`
	LastUpdated      string                `json:"last_updated"`
}

// FunnelStage is one step of the five-stage narrowing filter. Counts are
// non-increasing by construction: each stage filters the previous stage's
// population.
type FunnelStage struct {
	Name          string   `json:"name"`
	Count         int      `json:"count"`
	Percentage    int      `json:"percentage"`
	InterviewIDs  []string `json:"interview_ids"`
	DropOffReason string   `json:"drop_off_reason,omitempty"`
}

type Actionability string

const (
	ActionabilityHigh   Actionability = "high"
	ActionabilityMedium Actionability = "medium"
	ActionabilityLow    Actionability = "low"
)

type WillingnessFactor struct {
	Factor          string        `json:"factor"`
	MentionCount    int           `json:"mention_count"`
	InterviewIDs    []string      `json:"interview_ids"`
	Actionability   Actionability `json:"actionability"`
	SuggestedAction string        `json:"suggested_action"`
}

type TrustConcernLevel string

const (
	TrustConcernLow    TrustConcernLevel = "low"
	TrustConcernMedium TrustConcernLevel = "medium"
	TrustConcernHigh   TrustConcernLevel = "high"
)

type CandidateFactors struct {
	HasFXDemand       bool              `json:"has_fx_demand"`
	HelpsCustomers    bool              `json:"helps_customers"`
	DigitalRailCount  int               `json:"digital_rail_count"`
	TrustConcernLevel TrustConcernLevel `json:"trust_concern_level"`
	CurrentlyRefers   bool              `json:"currently_refers"`
}

type EnhancedPilotCandidate struct {
	InterviewID    string           `json:"interview_id"`
	ShopType       string           `json:"shop_type"`
	Location       string           `json:"location"`
	OwnerAge       int              `json:"owner_age"`
	DailyCustomers string           `json:"daily_customers"`
	ReadinessScore int              `json:"readiness_score"`
	Factors        CandidateFactors `json:"factors"`
	ApproachScript string           `json:"approach_script"`
	RiskMitigation string           `json:"risk_mitigation"`
}
