// Package survey loads the structured interview table and the raw
// transcript files the insight pipeline consumes. Records are read once at
// startup and treated as immutable afterwards.
package survey

// Interview is one row of the survey table. IDs are 1-based row numbers and
// stay stable for the life of the process; everything downstream joins on
// them.
type Interview struct {
	ID                       string   `json:"id"`
	Timestamp                string   `json:"timestamp"`
	Interviewer              string   `json:"interviewer"`
	DateOfInterview          string   `json:"date_of_interview"`
	TimeOfInterview          string   `json:"time_of_interview"`
	ShopType                 string   `json:"shop_type"`
	Location                 string   `json:"location"`
	OwnerAge                 int      `json:"owner_age"`
	CustomersPerDay          string   `json:"customers_per_day"`
	BusiestTime              string   `json:"busiest_time"`
	PaymentMethods           []string `json:"payment_methods"`
	MobilePaymentTimeline    string   `json:"mobile_payment_timeline"`
	ConcernsBeforeStarting   string   `json:"concerns_before_starting"`
	CurrentProblems          string   `json:"current_problems"`
	CustomerAskedForHelp     bool     `json:"customer_asked_for_help"`
	HelpRequestDetails       string   `json:"help_request_details,omitempty"`
	DollarInquiry            bool     `json:"dollar_inquiry"`
	DollarResponse           string   `json:"dollar_response,omitempty"`
	CurrencyExchangeReferral []string `json:"currency_exchange_referral"`
	WhyReferElsewhere        string   `json:"why_refer_elsewhere"`
	FraudStory               bool     `json:"fraud_story"`
	FraudDetails             string   `json:"fraud_details,omitempty"`
	MoneyLost                string   `json:"money_lost,omitempty"`
	AvoidanceBehaviors       string   `json:"avoidance_behaviors,omitempty"`
	LastNewService           string   `json:"last_new_service"`
	ServiceInfluencer        string   `json:"service_influencer"`
	TrustFactors             string   `json:"trust_factors"`
	ExactPhrases             string   `json:"exact_phrases,omitempty"`
	SurprisingObservations   string   `json:"surprising_observations,omitempty"`
	AudioFile                string   `json:"audio_file"`
	PhotoFile                string   `json:"photo_file"`
	Transcript               string   `json:"transcript"`
}

// TranscriptDocument is a free-text interview transcript loaded from disk.
// Documents are not guaranteed to correspond 1:1 with Interview rows; the
// matcher pairs them probabilistically.
type TranscriptDocument struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	Text     string `json:"text"`
}
