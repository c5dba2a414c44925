package survey

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Column headers exactly as the survey form exports them.
const (
	colTimestamp          = "Timestamp"
	colInterviewer        = "Interviewer Name"
	colDateOfInterview    = "Date of Interview"
	colTimeOfInterview    = "Time of Interview"
	colShopType           = "Shop Type"
	colLocation           = "Location / Area"
	colOwnerAge           = "Estimated Owner Age"
	colCustomersPerDay    = "Estimated Customers Per Day"
	colBusiestTime        = "Busiest Time of Day"
	colPaymentMethods     = "Payment Methods Accepted"
	colMobileTimeline     = "When did they start using mobile payments?"
	colConcerns           = "Concerns mentioned before starting mobile payments"
	colCurrentProblems    = "Current problems with mobile payments (if any)"
	colAskedForHelp       = "Has a customer ever asked for help sending or receiving money?"
	colHelpDetails        = "If yes, what exactly did the customer ask?"
	colDollarInquiry      = "Has a customer ever asked about dollars or foreign money?"
	colDollarResponse     = "What did the shopkeeper do the last time this happened?"
	colExchangeReferral   = "Where do they send customers for currency exchange today?"
	colWhyReferElsewhere  = "Why do they send customers there instead of handling it themselves?"
	colFraudStory         = "Did they mention a real fraud story?"
	colFraudDetails       = "If yes, describe what happened"
	colMoneyLost          = "Approximate money lost (if mentioned)"
	colAvoidanceBehaviors = "What do they actively avoid now because of fraud?"
	colLastNewService     = "Last new service or item they added"
	colServiceInfluencer  = "Who influenced that decision?"
	colTrustFactors       = "What makes a new service feel safe to them?"
	colExactPhrases       = "Exact phrases they used about money, trust, or fraud"
	colObservations       = "Anything surprising or strongly emotional?"
	colAudioFile          = "Upload Audio Recording"
	colTranscript         = "Upload English Transcript"
	colPhotoFile          = "Photo of shop for Proof"
)

var listSeparatorRe = regexp.MustCompile(`(?i)\s*(?:,|;|\bor\b|\band\b)\s*`)

func parseYesNo(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1":
		return true
	}
	return false
}

func parseList(value string) []string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	var items []string
	for _, item := range listSeparatorRe.Split(trimmed, -1) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseOwnerAge(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

func publicFilePath(prefix, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	return prefix + trimmed
}

// ParseInterviews maps every body row of the survey table to an Interview.
// IDs are the 1-based row positions, so row order in the source file is the
// canonical interview order.
func ParseInterviews(source []byte) []Interview {
	_, rows := parseMarkdownTable(source)
	interviews := make([]Interview, 0, len(rows))
	for i, row := range rows {
		interviews = append(interviews, Interview{
			ID:                       strconv.Itoa(i + 1),
			Timestamp:                strings.TrimSpace(row[colTimestamp]),
			Interviewer:              strings.TrimSpace(row[colInterviewer]),
			DateOfInterview:          strings.TrimSpace(row[colDateOfInterview]),
			TimeOfInterview:          strings.TrimSpace(row[colTimeOfInterview]),
			ShopType:                 strings.TrimSpace(row[colShopType]),
			Location:                 strings.TrimSpace(row[colLocation]),
			OwnerAge:                 parseOwnerAge(row[colOwnerAge]),
			CustomersPerDay:          strings.TrimSpace(row[colCustomersPerDay]),
			BusiestTime:              strings.TrimSpace(row[colBusiestTime]),
			PaymentMethods:           parseList(row[colPaymentMethods]),
			MobilePaymentTimeline:    strings.TrimSpace(row[colMobileTimeline]),
			ConcernsBeforeStarting:   strings.TrimSpace(row[colConcerns]),
			CurrentProblems:          strings.TrimSpace(row[colCurrentProblems]),
			CustomerAskedForHelp:     parseYesNo(row[colAskedForHelp]),
			HelpRequestDetails:       strings.TrimSpace(row[colHelpDetails]),
			DollarInquiry:            parseYesNo(row[colDollarInquiry]),
			DollarResponse:           strings.TrimSpace(row[colDollarResponse]),
			CurrencyExchangeReferral: parseList(row[colExchangeReferral]),
			WhyReferElsewhere:        strings.TrimSpace(row[colWhyReferElsewhere]),
			FraudStory:               parseYesNo(row[colFraudStory]),
			FraudDetails:             strings.TrimSpace(row[colFraudDetails]),
			MoneyLost:                strings.TrimSpace(row[colMoneyLost]),
			AvoidanceBehaviors:       strings.TrimSpace(row[colAvoidanceBehaviors]),
			LastNewService:           strings.TrimSpace(row[colLastNewService]),
			ServiceInfluencer:        strings.TrimSpace(row[colServiceInfluencer]),
			TrustFactors:             strings.TrimSpace(row[colTrustFactors]),
			ExactPhrases:             strings.TrimSpace(row[colExactPhrases]),
			SurprisingObservations:   strings.TrimSpace(row[colObservations]),
			AudioFile:                publicFilePath("/audio/", row[colAudioFile]),
			PhotoFile:                publicFilePath("/photos/", row[colPhotoFile]),
			Transcript:               strings.TrimSpace(row[colTranscript]),
		})
	}
	return interviews
}

// LoadInterviews reads the survey markdown file and parses its table.
func LoadInterviews(path string) ([]Interview, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read survey data: %w", err)
	}
	return ParseInterviews(b), nil
}

// InterviewByID returns the interview with the given id, or false.
func InterviewByID(interviews []Interview, id string) (Interview, bool) {
	for _, iv := range interviews {
		if iv.ID == id {
			return iv, true
		}
	}
	return Interview{}, false
}
