package insights

import (
	"github.com/zarlabs/survey-insights/internal/survey"
)

// Snapshot bundles every derived view over one interview dataset. It is
// computed once at startup and shared read-only after that.
type Snapshot struct {
	Interviews         []survey.Interview       `json:"interviews"`
	Dashboard          DashboardData            `json:"dashboard"`
	Scorecard          ValidationScorecard      `json:"scorecard"`
	Funnel             []FunnelStage            `json:"funnel"`
	WillingnessFactors []WillingnessFactor      `json:"willingnessFactors"`
	PilotCandidates    []EnhancedPilotCandidate `json:"pilotCandidates"`
}

// BuildSnapshot runs every derivation over the dataset.
func BuildSnapshot(interviews []survey.Interview, transcripts []survey.TranscriptDocument) Snapshot {
	dashboard := BuildDashboard(interviews, transcripts)
	candidates := ComputeEnhancedPilotCandidates(interviews)
	scorecard := ComputeValidationScorecard(
		dashboard.TotalInterviews,
		dashboard.FXInquiryCount,
		dashboard.Segments,
		dashboard.WhyNotHandleFXBuckets,
		dashboard.FraudStoryCount,
		len(candidates),
	)
	return Snapshot{
		Interviews:         interviews,
		Dashboard:          dashboard,
		Scorecard:          scorecard,
		Funnel:             ComputeConversionFunnel(interviews),
		WillingnessFactors: ExtractWillingnessFactors(interviews),
		PilotCandidates:    candidates,
	}
}
