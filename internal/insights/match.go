package insights

import (
	"sort"

	"github.com/zarlabs/survey-insights/internal/survey"
)

// minMatchScore is the anti-noise floor: pairs scoring below it are never
// assigned, even if both sides remain free.
const minMatchScore = 0.02

// MatchTranscripts pairs transcript documents with interview rows by token
// overlap. The result is a partial injective mapping interview ID ->
// transcript: at most one transcript per interview and vice versa.
//
// This is a greedy approximation to maximum-weight bipartite matching:
// score every pair with Jaccard similarity, then assign pairs in descending
// score order, skipping any pair whose side is already taken. Ties keep the
// original pair order. Two interviews covering very similar material can
// still swap transcripts; the dashboard accepts that imprecision.
func MatchTranscripts(transcripts []survey.TranscriptDocument, interviews []survey.Interview) map[string]survey.TranscriptDocument {
	type pair struct {
		interviewID string
		transcript  survey.TranscriptDocument
		score       float64
	}

	interviewTokens := make(map[string][]string, len(interviews))
	for _, iv := range interviews {
		interviewTokens[iv.ID] = TokenizeForMatch(iv.Transcript)
	}

	var pairs []pair
	for _, doc := range transcripts {
		docTokens := TokenizeForMatch(doc.Text)
		for _, iv := range interviews {
			pairs = append(pairs, pair{
				interviewID: iv.ID,
				transcript:  doc,
				score:       JaccardSimilarity(interviewTokens[iv.ID], docTokens),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].score > pairs[j].score })

	assignedInterviews := map[string]struct{}{}
	assignedTranscripts := map[string]struct{}{}
	result := make(map[string]survey.TranscriptDocument)

	for _, p := range pairs {
		if _, taken := assignedInterviews[p.interviewID]; taken {
			continue
		}
		if _, taken := assignedTranscripts[p.transcript.ID]; taken {
			continue
		}
		if p.score < minMatchScore {
			continue
		}
		assignedInterviews[p.interviewID] = struct{}{}
		assignedTranscripts[p.transcript.ID] = struct{}{}
		result[p.interviewID] = p.transcript
	}

	return result
}
