package nexus

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/zarlabs/survey-insights/internal/survey"
)

// sendPacing spaces out webhook calls to stay under the rate limit.
const sendPacing = 200 * time.Millisecond

// Result reports what one sync pass did, by interview id.
type Result struct {
	Synced  []string `json:"synced"`
	Skipped []string `json:"skipped"`
	Failed  []string `json:"failed"`
}

// Syncer delivers new interview transcripts to the ingestion webhook,
// tracking delivered ids in the sync state so each interview goes out once.
type Syncer struct {
	client *Client
	state  *SyncState
	log    *zap.Logger
}

func NewSyncer(client *Client, state *SyncState, log *zap.Logger) *Syncer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Syncer{client: client, state: state, log: log}
}

// Sync sends every not-yet-delivered interview that has a transcript.
// Failures are reported and left unmarked, so the next pass retries them.
func (s *Syncer) Sync(ctx context.Context, interviews []survey.Interview) (Result, error) {
	var res Result

	if !s.client.Enabled() {
		s.log.Warn("nexus api key not configured, skipping sync")
		for _, iv := range interviews {
			res.Skipped = append(res.Skipped, iv.ID)
		}
		return res, nil
	}

	synced, err := s.state.SyncedIDs()
	if err != nil {
		return res, err
	}

	for i, iv := range interviews {
		if _, done := synced[iv.ID]; done {
			res.Skipped = append(res.Skipped, iv.ID)
			continue
		}
		if iv.Transcript == "" {
			res.Skipped = append(res.Skipped, iv.ID)
			continue
		}

		sessionID, err := s.client.Send(ctx, Payload{
			Content:   FormatInterview(iv),
			SessionID: "interview-" + iv.ID,
			Metadata: map[string]any{
				"interview_id": iv.ID,
				"interviewer":  iv.Interviewer,
				"shop_type":    iv.ShopType,
				"location":     iv.Location,
				"date":         iv.DateOfInterview,
			},
		})
		if err != nil {
			s.log.Error("interview sync failed", zap.String("interview_id", iv.ID), zap.Error(err))
			res.Failed = append(res.Failed, iv.ID)
		} else {
			if err := s.state.MarkSynced(iv.ID, sessionID); err != nil {
				return res, err
			}
			res.Synced = append(res.Synced, iv.ID)
		}

		if i < len(interviews)-1 {
			select {
			case <-time.After(sendPacing):
			case <-ctx.Done():
				return res, ctx.Err()
			}
		}
	}

	s.log.Info("nexus sync complete",
		zap.Int("synced", len(res.Synced)),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("failed", len(res.Failed)),
	)
	return res, nil
}
