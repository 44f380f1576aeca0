package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const EventTargetingCompleted = "targeting_completed"

type TargetingCompletedEvent struct {
	Type              string    `json:"type"`
	JobID             uuid.UUID `json:"job_id"`
	JobTitle          string    `json:"job_title"`
	TotalReach        int       `json:"total_reach"`
	AverageMatchScore float64   `json:"average_match_score"`
	Timestamp         string    `json:"timestamp"`
}

// Notifier turns domain events into hub broadcasts. A nil hub makes it a no-op.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) TargetingCompleted(jobID uuid.UUID, title string, reach int, average float64) {
	if n == nil || n.hub == nil {
		return
	}

	evt := TargetingCompletedEvent{
		Type:              EventTargetingCompleted,
		JobID:             jobID,
		JobTitle:          title,
		TotalReach:        reach,
		AverageMatchScore: average,
		Timestamp:         n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
