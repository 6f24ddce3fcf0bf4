package entities

import (
	"encoding/json"
	"time"
)

// AnalysisEventType identifies pipeline lifecycle events.
type AnalysisEventType string

const (
	EventAnalysisStarted   AnalysisEventType = "analysis.started"
	EventStageCompleted    AnalysisEventType = "analysis.stage_completed"
	EventAnalysisCompleted AnalysisEventType = "analysis.completed"
	EventAnalysisFailed    AnalysisEventType = "analysis.failed"
	EventCriticalRisk      AnalysisEventType = "analysis.critical_risk"
)

// AnalysisEvent is published on the event bus as a sample moves through
// the pipeline.
type AnalysisEvent struct {
	ID           string            `json:"id"`
	Type         AnalysisEventType `json:"type"`
	SampleID     string            `json:"sample_id"`
	AssessmentID string            `json:"assessment_id,omitempty"`
	Stage        string            `json:"stage,omitempty"`
	RiskLevel    RiskLevel         `json:"risk_level,omitempty"`
	Message      string            `json:"message,omitempty"`
	Timestamp    time.Time         `json:"timestamp"`
}

// ToJSON serializes the event for transport.
func (e *AnalysisEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// AnalysisEventFromJSON deserializes an event received from transport.
func AnalysisEventFromJSON(data []byte) (*AnalysisEvent, error) {
	var event AnalysisEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}
