// Package scheduler provides delayed follow-up task scheduling on asynq.
package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TaskLeadFollowUp is enqueued after a specialist handoff so the lead is
// called back even if the visitor never picks up the phone themselves.
const TaskLeadFollowUp = "leads.follow_up"

type LeadFollowUpPayload struct {
	LeadID    string `json:"leadId"`
	SessionID string `json:"sessionId"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	FromCity  string `json:"fromCity,omitempty"`
	ToCity    string `json:"toCity,omitempty"`
}

func NewLeadFollowUpTask(payload LeadFollowUpPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLeadFollowUp, data), nil
}

func ParseLeadFollowUpPayload(task *asynq.Task) (LeadFollowUpPayload, error) {
	var payload LeadFollowUpPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return LeadFollowUpPayload{}, err
	}
	return payload, nil
}
