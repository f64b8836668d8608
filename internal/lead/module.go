package lead

import (
	"context"
	"time"

	"movebroker_backend/internal/events"
	apphttp "movebroker_backend/internal/http"
	"movebroker_backend/internal/scheduler"
	"movebroker_backend/platform/logger"
)

// Module wires the lead routes and subscribes to intake completions. The
// repository and follow-up scheduler are optional: without a configured
// database the archive endpoints and inserts are skipped, and without a
// scheduler no follow-up tasks are enqueued.
type Module struct {
	store     *Store
	repo      *Repository
	followUps scheduler.FollowUpScheduler
	delay     time.Duration
	log       *logger.Logger
	handler   *Handler
}

func NewModule(store *Store, repo *Repository, followUps scheduler.FollowUpScheduler, followUpDelay time.Duration, bus events.Bus, log *logger.Logger) *Module {
	m := &Module{
		store:     store,
		repo:      repo,
		followUps: followUps,
		delay:     followUpDelay,
		log:       log,
		handler:   NewHandler(store, repo),
	}

	bus.Subscribe(events.LeadCaptured{}.EventName(), events.HandlerFunc(m.onLeadCaptured))
	return m
}

func (m *Module) Name() string {
	return "lead"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/leads")
	group.GET("/draft/:sessionID", m.handler.Draft)
	if m.repo != nil {
		group.GET("/recent", m.handler.Recent)
	}
}

// onLeadCaptured archives the lead and, for specialist handoffs, schedules
// a callback task. Both paths log and continue on failure; the slot write
// already happened and the funnel must not notice.
func (m *Module) onLeadCaptured(ctx context.Context, event events.Event) error {
	captured, ok := event.(events.LeadCaptured)
	if !ok {
		return nil
	}

	if m.repo != nil {
		intent := MoveIntent{
			ID:           captured.LeadID,
			SessionID:    captured.SessionID,
			Name:         captured.Name,
			Email:        captured.Email,
			Phone:        captured.Phone,
			FromZip:      captured.FromZip,
			ToZip:        captured.ToZip,
			FromCity:     captured.FromCity,
			ToCity:       captured.ToCity,
			MoveDate:     captured.MoveDate,
			HomeSize:     captured.HomeSize,
			HasVehicle:   captured.HasVehicle,
			NeedsPacking: captured.NeedsPacking,
			Intent:       Intent(captured.Intent),
			CapturedAt:   captured.CapturedAt,
		}
		if err := m.repo.Insert(ctx, intent); err != nil {
			m.log.PersistenceError("lead archive insert", err)
		}
	}

	if m.followUps != nil && Intent(captured.Intent) == IntentSpecialist {
		payload := scheduler.LeadFollowUpPayload{
			LeadID:    captured.LeadID.String(),
			SessionID: captured.SessionID,
			Phone:     captured.Phone,
			Email:     captured.Email,
			FromCity:  captured.FromCity,
			ToCity:    captured.ToCity,
		}
		if err := m.followUps.ScheduleLeadFollowUp(ctx, payload, time.Now().Add(m.delay)); err != nil {
			m.log.Error("schedule lead follow-up", "lead_id", captured.LeadID.String(), "error", err)
		}
	}

	return nil
}

var _ apphttp.Module = (*Module)(nil)
