package intake

import (
	"context"
	"sync"
	"time"

	"movebroker_backend/internal/events"
	"movebroker_backend/internal/lead"
	"movebroker_backend/internal/pricing"
	"movebroker_backend/platform/apperr"
	"movebroker_backend/platform/config"
	"movebroker_backend/platform/logger"

	"github.com/google/uuid"
)

// CityResolver is the slice of the location module the intake flow needs.
type CityResolver interface {
	ResolveZip(ctx context.Context, zip string) string
}

// LeadWriter persists a completed MoveIntent to the consume-once slot.
type LeadWriter interface {
	Write(ctx context.Context, intent lead.MoveIntent) error
}

// session pairs a machine with its narrator so teardown can cancel any
// pending narration along with the state.
type session struct {
	machine  *Machine
	narrator *Narrator
	lastSeen time.Time
}

// Service owns the in-memory session registry. Sessions are ephemeral:
// they live in process memory and expire after the configured idle TTL.
type Service struct {
	cfg     config.IntakeConfig
	handoff config.HandoffConfig
	log     *logger.Logger

	resolver CityResolver
	leads    LeadWriter
	bus      events.Bus

	mu       sync.Mutex
	sessions map[uuid.UUID]*session

	done chan struct{}
}

func NewService(cfg config.IntakeConfig, handoff config.HandoffConfig, resolver CityResolver, leads LeadWriter, bus events.Bus, log *logger.Logger) *Service {
	s := &Service{
		cfg:      cfg,
		handoff:  handoff,
		log:      log,
		resolver: resolver,
		leads:    leads,
		bus:      bus,
		sessions: make(map[uuid.UUID]*session),
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Close stops the expiry sweeper and tears down every live session.
func (s *Service) Close() {
	close(s.done)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.narrator.Close()
		delete(s.sessions, id)
	}
}

// sweep drops sessions idle past the TTL.
func (s *Service) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-s.cfg.GetSessionTTL())
			s.mu.Lock()
			for id, sess := range s.sessions {
				if sess.lastSeen.Before(cutoff) {
					sess.narrator.Close()
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// CreateSession starts a conversation under the named flow (empty means the
// configured default) with optional seeded ZIP context.
func (s *Service) CreateSession(ctx context.Context, flow string, seed Seed) (uuid.UUID, State, error) {
	if flow == "" {
		flow = s.cfg.GetDefaultFlow()
	}
	policy, ok := PolicyByName(flow)
	if !ok {
		return uuid.Nil, State{}, apperr.Validation("unknown flow: " + flow)
	}

	narrator := NewNarrator(s.cfg.GetNarrationDelay())
	machine := NewMachine(policy, seed, narrator, pricing.PreviewEstimate)

	// Seeded ZIPs skipped their steps, so resolve their city labels here;
	// answered ZIPs get resolved on the answer path.
	if ValidZip(seed.FromZip) {
		machine.SetCity(StepFromZip, s.resolver.ResolveZip(ctx, seed.FromZip))
		if ValidZip(seed.ToZip) {
			machine.SetCity(StepToZip, s.resolver.ResolveZip(ctx, seed.ToZip))
		}
	}

	id := uuid.New()
	s.mu.Lock()
	s.sessions[id] = &session{machine: machine, narrator: narrator, lastSeen: time.Now()}
	s.mu.Unlock()

	s.log.Info("intake session created", "session_id", id.String(), "flow", policy.Name)
	return id, machine.Snapshot(), nil
}

func (s *Service) get(id uuid.UUID) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, apperr.NotFound("session not found")
	}
	sess.lastSeen = time.Now()
	return sess, nil
}

// GetSession returns the current state of a live session.
func (s *Service) GetSession(id uuid.UUID) (State, error) {
	sess, err := s.get(id)
	if err != nil {
		return State{}, err
	}
	return sess.machine.Snapshot(), nil
}

// Answer applies a value to a step. A mismatched step is a silent no-op so
// double-taps return the unchanged state instead of an error.
func (s *Service) Answer(ctx context.Context, id uuid.UUID, step Step, value string) (State, error) {
	sess, err := s.get(id)
	if err != nil {
		return State{}, err
	}

	if sess.machine.Answer(step, value) && (step == StepFromZip || step == StepToZip) {
		sess.machine.SetCity(step, s.resolver.ResolveZip(ctx, value))
	}
	return sess.machine.Snapshot(), nil
}

// GoBack steps the session one step backward.
func (s *Service) GoBack(id uuid.UUID) (State, error) {
	sess, err := s.get(id)
	if err != nil {
		return State{}, err
	}
	sess.machine.GoBack()
	return sess.machine.Snapshot(), nil
}

// Handoff is the completion outcome: where the visitor goes next.
type Handoff struct {
	Intent lead.Intent `json:"intent"`
	Target string      `json:"target"`
	LeadID uuid.UUID   `json:"leadId"`
}

// Complete finishes a session with the chosen intent, writes the lead slot,
// publishes LeadCaptured and returns the handoff target. The session is
// removed; a retry surfaces as not-found rather than a duplicate lead.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, intent lead.Intent) (Handoff, error) {
	sess, err := s.get(id)
	if err != nil {
		return Handoff{}, err
	}

	captured, err := sess.machine.Complete(intent, id.String())
	if err != nil {
		return Handoff{}, err
	}

	if err := s.leads.Write(ctx, captured); err != nil {
		sess.machine.Reopen()
		s.log.PersistenceError("lead slot write", err)
		return Handoff{}, apperr.Internal("could not save your details, please try again")
	}

	s.bus.Publish(ctx, events.LeadCaptured{
		BaseEvent:    events.NewBaseEvent(),
		LeadID:       captured.ID,
		SessionID:    captured.SessionID,
		Intent:       string(captured.Intent),
		FromZip:      captured.FromZip,
		ToZip:        captured.ToZip,
		FromCity:     captured.FromCity,
		ToCity:       captured.ToCity,
		MoveDate:     captured.MoveDate,
		HomeSize:     captured.HomeSize,
		HasVehicle:   captured.HasVehicle,
		NeedsPacking: captured.NeedsPacking,
		Name:         captured.Name,
		Email:        captured.Email,
		Phone:        captured.Phone,
		CapturedAt:   captured.CapturedAt,
	})
	s.log.LeadCaptured(captured.SessionID, string(captured.Intent))

	s.mu.Lock()
	sess.narrator.Close()
	delete(s.sessions, id)
	s.mu.Unlock()

	return Handoff{Intent: intent, Target: s.targetFor(intent), LeadID: captured.ID}, nil
}

// Teardown abandons a session without capturing a lead.
func (s *Service) Teardown(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return apperr.NotFound("session not found")
	}
	sess.narrator.Close()
	delete(s.sessions, id)
	return nil
}

func (s *Service) targetFor(intent lead.Intent) string {
	switch intent {
	case lead.IntentSpecialist:
		return s.handoff.GetSpecialistPhoneURI()
	case lead.IntentVirtual:
		return s.handoff.GetBookingURL()
	case lead.IntentBuilder:
		return s.handoff.GetInventoryURL()
	}
	return ""
}
