package intake

import (
	"strings"
	"sync"
	"time"

	"movebroker_backend/internal/lead"
	"movebroker_backend/internal/pricing"
	"movebroker_backend/platform/apperr"
	"movebroker_backend/platform/phone"
	"movebroker_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Narration is one bot utterance in the conversation log.
type Narration struct {
	Step Step      `json:"step"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Draft is the MoveIntent under construction. Answers are preserved across
// back-navigation so the visitor can correct and move forward again.
type Draft struct {
	FromZip      string     `json:"fromZip,omitempty"`
	ToZip        string     `json:"toZip,omitempty"`
	FromCity     string     `json:"fromCity,omitempty"`
	ToCity       string     `json:"toCity,omitempty"`
	MoveDate     *time.Time `json:"moveDate,omitempty"`
	HomeSize     string     `json:"homeSize,omitempty"`
	HasVehicle   *bool      `json:"hasVehicle,omitempty"`
	NeedsPacking *bool      `json:"needsPacking,omitempty"`
	Name         string     `json:"name,omitempty"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
}

// PreviewFunc computes the coarse estimate shown mid-conversation.
type PreviewFunc func(size string, hasVehicle, needsPacking bool) pricing.Estimate

// Seed carries context a referring page may deep-link in. It is evaluated
// once at construction, never mid-flow.
type Seed struct {
	FromZip string
	ToZip   string
}

// Machine drives one intake conversation. All methods are safe for
// concurrent use; step transitions are strictly sequential under the lock.
type Machine struct {
	mu sync.Mutex

	policy      Policy
	idx         int
	first       int
	draft       Draft
	narration   []Narration
	fieldErrors map[Step]string
	preview     *pricing.Estimate

	previewFn PreviewFunc
	narrator  *Narrator

	// gen invalidates pending narration deliveries after GoBack, Complete
	// or teardown; a delivery only lands if its generation is still current.
	// pendingPrompt is true between scheduling the next step's prompt and
	// its delivery; transitions are sequential, so at most one is in flight.
	gen           int
	pendingPrompt bool
	completed     bool
}

// NewMachine builds a machine at the first visible step. Seeded ZIP codes
// skip their capture steps entirely: both known starts at the step after
// them, origin-only starts at the destination ZIP.
func NewMachine(policy Policy, seed Seed, narrator *Narrator, previewFn PreviewFunc) *Machine {
	m := &Machine{
		policy:      policy,
		fieldErrors: make(map[Step]string),
		previewFn:   previewFn,
		narrator:    narrator,
	}

	if ValidZip(seed.FromZip) {
		m.draft.FromZip = strings.TrimSpace(seed.FromZip)
		if ValidZip(seed.ToZip) {
			m.draft.ToZip = strings.TrimSpace(seed.ToZip)
		}
	}

	for m.idx < len(policy.Steps) {
		step := policy.Steps[m.idx]
		if step == StepFromZip && m.draft.FromZip != "" {
			m.idx++
			continue
		}
		if step == StepToZip && m.draft.ToZip != "" {
			m.idx++
			continue
		}
		break
	}
	m.first = m.idx

	// The first visible prompt is shown immediately; only subsequent steps
	// get the simulated think-time.
	m.narration = append(m.narration, Narration{
		Step: m.Current(),
		Text: promptText(m.Current()),
		At:   time.Now(),
	})

	return m
}

// Current returns the step the conversation is waiting on.
func (m *Machine) Current() Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.policy.Steps[m.idx]
}

// Answer applies a value to the given step and advances on success. Calls
// for any step other than the current one are no-ops, which makes rapid
// double-submission idempotent. A failed validation sets the step's error
// flag and leaves the position unchanged.
func (m *Machine) Answer(step Step, value string) bool {
	m.mu.Lock()

	if m.completed {
		m.mu.Unlock()
		return false
	}
	current := m.policy.Steps[m.idx]
	if step != current || current == StepHandoff {
		m.mu.Unlock()
		return false
	}

	if !m.apply(current, value) {
		m.mu.Unlock()
		return false
	}
	delete(m.fieldErrors, current)

	if m.policy.PreviewAfter[current] && m.previewFn != nil && m.draft.HomeSize != "" {
		estimate := m.previewFn(m.draft.HomeSize, derefBool(m.draft.HasVehicle), derefBool(m.draft.NeedsPacking))
		m.preview = &estimate
	}

	m.idx++
	next := m.policy.Steps[m.idx]
	gen := m.gen
	m.pendingPrompt = true
	m.mu.Unlock()

	m.narrator.Announce(func() {
		m.deliver(gen, next)
	})
	return true
}

// apply validates and stores one answer. Caller holds the lock.
func (m *Machine) apply(step Step, value string) bool {
	trimmed := strings.TrimSpace(value)

	switch step {
	case StepFromZip:
		if !ValidZip(trimmed) {
			m.fieldErrors[step] = "enter a 5-digit ZIP code"
			return false
		}
		if trimmed != m.draft.FromZip {
			m.draft.FromCity = ""
		}
		m.draft.FromZip = trimmed
	case StepToZip:
		if !ValidZip(trimmed) {
			m.fieldErrors[step] = "enter a 5-digit ZIP code"
			return false
		}
		if trimmed != m.draft.ToZip {
			m.draft.ToCity = ""
		}
		m.draft.ToZip = trimmed
	case StepMoveDate:
		date, ok := ParseMoveDate(trimmed)
		if !ok {
			m.fieldErrors[step] = "pick a move date"
			return false
		}
		m.draft.MoveDate = &date
	case StepHomeSize:
		if !ValidHomeSize(trimmed) {
			m.fieldErrors[step] = "pick a home size"
			return false
		}
		m.draft.HomeSize = trimmed
	case StepVehicle:
		answer, ok := ParseYesNo(trimmed)
		if !ok {
			m.fieldErrors[step] = "answer yes or no"
			return false
		}
		m.draft.HasVehicle = &answer
	case StepPacking:
		answer, ok := ParseYesNo(trimmed)
		if !ok {
			m.fieldErrors[step] = "answer yes or no"
			return false
		}
		m.draft.NeedsPacking = &answer
	case StepName:
		name := sanitize.Text(trimmed)
		if name == "" {
			m.fieldErrors[step] = "enter a name"
			return false
		}
		m.draft.Name = name
	case StepEmail:
		if !ValidEmail(trimmed) {
			m.fieldErrors[step] = "enter a valid email address"
			return false
		}
		m.draft.Email = trimmed
	case StepPhone:
		if !ValidPhone(trimmed) {
			m.fieldErrors[step] = "enter a phone number with at least 10 digits"
			return false
		}
		m.draft.Phone = trimmed
	default:
		return false
	}
	return true
}

// deliver appends a narration entry if its generation is still current.
func (m *Machine) deliver(gen int, step Step) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gen != gen || m.completed {
		return
	}
	m.pendingPrompt = false
	m.narration = append(m.narration, Narration{
		Step: step,
		Text: promptText(step),
		At:   time.Now(),
	})
}

// GoBack moves exactly one step backward, never past the first visible
// step. The most recent narration entry is dropped, already-answered values
// stay, and error flags clear.
func (m *Machine) GoBack() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.completed || m.idx <= m.first {
		return false
	}

	m.idx--
	m.gen++
	if m.pendingPrompt {
		// The abandoned step's prompt never landed; the generation bump
		// discards it in flight and the visible log stays intact.
		m.pendingPrompt = false
	} else if len(m.narration) > 0 {
		m.narration = m.narration[:len(m.narration)-1]
	}
	m.fieldErrors = make(map[Step]string)
	return true
}

// SetCity stamps a resolved city label on the draft. An empty label means
// the lookup degraded; the raw ZIP keeps standing in.
func (m *Machine) SetCity(step Step, label string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch step {
	case StepFromZip:
		m.draft.FromCity = label
	case StepToZip:
		m.draft.ToCity = label
	}
}

// Complete finalizes the conversation with one of the three handoff
// intents and returns the captured MoveIntent. Only valid at the terminal
// step, exactly once.
func (m *Machine) Complete(intent lead.Intent, sessionID string) (lead.MoveIntent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.completed {
		return lead.MoveIntent{}, apperr.Conflict("intake already completed")
	}
	if m.policy.Steps[m.idx] != StepHandoff {
		return lead.MoveIntent{}, apperr.Conflict("intake is not finished")
	}
	if !intent.Valid() {
		return lead.MoveIntent{}, apperr.Validation("unknown handoff intent")
	}

	m.completed = true
	m.gen++

	captured := lead.MoveIntent{
		ID:           uuid.New(),
		SessionID:    sessionID,
		Name:         m.draft.Name,
		Email:        m.draft.Email,
		Phone:        phone.NormalizeE164(m.draft.Phone),
		FromZip:      m.draft.FromZip,
		ToZip:        m.draft.ToZip,
		FromCity:     m.draft.FromCity,
		ToCity:       m.draft.ToCity,
		MoveDate:     m.draft.MoveDate,
		HomeSize:     m.draft.HomeSize,
		HasVehicle:   derefBool(m.draft.HasVehicle),
		NeedsPacking: derefBool(m.draft.NeedsPacking),
		Intent:       intent,
		CapturedAt:   time.Now(),
	}
	return captured, nil
}

// Reopen clears the completion latch after a failed persistence attempt so
// the visitor can retry from the terminal step.
func (m *Machine) Reopen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completed = false
}

// State is a point-in-time view of the machine for transport.
type State struct {
	Flow        string            `json:"flow"`
	Step        Step              `json:"step"`
	Completed   bool              `json:"completed"`
	Draft       Draft             `json:"draft"`
	FieldErrors map[Step]string   `json:"fieldErrors,omitempty"`
	Narration   []Narration       `json:"narration"`
	Preview     *pricing.Estimate `json:"preview,omitempty"`
}

// Snapshot copies the machine state.
func (m *Machine) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := State{
		Flow:      m.policy.Name,
		Step:      m.policy.Steps[m.idx],
		Completed: m.completed,
		Draft:     m.draft,
		Narration: append([]Narration(nil), m.narration...),
	}
	if len(m.fieldErrors) > 0 {
		errs := make(map[Step]string, len(m.fieldErrors))
		for k, v := range m.fieldErrors {
			errs[k] = v
		}
		state.FieldErrors = errs
	}
	if m.preview != nil {
		preview := *m.preview
		state.Preview = &preview
	}
	return state
}

func derefBool(b *bool) bool {
	return b != nil && *b
}
