package intake

import (
	"testing"
	"time"

	"movebroker_backend/internal/lead"
	"movebroker_backend/internal/pricing"
)

func newTestMachine(policy Policy, seed Seed) *Machine {
	return NewMachine(policy, seed, NewNarrator(0), pricing.PreviewEstimate)
}

func answerThrough(t *testing.T, m *Machine, answers map[Step]string) {
	t.Helper()
	for m.Current() != StepHandoff {
		step := m.Current()
		value, ok := answers[step]
		if !ok {
			t.Fatalf("no test answer for step %s", step)
		}
		if !m.Answer(step, value) {
			t.Fatalf("answer for step %s rejected: %+v", step, m.Snapshot().FieldErrors)
		}
	}
}

var validAnswers = map[Step]string{
	StepFromZip:  "78701",
	StepToZip:    "80201",
	StepMoveDate: "2026-10-15",
	StepHomeSize: "2br",
	StepVehicle:  "yes",
	StepPacking:  "no",
	StepName:     "Dana Whitfield",
	StepEmail:    "dana@example.com",
	StepPhone:    "(512) 555-0184",
}

func TestMachine_ScriptedWalkToHandoff(t *testing.T) {
	m := newTestMachine(ScriptedPolicy, Seed{})
	if m.Current() != StepFromZip {
		t.Fatalf("expected first step from_zip, got %s", m.Current())
	}

	answerThrough(t, m, validAnswers)

	state := m.Snapshot()
	if state.Step != StepHandoff {
		t.Fatalf("expected handoff, got %s", state.Step)
	}
	if state.Draft.HomeSize != "2br" || state.Draft.HasVehicle == nil || !*state.Draft.HasVehicle {
		t.Fatalf("draft not fully captured: %+v", state.Draft)
	}
	// One narration entry per visited step.
	if len(state.Narration) != len(ScriptedPolicy.Steps) {
		t.Fatalf("expected %d narration entries, got %d", len(ScriptedPolicy.Steps), len(state.Narration))
	}
}

func TestMachine_InvalidZipKeepsStep(t *testing.T) {
	m := newTestMachine(ScriptedPolicy, Seed{})

	if m.Answer(StepFromZip, "1234") {
		t.Fatal("expected 4-digit zip to be rejected")
	}

	state := m.Snapshot()
	if state.Step != StepFromZip {
		t.Fatalf("expected to stay on from_zip, got %s", state.Step)
	}
	if state.FieldErrors[StepFromZip] == "" {
		t.Fatal("expected a field error for from_zip")
	}

	// A valid retry clears the flag and advances.
	if !m.Answer(StepFromZip, "78701") {
		t.Fatal("expected valid zip to be accepted")
	}
	state = m.Snapshot()
	if state.Step != StepToZip || len(state.FieldErrors) != 0 {
		t.Fatalf("expected clean advance to to_zip, got %+v", state)
	}
}

func TestMachine_DoubleSubmitIsNoOp(t *testing.T) {
	m := newTestMachine(ScriptedPolicy, Seed{})

	if !m.Answer(StepFromZip, "78701") {
		t.Fatal("first submit rejected")
	}
	if m.Answer(StepFromZip, "78701") {
		t.Fatal("second submit of the same step should be a no-op")
	}

	state := m.Snapshot()
	if state.Step != StepToZip {
		t.Fatalf("expected single advance to to_zip, got %s", state.Step)
	}
	if len(state.Narration) != 2 {
		t.Fatalf("expected 2 narration entries, got %d", len(state.Narration))
	}
}

func TestMachine_SeedSkipsZipSteps(t *testing.T) {
	m := newTestMachine(ScriptedPolicy, Seed{FromZip: "78701", ToZip: "80201"})
	if m.Current() != StepMoveDate {
		t.Fatalf("expected move_date with both zips seeded, got %s", m.Current())
	}

	state := m.Snapshot()
	if state.Draft.FromZip != "78701" || state.Draft.ToZip != "80201" {
		t.Fatalf("seeded zips missing from draft: %+v", state.Draft)
	}

	m = newTestMachine(ScriptedPolicy, Seed{FromZip: "78701"})
	if m.Current() != StepToZip {
		t.Fatalf("expected to_zip with origin-only seed, got %s", m.Current())
	}
}

func TestMachine_InvalidSeedIsIgnored(t *testing.T) {
	m := newTestMachine(ScriptedPolicy, Seed{FromZip: "787", ToZip: "80201"})
	if m.Current() != StepFromZip {
		t.Fatalf("expected full flow for malformed seed, got %s", m.Current())
	}
	if m.Snapshot().Draft.ToZip != "" {
		t.Fatal("destination must not be seeded without a valid origin")
	}
}

func TestMachine_GoBackDropsNarrationOnce(t *testing.T) {
	m := newTestMachine(ScriptedPolicy, Seed{})
	m.Answer(StepFromZip, "78701")
	m.Answer(StepToZip, "80201")

	before := len(m.Snapshot().Narration)
	if !m.GoBack() {
		t.Fatal("expected goBack to succeed")
	}
	state := m.Snapshot()
	if state.Step != StepToZip {
		t.Fatalf("expected return to to_zip, got %s", state.Step)
	}
	if len(state.Narration) != before-1 {
		t.Fatalf("expected one narration entry dropped, got %d -> %d", before, len(state.Narration))
	}

	// Prior answer is preserved; re-answering produces no duplicates.
	if state.Draft.ToZip != "80201" {
		t.Fatalf("expected preserved answer, got %q", state.Draft.ToZip)
	}
	if !m.Answer(StepToZip, "80201") {
		t.Fatal("expected re-answer to be accepted")
	}
	state = m.Snapshot()
	if state.Step != StepMoveDate || len(state.Narration) != before {
		t.Fatalf("expected clean round trip, got step %s with %d entries", state.Step, len(state.Narration))
	}
}

func TestMachine_GoBackStopsAtFirstVisibleStep(t *testing.T) {
	m := newTestMachine(ScriptedPolicy, Seed{FromZip: "78701", ToZip: "80201"})
	if m.GoBack() {
		t.Fatal("goBack must not enter seeded steps")
	}
	if m.Current() != StepMoveDate {
		t.Fatalf("expected to stay on move_date, got %s", m.Current())
	}
}

func TestMachine_StaleNarrationDiscardedAfterGoBack(t *testing.T) {
	narrator := NewNarrator(30 * time.Millisecond)
	defer narrator.Close()
	m := NewMachine(ScriptedPolicy, Seed{}, narrator, pricing.PreviewEstimate)

	m.Answer(StepFromZip, "78701")
	m.GoBack() // before the to_zip prompt lands

	time.Sleep(80 * time.Millisecond)

	// The in-flight to_zip prompt is discarded, but the from_zip prompt the
	// visitor is looking at must survive.
	state := m.Snapshot()
	if len(state.Narration) != 1 || state.Narration[0].Step != StepFromZip {
		t.Fatalf("expected only the from_zip prompt to remain, got %+v", state.Narration)
	}
	if state.Step != StepFromZip {
		t.Fatalf("expected from_zip after goBack, got %s", state.Step)
	}

	// Re-advancing schedules the prompt again, exactly once.
	if !m.Answer(StepFromZip, "78701") {
		t.Fatal("expected re-answer to be accepted")
	}
	time.Sleep(80 * time.Millisecond)
	state = m.Snapshot()
	if len(state.Narration) != 2 || state.Narration[1].Step != StepToZip {
		t.Fatalf("expected a single to_zip prompt after re-advance, got %+v", state.Narration)
	}
}

func TestMachine_ScriptedPreviewAfterPacking(t *testing.T) {
	m := newTestMachine(ScriptedPolicy, Seed{FromZip: "78701", ToZip: "80201"})
	m.Answer(StepMoveDate, "2026-10-15")
	m.Answer(StepHomeSize, "2br")
	if m.Snapshot().Preview != nil {
		t.Fatal("scripted flow must not surface the preview before packing")
	}
	m.Answer(StepVehicle, "no")
	m.Answer(StepPacking, "no")

	preview := m.Snapshot().Preview
	if preview == nil {
		t.Fatal("expected preview after packing")
	}
	if want := pricing.PreviewEstimate("2br", false, false); *preview != want {
		t.Fatalf("expected %+v, got %+v", want, *preview)
	}
}

func TestMachine_FocusPreviewAfterHomeSizeAndUpdates(t *testing.T) {
	m := newTestMachine(FocusPolicy, Seed{FromZip: "78701", ToZip: "80201"})
	if m.Current() != StepHomeSize {
		t.Fatalf("focus flow should ask size first after seeds, got %s", m.Current())
	}

	m.Answer(StepHomeSize, "3br")
	preview := m.Snapshot().Preview
	if preview == nil {
		t.Fatal("focus flow surfaces the preview right after size")
	}
	if want := pricing.PreviewEstimate("3br", false, false); *preview != want {
		t.Fatalf("expected %+v, got %+v", want, *preview)
	}

	m.Answer(StepMoveDate, "2026-10-15")
	m.Answer(StepVehicle, "yes")
	preview = m.Snapshot().Preview
	if want := pricing.PreviewEstimate("3br", true, false); preview == nil || *preview != want {
		t.Fatalf("expected updated preview %+v, got %+v", want, preview)
	}
}

func TestMachine_CompleteProducesMoveIntent(t *testing.T) {
	m := newTestMachine(ScriptedPolicy, Seed{})
	answerThrough(t, m, validAnswers)

	captured, err := m.Complete(lead.IntentSpecialist, "session-1")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if captured.Intent != lead.IntentSpecialist || captured.FromZip != "78701" {
		t.Fatalf("unexpected capture: %+v", captured)
	}
	if captured.Phone != "+15125550184" {
		t.Fatalf("expected normalized phone, got %q", captured.Phone)
	}
	if captured.MoveDate == nil || captured.MoveDate.Format("2006-01-02") != "2026-10-15" {
		t.Fatalf("unexpected move date: %v", captured.MoveDate)
	}

	// Second completion must fail.
	if _, err := m.Complete(lead.IntentSpecialist, "session-1"); err == nil {
		t.Fatal("expected error on repeated completion")
	}
	// Answers after completion are rejected.
	if m.Answer(StepHandoff, "anything") {
		t.Fatal("expected answers after completion to be rejected")
	}
}

func TestMachine_CompleteRejectedMidFlow(t *testing.T) {
	m := newTestMachine(ScriptedPolicy, Seed{})
	m.Answer(StepFromZip, "78701")

	if _, err := m.Complete(lead.IntentVirtual, "session-2"); err == nil {
		t.Fatal("expected completion before handoff to fail")
	}
}

func TestMachine_CompleteRejectsUnknownIntent(t *testing.T) {
	m := newTestMachine(ScriptedPolicy, Seed{})
	answerThrough(t, m, validAnswers)

	if _, err := m.Complete(lead.Intent("postcard"), "session-3"); err == nil {
		t.Fatal("expected unknown intent to be rejected")
	}
}
