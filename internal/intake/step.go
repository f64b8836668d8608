// Package intake drives the multi-step question flow that captures a
// MoveIntent: step sequencing, per-step validation, back-navigation,
// deep-link skipping and preview-estimate recomputation.
package intake

// Step is one question state of the intake conversation.
type Step string

const (
	StepFromZip  Step = "from_zip"
	StepToZip    Step = "to_zip"
	StepMoveDate Step = "move_date"
	StepHomeSize Step = "home_size"
	StepVehicle  Step = "vehicle"
	StepPacking  Step = "packing"
	StepName     Step = "name"
	StepEmail    Step = "email"
	StepPhone    Step = "phone"
	StepHandoff  Step = "handoff"
)

// Policy is an explicit, named step ordering. The product historically
// shipped two independently coded orderings of the same flow; they live here
// as data so they cannot drift apart. PreviewAfter marks the steps whose
// valid answer recomputes the preview estimate.
type Policy struct {
	Name         string
	Steps        []Step
	PreviewAfter map[Step]bool
}

// ScriptedPolicy is the scripted-bot ordering: the preview estimate surfaces
// only after both add-on questions are answered.
var ScriptedPolicy = Policy{
	Name: "scripted",
	Steps: []Step{
		StepFromZip, StepToZip, StepMoveDate, StepHomeSize,
		StepVehicle, StepPacking, StepName, StepEmail, StepPhone, StepHandoff,
	},
	PreviewAfter: map[Step]bool{
		StepPacking: true,
	},
}

// FocusPolicy is the focus-mode ordering: home size comes before the date,
// there is no separate name step, and the preview estimate surfaces right
// after the size answer, updating as the add-ons change it.
var FocusPolicy = Policy{
	Name: "focus",
	Steps: []Step{
		StepFromZip, StepToZip, StepHomeSize, StepMoveDate,
		StepVehicle, StepPacking, StepEmail, StepPhone, StepHandoff,
	},
	PreviewAfter: map[Step]bool{
		StepHomeSize: true,
		StepVehicle:  true,
		StepPacking:  true,
	},
}

// PolicyByName returns a builtin policy by its name.
func PolicyByName(name string) (Policy, bool) {
	switch name {
	case ScriptedPolicy.Name:
		return ScriptedPolicy, true
	case FocusPolicy.Name:
		return FocusPolicy, true
	}
	return Policy{}, false
}

// prompts are the bot utterances announced when a step becomes current.
var prompts = map[Step]string{
	StepFromZip:  "Where are you moving from? Enter the ZIP code.",
	StepToZip:    "Where are you headed? Enter the destination ZIP code.",
	StepMoveDate: "When would you like to move?",
	StepHomeSize: "How big is the place you're moving out of?",
	StepVehicle:  "Do you need a vehicle shipped as well?",
	StepPacking:  "Would you like our crew to handle the packing?",
	StepName:     "Great - who am I putting this together for?",
	StepEmail:    "Where should we send your quote?",
	StepPhone:    "And the best number to reach you?",
	StepHandoff:  "All set! How would you like to continue?",
}

// promptText returns the narration text for a step.
func promptText(step Step) string {
	return prompts[step]
}
