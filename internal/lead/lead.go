// Package lead holds the captured MoveIntent record, the consume-once slot
// that hands it to the downstream page, and the optional Postgres archive.
package lead

import (
	"time"

	"github.com/google/uuid"
)

// Intent is the single completion choice of the intake funnel.
type Intent string

const (
	// IntentSpecialist hands the lead to a phone specialist.
	IntentSpecialist Intent = "specialist"
	// IntentVirtual hands the lead to the virtual-survey booking page.
	IntentVirtual Intent = "virtual"
	// IntentBuilder hands the lead to the full inventory builder.
	IntentBuilder Intent = "builder"
)

// Valid reports whether the intent is one of the three handoff choices.
func (i Intent) Valid() bool {
	switch i {
	case IntentSpecialist, IntentVirtual, IntentBuilder:
		return true
	}
	return false
}

// MoveIntent is the captured lead record. Contact fields stay empty until
// their intake step; HomeSize holds the internal size code.
type MoveIntent struct {
	ID           uuid.UUID  `json:"id"`
	SessionID    string     `json:"sessionId"`
	Name         string     `json:"name,omitempty"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	FromZip      string     `json:"fromZip"`
	ToZip        string     `json:"toZip"`
	FromCity     string     `json:"fromCity,omitempty"`
	ToCity       string     `json:"toCity,omitempty"`
	MoveDate     *time.Time `json:"moveDate,omitempty"`
	HomeSize     string     `json:"homeSize"`
	HasVehicle   bool       `json:"hasVehicle"`
	NeedsPacking bool       `json:"needsPacking"`
	Intent       Intent     `json:"intent"`
	CapturedAt   time.Time  `json:"capturedAt"`
}

// sizeLabels maps internal size codes to the human labels written to the
// slot (the downstream page historically received labels, not codes).
var sizeLabels = map[string]string{
	"studio": "Studio",
	"1br":    "1 Bedroom",
	"2br":    "2 Bedroom",
	"3br":    "3 Bedroom",
	"4br":    "4+ Bedroom",
	"office": "Office",
}

// legacySizeCodes maps slot labels back to internal codes. The codes
// themselves are also accepted so round-trips stay stable. Anything else
// maps to "unset", never an error.
var legacySizeCodes = map[string]string{
	"Studio":     "studio",
	"1 Bedroom":  "1br",
	"2 Bedroom":  "2br",
	"3 Bedroom":  "3br",
	"4+ Bedroom": "4br",
	"Office":     "office",
	"studio":     "studio",
	"1br":        "1br",
	"2br":        "2br",
	"3br":        "3br",
	"4br":        "4br",
	"office":     "office",
}

// SizeLabelForCode returns the human label for an internal size code, or the
// code itself when no label is known.
func SizeLabelForCode(code string) string {
	if label, ok := sizeLabels[code]; ok {
		return label
	}
	return code
}

// SizeCodeForLabel maps a slot size label to the internal code; unknown
// labels map to "unset".
func SizeCodeForLabel(label string) string {
	if code, ok := legacySizeCodes[label]; ok {
		return code
	}
	return "unset"
}
