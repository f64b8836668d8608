package location

// SuggestRequest represents the autocomplete query parameters.
type SuggestRequest struct {
	Query string `form:"q" binding:"required,min=1"`
}

// SuggestResponse lists autocomplete entries, built-in matches first.
type SuggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// ResolveResponse is the outcome of a single ZIP resolution. Resolved is
// false when the funnel should fall back to showing the raw ZIP.
type ResolveResponse struct {
	Zip      string `json:"zip"`
	Label    string `json:"label,omitempty"`
	Resolved bool   `json:"resolved"`
}
