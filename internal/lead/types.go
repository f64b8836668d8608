package lead

// DraftResponse is the consume-once payload handed to the inventory
// builder page. The record is always present; an expired or already-read
// slot comes back with zeroed fields and HomeSize "unset" so the page can
// start blank instead of erroring.
type DraftResponse struct {
	Draft MoveIntent `json:"draft"`
}

// RecentResponse lists archived leads for the back office.
type RecentResponse struct {
	Leads []MoveIntent `json:"leads"`
	Count int          `json:"count"`
}
