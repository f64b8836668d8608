// Package location resolves ZIP codes and partial city names to display
// labels. It degrades instead of failing: every error path resolves to an
// empty result so the funnel can continue with the raw ZIP.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"movebroker_backend/platform/config"
	"movebroker_backend/platform/logger"
)

const maxSuggestions = 5

// Resolver maps ZIP/city text to display labels using the built-in table
// first and one external lookup otherwise. Successful external lookups are
// memoized for the resolver's lifetime.
type Resolver struct {
	client  *http.Client
	baseURL string
	log     *logger.Logger

	mu   sync.Mutex
	memo map[string]string
}

func NewResolver(cfg config.LocationConfig, log *logger.Logger) *Resolver {
	return &Resolver{
		client:  &http.Client{Timeout: cfg.GetZipLookupTimeout()},
		baseURL: strings.TrimRight(cfg.GetZipLookupBaseURL(), "/"),
		log:     log,
		memo:    make(map[string]string),
	}
}

// zippopotamResponse mirrors the relevant parts of the lookup payload.
type zippopotamResponse struct {
	PostCode string            `json:"post code"`
	Places   []zippopotamPlace `json:"places"`
}

type zippopotamPlace struct {
	PlaceName         string `json:"place name"`
	StateAbbreviation string `json:"state abbreviation"`
}

// ResolveZip returns the "City, ST" label for a ZIP, or "" when it cannot be
// resolved. It never returns an error to the caller.
func (r *Resolver) ResolveZip(ctx context.Context, zip string) string {
	zip = strings.TrimSpace(zip)
	if place, ok := builtinByZip[zip]; ok {
		return place.Label()
	}

	r.mu.Lock()
	cached, ok := r.memo[zip]
	r.mu.Unlock()
	if ok {
		return cached
	}

	label, err := r.lookup(ctx, zip)
	if err != nil {
		r.log.LookupFailed(zip, err)
		return ""
	}

	r.mu.Lock()
	r.memo[zip] = label
	r.mu.Unlock()

	return label
}

func (r *Resolver) lookup(ctx context.Context, zip string) (string, error) {
	reqURL := fmt.Sprintf("%s/%s", r.baseURL, zip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	var payload zippopotamResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	if len(payload.Places) == 0 {
		return "", fmt.Errorf("no places for zip %s", zip)
	}

	place := payload.Places[0]
	if place.PlaceName == "" {
		return "", fmt.Errorf("empty place name for zip %s", zip)
	}

	return place.PlaceName + ", " + place.StateAbbreviation, nil
}

// Suggestion is one autocomplete entry.
type Suggestion struct {
	Zip   string `json:"zip"`
	Label string `json:"label"`
}

// Suggest returns up to five entries for an autocomplete query. A numeric
// query matches ZIP prefixes; anything else matches city names
// case-insensitively. Built-in matches come first; a numeric query of three
// or more digits with spare capacity triggers at most one external lookup on
// the zero-padded ZIP.
func (r *Resolver) Suggest(ctx context.Context, query string) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	suggestions := make([]Suggestion, 0, maxSuggestions)
	if !isNumeric(query) {
		lowered := strings.ToLower(query)
		for _, place := range builtinPlaces {
			if strings.Contains(strings.ToLower(place.City), lowered) {
				suggestions = append(suggestions, Suggestion{Zip: place.Zip, Label: place.Label()})
				if len(suggestions) == maxSuggestions {
					break
				}
			}
		}
		return suggestions
	}

	matched := make(map[string]bool)
	for _, place := range builtinPlaces {
		if strings.HasPrefix(place.Zip, query) {
			suggestions = append(suggestions, Suggestion{Zip: place.Zip, Label: place.Label()})
			matched[place.Zip] = true
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}

	if len(suggestions) < maxSuggestions && len(query) >= 3 {
		padded := query
		if len(query) > 5 {
			padded = query[:5]
		} else if len(query) < 5 {
			padded = query + strings.Repeat("0", 5-len(query))
		}
		if !matched[padded] {
			if label := r.ResolveZip(ctx, padded); label != "" {
				suggestions = append(suggestions, Suggestion{Zip: padded, Label: label})
			}
		}
	}

	return suggestions
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
