package location

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"movebroker_backend/platform/logger"
)

type testConfig struct {
	baseURL string
	timeout time.Duration
}

func (c testConfig) GetZipLookupBaseURL() string        { return c.baseURL }
func (c testConfig) GetZipLookupTimeout() time.Duration { return c.timeout }

func newTestResolver(baseURL string) *Resolver {
	return NewResolver(testConfig{baseURL: baseURL, timeout: 2 * time.Second}, logger.New("test"))
}

func TestResolveZip_BuiltinSkipsNetwork(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL)
	if got := r.ResolveZip(context.Background(), "78701"); got != "Austin, TX" {
		t.Fatalf("expected Austin, TX, got %q", got)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("expected no upstream calls for built-in zip, got %d", calls)
	}
}

func TestResolveZip_ExternalLookupIsMemoized(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if !strings.HasSuffix(r.URL.Path, "/54901") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"post code":"54901","places":[{"place name":"Oshkosh","state abbreviation":"WI"}]}`))
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL)
	for i := 0; i < 3; i++ {
		if got := r.ResolveZip(context.Background(), "54901"); got != "Oshkosh, WI" {
			t.Fatalf("call %d: expected Oshkosh, WI, got %q", i, got)
		}
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", calls)
	}
}

func TestResolveZip_UpstreamErrorDegradesToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL)
	if got := r.ResolveZip(context.Background(), "00000"); got != "" {
		t.Fatalf("expected empty label on upstream 404, got %q", got)
	}
}

func TestResolveZip_FailureIsNotMemoized(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"post code":"54901","places":[{"place name":"Oshkosh","state abbreviation":"WI"}]}`))
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL)
	if got := r.ResolveZip(context.Background(), "54901"); got != "" {
		t.Fatalf("expected empty label on first failing call, got %q", got)
	}
	if got := r.ResolveZip(context.Background(), "54901"); got != "Oshkosh, WI" {
		t.Fatalf("expected recovery on retry, got %q", got)
	}
}

func TestSuggest_CityQuery(t *testing.T) {
	r := newTestResolver("http://unused.invalid")

	got := r.Suggest(context.Background(), "san ")
	if len(got) == 0 {
		t.Fatal("expected suggestions for city query")
	}

	got = r.Suggest(context.Background(), "san")
	if len(got) != 4 {
		t.Fatalf("expected 4 city matches for 'san', got %d", len(got))
	}
	if got[0].Label != "San Antonio, TX" {
		t.Fatalf("expected table order, got %q first", got[0].Label)
	}
}

func TestSuggest_NeverExceedsFive(t *testing.T) {
	r := newTestResolver("http://unused.invalid")
	for _, q := range []string{"a", "o", "9", "1", "new"} {
		if got := r.Suggest(context.Background(), q); len(got) > 5 {
			t.Fatalf("query %q: expected at most 5 suggestions, got %d", q, len(got))
		}
	}
}

func TestSuggest_NumericPrefix(t *testing.T) {
	r := newTestResolver("http://unused.invalid")

	got := r.Suggest(context.Background(), "787")
	if len(got) == 0 || got[0].Zip != "78701" {
		t.Fatalf("expected 78701 first for prefix 787, got %+v", got)
	}
}

func TestSuggest_PadsShortNumericQueryForLookup(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"post code":"54900","places":[{"place name":"Oshkosh","state abbreviation":"WI"}]}`))
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL)
	got := r.Suggest(context.Background(), "549")
	if !strings.HasSuffix(gotPath, "/54900") {
		t.Fatalf("expected zero-padded lookup /54900, got %q", gotPath)
	}
	if len(got) != 1 || got[0].Zip != "54900" || got[0].Label != "Oshkosh, WI" {
		t.Fatalf("expected single padded suggestion, got %+v", got)
	}
}

func TestSuggest_LongNumericQueryTruncatesToZip(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"post code":"12345","places":[{"place name":"Schenectady","state abbreviation":"NY"}]}`))
	}))
	defer srv.Close()

	r := newTestResolver(srv.URL)
	got := r.Suggest(context.Background(), "123456")
	if !strings.HasSuffix(gotPath, "/12345") {
		t.Fatalf("expected lookup on the first five digits, got %q", gotPath)
	}
	if len(got) != 1 || got[0].Zip != "12345" {
		t.Fatalf("expected truncated suggestion, got %+v", got)
	}

	// Even longer input must not blow up either.
	if got := r.Suggest(context.Background(), "1234567890"); len(got) > maxSuggestions {
		t.Fatalf("expected bounded suggestions, got %d", len(got))
	}
}

func TestSuggest_EmptyQuery(t *testing.T) {
	r := newTestResolver("http://unused.invalid")
	if got := r.Suggest(context.Background(), "   "); got != nil {
		t.Fatalf("expected nil for blank query, got %+v", got)
	}
}
