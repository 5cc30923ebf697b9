package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	xhttp "github.com/atarantas86/edgefinder2/pkg/http"
)

func newTestFetcher(url string) *Fetcher {
	return New(xhttp.NewClient(xhttp.WithTimeout(2*time.Second)), url, nil, nil)
}

func TestBindIdleUntilRefetch(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	b := newTestFetcher(srv.URL).Bind("/api/signals", false)
	if got := b.Snapshot(); got.State != Idle || got.Loading {
		t.Fatalf("non-immediate binding must start idle, got %v", got.State)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("no request must be issued before refetch")
	}

	if _, err := b.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}
}

func TestLoadSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"signals":[]}`))
	}))
	defer srv.Close()

	b := newTestFetcher(srv.URL).Bind("/api/signals", false)
	snap, err := b.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.State != Ready || snap.Loading {
		t.Fatalf("state = %v, want ready", snap.State)
	}
	if string(snap.Data) != `{"signals":[]}` {
		t.Fatalf("unexpected payload %q", snap.Data)
	}
	if snap.Err != "" {
		t.Fatalf("error must be empty after success, got %q", snap.Err)
	}
}

func TestFailureKeepsStaleDataThenRecovers(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"roi":5}`))
	}))
	defer srv.Close()

	b := newTestFetcher(srv.URL).Bind("/api/performance", false)
	if _, err := b.Load(context.Background()); err != nil {
		t.Fatalf("first load: %v", err)
	}

	fail.Store(true)
	snap, err := b.Load(context.Background())
	if err == nil {
		t.Fatalf("expected error for HTTP 500")
	}
	if snap.State != Failed || snap.Loading {
		t.Fatalf("state = %v, want failed with loading=false", snap.State)
	}
	if snap.Err == "" || !strings.Contains(snap.Err, "500") {
		t.Fatalf("error must embed the status code, got %q", snap.Err)
	}
	if string(snap.Data) != `{"roi":5}` {
		t.Fatalf("prior data must be retained on failure, got %q", snap.Data)
	}

	fail.Store(false)
	snap, err = b.Load(context.Background())
	if err != nil {
		t.Fatalf("refetch after failure: %v", err)
	}
	if snap.State != Ready || snap.Err != "" {
		t.Fatalf("successful refetch must clear the error, got state=%v err=%q", snap.State, snap.Err)
	}
}

func TestTransportFailureMessage(t *testing.T) {
	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	b := newTestFetcher(url).Bind("/api/history", false)
	snap, err := b.Load(context.Background())
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if snap.State != Failed || snap.Err == "" {
		t.Fatalf("transport failure must surface an error string, got %+v", snap)
	}
}

func TestLateCompletionIsFenced(t *testing.T) {
	release := make(chan struct{})
	var first atomic.Bool
	first.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if first.CompareAndSwap(true, false) {
			<-release // hold the first request until the second settled
			w.Write([]byte(`"old"`))
			return
		}
		w.Write([]byte(`"new"`))
	}))
	defer srv.Close()

	b := newTestFetcher(srv.URL).Bind("/api/signals", false)

	done := make(chan Snapshot, 1)
	go func() {
		snap, _ := b.Load(context.Background())
		done <- snap
	}()
	time.Sleep(50 * time.Millisecond) // let the first request reach the server

	if _, err := b.Load(context.Background()); err != nil {
		t.Fatalf("second load: %v", err)
	}
	close(release)
	<-done

	snap := b.Snapshot()
	if string(snap.Data) != `"new"` {
		t.Fatalf("stale completion must not overwrite newer data, got %q", snap.Data)
	}
	if snap.State != Ready {
		t.Fatalf("state = %v, want ready", snap.State)
	}
}

func TestIndependentBindingsIssueIndependentRequests(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL)
	a := f.Bind("/api/signals", false)
	b := f.Bind("/api/signals", false)
	a.Load(context.Background())
	b.Load(context.Background())

	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("two bindings must issue two requests, got %d", calls)
	}
}
