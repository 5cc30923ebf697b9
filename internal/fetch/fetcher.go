// Package fetch owns the request lifecycle for the analytics engine's
// endpoints. Each binding is an explicit state machine (Idle, Loading,
// Ready, Failed) with a single refetch transition back to Loading from any
// state. A monotonically increasing request sequence number fences late
// completions: when requests overlap, only the most recent one may apply
// its result, so a superseded response can never clobber newer state.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	xhttp "github.com/atarantas86/edgefinder2/pkg/http"
	xlogger "github.com/atarantas86/edgefinder2/pkg/logger"
	"github.com/atarantas86/edgefinder2/pkg/metrics"
)

// State is the lifecycle state of a binding.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time copy of a binding's state triple. Data holds
// the last successful payload: a failed fetch leaves it untouched, it is
// never nulled on error.
type Snapshot struct {
	State   State
	Loading bool
	Data    []byte
	Err     string
}

// Fetcher builds bindings against one engine base URL. Bindings are
// independent: two bindings to the same endpoint issue independent
// requests, and there is no caching or deduplication between them.
type Fetcher struct {
	client  *xhttp.Client
	baseURL string
	log     *xlogger.Logger
	rec     *metrics.Recorder
}

// New creates a Fetcher. Logger and recorder may be nil (tests).
func New(client *xhttp.Client, baseURL string, log *xlogger.Logger, rec *metrics.Recorder) *Fetcher {
	return &Fetcher{client: client, baseURL: baseURL, log: log, rec: rec}
}

// Binding is the request state machine for a single endpoint.
type Binding struct {
	f     *Fetcher
	path  string
	query map[string][]string

	mu    sync.Mutex
	seq   uint64
	state State
	data  []byte
	err   string
}

// Bind creates a binding for an engine path. When immediate is true the
// first request is issued asynchronously right away and the binding starts
// in Loading; otherwise it stays Idle until Refetch or Load.
func (f *Fetcher) Bind(path string, immediate bool) *Binding {
	b := &Binding{f: f, path: path, state: Idle}
	if immediate {
		b.Refetch(context.Background())
	}
	return b
}

// BindQuery is Bind with fixed query parameters for every request.
func (f *Fetcher) BindQuery(path string, query map[string][]string, immediate bool) *Binding {
	b := &Binding{f: f, path: path, query: query, state: Idle}
	if immediate {
		b.Refetch(context.Background())
	}
	return b
}

// Refetch transitions to Loading and issues a fresh request without
// waiting for the result. Always performs a new request, even when one is
// already in flight; the sequence fence decides whose result sticks.
func (b *Binding) Refetch(ctx context.Context) {
	go func() {
		_, _ = b.Load(ctx)
	}()
}

// Load issues a request synchronously and returns the snapshot after this
// request settled. If a newer request started in the meantime, this
// request's result is discarded and the returned snapshot reflects the
// newer state.
func (b *Binding) Load(ctx context.Context) (Snapshot, error) {
	b.mu.Lock()
	b.seq++
	id := b.seq
	b.state = Loading
	b.mu.Unlock()

	if b.f.rec != nil {
		b.f.rec.RecordFetch(b.path)
	}
	start := time.Now()
	body, err := b.f.client.GetBytes(ctx, b.f.baseURL+b.path, b.query)
	elapsed := time.Since(start)

	b.mu.Lock()
	defer b.mu.Unlock()

	if id != b.seq {
		// Superseded while in flight; the fence drops this completion.
		if b.f.log != nil {
			b.f.log.Debug("stale fetch discarded", xlogger.String("path", b.path))
		}
		return b.snapshotLocked(), nil
	}

	if b.f.rec != nil {
		b.f.rec.RecordFetchDuration(b.path, elapsed.Seconds())
	}

	if err != nil {
		b.state = Failed
		b.err = describeError(err)
		if b.f.rec != nil {
			b.f.rec.RecordFetchError(b.path, errorKind(err))
		}
		if b.f.log != nil {
			b.f.log.Error("engine fetch failed",
				xlogger.String("path", b.path),
				xlogger.Error(err),
			)
		}
		return b.snapshotLocked(), err
	}

	b.state = Ready
	b.data = body
	b.err = ""
	if b.f.rec != nil {
		b.f.rec.RecordFetchSuccess(b.path, float64(time.Now().Unix()))
	}
	return b.snapshotLocked(), nil
}

// Snapshot returns the current state triple.
func (b *Binding) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

func (b *Binding) snapshotLocked() Snapshot {
	return Snapshot{
		State:   b.state,
		Loading: b.state == Loading,
		Data:    b.data,
		Err:     b.err,
	}
}

// describeError turns a fetch failure into the user-facing error string.
// Non-success HTTP statuses embed the status code; transport failures get
// a generic message.
func describeError(err error) string {
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("engine responded with status %d", se.Code)
	}
	return "engine request failed: " + err.Error()
}

func errorKind(err error) string {
	var se *xhttp.StatusError
	if errors.As(err, &se) {
		return "status"
	}
	return "transport"
}
