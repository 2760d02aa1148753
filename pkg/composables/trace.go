package composables

import (
	"context"
	"fmt"
	"sync"

	"github.com/atelier-dourado/backoffice/pkg/constants"
)

// Trace is the ordered diagnostic record of one request. It lives only
// for the request/response cycle; entries end up in the structured log
// and, when debug responses are enabled, in the error body.
type Trace struct {
	mu      sync.Mutex
	entries []string
}

func NewTrace() *Trace {
	return &Trace{}
}

func (t *Trace) Add(format string, args ...any) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, fmt.Sprintf(format, args...))
}

func (t *Trace) Entries() []string {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

func WithTrace(ctx context.Context, trace *Trace) context.Context {
	return context.WithValue(ctx, constants.TraceKey, trace)
}

// UseTrace returns the trace carried by ctx. A nil *Trace is returned
// when none is attached; Add on a nil trace is a no-op, so call sites
// never need to branch.
func UseTrace(ctx context.Context) *Trace {
	trace, _ := ctx.Value(constants.TraceKey).(*Trace)
	return trace
}
