package composables

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrace_NilSafe(t *testing.T) {
	var trace *Trace
	assert.NotPanics(t, func() {
		trace.Add("ignored %d", 1)
	})
	assert.Empty(t, trace.Entries())
}

func TestTrace_CollectsEntries(t *testing.T) {
	trace := NewTrace()
	trace.Add("first")
	trace.Add("second %d", 2)
	assert.Equal(t, []string{"first", "second 2"}, trace.Entries())
}

func TestUseTrace_AbsentContext(t *testing.T) {
	trace := UseTrace(context.Background())
	assert.NotPanics(t, func() {
		trace.Add("no trace attached")
	})
}
