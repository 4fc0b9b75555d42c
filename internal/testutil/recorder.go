// Package testutil provides common test utilities for SDK tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	dErrors "github.com/formbind-dev/formbind-sdk/domain/errors"
	"github.com/formbind-dev/formbind-sdk/domain/ports"
)

// Recorder captures change notifications so tests can assert exact delivery
// counts and ordering.
type Recorder struct {
	Events []string
}

// Subscriber returns the callback to register with a ChangeNotifier.
func (r *Recorder) Subscriber() ports.Subscriber {
	return func(property string) {
		r.Events = append(r.Events, property)
	}
}

// Count returns how many notifications were recorded for a property.
func (r *Recorder) Count(property string) int {
	n := 0
	for _, e := range r.Events {
		if e == property {
			n++
		}
	}
	return n
}

// Reset discards all recorded notifications.
func (r *Recorder) Reset() {
	r.Events = nil
}

// RequireConfiguration asserts that err belongs to the construction-time
// configuration error class.
func RequireConfiguration(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, dErrors.IsConfiguration(err), "expected configuration error, got %T: %v", err, err)
}
