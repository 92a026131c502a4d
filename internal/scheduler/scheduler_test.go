package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectsNonPositiveInterval(t *testing.T) {
	t.Parallel()
	_, err := NewScheduler(0, nil)
	assert.Error(t, err)
}

func TestRunsRegisteredJobs(t *testing.T) {
	t.Parallel()
	s, err := NewScheduler(20*time.Millisecond, nil)
	require.NoError(t, err)

	var calls atomic.Int32
	s.Add("milestones", RefreshFunc(func(context.Context) error {
		calls.Add(1)
		return nil
	}))
	require.NoError(t, s.Start())
	t.Cleanup(func() { _ = s.Stop() })

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
}
