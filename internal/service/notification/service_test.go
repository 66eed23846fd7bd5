package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinician-api/pkg/logger"
)

func TestRequestPermission_AlwaysGrants(t *testing.T) {
	svc := NewService(logger.Nop())

	granted, err := svc.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.True(t, granted)
}

func TestEnabled_FollowsRandomSource(t *testing.T) {
	svc := NewService(logger.Nop())

	svc.rnd = func() float64 { return 0.9 }
	enabled, err := svc.Enabled(context.Background())
	require.NoError(t, err)
	assert.True(t, enabled)

	svc.rnd = func() float64 { return 0.1 }
	enabled, err = svc.Enabled(context.Background())
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestDisableAndReminder_NeverFail(t *testing.T) {
	svc := NewService(logger.Nop())
	ctx := context.Background()

	assert.NoError(t, svc.Disable(ctx))
	assert.NoError(t, svc.ScheduleReminder(ctx, "apt_001", time.Now().Add(time.Hour)))
}
