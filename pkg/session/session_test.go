package session_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testebank/testebank_backend/pkg/session"
)

func TestActivate_RefreshesExpiredTokenImmediately(t *testing.T) {
	var calls atomic.Int32
	refresh := func(ctx context.Context) (time.Time, error) {
		calls.Add(1)
		return time.Now().Add(time.Hour), nil
	}

	m := session.NewManager(refresh, time.Time{}) // no token held yet
	defer m.Close()

	require.NoError(t, m.Activate(context.Background()))

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, session.Active, m.State())
	assert.True(t, m.Expiry().After(time.Now()))
}

func TestActivate_FreshTokenIsNotRefreshed(t *testing.T) {
	var calls atomic.Int32
	refresh := func(ctx context.Context) (time.Time, error) {
		calls.Add(1)
		return time.Now().Add(time.Hour), nil
	}

	m := session.NewManager(refresh, time.Now().Add(time.Hour))
	defer m.Close()

	require.NoError(t, m.Activate(context.Background()))

	assert.Equal(t, int32(0), calls.Load())
}

func TestActivate_PropagatesRefreshError(t *testing.T) {
	refreshErr := errors.New("network down")
	refresh := func(ctx context.Context) (time.Time, error) {
		return time.Time{}, refreshErr
	}

	m := session.NewManager(refresh, time.Time{})
	defer m.Close()

	err := m.Activate(context.Background())
	require.ErrorIs(t, err, refreshErr)
}

func TestScheduledRefreshFiresAheadOfExpiry(t *testing.T) {
	var calls atomic.Int32
	refresh := func(ctx context.Context) (time.Time, error) {
		calls.Add(1)
		return time.Now().Add(time.Hour), nil
	}

	// Token expires in 60ms with a 10ms lead, so the refresh should fire
	// around 50ms in.
	m := session.NewManager(refresh, time.Now().Add(60*time.Millisecond),
		session.WithRefreshLead(10*time.Millisecond))
	defer m.Close()

	require.NoError(t, m.Activate(context.Background()))
	assert.Equal(t, int32(0), calls.Load())

	assert.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)
}

func TestDeactivate_StopsScheduledRefresh(t *testing.T) {
	var calls atomic.Int32
	refresh := func(ctx context.Context) (time.Time, error) {
		calls.Add(1)
		return time.Now().Add(time.Hour), nil
	}

	m := session.NewManager(refresh, time.Now().Add(50*time.Millisecond),
		session.WithRefreshLead(10*time.Millisecond))
	defer m.Close()

	require.NoError(t, m.Activate(context.Background()))
	m.Deactivate()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, session.Background, m.State())
}

func TestActivate_AfterCloseFails(t *testing.T) {
	m := session.NewManager(func(ctx context.Context) (time.Time, error) {
		return time.Now().Add(time.Hour), nil
	}, time.Now().Add(time.Hour))

	m.Close()

	require.ErrorIs(t, m.Activate(context.Background()), session.ErrClosed)
}

func TestActivate_Twice_IsANoOp(t *testing.T) {
	var calls atomic.Int32
	refresh := func(ctx context.Context) (time.Time, error) {
		calls.Add(1)
		return time.Now().Add(time.Hour), nil
	}

	m := session.NewManager(refresh, time.Time{})
	defer m.Close()

	require.NoError(t, m.Activate(context.Background()))
	require.NoError(t, m.Activate(context.Background()))

	assert.Equal(t, int32(1), calls.Load())
}
