package notion

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimiter_CheckRateLimit(t *testing.T) {
	r := NewRateLimiter()

	assert.NoError(t, r.CheckRateLimit(nil))
	assert.NoError(t, r.CheckRateLimit(&http.Response{StatusCode: http.StatusOK}))

	err := r.CheckRateLimit(&http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}})
	require.Error(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultRetryAfter), r.BlockedUntil(), time.Second)
}

func TestRateLimiter_WaitHonoursBackoff(t *testing.T) {
	r := NewRateLimiterWithRate(rate.Inf, 1)
	header := http.Header{}
	header.Set(HeaderRetryAfter, "60")
	_ = r.CheckRateLimit(&http.Response{StatusCode: http.StatusTooManyRequests, Header: header})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, r.Wait(ctx), context.DeadlineExceeded)
}

func TestRateLimiter_WaitWithoutBackoff(t *testing.T) {
	r := NewRateLimiterWithRate(rate.Inf, 1)

	assert.NoError(t, r.Wait(context.Background()))
}
