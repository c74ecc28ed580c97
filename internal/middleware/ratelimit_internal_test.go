package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPLimiterEvictsIdleBuckets(t *testing.T) {
	clock := time.Unix(1700000000, 0)
	l := newIPLimiter(1, 5, func() time.Time { return clock })

	assert.True(t, l.allow("10.0.0.1"))
	assert.True(t, l.allow("10.0.0.2"))
	assert.Equal(t, 2, l.size())

	clock = clock.Add(30 * time.Second)
	assert.True(t, l.allow("10.0.0.2"))
	assert.Equal(t, 2, l.size())

	// 10.0.0.1 has been idle for a full window, 10.0.0.2 for 40s
	clock = clock.Add(40 * time.Second)
	assert.True(t, l.allow("10.0.0.3"))
	assert.Equal(t, 2, l.size())
	assert.NotContains(t, l.buckets, "10.0.0.1")
}

func TestIPLimiterIdleCoversFullRefill(t *testing.T) {
	l := newIPLimiter(0.5, 100, time.Now)
	assert.Equal(t, 200*time.Second, l.idle)

	l = newIPLimiter(100, 2, time.Now)
	assert.Equal(t, minIdle, l.idle)
}
