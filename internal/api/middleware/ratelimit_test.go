package middleware

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPLimiterIsolatesClients(t *testing.T) {
	lim := newIPLimiter(1, 1)

	assert.True(t, lim.allow("203.0.113.1"))
	assert.False(t, lim.allow("203.0.113.1"), "burst spent for this client")
	assert.True(t, lim.allow("203.0.113.2"), "other clients keep their own bucket")
}

func TestIPLimiterEvictsIdleBuckets(t *testing.T) {
	lim := newIPLimiter(1, 1)

	clock := time.Now()
	lim.now = func() time.Time { return clock }

	for i := 0; i < 50; i++ {
		lim.allow(fmt.Sprintf("203.0.113.%d", i))
	}
	assert.Len(t, lim.buckets, 50)

	clock = clock.Add(ipBucketTTL + ipSweepPeriod)
	lim.allow("198.51.100.1")

	assert.Len(t, lim.buckets, 1, "idle buckets must be swept out")
}

func TestIPLimiterKeepsActiveBuckets(t *testing.T) {
	lim := newIPLimiter(1, 1)

	clock := time.Now()
	lim.now = func() time.Time { return clock }

	lim.allow("203.0.113.1")

	// Stays active past several sweeps while idle clients age out.
	lim.allow("203.0.113.9")
	clock = clock.Add(ipBucketTTL - time.Minute)
	lim.allow("203.0.113.1")
	clock = clock.Add(2 * time.Minute)
	lim.allow("198.51.100.1")

	_, active := lim.buckets["203.0.113.1"]
	_, idle := lim.buckets["203.0.113.9"]
	assert.True(t, active, "recently seen bucket survives the sweep")
	assert.False(t, idle, "idle bucket is evicted")
}
