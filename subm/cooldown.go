package subm

import (
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// CooldownTracker remembers when each team's last evaluation finished.
// It lives in memory only: a restart clears all cooldowns.
// The tracker itself is policy-agnostic; the admin bypass is the
// admission check's business.
type CooldownTracker struct {
	window time.Duration
	last   *xsync.MapOf[uuid.UUID, time.Time]
	now    func() time.Time
}

func NewCooldownTracker(window time.Duration) *CooldownTracker {
	return &CooldownTracker{
		window: window,
		last:   xsync.NewMapOf[uuid.UUID, time.Time](),
		now:    time.Now,
	}
}

// RecordAttempt stamps the team's last attempt as now. Called by the runner
// on job completion, success or failure alike; never at enqueue time.
func (c *CooldownTracker) RecordAttempt(teamUuid uuid.UUID) {
	c.last.Store(teamUuid, c.now())
}

// Remaining returns how long until the team may submit again. Zero or
// negative means no cooldown applies.
func (c *CooldownTracker) Remaining(teamUuid uuid.UUID) time.Duration {
	lastAttempt, ok := c.last.Load(teamUuid)
	if !ok {
		return 0
	}
	return c.window - c.now().Sub(lastAttempt)
}
