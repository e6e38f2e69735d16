package pattern

import (
	"time"

	"github.com/gorhill/cronexpr"
)

// CronWindow builds a Predicate pattern matching iff the target (a
// time.Time) falls at or after the cron expression's most recent
// occurrence at-or-before now(), and strictly before that occurrence's
// next tick. In other words: "now is currently inside the cron schedule's
// window."
//
// expr is parsed once, at construction, with cronexpr.MustParse;
// CronWindow panics if expr doesn't parse, since a malformed schedule is a
// programming error discovered long before any match is attempted.
func CronWindow(expr string, now func() time.Time) Pattern {
	sched := cronexpr.MustParse(expr)
	return Predicate(func(_ Bindings, target Value) bool {
		t, ok := target.(time.Time)
		if !ok {
			return false
		}
		ref := now()
		prior := sched.Next(ref.Add(-2 * windowSearchSpan))
		for {
			next := sched.Next(prior)
			if next.IsZero() || next.After(ref) {
				break
			}
			prior = next
		}
		nextTick := sched.Next(prior)
		return !t.Before(prior) && t.Before(nextTick)
	})
}

// windowSearchSpan sets how far back CronWindow looks for the schedule's
// most recent tick before ref: the scan starts twice this span (two
// years) before ref. That comfortably covers every standard cron period
// (minutely through yearly-ish via "0 0 1 1 *").
const windowSearchSpan = 366 * 24 * time.Hour
