package services

import (
	"fmt"
	"sync/atomic"
	"time"
)

var orderSeq uint64

// generateOrderNumber builds a human-facing order number from the
// current unix-millisecond timestamp plus a process-wide sequence
// suffix. The suffix wraps at 10000, long after the millisecond has
// moved on, so numbers stay unique even under rapid creation bursts.
func generateOrderNumber(now time.Time) string {
	seq := atomic.AddUint64(&orderSeq, 1)
	return fmt.Sprintf("ORD%d%04d", now.UnixMilli(), seq%10000)
}
