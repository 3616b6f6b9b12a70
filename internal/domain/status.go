package domain

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// ActiveStatuses are orders still in the vendor's queue. Queue position
// and live counts are computed over this set only.
var ActiveStatuses = []OrderStatus{StatusConfirmed, StatusPreparing, StatusReady}

// TerminalStatuses accept no further writes from anyone.
var TerminalStatuses = []OrderStatus{StatusCompleted, StatusCancelled}

func (s OrderStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// manualNext is the legal-transition table for vendor-initiated updates.
// Cancellation is only reachable from pending.
var manualNext = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPreparing},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusCompleted},
}

// CanTransition reports whether a manual update from one status to
// another is legal.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range manualNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AutoRule is one time-triggered transition applied by the sweeper. Age
// is measured from CreatedAt unless SinceUpdate is set, in which case it
// is measured from UpdatedAt (i.e. from when the order entered From).
type AutoRule struct {
	From         OrderStatus
	To           OrderStatus
	After        time.Duration
	SinceUpdate  bool
	Notification NotificationType
}

// AutoRules is the authoritative auto-progression table. Order matters
// only for log readability; each rule's query re-checks current status,
// so a single tick never advances one order through two rules using a
// stale read.
var AutoRules = []AutoRule{
	{From: StatusConfirmed, To: StatusPreparing, After: 15 * time.Second, Notification: NotificationOrderPreparing},
	{From: StatusPreparing, To: StatusReady, After: 5 * time.Minute, Notification: NotificationOrderReady},
	{From: StatusReady, To: StatusCompleted, After: 15 * time.Second, SinceUpdate: true},
}

// ForceCompleteAge bounds queue staleness: anything older than this that
// is not yet terminal gets bulk-completed by the slow sweep, with no
// notifications.
const ForceCompleteAge = 10 * time.Minute
