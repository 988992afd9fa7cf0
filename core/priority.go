package core

// Priority orders display items for scheduling
// Higher values preempt lower ones at admission and selection time
type Priority int

const (
	PriorityIdle Priority = iota
	PriorityLow
	PriorityNormal
	PriorityHigh
	PriorityUrgent
	PrioritySystem
)

// String returns the tier name
func (p Priority) String() string {
	switch p {
	case PriorityIdle:
		return "idle"
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	case PrioritySystem:
		return "system"
	default:
		return "unknown"
	}
}
