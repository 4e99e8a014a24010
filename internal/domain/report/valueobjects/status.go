package valueobjects

import "fmt"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
)

const (
	MinProgress = 0
	MaxProgress = 100
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusResolved
}

func (s Status) IsResolved() bool { return s == StatusResolved }

// StatusFromProgress is the only place a status is derived:
// 0 is pending, 1 to 99 is in progress and 100 is resolved.
func StatusFromProgress(progress int) (Status, error) {
	if err := ValidateProgress(progress); err != nil {
		return "", err
	}
	switch {
	case progress == MinProgress:
		return StatusPending, nil
	case progress == MaxProgress:
		return StatusResolved, nil
	default:
		return StatusInProgress, nil
	}
}

func ValidateProgress(progress int) error {
	if progress < MinProgress || progress > MaxProgress {
		return fmt.Errorf("progress must be between %d and %d, got %d", MinProgress, MaxProgress, progress)
	}
	return nil
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusResolved}
}
