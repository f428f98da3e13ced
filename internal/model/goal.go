package model

import "time"

// GoalStatus represents the lifecycle state of a yearly goal.
type GoalStatus string

const (
	GoalStatusActive GoalStatus = "active"
	GoalStatusDone   GoalStatus = "done"
)

// Goal is a yearly research goal with percentage progress.
type Goal struct {
	ID        int64
	Title     string
	Year      int
	Status    GoalStatus
	Progress  int // 0-100
	CreatedAt time.Time
}
