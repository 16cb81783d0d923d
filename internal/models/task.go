package model

import (
	"time"

	"task-tracker-system.com/task-tracker-system/internal/constants"
)

type Task struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Description      string    `json:"description"`
	Deadline         time.Time `gorm:"not null" json:"deadline"`
	Completed        bool      `gorm:"not null;default:false" json:"completed"`
	AssignedUser     string    `gorm:"size:36;index" json:"assignedUser"`
	AssignedUserName string    `json:"assignedUserName"`
	DateCreated      time.Time `json:"dateCreated"`
}

// PendingFor reports whether the task should appear in the pending list
// of the given user: assigned to that user and not yet completed.
func (t *Task) PendingFor(userID string) bool {
	return t.AssignedUser == userID && t.AssignedUser != "" && !t.Completed
}

// Unassign clears the user reference back to its defaults.
func (t *Task) Unassign() {
	t.AssignedUser = ""
	t.AssignedUserName = constants.UnassignedUserName
}
