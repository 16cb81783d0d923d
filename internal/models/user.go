package model

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"not null;index" json:"email"`
	PendingTasks []string  `gorm:"serializer:json" json:"pendingTasks"`
	DateCreated  time.Time `json:"dateCreated"`
}

// HasPendingTask reports whether taskID already appears in the pending list.
func (u *User) HasPendingTask(taskID string) bool {
	for _, id := range u.PendingTasks {
		if id == taskID {
			return true
		}
	}
	return false
}

// AddPendingTask appends taskID if it is not already present and reports
// whether the list changed.
func (u *User) AddPendingTask(taskID string) bool {
	if u.HasPendingTask(taskID) {
		return false
	}
	u.PendingTasks = append(u.PendingTasks, taskID)
	return true
}

// RemovePendingTask removes every occurrence of taskID, preserving the
// order of the remaining entries, and reports whether the list changed.
func (u *User) RemovePendingTask(taskID string) bool {
	kept := u.PendingTasks[:0]
	removed := false
	for _, id := range u.PendingTasks {
		if id == taskID {
			removed = true
			continue
		}
		kept = append(kept, id)
	}
	u.PendingTasks = kept
	return removed
}
