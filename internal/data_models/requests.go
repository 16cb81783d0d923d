package dto

import "time"

// TaskRequestData is the body of task create and update requests. Description
// is a pointer so an update can tell "omitted, keep the stored value" apart
// from an explicit empty string. An omitted completed flag means false, also
// on updates, matching the write contract rather than the stored value.
type TaskRequestData struct {
	Name             string    `json:"name"`
	Description      *string   `json:"description"`
	Deadline         time.Time `json:"deadline"`
	Completed        bool      `json:"completed"`
	AssignedUser     string    `json:"assignedUser"`
	AssignedUserName string    `json:"assignedUserName"`
	DateCreated      time.Time `json:"dateCreated"`
}

// UserRequestData is the body of user create and update requests.
type UserRequestData struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PendingTasks []string  `json:"pendingTasks"`
	DateCreated  time.Time `json:"dateCreated"`
}

// Response is the envelope every endpoint renders: a human-readable message
// and a data payload. Error responses carry an empty object as data.
type Response struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}
