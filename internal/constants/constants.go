package constants

const (
	// UnassignedUserName is the display-name placeholder for tasks that
	// reference no user.
	UnassignedUserName = "unassigned"

	// DefaultTaskListLimit caps task list queries when the caller does not
	// supply a limit. User list queries are unlimited by default.
	DefaultTaskListLimit = 100
)
