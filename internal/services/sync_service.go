package services

import (
	"context"
	"errors"

	"task-tracker-system.com/task-tracker-system/internal/cache"
	errs "task-tracker-system.com/task-tracker-system/internal/errors"
	model "task-tracker-system.com/task-tracker-system/internal/models"
	repository "task-tracker-system.com/task-tracker-system/internal/repositories"
)

// ErrSyncFailed wraps store I/O failures hit while keeping the two-way
// task/user references consistent. Handlers report it generically; the
// underlying cause stays out of responses.
var ErrSyncFailed = errors.New("reference synchronization failed")

// TaskRef is the reference-bearing slice of a requested task write.
type TaskRef struct {
	AssignedUser string
	Completed    bool
}

// SyncService keeps a user's pendingTasks list consistent with the
// assignedUser field of tasks, and vice versa, across two collections that
// only support atomic single-document writes. All rules share one shape:
// diff the before state against the requested after state, then apply the
// minimal secondary writes, detaching before attaching.
//
// A missing secondary entity is never an error: the primary write still
// proceeds with the requested reference value.
type SyncService struct {
	tasks *repository.TaskRepository
	users *repository.UserRepository
	cache *cache.EntityCache
}

func NewSyncService(
	tasks *repository.TaskRepository,
	users *repository.UserRepository,
	entityCache *cache.EntityCache,
) *SyncService {
	return &SyncService{
		tasks: tasks,
		users: users,
		cache: entityCache,
	}
}

// SyncTaskWrite applies the secondary user updates required before taskID is
// written with the requested reference state. A nil before means the task is
// being created.
//
// Detach runs before attach so a partial failure leaves the task
// under-assigned rather than listed by two users.
func (s *SyncService) SyncTaskWrite(ctx context.Context, taskID string, before *model.Task, after TaskRef) error {
	oldAssigned := ""
	if before != nil {
		oldAssigned = before.AssignedUser
	}

	if oldAssigned != "" && (after.AssignedUser != oldAssigned || after.Completed) {
		if err := s.detachFromUser(ctx, oldAssigned, taskID); err != nil {
			return err
		}
	}

	if after.AssignedUser != "" && after.AssignedUser != oldAssigned && !after.Completed {
		if err := s.attachToUser(ctx, after.AssignedUser, taskID); err != nil {
			return err
		}
	}

	return nil
}

// SyncTaskDelete removes the task from its assignee's pending list. Callers
// treat failures as best-effort cleanup and delete the task regardless.
func (s *SyncService) SyncTaskDelete(ctx context.Context, task *model.Task) error {
	if task.AssignedUser == "" {
		return nil
	}
	return s.detachFromUser(ctx, task.AssignedUser, task.ID)
}

// SyncUserWrite reconciles tasks with a user's requested pendingTasks list.
// Task ids dropped from the list are unassigned; ids added to it are
// assigned to the user, unless the task is already completed — a completed
// task keeps its stored reference even though the user's list will include
// it as requested.
func (s *SyncService) SyncUserWrite(ctx context.Context, userID, userName string, before, requested []string) error {
	for _, taskID := range difference(before, requested) {
		if err := s.unassignTask(ctx, taskID); err != nil {
			return err
		}
	}

	for _, taskID := range difference(requested, before) {
		if err := s.assignTask(ctx, taskID, userID, userName); err != nil {
			return err
		}
	}

	return nil
}

// SyncUserDelete unassigns every task the user's pending list references.
// All entries are attempted even when one fails; callers treat the result
// as best-effort cleanup and delete the user regardless.
func (s *SyncService) SyncUserDelete(ctx context.Context, user *model.User) error {
	var lastErr error
	for _, taskID := range user.PendingTasks {
		if err := s.unassignTask(ctx, taskID); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (s *SyncService) detachFromUser(ctx context.Context, userID, taskID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil
		}
		return err
	}

	if !user.RemovePendingTask(taskID) {
		return nil
	}

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.UserKey(userID))
	return nil
}

func (s *SyncService) attachToUser(ctx context.Context, userID, taskID string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return nil
		}
		return err
	}

	if !user.AddPendingTask(taskID) {
		return nil
	}

	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.UserKey(userID))
	return nil
}

func (s *SyncService) unassignTask(ctx context.Context, taskID string) error {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errs.ErrTaskNotFound) {
			return nil
		}
		return err
	}

	task.Unassign()
	if err := s.tasks.Update(ctx, task); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.TaskKey(taskID))
	return nil
}

func (s *SyncService) assignTask(ctx context.Context, taskID, userID, userName string) error {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, errs.ErrTaskNotFound) {
			return nil
		}
		return err
	}

	if task.Completed {
		return nil
	}

	task.AssignedUser = userID
	task.AssignedUserName = userName
	if err := s.tasks.Update(ctx, task); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.TaskKey(taskID))
	return nil
}

// difference returns the ids of a that are absent from b, preserving order.
func difference(a, b []string) []string {
	present := make(map[string]struct{}, len(b))
	for _, id := range b {
		present[id] = struct{}{}
	}

	var out []string
	for _, id := range a {
		if _, ok := present[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// dedupe drops repeated ids, keeping the first occurrence of each.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
