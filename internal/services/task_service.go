package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"task-tracker-system.com/task-tracker-system/internal/cache"
	"task-tracker-system.com/task-tracker-system/internal/constants"
	dto "task-tracker-system.com/task-tracker-system/internal/data_models"
	model "task-tracker-system.com/task-tracker-system/internal/models"
	"task-tracker-system.com/task-tracker-system/internal/query"
	repository "task-tracker-system.com/task-tracker-system/internal/repositories"
)

type TaskService struct {
	repo  *repository.TaskRepository
	sync  *SyncService
	cache *cache.EntityCache
}

func NewTaskService(
	repo *repository.TaskRepository,
	sync *SyncService,
	entityCache *cache.EntityCache,
) *TaskService {
	return &TaskService{
		repo:  repo,
		sync:  sync,
		cache: entityCache,
	}
}

// CreateTask attaches the task to its assignee first and inserts it only
// once the attach succeeded, so a sync failure never leaves an orphan task.
func (s *TaskService) CreateTask(ctx context.Context, req dto.TaskRequestData) (*model.Task, error) {
	task := &model.Task{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Description:      "",
		Deadline:         req.Deadline,
		Completed:        req.Completed,
		AssignedUser:     req.AssignedUser,
		AssignedUserName: defaultUserName(req.AssignedUserName),
		DateCreated:      defaultDate(req.DateCreated),
	}
	if req.Description != nil {
		task.Description = *req.Description
	}

	after := TaskRef{AssignedUser: task.AssignedUser, Completed: task.Completed}
	if err := s.sync.SyncTaskWrite(ctx, task.ID, nil, after); err != nil {
		log.Printf("task create: sync failed: %v", err)
		return nil, ErrSyncFailed
	}

	if err := s.repo.Insert(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateTask overwrites the task after reconciling both the old and the new
// assignee's pending lists against the requested state.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req dto.TaskRequestData) (*model.Task, error) {
	before, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	after := TaskRef{AssignedUser: req.AssignedUser, Completed: req.Completed}
	if err := s.sync.SyncTaskWrite(ctx, id, before, after); err != nil {
		log.Printf("task update: sync failed: %v", err)
		return nil, ErrSyncFailed
	}

	task := before
	task.Name = req.Name
	if req.Description != nil {
		task.Description = *req.Description
	}
	task.Deadline = req.Deadline
	task.Completed = req.Completed
	task.AssignedUser = req.AssignedUser
	task.AssignedUserName = defaultUserName(req.AssignedUserName)
	if !req.DateCreated.IsZero() {
		task.DateCreated = req.DateCreated
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.TaskKey(id))
	return task, nil
}

// DeleteTask removes the task after best-effort cleanup of the assignee's
// pending list; the deletion proceeds even when cleanup fails.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.sync.SyncTaskDelete(ctx, task); err != nil {
		log.Printf("task delete: pending-list cleanup failed for task %s: %v", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.TaskKey(id))
	return nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	var cached model.Task
	if s.cache.Get(ctx, cache.TaskKey(id), &cached) {
		return &cached, nil
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cache.TaskKey(id), task)
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, q query.ListQuery) ([]model.Task, error) {
	return s.repo.List(ctx, q)
}

func (s *TaskService) CountTasks(ctx context.Context, q query.ListQuery) (int64, error) {
	return s.repo.Count(ctx, q)
}

func defaultUserName(name string) string {
	if name == "" {
		return constants.UnassignedUserName
	}
	return name
}

func defaultDate(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
