package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"task-tracker-system.com/task-tracker-system/internal/cache"
	dto "task-tracker-system.com/task-tracker-system/internal/data_models"
	errs "task-tracker-system.com/task-tracker-system/internal/errors"
	model "task-tracker-system.com/task-tracker-system/internal/models"
	"task-tracker-system.com/task-tracker-system/internal/query"
	repository "task-tracker-system.com/task-tracker-system/internal/repositories"
)

type UserService struct {
	repo  *repository.UserRepository
	sync  *SyncService
	cache *cache.EntityCache
}

func NewUserService(
	repo *repository.UserRepository,
	sync *SyncService,
	entityCache *cache.EntityCache,
) *UserService {
	return &UserService{
		repo:  repo,
		sync:  sync,
		cache: entityCache,
	}
}

// CreateUser rejects duplicate emails with a read-then-write check, assigns
// any supplied pending tasks to the new user's id, and inserts the user only
// once those attaches succeeded. The email check has a window under
// concurrent creates; the store enforces no uniqueness of its own.
func (s *UserService) CreateUser(ctx context.Context, req dto.UserRequestData) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrDuplicateEmail
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PendingTasks: dedupe(req.PendingTasks),
		DateCreated:  defaultDate(req.DateCreated),
	}

	if err := s.sync.SyncUserWrite(ctx, user.ID, user.Name, nil, user.PendingTasks); err != nil {
		log.Printf("user create: sync failed: %v", err)
		return nil, ErrSyncFailed
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser reconciles task assignments against the diff between the stored
// and the requested pendingTasks lists, then overwrites the user and returns
// the stored document. A sync failure is surfaced as a server error even
// though part of the attach/detach work may already have applied.
func (s *UserService) UpdateUser(ctx context.Context, id string, req dto.UserRequestData) (*model.User, error) {
	before, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != before.Email {
		existing, err := s.repo.FindByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, errs.ErrDuplicateEmail
		}
	}

	requested := dedupe(req.PendingTasks)
	if err := s.sync.SyncUserWrite(ctx, id, req.Name, before.PendingTasks, requested); err != nil {
		log.Printf("user update: sync failed: %v", err)
		return nil, ErrSyncFailed
	}

	user := before
	user.Name = req.Name
	user.Email = req.Email
	user.PendingTasks = requested
	if !req.DateCreated.IsZero() {
		user.DateCreated = req.DateCreated
	}

	updated, err := s.repo.FindAndUpdate(ctx, user)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, cache.UserKey(id))
	return updated, nil
}

// DeleteUser removes the user after best-effort unassignment of every task
// its pending list references; the deletion proceeds even when cleanup fails.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.sync.SyncUserDelete(ctx, user); err != nil {
		log.Printf("user delete: task cleanup failed for user %s: %v", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cache.UserKey(id))
	return nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	var cached model.User
	if s.cache.Get(ctx, cache.UserKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cache.UserKey(id), user)
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, q query.ListQuery) ([]model.User, error) {
	return s.repo.List(ctx, q)
}

func (s *UserService) CountUsers(ctx context.Context, q query.ListQuery) (int64, error) {
	return s.repo.Count(ctx, q)
}
