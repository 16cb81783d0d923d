package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	errs "task-tracker-system.com/task-tracker-system/internal/errors"
	model "task-tracker-system.com/task-tracker-system/internal/models"
	"task-tracker-system.com/task-tracker-system/internal/query"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// Update overwrites every stored field of the task in a single row write.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}

func (r *TaskRepository) List(ctx context.Context, q query.ListQuery) ([]model.Task, error) {
	db, err := q.Apply(r.db.WithContext(ctx).Model(&model.Task{}), query.TaskFields)
	if err != nil {
		return nil, err
	}

	var tasks []model.Task
	if err := db.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, q query.ListQuery) (int64, error) {
	db, err := q.ApplyFilter(r.db.WithContext(ctx).Model(&model.Task{}), query.TaskFields)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := db.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
