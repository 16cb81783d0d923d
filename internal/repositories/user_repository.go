package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	errs "task-tracker-system.com/task-tracker-system/internal/errors"
	model "task-tracker-system.com/task-tracker-system/internal/models"
	"task-tracker-system.com/task-tracker-system/internal/query"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns (nil, nil) when no user holds the email, so callers
// can run the duplicate-email check without untangling a not-found error.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// FindAndUpdate overwrites the user row and returns the stored document.
func (r *UserRepository) FindAndUpdate(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, user.ID)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id).Error
}

func (r *UserRepository) List(ctx context.Context, q query.ListQuery) ([]model.User, error) {
	db, err := q.Apply(r.db.WithContext(ctx).Model(&model.User{}), query.UserFields)
	if err != nil {
		return nil, err
	}

	var users []model.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context, q query.ListQuery) (int64, error) {
	db, err := q.ApplyFilter(r.db.WithContext(ctx).Model(&model.User{}), query.UserFields)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := db.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
