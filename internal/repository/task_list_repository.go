package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/todovault-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskListRepository is a GORM implementation of TaskListRepository
type GormTaskListRepository struct {
	db *gorm.DB
}

// NewTaskListRepository creates a new TaskListRepository
func NewTaskListRepository(db *gorm.DB) TaskListRepository {
	return &GormTaskListRepository{db: db}
}

// Create creates a new task list
func (r *GormTaskListRepository) Create(ctx context.Context, list *models.TaskList) error {
	return r.db.WithContext(ctx).Omit("Tasks").Create(list).Error
}

// FindByID finds a task list by ID
func (r *GormTaskListRepository) FindByID(ctx context.Context, id string) (*models.TaskList, error) {
	var list models.TaskList
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&list).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &list, nil
}

// List returns all task lists
func (r *GormTaskListRepository) List(ctx context.Context) ([]models.TaskList, error) {
	var lists []models.TaskList
	if err := r.db.WithContext(ctx).Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

// Count counts the stored task lists
func (r *GormTaskListRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TaskList{}).Count(&count).Error
	return count, err
}

// UpdateName renames a task list
func (r *GormTaskListRepository) UpdateName(ctx context.Context, id, name string) error {
	return r.db.WithContext(ctx).Model(&models.TaskList{}).
		Where("id = ?", id).
		Update("name", name).Error
}

// DeleteWithTasks deletes a task list and its tasks in a transaction
func (r *GormTaskListRepository) DeleteWithTasks(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).Delete(&models.TaskList{}).Error; err != nil {
			return err
		}

		return tx.Where("list_id = ?", id).Delete(&models.Task{}).Error
	})
}
