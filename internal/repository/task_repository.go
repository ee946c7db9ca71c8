package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/todovault-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// ListByListID retrieves the tasks belonging to a list
func (r *GormTaskRepository) ListByListID(ctx context.Context, listID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.WithContext(ctx).Where("list_id = ?", listID).Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountByListID counts the tasks belonging to a list
func (r *GormTaskRepository) CountByListID(ctx context.Context, listID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("list_id = ?", listID).
		Count(&count).Error
	return count, err
}

// UpdateField updates a single column of a task
func (r *GormTaskRepository) UpdateField(ctx context.Context, id string, field TaskField, value any) error {
	if !field.Valid() {
		return fmt.Errorf("unknown task field %q", field)
	}
	return r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ?", id).
		Update(string(field), value).Error
}

// Delete deletes a task
func (r *GormTaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}
