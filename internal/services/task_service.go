package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "weddinghub/internal/errors"
	"weddinghub/internal/models"
	"weddinghub/internal/notify"
)

// taskService handles task-related business logic.
type taskService struct {
	db       *gorm.DB
	notifier notify.Notifier
}

// NewTaskService creates a new TaskServicer.
func NewTaskService(db *gorm.DB, notifier notify.Notifier) TaskServicer {
	return &taskService{db: db, notifier: notifier}
}

// CreateTask adds an ad hoc task to a wedding.
func (s *taskService) CreateTask(
	weddingID uint,
	title string,
	isUrgent bool,
	period models.TimelinePeriod,
	dueDate *time.Time,
) (*models.Task, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "task title is required")
	}

	var wedding models.Wedding
	if err := s.db.Where("id = ?", weddingID).First(&wedding).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWeddingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	task := &models.Task{
		WeddingID:      weddingID,
		Title:          title,
		IsUrgent:       isUrgent,
		TimelinePeriod: period,
		DueDate:        dueDate,
	}
	if err := s.db.Create(task).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.notifier.WeddingUpdated(context.Background(), weddingID, "task.created")
	return task, nil
}

// GetWeddingTasks lists tasks for a wedding with optional filters.
func (s *taskService) GetWeddingTasks(weddingID uint, filter TaskFilter) ([]models.Task, error) {
	q := s.db.Where("wedding_id = ?", weddingID)
	if filter.Completed != nil {
		q = q.Where("is_completed = ?", *filter.Completed)
	}
	if filter.Period != nil {
		q = q.Where("timeline_period = ?", *filter.Period)
	}

	var tasks []models.Task
	if err := q.Order("id").Find(&tasks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tasks, nil
}

// ToggleTask flips a task's completion state. Completing records the
// timestamp; reopening clears it.
func (s *taskService) ToggleTask(taskID uint) (*models.Task, error) {
	task, err := s.getTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if task.IsCompleted {
		updates["is_completed"] = false
		updates["completed_at"] = nil
	} else {
		now := time.Now()
		updates["is_completed"] = true
		updates["completed_at"] = now
	}

	if err := s.db.Model(task).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.notifier.WeddingUpdated(context.Background(), task.WeddingID, "task.toggled")
	return task, nil
}

// UpdateTask changes title, urgency, period, or due date.
func (s *taskService) UpdateTask(
	taskID uint,
	title string,
	isUrgent *bool,
	period *models.TimelinePeriod,
	dueDate *time.Time,
) (*models.Task, error) {
	task, err := s.getTaskByID(taskID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if title != "" {
		updates["title"] = title
	}
	if isUrgent != nil {
		updates["is_urgent"] = *isUrgent
	}
	if period != nil {
		updates["timeline_period"] = *period
	}
	if dueDate != nil {
		updates["due_date"] = dueDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(task).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		s.notifier.WeddingUpdated(context.Background(), task.WeddingID, "task.updated")
	}

	return task, nil
}

// DeleteTask soft-deletes a task.
func (s *taskService) DeleteTask(taskID uint) error {
	task, err := s.getTaskByID(taskID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(task).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.notifier.WeddingUpdated(context.Background(), task.WeddingID, "task.deleted")
	return nil
}

func (s *taskService) getTaskByID(taskID uint) (*models.Task, error) {
	var task models.Task
	if err := s.db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &task, nil
}
