package service

import (
	"context"
	"strings"
	"time"

	"taskhive/internal/models"
	"taskhive/internal/repository"
)

// TaskService enforces task ownership rules. Tasks have no public read path:
// any access by a non-owner is reported as not found, so the existence of
// another user's task is never leaked.
type TaskService struct {
	taskRepo repository.TaskRepository
	now      func() time.Time
}

// NewTaskService returns a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, now: time.Now}
}

// CreateTaskInput carries the fields for a new task. Owner is forced to the actor.
type CreateTaskInput struct {
	ActorID     uint
	Title       string
	Description string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	DueDate     *time.Time
	IsPublic    bool
}

// UpdateTaskInput is a patch: nil fields are left unchanged. ClearDueDate
// removes the due date, since a nil DueDate alone means "not provided".
type UpdateTaskInput struct {
	ActorID      uint
	TaskID       uint
	Title        *string
	Description  *string
	Status       *models.TaskStatus
	Priority     *models.TaskPriority
	DueDate      *time.Time
	ClearDueDate bool
	IsPublic     *bool
}

// ListTasksInput narrows the actor's task listing.
type ListTasksInput struct {
	ActorID     uint
	Status      models.TaskStatus
	Priority    models.TaskPriority
	TitleSearch string
	Limit       int
	Offset      int
}

// CreateTask creates a task owned by the actor.
func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*models.Task, error) {
	if in.ActorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if in.Status == "" {
		in.Status = models.TaskStatusTodo
	}
	if in.Priority == "" {
		in.Priority = models.TaskPriorityMedium
	}
	if !models.ValidTaskStatus(in.Status) {
		return nil, models.NewValidationError("Invalid task status")
	}
	if !models.ValidTaskPriority(in.Priority) {
		return nil, models.NewValidationError("Invalid task priority")
	}

	task := &models.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		IsPublic:    in.IsPublic,
		OwnerID:     in.ActorID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	task.IsOverdue = task.Overdue(s.now())
	return task, nil
}

// GetTask returns the task if the actor owns it; otherwise it is not found.
func (s *TaskService) GetTask(ctx context.Context, actorID, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.OwnerID != actorID {
		return nil, models.NewNotFoundError("Task", taskID)
	}
	task.IsOverdue = task.Overdue(s.now())
	return task, nil
}

// ListTasks returns the actor's tasks, optionally filtered by status,
// priority, and title substring.
func (s *TaskService) ListTasks(ctx context.Context, in ListTasksInput) ([]*models.Task, error) {
	if in.ActorID == 0 {
		return nil, models.NewUnauthenticatedError("Authentication required")
	}
	if in.Status != "" && !models.ValidTaskStatus(in.Status) {
		return nil, models.NewValidationError("Invalid task status")
	}
	if in.Priority != "" && !models.ValidTaskPriority(in.Priority) {
		return nil, models.NewValidationError("Invalid task priority")
	}

	tasks, err := s.taskRepo.ListByOwner(ctx, in.ActorID, repository.TaskFilter{
		Status:      in.Status,
		Priority:    in.Priority,
		TitleSearch: in.TitleSearch,
		Limit:       in.Limit,
		Offset:      in.Offset,
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, t := range tasks {
		t.IsOverdue = t.Overdue(now)
	}
	return tasks, nil
}

// UpdateTask applies a patch to the actor's own task.
func (s *TaskService) UpdateTask(ctx context.Context, in UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}
	if task.OwnerID != in.ActorID {
		return nil, models.NewNotFoundError("Task", in.TaskID)
	}

	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return nil, models.NewValidationError("Title cannot be empty")
		}
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		if !models.ValidTaskStatus(*in.Status) {
			return nil, models.NewValidationError("Invalid task status")
		}
		task.Status = *in.Status
	}
	if in.Priority != nil {
		if !models.ValidTaskPriority(*in.Priority) {
			return nil, models.NewValidationError("Invalid task priority")
		}
		task.Priority = *in.Priority
	}
	if in.ClearDueDate {
		task.DueDate = nil
	} else if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.IsPublic != nil {
		task.IsPublic = *in.IsPublic
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	task.IsOverdue = task.Overdue(s.now())
	return task, nil
}

// DeleteTask deletes the actor's own task.
func (s *TaskService) DeleteTask(ctx context.Context, actorID, taskID uint) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.OwnerID != actorID {
		return models.NewNotFoundError("Task", taskID)
	}
	return s.taskRepo.Delete(ctx, taskID)
}
