package server

import (
	"time"

	"taskhive/internal/models"
	"taskhive/internal/service"

	"github.com/gofiber/fiber/v2"
)

// parseDueDate accepts either a date ("2006-01-02") or a full RFC3339 timestamp.
func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, models.NewValidationError("Invalid due_date format, expected YYYY-MM-DD or RFC3339")
	}
	return &t, nil
}

// CreateTask handles POST /api/tasks
func (s *Server) CreateTask(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Status      string `json:"status"`
		Priority    string `json:"priority"`
		DueDate     string `json:"due_date"`
		IsPublic    bool   `json:"is_public"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	task, err := s.taskService.CreateTask(ctx, service.CreateTaskInput{
		ActorID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.TaskStatus(req.Status),
		Priority:    models.TaskPriority(req.Priority),
		DueDate:     dueDate,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

// GetTasks handles GET /api/tasks
func (s *Server) GetTasks(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	tasks, err := s.taskService.ListTasks(ctx, service.ListTasksInput{
		ActorID:     userID,
		Status:      models.TaskStatus(c.Query("status")),
		Priority:    models.TaskPriority(c.Query("priority")),
		TitleSearch: c.Query("search"),
		Limit:       page.Limit,
		Offset:      page.Offset,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(tasks)
}

// GetTask handles GET /api/tasks/:id
func (s *Server) GetTask(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	taskID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	task, err := s.taskService.GetTask(ctx, userID, taskID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(task)
}

// UpdateTask handles PUT /api/tasks/:id
func (s *Server) UpdateTask(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	taskID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
		Priority    *string `json:"priority"`
		DueDate     *string `json:"due_date"`
		IsPublic    *bool   `json:"is_public"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	in := service.UpdateTaskInput{
		ActorID:     userID,
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		in.Status = &status
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		in.Priority = &priority
	}
	if req.DueDate != nil {
		// An explicit empty string clears the due date.
		if *req.DueDate == "" {
			in.ClearDueDate = true
		} else {
			dueDate, dateErr := parseDueDate(*req.DueDate)
			if dateErr != nil {
				return models.RespondWithError(c, dateErr)
			}
			in.DueDate = dueDate
		}
	}

	task, err := s.taskService.UpdateTask(ctx, in)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(task)
}

// DeleteTask handles DELETE /api/tasks/:id
func (s *Server) DeleteTask(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	taskID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.taskService.DeleteTask(ctx, userID, taskID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
