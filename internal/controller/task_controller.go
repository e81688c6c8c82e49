package controller

import (
	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/pkg/serverutils"
	"ai-counsellor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITaskController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type taskController struct {
	service service.ITaskService
}

func NewTaskController(service service.ITaskService) ITaskController {
	return &taskController{service: service}
}

func (c *taskController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/tasks", auth)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Post("/generate", c.Generate)
	h.Patch("/:id/done", c.Complete)
}

func (c *taskController) GetAll(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.UserContext(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all tasks", res))
}

func (c *taskController) Create(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), studentId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create task", res))
}

func (c *taskController) Generate(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GenerateReadiness(ctx.UserContext(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate tasks", res))
}

func (c *taskController) Complete(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}
	taskId, err := serverutils.IDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Complete(ctx.UserContext(), studentId, taskId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success complete task", res))
}
