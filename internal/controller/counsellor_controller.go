package controller

import (
	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/pkg/serverutils"
	"ai-counsellor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICounsellorController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Chat(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Actions(ctx *fiber.Ctx) error
}

type counsellorController struct {
	service service.ICounsellorService
}

func NewCounsellorController(service service.ICounsellorService) ICounsellorController {
	return &counsellorController{service: service}
}

func (c *counsellorController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/ai", auth)
	h.Post("/chat", c.Chat)
	h.Get("/history", c.History)
	h.Get("/actions", c.Actions)
}

func (c *counsellorController) Chat(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendMessage(ctx.UserContext(), studentId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *counsellorController) History(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetHistory(ctx.UserContext(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}

func (c *counsellorController) Actions(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetActions(ctx.UserContext(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get actions", res))
}
