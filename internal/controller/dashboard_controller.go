package controller

import (
	"ai-counsellor-be/internal/pkg/serverutils"
	"ai-counsellor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Dashboard(ctx *fiber.Ctx) error
	Stage(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
}

func NewDashboardController(service service.IDashboardService) IDashboardController {
	return &dashboardController{service: service}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	r.Get("/dashboard", auth, c.Dashboard)
	r.Get("/stage", auth, c.Stage)
}

func (c *dashboardController) Dashboard(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Snapshot(ctx.UserContext(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard", res))
}

func (c *dashboardController) Stage(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Stage(ctx.UserContext(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get stage", res))
}
