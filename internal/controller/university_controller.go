package controller

import (
	"context"

	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/pkg/serverutils"
	"ai-counsellor-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUniversityController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Discover(ctx *fiber.Ctx) error
	GetShortlist(ctx *fiber.Ctx) error
	Shortlist(ctx *fiber.Ctx) error
	Lock(ctx *fiber.Ctx) error
	Unlock(ctx *fiber.Ctx) error
}

type universityController struct {
	service service.IUniversityService
}

func NewUniversityController(service service.IUniversityService) IUniversityController {
	return &universityController{service: service}
}

func (c *universityController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/universities", auth)
	h.Get("/discover", c.Discover)
	h.Get("/shortlist", c.GetShortlist)
	h.Post("/:id/shortlist", c.Shortlist)
	h.Post("/:id/lock", c.Lock)
	h.Post("/:id/unlock", c.Unlock)
}

func (c *universityController) Discover(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Discover(ctx.UserContext(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success discover universities", res))
}

func (c *universityController) GetShortlist(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetShortlist(ctx.UserContext(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get shortlist", res))
}

func (c *universityController) Shortlist(ctx *fiber.Ctx) error {
	return c.transition(ctx, "Success shortlist university", c.service.Shortlist)
}

func (c *universityController) Lock(ctx *fiber.Ctx) error {
	return c.transition(ctx, "Success lock university", c.service.Lock)
}

func (c *universityController) Unlock(ctx *fiber.Ctx) error {
	return c.transition(ctx, "Success unlock university", c.service.Unlock)
}

type transitionFunc func(ctx context.Context, studentId, universityId uuid.UUID) (*dto.ShortlistActionResponse, error)

func (c *universityController) transition(ctx *fiber.Ctx, message string, fn transitionFunc) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}
	universityId, err := serverutils.IDParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := fn(ctx.UserContext(), studentId, universityId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(message, res))
}
