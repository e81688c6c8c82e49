package controller

import (
	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/pkg/serverutils"
	"ai-counsellor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
}

type profileController struct {
	service service.IProfileService
}

func NewProfileController(service service.IProfileService) IProfileController {
	return &profileController{service: service}
}

func (c *profileController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/profile", auth)
	h.Get("", c.Show)
	h.Put("", c.Update)
	h.Post("/complete", c.Complete)
}

func (c *profileController) Show(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *profileController) Update(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), studentId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update profile", res))
}

func (c *profileController) Complete(ctx *fiber.Ctx) error {
	studentId, err := serverutils.StudentID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.CompleteOnboarding(ctx.UserContext(), studentId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success complete onboarding", res))
}
