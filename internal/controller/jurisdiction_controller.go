package controller

import (
	"ai-compliance-be/internal/dto"
	"ai-compliance-be/internal/pkg/serverutils"
	"ai-compliance-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IJurisdictionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetRequirements(ctx *fiber.Ctx) error
	ShowRequirement(ctx *fiber.Ctx) error
}

type jurisdictionController struct {
	service service.IJurisdictionService
}

func NewJurisdictionController(service service.IJurisdictionService) IJurisdictionController {
	return &jurisdictionController{service: service}
}

func (c *jurisdictionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/jurisdiction/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Delete(":id", c.Delete)
	h.Get(":id/requirements", c.GetRequirements)
	h.Get(":id/requirements/:requirementId", c.ShowRequirement)
}

func (c *jurisdictionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateJurisdictionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create jurisdiction", res))
}

func (c *jurisdictionController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all jurisdictions", res))
}

func (c *jurisdictionController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.service.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show jurisdiction", res))
}

func (c *jurisdictionController) Delete(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.service.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete jurisdiction", nil))
}

func (c *jurisdictionController) GetRequirements(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.service.ListRequirements(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get jurisdiction requirements", res))
}

func (c *jurisdictionController) ShowRequirement(ctx *fiber.Ctx) error {
	jurisdictionId, _ := uuid.Parse(ctx.Params("id"))
	requirementId, _ := uuid.Parse(ctx.Params("requirementId"))

	res, err := c.service.ShowRequirement(ctx.Context(), jurisdictionId, requirementId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show requirement", res))
}
