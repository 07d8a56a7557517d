package controller

import (
	"ai-compliance-be/internal/dto"
	"ai-compliance-be/internal/pkg/serverutils"
	"ai-compliance-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssessmentController interface {
	RegisterRoutes(r fiber.Router)
	RunDocument(ctx *fiber.Ctx) error
	RunQuestionnaire(ctx *fiber.Ctx) error
	GetSessions(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
}

type assessmentController struct {
	service service.IAssessmentService
}

func NewAssessmentController(service service.IAssessmentService) IAssessmentController {
	return &assessmentController{service: service}
}

func (c *assessmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assessment/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("document", c.RunDocument)
	h.Post("questionnaire", c.RunQuestionnaire)
	h.Get("sessions", c.GetSessions)
	h.Get("sessions/:id", c.ShowSession)
}

func (c *assessmentController) RunDocument(ctx *fiber.Ctx) error {
	userId, orgId := tenancyContext(ctx)
	email, _ := ctx.Locals("email").(string)

	file, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "missing file")
	}

	res, err := c.service.RunDocumentAssessment(ctx.Context(), orgId, userId, email, file)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success run document assessment", res))
}

func (c *assessmentController) RunQuestionnaire(ctx *fiber.Ctx) error {
	userId, orgId := tenancyContext(ctx)
	email, _ := ctx.Locals("email").(string)

	var req dto.RunQuestionnaireAssessmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.RunQuestionnaireAssessment(ctx.Context(), orgId, userId, email, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success run questionnaire assessment", res))
}

func (c *assessmentController) GetSessions(ctx *fiber.Ctx) error {
	_, orgId := tenancyContext(ctx)

	res, err := c.service.ListSessions(ctx.Context(), orgId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all sessions", res))
}

func (c *assessmentController) ShowSession(ctx *fiber.Ctx) error {
	_, orgId := tenancyContext(ctx)
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.service.ShowSession(ctx.Context(), orgId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

// tenancyContext pulls the authenticated user and organization out of the
// JWT locals set by the middleware.
func tenancyContext(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	orgIdStr, _ := ctx.Locals("organization_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	orgId, _ := uuid.Parse(orgIdStr)
	return userId, orgId
}
