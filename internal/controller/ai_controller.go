package controller

import (
	"context"

	"codementor-be/internal/dto"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/serverutils"
	"codementor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAIController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	FindBugs(ctx *fiber.Ctx) error
	Explain(ctx *fiber.Ctx) error
	Refactor(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type aiController struct {
	aiService service.IAIService
}

func NewAIController(aiService service.IAIService) IAIController {
	return &aiController{
		aiService: aiService,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("analyze", c.Analyze)
	h.Post("bugs", c.FindBugs)
	h.Post("explain", c.Explain)
	h.Post("refactor", c.Refactor)
	h.Get("history", c.History)
}

func (c *aiController) Analyze(ctx *fiber.Ctx) error {
	return c.codeEndpoint(ctx, "Success analyze code", c.aiService.AnalyzeCode)
}

func (c *aiController) FindBugs(ctx *fiber.Ctx) error {
	return c.codeEndpoint(ctx, "Success find bugs", c.aiService.FindBugs)
}

func (c *aiController) Refactor(ctx *fiber.Ctx) error {
	return c.codeEndpoint(ctx, "Success refactor code", c.aiService.RefactorCode)
}

func (c *aiController) codeEndpoint(ctx *fiber.Ctx, message string, call func(context.Context, uint, *dto.CodeRequest) (*dto.AIResponse, error)) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	var req dto.CodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := call(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(message, res))
}

func (c *aiController) Explain(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	var req dto.ExplainCodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.aiService.ExplainCode(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success explain code", res))
}

func (c *aiController) History(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	res, err := c.aiService.History(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}
