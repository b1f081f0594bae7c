package controller

import (
	"codementor-be/internal/dto"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/serverutils"
	"codementor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGameController interface {
	RegisterRoutes(r fiber.Router)
	SubmitResult(ctx *fiber.Ctx) error
	ListResults(ctx *fiber.Ctx) error
	UserStats(ctx *fiber.Ctx) error
	ListAchievements(ctx *fiber.Ctx) error
	GenerateChallenge(ctx *fiber.Ctx) error
}

type gameController struct {
	gameService service.IGameService
}

func NewGameController(gameService service.IGameService) IGameController {
	return &gameController{
		gameService: gameService,
	}
}

func (c *gameController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/game/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("results", c.SubmitResult)
	h.Get("results", c.ListResults)
	h.Get("stats", c.UserStats)
	h.Get("achievements", c.ListAchievements)
	h.Post("challenge", c.GenerateChallenge)
}

func (c *gameController) SubmitResult(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	var req dto.SubmitGameResultRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.gameService.SubmitResult(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success submit result", res))
}

func (c *gameController) ListResults(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	res, err := c.gameService.ListResults(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list results", res))
}

func (c *gameController) UserStats(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	res, err := c.gameService.UserStats(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get stats", res))
}

func (c *gameController) ListAchievements(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	res, err := c.gameService.ListAchievements(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list achievements", res))
}

func (c *gameController) GenerateChallenge(ctx *fiber.Ctx) error {
	var req dto.GenerateChallengeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.gameService.GenerateChallenge(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate challenge", res))
}
