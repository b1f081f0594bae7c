package controller

import (
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/serverutils"
	"codementor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Stats(ctx *fiber.Ctx) error
	RecentActivity(ctx *fiber.Ctx) error
	Leaderboard(ctx *fiber.Ctx) error
}

type dashboardController struct {
	dashboardService service.IDashboardService
}

func NewDashboardController(dashboardService service.IDashboardService) IDashboardController {
	return &dashboardController{
		dashboardService: dashboardService,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("stats", c.Stats)
	h.Get("activity", c.RecentActivity)
	h.Get("leaderboard", c.Leaderboard)
}

func (c *dashboardController) Stats(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	res, err := c.dashboardService.GetStats(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get stats", res))
}

func (c *dashboardController) RecentActivity(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	limit := ctx.QueryInt("limit", 10)
	res, err := c.dashboardService.GetRecentActivity(ctx.Context(), userId, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get activity", res))
}

func (c *dashboardController) Leaderboard(ctx *fiber.Ctx) error {
	res, err := c.dashboardService.GetLeaderboard(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get leaderboard", res))
}
