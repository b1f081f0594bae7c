package controller

import (
	"strconv"

	"codementor-be/internal/dto"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/serverutils"
	"codementor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListUsers(ctx *fiber.Ctx) error
	DeleteUser(ctx *fiber.Ctx) error
	ListSessions(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	SetSessionActive(ctx *fiber.Ctx) error
	PlatformStats(ctx *fiber.Ctx) error
	CreateAchievement(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{
		adminService: adminService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.AdminMiddleware)
	h.Get("users", c.ListUsers)
	h.Delete("users/:id", c.DeleteUser)
	h.Get("sessions", c.ListSessions)
	h.Delete("sessions/:id", c.DeleteSession)
	h.Put("sessions/:id/active", c.SetSessionActive)
	h.Get("stats", c.PlatformStats)
	h.Post("achievements", c.CreateAchievement)
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.adminService.ListUsers(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list users", res))
}

func (c *adminController) DeleteUser(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return apperrors.ErrNotFound
	}

	if err := c.adminService.DeleteUser(ctx.Context(), uint(id)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete user", nil))
}

func (c *adminController) ListSessions(ctx *fiber.Ctx) error {
	res, err := c.adminService.ListSessions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list sessions", res))
}

func (c *adminController) DeleteSession(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return apperrors.ErrNotFound
	}

	if err := c.adminService.DeleteSession(ctx.Context(), uint(id)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *adminController) SetSessionActive(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return apperrors.ErrNotFound
	}

	var req dto.SetSessionActiveRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.adminService.SetSessionActive(ctx.Context(), uint(id), req.IsActive); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update session state", nil))
}

func (c *adminController) PlatformStats(ctx *fiber.Ctx) error {
	res, err := c.adminService.PlatformStats(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get stats", res))
}

func (c *adminController) CreateAchievement(ctx *fiber.Ctx) error {
	var req dto.CreateAchievementRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.CreateAchievement(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create achievement", res))
}
