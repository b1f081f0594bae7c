package controller

import (
	"codementor-be/internal/dto"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/serverutils"
	"codementor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICollaborationController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ListPublic(ctx *fiber.Ctx) error
	ListOwn(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Join(ctx *fiber.Ctx) error
	Leave(ctx *fiber.Ctx) error
	UpdateCode(ctx *fiber.Ctx) error
}

type collaborationController struct {
	collaborationService service.ICollaborationService
}

func NewCollaborationController(collaborationService service.ICollaborationService) ICollaborationController {
	return &collaborationController{
		collaborationService: collaborationService,
	}
}

func (c *collaborationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/collaboration/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("sessions", c.Create)
	h.Get("sessions/public", c.ListPublic)
	h.Get("sessions/mine", c.ListOwn)
	h.Get("sessions/:roomCode", c.Show)
	h.Put("sessions/:roomCode", c.Update)
	h.Delete("sessions/:roomCode", c.Delete)
	h.Post("sessions/:roomCode/join", c.Join)
	h.Post("sessions/:roomCode/leave", c.Leave)
	h.Put("sessions/:roomCode/code", c.UpdateCode)
}

func (c *collaborationController) Create(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.collaborationService.CreateSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *collaborationController) Show(ctx *fiber.Ctx) error {
	res, err := c.collaborationService.GetSession(ctx.Context(), ctx.Params("roomCode"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *collaborationController) ListPublic(ctx *fiber.Ctx) error {
	res, err := c.collaborationService.ListPublicSessions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list public sessions", res))
}

func (c *collaborationController) ListOwn(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	res, err := c.collaborationService.ListOwnSessions(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list own sessions", res))
}

func (c *collaborationController) Update(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.collaborationService.UpdateSession(ctx.Context(), userId, ctx.Params("roomCode"), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update session", res))
}

func (c *collaborationController) Delete(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}
	isAdmin, _ := ctx.Locals("is_admin").(bool)

	if err := c.collaborationService.DeleteSession(ctx.Context(), userId, isAdmin, ctx.Params("roomCode")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete session", nil))
}

func (c *collaborationController) Join(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	res, err := c.collaborationService.JoinSession(ctx.Context(), userId, ctx.Params("roomCode"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success join session", res))
}

func (c *collaborationController) Leave(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	if err := c.collaborationService.LeaveSession(ctx.Context(), userId, ctx.Params("roomCode")); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success leave session", nil))
}

func (c *collaborationController) UpdateCode(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	var req dto.UpdateCodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.collaborationService.UpdateCode(ctx.Context(), userId, ctx.Params("roomCode"), req.Code); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Success update code", nil))
}
