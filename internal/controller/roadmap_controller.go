package controller

import (
	"strconv"

	"codementor-be/internal/dto"
	"codementor-be/internal/pkg/apperrors"
	"codementor-be/internal/pkg/serverutils"
	"codementor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRoadmapController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
	Enroll(ctx *fiber.Ctx) error
	UpdateEnrollment(ctx *fiber.Ctx) error
	MyEnrollments(ctx *fiber.Ctx) error
}

type roadmapController struct {
	roadmapService service.IRoadmapService
}

func NewRoadmapController(roadmapService service.IRoadmapService) IRoadmapController {
	return &roadmapController{
		roadmapService: roadmapService,
	}
}

func (c *roadmapController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/roadmap/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Post("generate", c.Generate)
	h.Get("enrollments", c.MyEnrollments)
	h.Get(":id", c.Show)
	h.Post(":id/enroll", c.Enroll)
	h.Put(":id/enrollment", c.UpdateEnrollment)
}

func (c *roadmapController) List(ctx *fiber.Ctx) error {
	res, err := c.roadmapService.List(ctx.Context(), ctx.Query("category"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list roadmaps", res))
}

func (c *roadmapController) Show(ctx *fiber.Ctx) error {
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return apperrors.ErrNotFound
	}

	res, err := c.roadmapService.Get(ctx.Context(), uint(id))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show roadmap", res))
}

func (c *roadmapController) Create(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	var req dto.CreateRoadmapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.roadmapService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create roadmap", res))
}

func (c *roadmapController) Generate(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	var req dto.GenerateRoadmapRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.roadmapService.Generate(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate roadmap", res))
}

func (c *roadmapController) Enroll(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return apperrors.ErrNotFound
	}

	res, err := c.roadmapService.Enroll(ctx.Context(), userId, uint(id))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success enroll", res))
}

func (c *roadmapController) UpdateEnrollment(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}
	id, err := strconv.ParseUint(ctx.Params("id"), 10, 32)
	if err != nil {
		return apperrors.ErrNotFound
	}

	var req dto.UpdateEnrollmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.roadmapService.UpdateEnrollment(ctx.Context(), userId, uint(id), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update enrollment", res))
}

func (c *roadmapController) MyEnrollments(ctx *fiber.Ctx) error {
	userId, ok := serverutils.UserIDFromLocals(ctx)
	if !ok {
		return apperrors.ErrUnauthorized
	}

	res, err := c.roadmapService.MyEnrollments(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list enrollments", res))
}
