package controller

import (
	"soundkey-be/internal/dto"
	"soundkey-be/internal/pkg/serverutils"
	"soundkey-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IScaleController interface {
	RegisterRoutes(r fiber.Router)
	GetScales(ctx *fiber.Ctx) error
	GetScaleGroups(ctx *fiber.Ctx) error
	GetScalesByMode(ctx *fiber.Ctx) error
	GetAlterations(ctx *fiber.Ctx) error
	GetAppendments(ctx *fiber.Ctx) error
	GetDeductions(ctx *fiber.Ctx) error
	GetRotations(ctx *fiber.Ctx) error
	GetSubscales(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type scaleController struct {
	service service.IScaleService
}

func NewScaleController(service service.IScaleService) IScaleController {
	return &scaleController{service: service}
}

func (c *scaleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/scale/v1")
	h.Get("", c.GetScales)
	h.Get("groups", c.GetScaleGroups)
	h.Get("modes", c.GetScalesByMode)
	h.Get("alterations", c.GetAlterations)
	h.Get("appendments", c.GetAppendments)
	h.Get("deductions", c.GetDeductions)
	h.Get("rotations", c.GetRotations)
	h.Get("subscales", c.GetSubscales)
	h.Get("search", c.Search)
}

func (c *scaleController) GetScales(ctx *fiber.Ctx) error {
	var req dto.ScaleLookupRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetScales(ctx.UserContext(), noteList(req.Limit), optionalNote(req.Root), req.GroupID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get scales", res))
}

func (c *scaleController) GetScaleGroups(ctx *fiber.Ctx) error {
	var req dto.ScaleGroupsRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetScaleGroups(ctx.UserContext(), noteList(req.Limit), optionalNote(req.Root), req.Type)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get scale groups", res))
}

func (c *scaleController) GetScalesByMode(ctx *fiber.Ctx) error {
	var req dto.ScaleModesRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetScalesByMode(ctx.UserContext(), noteList(req.Limit), optionalNote(req.Root), req.Mode)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get scales by mode", res))
}

func (c *scaleController) GetAlterations(ctx *fiber.Ctx) error {
	var req dto.RelationRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetAlterations(ctx.UserContext(), noteList(req.Notes), noteList(req.Limit))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get scale alterations", res))
}

func (c *scaleController) GetAppendments(ctx *fiber.Ctx) error {
	var req dto.RelationRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetAppendments(ctx.UserContext(), noteList(req.Notes), noteList(req.Limit))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get scale appendments", res))
}

func (c *scaleController) GetDeductions(ctx *fiber.Ctx) error {
	var req dto.RelationRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetDeductions(ctx.UserContext(), noteList(req.Notes), noteList(req.Limit))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get scale deductions", res))
}

func (c *scaleController) GetRotations(ctx *fiber.Ctx) error {
	var req dto.RotationRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetRotations(ctx.UserContext(), noteList(req.Notes), noteList(req.Limit), optionalNote(req.Root))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get scale rotations", res))
}

func (c *scaleController) GetSubscales(ctx *fiber.Ctx) error {
	var req dto.SubscalesRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetSubscales(ctx.UserContext(), noteList(req.Notes), noteList(req.Limit), req.AlterBy, req.LeaveOut)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get subscales", res))
}

func (c *scaleController) Search(ctx *fiber.Ctx) error {
	var req dto.ScaleSearchRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.SearchByName(ctx.UserContext(), req.Query, noteList(req.Notes), noteList(req.Limit))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search scales", res))
}
