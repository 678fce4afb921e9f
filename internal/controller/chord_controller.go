package controller

import (
	"soundkey-be/internal/dto"
	"soundkey-be/internal/pkg/serverutils"
	"soundkey-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChordController interface {
	RegisterRoutes(r fiber.Router)
	GetChords(ctx *fiber.Ctx) error
	GetExtensions(ctx *fiber.Ctx) error
	GetAlterations(ctx *fiber.Ctx) error
	GetAppendments(ctx *fiber.Ctx) error
	GetDeductions(ctx *fiber.Ctx) error
	GetRotations(ctx *fiber.Ctx) error
	GetCategory(ctx *fiber.Ctx) error
}

type chordController struct {
	service service.IChordService
}

func NewChordController(service service.IChordService) IChordController {
	return &chordController{service: service}
}

func (c *chordController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chord/v1")
	h.Get("", c.GetChords)
	h.Get("extensions", c.GetExtensions)
	h.Get("alterations", c.GetAlterations)
	h.Get("appendments", c.GetAppendments)
	h.Get("deductions", c.GetDeductions)
	h.Get("rotations", c.GetRotations)
	h.Get("category", c.GetCategory)
}

func (c *chordController) GetChords(ctx *fiber.Ctx) error {
	var req dto.ChordLookupRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetChords(ctx.UserContext(), noteList(req.Limit), optionalNote(req.Root), req.Category)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chords", res))
}

func (c *chordController) GetExtensions(ctx *fiber.Ctx) error {
	var req dto.ChordExtensionsRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetExtensions(ctx.UserContext(),
		noteList(req.Notes), noteList(req.Limit),
		optionalNote(req.Root), req.Category, req.TriadBase,
	)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chord extensions", res))
}

func (c *chordController) GetAlterations(ctx *fiber.Ctx) error {
	var req dto.RelationRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetAlterations(ctx.UserContext(), noteList(req.Notes), noteList(req.Limit))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chord alterations", res))
}

func (c *chordController) GetAppendments(ctx *fiber.Ctx) error {
	var req dto.RelationRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetAppendments(ctx.UserContext(), noteList(req.Notes), noteList(req.Limit))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chord appendments", res))
}

func (c *chordController) GetDeductions(ctx *fiber.Ctx) error {
	var req dto.RelationRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetDeductions(ctx.UserContext(), noteList(req.Notes), noteList(req.Limit))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chord deductions", res))
}

func (c *chordController) GetRotations(ctx *fiber.Ctx) error {
	var req dto.RotationRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetRotations(ctx.UserContext(), noteList(req.Notes), noteList(req.Limit), optionalNote(req.Root))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chord rotations", res))
}

func (c *chordController) GetCategory(ctx *fiber.Ctx) error {
	var req dto.ChordCategoryRequest
	if err := parseQuery(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.GetCategoryAndTriadBase(ctx.UserContext(), optionalNote(req.Root), noteList(req.Notes))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chord category", res))
}
