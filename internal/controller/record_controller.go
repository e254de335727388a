package controller

import (
	"errors"

	"chitty-gateway/internal/dto"
	"chitty-gateway/internal/gateway"
	"chitty-gateway/internal/pkg/serverutils"
	"chitty-gateway/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IRecordController serves the generic record collections. Each domain is
// mounted at /<domain>; the handlers read the domain from the first segment.
type IRecordController interface {
	RegisterRoutes(r *gateway.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	VerifyFinance(ctx *fiber.Ctx) error
}

type recordController struct {
	recordService service.IRecordService
}

func NewRecordController(recordService service.IRecordService) IRecordController {
	return &recordController{
		recordService: recordService,
	}
}

func (c *recordController) RegisterRoutes(r *gateway.Router) {
	for _, name := range service.Domains() {
		d := r.Domain(name, c.List).
			Root(fiber.MethodGet, c.List).
			Root(fiber.MethodPost, c.Create).
			Handle(fiber.MethodPost, "create", 1, c.Create).
			Param(fiber.MethodGet, c.Show)

		if name == service.DomainFinance {
			d.Handle(fiber.MethodPost, "verify", 1, c.VerifyFinance)
		}
	}
}

func (c *recordController) Create(ctx *fiber.Ctx) error {
	payload := map[string]interface{}{}
	if err := serverutils.DecodeBody(ctx, "Record creation", &payload); err != nil {
		return err
	}

	record, err := c.recordService.Create(ctx.Context(), gateway.DomainOf(ctx), payload)
	if err != nil {
		return recordError("Record creation", "", err)
	}

	return ctx.JSON(dto.CreateRecordResponse{
		Success: true,
		Record:  record,
	})
}

func (c *recordController) Show(ctx *fiber.Ctx) error {
	id := gateway.Segment(ctx, 0)

	record, err := c.recordService.Show(ctx.Context(), gateway.DomainOf(ctx), id)
	if err != nil {
		return recordError("Record retrieval", id, err)
	}

	return ctx.JSON(dto.ShowRecordResponse{
		Success: true,
		Record:  record,
	})
}

func (c *recordController) List(ctx *fiber.Ctx) error {
	res, err := c.recordService.List(ctx.Context(), gateway.DomainOf(ctx))
	if err != nil {
		return recordError("Record list", "", err)
	}
	return ctx.JSON(res)
}

func (c *recordController) VerifyFinance(ctx *fiber.Ctx) error {
	var req dto.VerifyFinanceRequest
	if err := serverutils.DecodeBody(ctx, "Finance verification", &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.recordService.VerifyFinance(ctx.Context(), &req)
	if err != nil {
		return recordError("Finance verification", req.RecordId, err)
	}
	return ctx.JSON(res)
}

func recordError(operation, id string, err error) error {
	var appErr *serverutils.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, service.ErrRecordNotFound):
		return serverutils.NewNotFound("Record", "recordId", id)
	case errors.Is(err, service.ErrInvalidVerifCode):
		return serverutils.NewUnauthorized("Invalid verification code")
	case errors.Is(err, service.ErrUnknownDomain):
		return &serverutils.AppError{Code: fiber.StatusNotFound, Message: "Route not found"}
	default:
		return serverutils.NewInternal(operation, err)
	}
}
