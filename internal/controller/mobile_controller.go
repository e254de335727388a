package controller

import (
	"errors"
	"time"

	"chitty-gateway/internal/dto"
	"chitty-gateway/internal/gateway"
	"chitty-gateway/internal/pkg/serverutils"
	"chitty-gateway/internal/service"

	"github.com/gofiber/fiber/v2"
)

var (
	mobileFeatures  = []string{"quick-start", "handoff", "continue"}
	mobileEndpoints = []string{
		"POST /mobile/quick-start",
		"POST /mobile/handoff",
		"GET /mobile/continue/{id}",
		"GET /mobile/status",
	}
)

type IMobileController interface {
	RegisterRoutes(r *gateway.Router)
	QuickStart(ctx *fiber.Ctx) error
	Handoff(ctx *fiber.Ctx) error
	Continue(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Info(ctx *fiber.Ctx) error
}

type mobileController struct {
	handoffService    service.IHandoffService
	continuityService service.IContinuityService
	serviceName       string
	version           string
	storageMode       string
}

func NewMobileController(
	handoffService service.IHandoffService,
	continuityService service.IContinuityService,
	serviceName string,
	version string,
	storageMode string,
) IMobileController {
	return &mobileController{
		handoffService:    handoffService,
		continuityService: continuityService,
		serviceName:       serviceName,
		version:           version,
		storageMode:       storageMode,
	}
}

func (c *mobileController) RegisterRoutes(r *gateway.Router) {
	r.Domain("mobile", c.Info).
		Root(fiber.MethodGet, c.Info).
		Handle(fiber.MethodPost, "quick-start", 1, c.QuickStart).
		Handle(fiber.MethodPost, "handoff", 1, c.Handoff).
		Handle(fiber.MethodGet, "continue", 2, c.Continue).
		Handle(fiber.MethodGet, "status", 1, c.Status)
}

func (c *mobileController) QuickStart(ctx *fiber.Ctx) error {
	var req dto.QuickStartRequest
	if err := serverutils.DecodeBody(ctx, "Quick start", &req); err != nil {
		return err
	}

	res, err := c.continuityService.QuickStart(ctx.Context(), &req)
	if err != nil {
		return serverutils.NewInternal("Quick start", err)
	}
	return ctx.JSON(res)
}

func (c *mobileController) Handoff(ctx *fiber.Ctx) error {
	var req dto.CreateMobileHandoffRequest
	if err := serverutils.DecodeBody(ctx, "Mobile handoff", &req); err != nil {
		return err
	}

	handoff, mobileURL, err := c.handoffService.Create(ctx.Context(), req.SessionId, req.TargetPlatform, req.MobileContext)
	if err != nil {
		return serverutils.NewInternal("Mobile handoff", err)
	}

	return ctx.JSON(dto.CreateMobileHandoffResponse{
		Success:       true,
		HandoffId:     handoff.Id,
		MobileUrl:     mobileURL,
		MobileContext: handoff.MobileContext,
		Handoff:       handoff,
	})
}

func (c *mobileController) Continue(ctx *fiber.Ctx) error {
	id := gateway.Segment(ctx, 1)

	res, err := c.continuityService.Continue(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrContinuityNotFound) {
			return serverutils.NewNotFound("Session or handoff", "id", id)
		}
		return serverutils.NewInternal("Session continuation", err)
	}
	return ctx.JSON(res)
}

func (c *mobileController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.StatusResponse{
		Service:   c.serviceName,
		Component: "mobile",
		Status:    "operational",
		Storage:   c.storageMode,
		Features:  mobileFeatures,
		Timestamp: time.Now().UTC(),
	})
}

func (c *mobileController) Info(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.MobileInfoResponse{
		Service:   c.serviceName,
		Component: "mobile",
		Version:   c.version,
		Endpoints: mobileEndpoints,
	})
}
