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

var sessionFeatures = []string{"create", "read", "update", "sync", "handoff"}

type ISessionController interface {
	RegisterRoutes(r *gateway.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Sync(ctx *fiber.Ctx) error
	Handoff(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
	handoffService service.IHandoffService
	serviceName    string
	storageMode    string
}

func NewSessionController(
	sessionService service.ISessionService,
	handoffService service.IHandoffService,
	serviceName string,
	storageMode string,
) ISessionController {
	return &sessionController{
		sessionService: sessionService,
		handoffService: handoffService,
		serviceName:    serviceName,
		storageMode:    storageMode,
	}
}

func (c *sessionController) RegisterRoutes(r *gateway.Router) {
	r.Domain("session", c.List).
		Root(fiber.MethodGet, c.List).
		Handle(fiber.MethodPost, "create", 1, c.Create).
		Handle(fiber.MethodPost, "sync", 1, c.Sync).
		Handle(fiber.MethodPost, "handoff", 1, c.Handoff).
		Handle(fiber.MethodGet, "status", 1, c.Status).
		Param(fiber.MethodGet, c.Show).
		Param(fiber.MethodPost, c.Update)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	payload := map[string]interface{}{}
	if err := serverutils.DecodeBody(ctx, "Session creation", &payload); err != nil {
		return err
	}

	session, err := c.sessionService.Create(ctx.Context(), payload)
	if err != nil {
		return serverutils.NewInternal("Session creation", err)
	}

	return ctx.JSON(dto.CreateSessionResponse{
		Success:   true,
		SessionId: session.Id,
		Session:   session,
	})
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	id := gateway.Segment(ctx, 0)

	session, err := c.sessionService.Show(ctx.Context(), id)
	if err != nil {
		return sessionError("Session retrieval", id, err)
	}

	return ctx.JSON(dto.ShowSessionResponse{
		Success: true,
		Session: session,
	})
}

func (c *sessionController) Update(ctx *fiber.Ctx) error {
	id := gateway.Segment(ctx, 0)

	patch := map[string]interface{}{}
	if err := serverutils.DecodeBody(ctx, "Session update", &patch); err != nil {
		return err
	}

	session, err := c.sessionService.Update(ctx.Context(), id, patch)
	if err != nil {
		return sessionError("Session update", id, err)
	}

	return ctx.JSON(dto.UpdateSessionResponse{
		Success: true,
		Session: session,
	})
}

func (c *sessionController) Sync(ctx *fiber.Ctx) error {
	payload := map[string]interface{}{}
	if err := serverutils.DecodeBody(ctx, "Session sync", &payload); err != nil {
		return err
	}

	res, err := c.sessionService.Sync(ctx.Context(), payload)
	if err != nil {
		return serverutils.NewInternal("Session sync", err)
	}
	return ctx.JSON(res)
}

func (c *sessionController) Handoff(ctx *fiber.Ctx) error {
	var req dto.CreateHandoffRequest
	if err := serverutils.DecodeBody(ctx, "Handoff creation", &req); err != nil {
		return err
	}

	handoff, mobileURL, err := c.handoffService.Create(ctx.Context(), req.SessionId, req.TargetApp, req.Context)
	if err != nil {
		return serverutils.NewInternal("Handoff creation", err)
	}

	return ctx.JSON(dto.CreateHandoffResponse{
		Success:   true,
		HandoffId: handoff.Id,
		MobileUrl: mobileURL,
		Handoff:   handoff,
	})
}

func (c *sessionController) Status(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.StatusResponse{
		Service:   c.serviceName,
		Component: "session",
		Status:    "operational",
		Storage:   c.storageMode,
		Features:  sessionFeatures,
		Timestamp: time.Now().UTC(),
	})
}

// List is a stub; there is no session index to enumerate.
func (c *sessionController) List(ctx *fiber.Ctx) error {
	res, err := c.sessionService.List(ctx.Context())
	if err != nil {
		return serverutils.NewInternal("Session list", err)
	}
	return ctx.JSON(res)
}

func sessionError(operation, id string, err error) error {
	if errors.Is(err, service.ErrSessionNotFound) {
		return serverutils.NewNotFound("Session", "sessionId", id)
	}
	return serverutils.NewInternal(operation, err)
}
