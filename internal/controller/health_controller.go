package controller

import (
	"context"
	"time"

	"chitty-gateway/internal/dto"
	"chitty-gateway/internal/gateway"
	"chitty-gateway/pkg/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// StoragePinger reports whether the key/value backend is reachable.
type StoragePinger interface {
	Ping(ctx context.Context) error
}

type HealthInfo struct {
	ServiceName string
	Version     string
	StorageMode string
	QueueMode   string
}

type IHealthController interface {
	RegisterRoutes(r *gateway.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	info    HealthInfo
	storage StoragePinger
	db      *gorm.DB
	domains []string
}

// NewHealthController reports on the wired backends. db may be nil.
func NewHealthController(info HealthInfo, storage StoragePinger, db *gorm.DB) IHealthController {
	return &healthController{
		info:    info,
		storage: storage,
		db:      db,
	}
}

func (c *healthController) RegisterRoutes(r *gateway.Router) {
	r.Root(c.Health)
	r.Domain("health", c.Health)
	c.domains = r.DomainNames()
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Service:   c.info.ServiceName,
		Version:   c.info.Version,
		Status:    "healthy",
		Storage:   c.info.StorageMode,
		KVStore:   c.storageStatus(ctx.Context()),
		Database:  c.databaseStatus(ctx.Context()),
		Queue:     c.info.QueueMode,
		Domains:   c.domains,
		Timestamp: time.Now().UTC(),
	})
}

func (c *healthController) storageStatus(parent context.Context) string {
	ctx, cancel := context.WithTimeout(parent, pingTimeout)
	defer cancel()
	if err := c.storage.Ping(ctx); err != nil {
		return "unreachable"
	}
	return "connected"
}

func (c *healthController) databaseStatus(parent context.Context) string {
	if c.db == nil {
		return "disabled"
	}

	ctx, cancel := context.WithTimeout(parent, pingTimeout)
	defer cancel()
	if err := database.Ping(ctx, c.db); err != nil {
		return "unreachable"
	}
	return "connected"
}
