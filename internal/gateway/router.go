// Package gateway owns the whole path space. The first path segment picks a
// domain; the method, the next segment and the number of remaining segments
// pick a handler from that domain's table. Anything unmatched inside a known
// domain gets the domain's fallback response.
package gateway

import (
	"sort"
	"strings"

	"chitty-gateway/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

const segmentsKey = "gateway.segments"

type routeKey struct {
	method  string
	segment string
	arity   int
}

type Domain struct {
	name     string
	routes   map[routeKey]fiber.Handler
	params   map[string]fiber.Handler
	fallback fiber.Handler
}

// Handle registers method + literal segment. arity counts the path segments
// after the domain, including the literal itself.
func (d *Domain) Handle(method, segment string, arity int, h fiber.Handler) *Domain {
	d.routes[routeKey{method: method, segment: segment, arity: arity}] = h
	return d
}

// Root registers the handler for /<domain> with no further segments.
func (d *Domain) Root(method string, h fiber.Handler) *Domain {
	return d.Handle(method, "", 0, h)
}

// Param registers /<domain>/{id} for ids that match no literal route.
func (d *Domain) Param(method string, h fiber.Handler) *Domain {
	d.params[method] = h
	return d
}

func (d *Domain) lookup(method string, sub []string) fiber.Handler {
	if len(sub) == 0 {
		if h, ok := d.routes[routeKey{method: method, arity: 0}]; ok {
			return h
		}
		return d.fallback
	}

	if h, ok := d.routes[routeKey{method: method, segment: sub[0], arity: len(sub)}]; ok {
		return h
	}
	if len(sub) == 1 {
		if h, ok := d.params[method]; ok {
			return h
		}
	}
	return d.fallback
}

type Router struct {
	service string
	domains map[string]*Domain
	root    fiber.Handler
}

func NewRouter(service string) *Router {
	return &Router{
		service: service,
		domains: make(map[string]*Domain),
	}
}

// Domain returns the named domain, creating it with fallback on first use.
func (r *Router) Domain(name string, fallback fiber.Handler) *Domain {
	if d, ok := r.domains[name]; ok {
		return d
	}
	d := &Domain{
		name:     name,
		routes:   make(map[routeKey]fiber.Handler),
		params:   make(map[string]fiber.Handler),
		fallback: fallback,
	}
	r.domains[name] = d
	return d
}

// Root sets the handler for "/".
func (r *Router) Root(h fiber.Handler) {
	r.root = h
}

func (r *Router) DomainNames() []string {
	names := make([]string, 0, len(r.domains))
	for name := range r.domains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mount attaches the dispatcher to every path of app.
func (r *Router) Mount(app *fiber.App) {
	app.All("/", r.Dispatch)
	app.All("/*", r.Dispatch)
}

func (r *Router) Dispatch(ctx *fiber.Ctx) error {
	segments := splitPath(ctx.Path())
	ctx.Locals(segmentsKey, segments)

	if len(segments) == 0 {
		if r.root != nil {
			return r.root(ctx)
		}
		return r.notFound(ctx)
	}

	d, ok := r.domains[segments[0]]
	if !ok {
		return r.notFound(ctx)
	}

	h := d.lookup(ctx.Method(), segments[1:])
	if h == nil {
		return r.notFound(ctx)
	}
	return h(ctx)
}

func (r *Router) notFound(ctx *fiber.Ctx) error {
	return &serverutils.AppError{
		Code:    fiber.StatusNotFound,
		Message: "Route not found",
		Fields:  map[string]interface{}{"path": ctx.Path()},
	}
}

// Segment returns the i-th path segment after the domain, or "".
func Segment(ctx *fiber.Ctx, i int) string {
	segments, _ := ctx.Locals(segmentsKey).([]string)
	if i < 0 || i+1 >= len(segments) {
		return ""
	}
	return segments[i+1]
}

// DomainOf returns the first path segment of the dispatched request.
func DomainOf(ctx *fiber.Ctx) string {
	segments, _ := ctx.Locals(segmentsKey).([]string)
	if len(segments) == 0 {
		return ""
	}
	return segments[0]
}

func splitPath(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}
