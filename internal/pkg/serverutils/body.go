package serverutils

import (
	"github.com/gofiber/fiber/v2"
)

// DecodeBody unmarshals the JSON body into v with the app's JSON decoder,
// regardless of Content-Type. An empty body leaves v untouched. Malformed
// JSON is reported as an internal failure of operation.
func DecodeBody(ctx *fiber.Ctx, operation string, v interface{}) error {
	body := ctx.Body()
	if len(body) == 0 {
		return nil
	}
	if err := ctx.App().Config().JSONDecoder(body, v); err != nil {
		return NewInternal(operation, err)
	}
	return nil
}
