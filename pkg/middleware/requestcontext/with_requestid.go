package requestcontext

import (
	"context"

	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

type requestIdKey struct{}

// GetRequestId returns the request id stored by WithRequestId, or empty string.
func GetRequestId(ctx context.Context) string {
	id, _ := ctx.Value(requestIdKey{}).(string)
	return id
}

// WithRequestId reuses the id set by fiber's requestid middleware or the request header, generating one otherwise.
// The id is echoed in the response header and attached to the context logger.
func WithRequestId() Option {
	header, key := requestid.ConfigDefault.Header, requestid.ConfigDefault.ContextKey
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		id, _ := c.Locals(key).(string)
		if id == "" {
			id = c.Get(header, fiberutils.UUID())
			c.Set(header, id)
			c.Locals(key, id)
		}
		ctx = context.WithValue(ctx, requestIdKey{}, id)
		return logger.WithContext(ctx, "requestId", id), nil
	}
}
