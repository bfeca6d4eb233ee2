package requestcontext

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

// Option enriches the request context. A returned *RejectError aborts the request with its status.
type Option func(ctx context.Context, c *fiber.Ctx) (context.Context, error)

// RejectError stops the request before it reaches the handlers.
type RejectError struct {
	Status  int
	Message string
}

func (r *RejectError) Error() string {
	return r.Message
}

func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		for i, opt := range opts {
			next, err := opt(ctx, c)
			if err == nil {
				ctx = next
				continue
			}
			if rErr := new(RejectError); errors.As(err, &rErr) {
				return c.Status(rErr.Status).JSON(common.NewHttpError[any](rErr.Message))
			}
			logger.ErrorContext(ctx, "failed to build request context", err,
				slog.String("event", "requestcontext/error"),
				slog.Int("optionIndex", i),
			)
			return c.Status(http.StatusInternalServerError).JSON(common.NewHttpError[any]("internal server error"))
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}
