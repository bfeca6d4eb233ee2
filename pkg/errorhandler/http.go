package errorhandler

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gaze-network/pokedex-nft/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
)

// kindStatus maps error kinds that are safe to expose onto HTTP status codes.
var kindStatus = []struct {
	kind   error
	status int
}{
	{errs.NotFound, http.StatusNotFound},
	{errs.InvalidArgument, http.StatusBadRequest},
	{errs.Unsupported, http.StatusBadRequest},
	{errs.Submission, http.StatusConflict},
	{errs.OwnershipMismatch, http.StatusConflict},
	{errs.Confirmation, http.StatusGatewayTimeout},
	{errs.Timeout, http.StatusGatewayTimeout},
	{errs.Network, http.StatusBadGateway},
	{errs.MalformedResponse, http.StatusBadGateway},
	{errs.ChainRead, http.StatusBadGateway},
	{errs.Disconnected, http.StatusServiceUnavailable},
}

func NewHTTPErrorHandler() func(ctx *fiber.Ctx, err error) error {
	return func(ctx *fiber.Ctx, err error) error {
		if e := new(errs.PublicError); errors.As(err, &e) {
			status := http.StatusBadRequest
			if code := statusOf(err); code != 0 {
				status = code
			}
			return errors.WithStack(ctx.Status(status).JSON(common.NewHttpError[any](e.Message())))
		}
		if e := new(fiber.Error); errors.As(err, &e) {
			return errors.WithStack(ctx.Status(e.Code).JSON(common.NewHttpError[any](e.Message)))
		}
		if status := statusOf(err); status != 0 {
			if status >= http.StatusInternalServerError {
				logger.WarnContext(ctx.UserContext(), "Upstream failure while serving api request",
					slogx.String("event", "api_upstream_error"),
					slogx.Error(err),
				)
			}
			return errors.WithStack(ctx.Status(status).JSON(common.NewHttpError[any](err.Error())))
		}

		logger.ErrorContext(ctx.UserContext(), "Something went wrong, unhandled api error", err,
			slogx.String("event", "api_unhandled_error"),
		)

		return errors.WithStack(ctx.Status(http.StatusInternalServerError).JSON(common.NewHttpError[any]("Internal Server Error")))
	}
}

func statusOf(err error) int {
	for _, ks := range kindStatus {
		if errors.Is(err, ks.kind) {
			return ks.status
		}
	}
	return 0
}
