package http

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/observability"
	apperrors "github.com/spec-kit/placement-service/pkg/util"
)

// RegisterMiddlewares attaches global middlewares: request timeout, error
// normalization, and request logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration, production bool) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics, production))
	app.Use(observability.RequestLogger(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware is the single point where every failure raised in
// request handling becomes a wire response. No handler formats its own error
// body. The response shape is {success:false, message, errors[]}; the stack
// is included for unclassified failures only outside production.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics, production bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err == nil {
				return
			}

			domainErr := normalizeError(err)
			metrics.RecordError(c.Path(), c.Method(), string(domainErr.Kind))

			logger.Error("request failed",
				zap.String("message", domainErr.Message),
				zap.Error(domainErr),
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.String("ip", c.IP()),
				zap.ByteString("stack", debug.Stack()))

			response := fiber.Map{
				"success": false,
				"message": domainErr.Message,
				"errors":  domainErr.Errors,
			}
			if !production && domainErr.Kind == apperrors.KindInternal {
				response["stack"] = string(debug.Stack())
			}

			c.Status(domainErr.HTTPStatus)
			_ = c.JSON(response)
			err = nil
		}()
		return c.Next()
	}
}

// normalizeError classifies a failure into a DomainError. Typed failures
// pass through; token codec sentinels and fiber errors are translated;
// anything else is an internal error.
func normalizeError(err error) *apperrors.DomainError {
	if domainErr := apperrors.AsDomainError(err); domainErr != nil {
		return domainErr
	}

	if errors.Is(err, auth.ErrTokenMalformed) {
		return &apperrors.DomainError{
			Kind:       apperrors.KindUnauthorized,
			Message:    "Invalid token",
			HTTPStatus: fiber.StatusUnauthorized,
			Errors:     []string{"Authentication token is invalid"},
			Err:        err,
		}
	}
	if errors.Is(err, auth.ErrTokenExpired) {
		return &apperrors.DomainError{
			Kind:       apperrors.KindUnauthorized,
			Message:    "Token expired",
			HTTPStatus: fiber.StatusUnauthorized,
			Errors:     []string{"Authentication token has expired"},
			Err:        err,
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		kind := apperrors.KindInternal
		if fiberErr.Code < fiber.StatusInternalServerError {
			kind = apperrors.KindValidation
			switch fiberErr.Code {
			case fiber.StatusUnauthorized:
				kind = apperrors.KindUnauthorized
			case fiber.StatusForbidden:
				kind = apperrors.KindForbidden
			case fiber.StatusNotFound:
				kind = apperrors.KindNotFound
			}
		}
		return &apperrors.DomainError{
			Kind:       kind,
			Message:    fiberErr.Message,
			HTTPStatus: fiberErr.Code,
			Errors:     []string{fiberErr.Message},
			Err:        err,
		}
	}

	internal := apperrors.NewInternalError(err)
	return apperrors.AsDomainError(internal)
}
