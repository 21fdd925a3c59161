// Package webapi exposes the transfer engine over HTTP:
// - transfer: transfer, account balance and settings endpoints
// - common: response envelopes, problem details and request validation
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/banktransfer/pkg/app"
	"github.com/amirasaad/banktransfer/pkg/config"
	"github.com/amirasaad/banktransfer/pkg/repository"
	"github.com/amirasaad/banktransfer/webapi/common"
	transferweb "github.com/amirasaad/banktransfer/webapi/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	return NewApp(a.TransferService, a.Deps.Accounts, a.Config.RateLimit, a.Deps.Registry)
}

// NewApp builds the Fiber application. A nil or non-positive rate limit
// disables the limiter; a nil gatherer disables /metrics.
func NewApp(
	svc transferweb.Service,
	accounts repository.AccountFinder,
	rateLimit *config.RateLimit,
	gatherer prometheus.Gatherer,
) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			title := "Internal Server Error"
			var fe *fiber.Error
			if errors.As(err, &fe) {
				title = fe.Message
			}
			return common.ProblemDetailsJSON(c, title, err)
		},
	})

	if rateLimit != nil && rateLimit.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:          rateLimit.MaxRequests,
			Expiration:   rateLimit.Window,
			KeyGenerator: clientIP,
			LimitReached: func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(
					c,
					"Too Many Requests",
					errors.New("rate limit exceeded"),
					fiber.StatusTooManyRequests,
				)
			},
		}))
	}
	fiberApp.Use(recover.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Bank transfer API is running! 🚀")
	})

	if gatherer != nil {
		fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	transferweb.Routes(fiberApp, svc, accounts)
	return fiberApp
}

// clientIP keys the limiter on X-Forwarded-For when behind a proxy, then
// X-Real-IP, then the peer address.
func clientIP(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
			return strings.TrimSpace(forwardedFor[:commaIndex])
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
