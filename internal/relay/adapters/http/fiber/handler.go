package fiber

import (
	"context"
	"errors"
	"net/http"

	"conversion-relay-service/internal/relay/core/domain"
	"conversion-relay-service/internal/relay/core/usecase"
	"conversion-relay-service/internal/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type ForwardEventUseCase interface {
	Execute(ctx context.Context, in usecase.ForwardEventInput) error
}

type RelayHandler struct {
	forwardUC ForwardEventUseCase
}

func NewRelayHandler(forwardUC ForwardEventUseCase) *RelayHandler {
	return &RelayHandler{forwardUC: forwardUC}
}

// RegisterRoutes mounts the relay endpoint and its CORS policy. Any
// method other than POST/OPTIONS on the path falls through to fiber's
// 405 response.
func RegisterRoutes(app *fiber.App, h *RelayHandler) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST, OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	// The cors middleware only answers requests carrying an Origin
	// header; the relay sends the headers on every response.
	app.Use(func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowMethods, "POST, OPTIONS")
		c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
		return c.Next()
	})

	app.Options("/forwardEvent", h.Preflight)
	app.Post("/forwardEvent", h.ForwardEvent)
}

// Preflight answers CORS preflight checks.
func (h *RelayHandler) Preflight(c *fiber.Ctx) error {
	return c.SendStatus(http.StatusNoContent)
}

// ForwardEvent godoc
// @Summary Forward a conversion event upstream
// @Description Hashes identity fields and relays the event to the advertising platform's server-side API
// @Tags Relay
// @Accept json
// @Produce json
// @Param request body ForwardEventRequest true "Conversion event payload"
// @Success 200 {object} ForwardEventResponse
// @Failure 400 {object} ForwardEventResponse
// @Failure 500 {object} ForwardEventResponse
// @Router /forwardEvent [post]
func (h *RelayHandler) ForwardEvent(c *fiber.Ctx) error {
	var req ForwardEventRequest

	if err := c.BodyParser(&req); err != nil {
		// A malformed body does not short-circuit: the secret check
		// outranks body validation, so the usecase decides the
		// response from a zero-value input.
		req = ForwardEventRequest{}
	}

	input := usecase.ForwardEventInput{
		EventName: req.EventName,
		EventID:   req.EventID,
		EventData: req.EventData,
		User: domain.UserData{
			Email:     req.UserData.Email,
			Phone:     req.UserData.Phone,
			FirstName: req.UserData.FirstName,
			LastName:  req.UserData.LastName,
		},
		PixelID:   req.Settings.AccountPixelID,
		ClientIP:  c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
	}

	if err := h.forwardUC.Execute(c.UserContext(), input); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPixelIDRequired):
			telemetry.EventsRejected.WithLabelValues("missing_pixel_id").Inc()
			return c.Status(http.StatusBadRequest).JSON(ForwardEventResponse{
				Success: false,
				Message: "Pixel ID is required.",
			})
		case errors.Is(err, usecase.ErrSecretNotConfigured):
			telemetry.EventsRejected.WithLabelValues("secret_not_configured").Inc()
			return c.Status(http.StatusInternalServerError).JSON(ForwardEventResponse{
				Success: false,
				Message: "Server configuration error.",
			})
		default:
			telemetry.UpstreamFailures.Inc()
			return c.Status(http.StatusInternalServerError).JSON(ForwardEventResponse{
				Success: false,
				Message: "Failed to forward event.",
			})
		}
	}

	telemetry.EventsForwarded.Inc()
	return c.Status(http.StatusOK).JSON(ForwardEventResponse{
		Success: true,
		Message: "Event forwarded.",
	})
}
