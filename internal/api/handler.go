package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jobscrawler/internal/extractor"
	"jobscrawler/internal/jobs"
	"jobscrawler/pkg/logger"
)

type ExtractRequest struct {
	HTML   string           `json:"html"`
	Schema extractor.Schema `json:"schema"`
}

type ExtractResponse struct {
	Count   int                `json:"count"`
	Records []extractor.Record `json:"records"`
}

func SetupRoutes(app *fiber.App) {
	app.Post("/api/extract", handleExtract)
	app.Get("/api/schema", handleSchema)
	app.Get("/health", handleHealth)
}

func handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleSchema exposes the built-in job listings schema so clients have a
// known-good example to start from.
func handleSchema(c *fiber.Ctx) error {
	return c.JSON(jobs.Schema())
}

func handleExtract(c *fiber.Ctx) error {
	log := logger.Log

	var req ExtractRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.HTML == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "html is required"})
	}

	records, err := extractor.Extract(req.HTML, req.Schema)
	if err != nil {
		// A bad selector means the client's schema is broken, not the page.
		kind := "invalid_schema"
		var selErr *extractor.InvalidSelectorError
		if errors.As(err, &selErr) {
			kind = "invalid_selector"
		}
		log.Warn().Err(err).Str("schema", req.Schema.Name).Msg("extract request rejected")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"kind":  kind,
		})
	}

	log.Info().
		Str("schema", req.Schema.Name).
		Int("records", len(records)).
		Int("html_len", len(req.HTML)).
		Msg("extract completed")

	return c.JSON(ExtractResponse{Count: len(records), Records: records})
}
