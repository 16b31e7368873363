package handlers

import (
	"github.com/gofiber/fiber/v2"

	"solace/internal/models"
	"solace/internal/services"
)

// InsightsHandler exposes the per-user ai rollup: the rolling journal
// sentiment aggregate and the current event recommendations.
type InsightsHandler struct {
	users           services.UserStore
	aggregates      *services.AggregateService
	recommendations *services.RecommendationService
}

// NewInsightsHandler creates a new insights handler
func NewInsightsHandler(
	users services.UserStore,
	aggregates *services.AggregateService,
	recommendations *services.RecommendationService,
) *InsightsHandler {
	return &InsightsHandler{
		users:           users,
		aggregates:      aggregates,
		recommendations: recommendations,
	}
}

// Get returns the user's current insights. Users that have never been
// aggregated get zero-valued defaults rather than a 404.
func (h *InsightsHandler) Get(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId is required",
		})
	}

	insights, err := h.users.Insights(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load insights",
		})
	}
	if insights == nil {
		insights = &models.UserInsights{RecommendedEventIDs: []string{}}
	}
	if insights.RecommendedEventIDs == nil {
		insights.RecommendedEventIDs = []string{}
	}

	return c.JSON(fiber.Map{
		"userId":   userID,
		"insights": insights,
	})
}

// Recompute re-runs the aggregate and recommendation engines for one user
// and returns the refreshed insights. Admin/support escape hatch — the
// normal path is the journal trigger chain.
func (h *InsightsHandler) Recompute(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId is required",
		})
	}

	ctx := c.Context()
	if err := h.aggregates.UpdateUserJournalAggregate(ctx, userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to update aggregate",
		})
	}
	if err := h.recommendations.RecomputeRecommendations(ctx, userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to recompute recommendations",
		})
	}

	insights, err := h.users.Insights(ctx, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load insights",
		})
	}

	return c.JSON(fiber.Map{
		"userId":   userID,
		"insights": insights,
	})
}
