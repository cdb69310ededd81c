package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/careerpilot/backend/api/http/presenter"
	"github.com/careerpilot/backend/pkg/recommend"
	"github.com/careerpilot/backend/pkg/user"
)

type RecommendationHandler struct {
	users  user.ProfileUseCase
	engine *recommend.Service
}

func NewRecommendationHandler(users user.ProfileUseCase, engine *recommend.Service) *RecommendationHandler {
	return &RecommendationHandler{users: users, engine: engine}
}

// Recommend ranks the catalog roles for the current user and returns the
// winner with its learning path, skill gap and resources.
// @Summary Role recommendation
// @Tags    recommendation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} recommend.Recommendation
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /recommendation [get]
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	rec, err := h.users.Get(c.Context(), userEmail(c))
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "User not found")
	}
	out, err := h.engine.Recommend(rec)
	if err != nil {
		if errors.Is(err, recommend.ErrNoSavedRoles) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to compute recommendation")
	}
	return presenter.JSON(c, http.StatusOK, out)
}
