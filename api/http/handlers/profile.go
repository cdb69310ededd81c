package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careerpilot/backend/api/http/presenter"
	"github.com/careerpilot/backend/pkg/user"
)

// ProfileHandler serves the authenticated user's state: profile view, role
// saves, progress updates and history.
type ProfileHandler struct {
	uc user.ProfileUseCase
}

func NewProfileHandler(uc user.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// userEmail extracts the subject set by the auth middleware.
func userEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("userEmail").(string)
	return email
}

// Me returns the safe projection of the current user.
// @Summary Current user
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /me [get]
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	rec, err := h.uc.Get(c.Context(), userEmail(c))
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "User not found")
	}
	saved := rec.SavedRoles
	if saved == nil {
		saved = []string{}
	}
	history := rec.History
	if history == nil {
		history = []user.HistoryEntry{}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"user": fiber.Map{
			"email":      rec.Email,
			"name":       rec.Name,
			"progress":   rec.Progress,
			"savedRoles": saved,
			"history":    history,
		},
	})
}

type saveRoleRequest struct {
	RoleID string `json:"role_id"`
}

// SaveRole saves a role for the current user. Idempotent: re-saving an
// already saved role succeeds without mutating state.
// @Summary Save role
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body saveRoleRequest true "role to save"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /role/save [post]
func (h *ProfileHandler) SaveRole(c *fiber.Ctx) error {
	var req saveRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.RoleID) == "" {
		return presenter.Error(c, http.StatusBadRequest, "role_id required")
	}
	res, err := h.uc.SaveRole(c.Context(), userEmail(c), req.RoleID)
	if err != nil {
		if errors.Is(err, user.ErrUnknownRole) {
			return presenter.Error(c, http.StatusBadRequest, "unknown role_id")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to save role")
	}
	if res.Already {
		return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "already saved"})
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "saved", "savedRoles": res.SavedRoles})
}

type updateProgressRequest struct {
	Progress *int `json:"progress"`
}

// UpdateProgress stores a new progress value, clamped to [0,100].
// @Summary Update progress
// @Tags    profile
// @Accept  json
// @Produce json
// @Param   input body updateProgressRequest true "progress value"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /progress/update [post]
func (h *ProfileHandler) UpdateProgress(c *fiber.Ctx) error {
	var req updateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "progress must be integer between 0 and 100")
	}
	if req.Progress == nil {
		return presenter.Error(c, http.StatusBadRequest, "progress required")
	}
	p, err := h.uc.UpdateProgress(c.Context(), userEmail(c), *req.Progress)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to update progress")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "updated", "progress": p})
}

// History returns the append-only event history.
// @Summary Progress history
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /progress/history [get]
func (h *ProfileHandler) History(c *fiber.Ctx) error {
	history, err := h.uc.History(c.Context(), userEmail(c))
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "User not found")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"history": history})
}
