package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/careerpilot/backend/api/http/presenter"
	"github.com/careerpilot/backend/pkg/auth"
	"github.com/careerpilot/backend/pkg/user"
)

const (
	demoEmail    = "demo@careercraft.test"
	demoPassword = "password"
)

// DemoHandler creates a fixed demo account for testing convenience.
type DemoHandler struct {
	repo user.Repository
}

func NewDemoHandler(repo user.Repository) *DemoHandler {
	return &DemoHandler{repo: repo}
}

// Setup idempotently creates the demo user with backdated history.
// @Summary Create demo account
// @Tags    demo
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /setup-demo [post]
func (h *DemoHandler) Setup(c *fiber.Ctx) error {
	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create demo user")
	}
	now := time.Now()
	rec := user.Record{
		ID:           uuid.New(),
		Name:         "Demo User",
		PasswordHash: hash,
		Progress:     46,
		SavedRoles:   []string{"r1", "r3"},
		History: []user.HistoryEntry{
			user.Snapshot(now.AddDate(0, 0, -30).Unix(), 10),
			user.Snapshot(now.AddDate(0, 0, -14).Unix(), 20),
			user.Snapshot(now.AddDate(0, 0, -7).Unix(), 33),
			user.Snapshot(now.AddDate(0, 0, -1).Unix(), 46),
		},
		CreatedAt: now.UTC(),
	}
	if err := h.repo.Create(c.Context(), demoEmail, rec); err != nil {
		if errors.Is(err, user.ErrAlreadyExists) {
			return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "demo already present"})
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create demo user")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message":  "demo user created",
		"email":    demoEmail,
		"password": demoPassword,
	})
}
