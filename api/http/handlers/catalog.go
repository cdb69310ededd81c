package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careerpilot/backend/api/http/presenter"
	"github.com/careerpilot/backend/pkg/catalog"
)

// CatalogHandler serves the static knowledge base: roles and resources.
type CatalogHandler struct {
	cat *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat}
}

// Roles lists the fixed role table.
// @Summary List roles
// @Tags    catalog
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /roles [get]
func (h *CatalogHandler) Roles(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"roles": h.cat.Roles()})
}

// Resources returns resource links. With ?skills=a,b it returns the
// concatenated lists for the named skills; without it, the full table plus
// the available skill names.
// @Summary List resources
// @Tags    catalog
// @Produce json
// @Param   skills query string false "comma-separated skill names"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /resources [get]
func (h *CatalogHandler) Resources(c *fiber.Ctx) error {
	var skills []string
	for _, s := range strings.Split(c.Query("skills"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	if len(skills) == 0 {
		return presenter.JSON(c, http.StatusOK, fiber.Map{
			"available": h.cat.Skills(),
			"resources": h.cat.ResourceTable(),
		})
	}
	out := []catalog.Resource{}
	for _, sk := range skills {
		out = append(out, h.cat.ResourcesFor(sk)...)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"resources": out})
}
