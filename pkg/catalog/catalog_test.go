package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_RoleTable(t *testing.T) {
	t.Parallel()

	c := New()
	roles := c.Roles()
	assert.Len(t, roles, 3)
	assert.Equal(t, "r1", roles[0].ID)

	assert.True(t, c.HasRole("r3"))
	assert.False(t, c.HasRole("r99"))
}

func TestCatalog_UnknownTitlesYieldEmpty(t *testing.T) {
	t.Parallel()

	c := New()
	// Absent titles yield empty structures, never an error.
	assert.Empty(t, c.PathFor("Astronaut").Steps)
	assert.Empty(t, c.SkillsFor("Astronaut"))
	assert.Empty(t, c.ResourcesFor("Juggling"))
}

func TestCatalog_SkillsSorted(t *testing.T) {
	t.Parallel()

	c := New()
	assert.Equal(t, []string{"DSA", "JavaScript", "MLOps", "Python"}, c.Skills())
}
