package formation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogInvariants(t *testing.T) {
	for _, name := range Names() {
		tmpl := Get(name)
		assert.Equal(t, name, tmpl.Name)
		assert.Len(t, tmpl.Slots, SlotCount, "template %s", name)

		seen := map[int]bool{}
		for _, slot := range tmpl.Slots {
			assert.False(t, seen[slot.ID], "template %s reuses slot id %d", name, slot.ID)
			seen[slot.ID] = true
			assert.NotEmpty(t, slot.Label)
		}
	}
}

func TestGetUnknownFallsBack(t *testing.T) {
	tmpl := Get("2-2-6")
	assert.Equal(t, DefaultName, tmpl.Name)
	assert.False(t, Known("2-2-6"))
	assert.True(t, Known("4-2-3-1"))
}
