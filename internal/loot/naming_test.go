package loot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velarium/scriptorium/internal/domain"
)

func TestGenerateName(t *testing.T) {
	t.Run("follows the item-of-concept template", func(t *testing.T) {
		roller := seededRoller(3)
		for i := 0; i < 200; i++ {
			name := roller.GenerateName(domain.ItemTome)
			assert.True(t, strings.HasPrefix(name, "Tome of "), "got %q", name)
		}
	})

	t.Run("descriptor clause appears roughly half the time", func(t *testing.T) {
		roller := seededRoller(3)
		withDescriptor := 0
		const runs = 2000
		for i := 0; i < runs; i++ {
			name := roller.GenerateName(domain.ItemRing)
			base := strings.TrimPrefix(name, "Ring of ")
			if hasDescriptorSuffix(base) {
				withDescriptor++
			}
		}
		rate := float64(withDescriptor) / runs
		assert.Greater(t, rate, 0.35)
		assert.Less(t, rate, 0.65)
	})
}

// hasDescriptorSuffix reports whether the text past the concept ends with a
// pool descriptor. Bare concepts never do: no concept ends with a descriptor.
func hasDescriptorSuffix(base string) bool {
	for _, d := range nameDescriptors {
		if strings.HasSuffix(base, " "+d) {
			return true
		}
	}
	return false
}

func TestGenerateDescription(t *testing.T) {
	roller := seededRoller(11)
	for i := 0; i < 100; i++ {
		desc := roller.GenerateDescription(domain.ItemLantern)
		assert.NotEmpty(t, desc)
		assert.Contains(t, desc, "lantern")
	}
}
