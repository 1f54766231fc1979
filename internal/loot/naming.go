package loot

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/velarium/scriptorium/internal/domain"
)

var titleCaser = cases.Title(language.English)

// nameConcepts is the Concept word pool for procedural names.
var nameConcepts = []string{
	"Dawn",
	"Stillness",
	"Embers",
	"the Deep Word",
	"Quiet Rivers",
	"First Light",
	"the Turning Page",
	"Winter Vigil",
	"the Long Road",
	"Hidden Springs",
	"the Ninth Hour",
	"Falling Stars",
	"the Inner Gate",
	"Old Gardens",
	"the Unbroken Thread",
	"Morning Bells",
	"the Silent Choir",
	"Distant Shores",
	"the Last Lamp",
	"Gathered Rain",
}

// nameDescriptors is the optional trailing Descriptor pool.
var nameDescriptors = []string{
	"Unfading",
	"Everbright",
	"Twicefold",
	"of the Keeper",
	"Unspoken",
	"Gleaming",
	"Halfremembered",
	"of Slow Hours",
	"Windworn",
	"Threadbare",
	"of Second Sight",
	"Latewoken",
}

// descriptionTemplates is the flavor-text pool; one is chosen uniformly.
var descriptionTemplates = []string{
	"A %s that hums faintly when a passage is read aloud.",
	"This %s was carried through a hundred quiet mornings.",
	"A %s said to remember every line it has witnessed.",
	"Ink stains mark this %s, each one a finished chapter.",
	"A %s warmed by years of candlelit reading.",
	"Whoever holds this %s finds the right page a little faster.",
	"A %s left behind by a reader who never skipped a word.",
	"This %s grows heavier with every unread book nearby.",
}

// GenerateName builds a procedural boon name of the form
// "{ItemType} of {Concept}" with a ~50% chance of a trailing descriptor.
func (r *Roller) GenerateName(itemType domain.ItemType) string {
	concept := nameConcepts[r.randInt(0, len(nameConcepts)-1)]
	name := fmt.Sprintf("%s of %s", titleCaser.String(string(itemType)), concept)
	if r.randFloat() < DescriptorChance {
		descriptor := nameDescriptors[r.randInt(0, len(nameDescriptors)-1)]
		name = fmt.Sprintf("%s %s", name, descriptor)
	}
	return name
}

// GenerateDescription picks one flavor template and fills in the item type.
func (r *Roller) GenerateDescription(itemType domain.ItemType) string {
	template := descriptionTemplates[r.randInt(0, len(descriptionTemplates)-1)]
	return fmt.Sprintf(template, string(itemType))
}
