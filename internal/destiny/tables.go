package destiny

import "github.com/velarium/scriptorium/internal/domain"

// ClassFateweaver is the special dual class for readers whose two highest
// stats are wonder and clarity, in either order.
const ClassFateweaver = "Fateweaver"

// classByPrimaryStat maps the primary stat to its class. Fateweaver is
// resolved before this table is consulted.
var classByPrimaryStat = map[domain.Stat]string{
	domain.StatWonder:    "Mystic",
	domain.StatClarity:   "Oracle",
	domain.StatInsight:   "Sage",
	domain.StatDevotion:  "Votary",
	domain.StatFocus:     "Ascetic",
	domain.StatFortune:   "Wayfarer",
	domain.StatEndurance: "Warden",
}

// subclassPools holds three subclass names per class per secondary stat.
// The selected index advances once every hundred levels.
var subclassPools = map[string]map[domain.Stat][]string{
	"Mystic": {
		domain.StatClarity:   {"Veilreader", "Glasswalker", "Still-Eyed Dreamer"},
		domain.StatInsight:   {"Riddlekeeper", "Deepdreamer", "Marginalia Mystic"},
		domain.StatDevotion:  {"Vigil Dreamer", "Shrine Whisperer", "Candlebound Seer"},
		domain.StatFocus:     {"Trance Holder", "Narrowgate Dreamer", "Unblinking Mystic"},
		domain.StatFortune:   {"Omen Gatherer", "Luckdreamer", "Starfall Mystic"},
		domain.StatEndurance: {"Longdreamer", "Wakeless Pilgrim", "Ironsleep Mystic"},
	},
	"Oracle": {
		domain.StatWonder:    {"Dawnspeaker", "Wildsight Oracle", "Augur of Firsts"},
		domain.StatInsight:   {"Plainspoken Oracle", "Ledgerseer", "Clearwater Augur"},
		domain.StatDevotion:  {"Temple Voice", "Sworn Augur", "Litany Oracle"},
		domain.StatFocus:     {"Needle-Eyed Seer", "Measured Voice", "Quiet Augur"},
		domain.StatFortune:   {"Coinflip Prophet", "Fortunate Voice", "Gambler's Oracle"},
		domain.StatEndurance: {"Stonespoken Seer", "Patient Augur", "Weathered Oracle"},
	},
	"Sage": {
		domain.StatWonder:    {"Stargazer Sage", "Wondersmith", "Sage of Open Doors"},
		domain.StatClarity:   {"Plainword Sage", "Lenskeeper", "Unclouded Scholar"},
		domain.StatDevotion:  {"Devout Scholar", "Cloister Sage", "Litany Keeper"},
		domain.StatFocus:     {"Singleline Scholar", "Inkbound Sage", "Closed-Room Scholar"},
		domain.StatFortune:   {"Serendip Sage", "Lucky Archivist", "Found-Page Scholar"},
		domain.StatEndurance: {"Longshelf Scholar", "Tireless Annotator", "Graniteword Sage"},
	},
	"Votary": {
		domain.StatWonder:    {"Awestruck Votary", "Pilgrim of Signs", "Openhanded Devotee"},
		domain.StatClarity:   {"Clearheart Votary", "Honest Devotee", "Plainfaith Keeper"},
		domain.StatInsight:   {"Learned Votary", "Scriptural Devotee", "Exegete"},
		domain.StatFocus:     {"Knelt Devotee", "Hourbound Votary", "Unturning Pilgrim"},
		domain.StatFortune:   {"Blessed Wanderer", "Providence Keeper", "Graced Votary"},
		domain.StatEndurance: {"Enduring Pilgrim", "Calloused Devotee", "Longroad Votary"},
	},
	"Ascetic": {
		domain.StatWonder:    {"Mountain Dreamer", "Sparewonder Monk", "Hermit of Dawns"},
		domain.StatClarity:   {"Emptied Mind", "Clearspring Hermit", "Bareword Monk"},
		domain.StatInsight:   {"Cave Annotator", "Thinking Hermit", "Monk of One Book"},
		domain.StatDevotion:  {"Sworn Hermit", "Fasting Devotee", "Cell Keeper"},
		domain.StatFortune:   {"Fortunate Hermit", "Beggar of Omens", "Windfall Monk"},
		domain.StatEndurance: {"Iron Hermit", "Unbroken Faster", "Stonecell Monk"},
	},
	"Wayfarer": {
		domain.StatWonder:    {"Chaser of Lights", "Marveling Tramp", "Farshore Wanderer"},
		domain.StatClarity:   {"Mapless Navigator", "Truenorth Drifter", "Clearsky Rover"},
		domain.StatInsight:   {"Noting Traveler", "Road Scholar", "Wayside Chronicler"},
		domain.StatDevotion:  {"Pilgrim Gambler", "Shrineward Drifter", "Votive Rover"},
		domain.StatFocus:     {"Deliberate Drifter", "One-Road Walker", "Steady Rover"},
		domain.StatEndurance: {"Allweather Walker", "Boots-of-Iron Rover", "Endless Tramp"},
	},
	"Warden": {
		domain.StatWonder:    {"Gatewatcher of Stars", "Dreaming Sentinel", "Aurora Warden"},
		domain.StatClarity:   {"Clear-Eyed Sentinel", "Glasswall Warden", "Unfooled Keeper"},
		domain.StatInsight:   {"Archive Sentinel", "Warden of Margins", "Lorekeeper Guard"},
		domain.StatDevotion:  {"Oathbound Sentinel", "Reliquary Warden", "Faithful Gatekeeper"},
		domain.StatFocus:     {"Unblinking Guard", "Postbound Sentinel", "Narrowgate Warden"},
		domain.StatFortune:   {"Charmed Sentinel", "Lucky Gatekeeper", "Warden of Chances"},
	},
	ClassFateweaver: {
		domain.StatWonder:  {"Loom Dreamer", "Thread-of-Dawn Weaver", "Spindle Mystic"},
		domain.StatClarity: {"Pattern Reader", "Clearthread Weaver", "Loomwise Seer"},
	},
}

// defaultSubclassPool is the defensive fallback when a class/secondary pair
// somehow has no pool. Should be unreachable for well-formed input.
var defaultSubclassPool = []string{"Wanderer", "Seeker", "Keeper"}

// destinyTier maps a level threshold to the tier named at or above it.
type destinyTier struct {
	minLevel int
	name     string
}

// destinyTiers is walked highest-first; the first satisfied threshold wins.
var destinyTiers = []destinyTier{
	{1000, "Paragon"},
	{750, "Mythic"},
	{500, "Transcendent"},
	{300, "Exalted"},
	{200, "Harbinger"},
	{100, "Luminary"},
	{50, "Adept"},
	{25, "Seeker"},
	{0, "Initiate"},
}

// TierRank returns the ordinal of a tier name, Initiate=0 through
// Paragon=8. Unknown tiers rank lowest.
func TierRank(name string) int {
	for i, tier := range destinyTiers {
		if tier.name == name {
			return len(destinyTiers) - 1 - i
		}
	}
	return 0
}

// epithetPools holds ten epithets per tier, indexed deterministically by
// (level + stat sum) mod pool length.
var epithetPools = map[string][]string{
	"Initiate": {
		"the Unopened Page", "the First Candle", "the Quiet Arrival", "the Borrowed Lantern",
		"the Early Riser", "the Smallest Spark", "the New Thread", "the Soft Step",
		"the Fresh Margin", "the Unmarked Door",
	},
	"Seeker": {
		"the Turning Leaf", "the Second Lamp", "the Patient Question", "the Narrow Path",
		"the Listening Ear", "the Gathering Dusk", "the Open Satchel", "the Long Glance",
		"the Waystone Reader", "the Half-Lit Hall",
	},
	"Adept": {
		"the Steady Flame", "the Marked Margin", "the Known Road", "the Third Vigil",
		"the Practiced Hand", "the Clear Bell", "the Measured Breath", "the Keeper of Hours",
		"the Woven Thread", "the Sure Foot",
	},
	"Luminary": {
		"the Hundredth Lamp", "the Bright Ledger", "the Standing Stone", "the Far Beacon",
		"the Gilded Margin", "the Risen Voice", "the Long Memory", "the Unveiled Dawn",
		"the Patterned Sky", "the Warm Hearth",
	},
	"Harbinger": {
		"the Coming Storm", "the First Whisper", "the Bell Before Dawn", "the Opened Gate",
		"the Forward Shadow", "the Early Thunder", "the Turning Tide", "the Messenger Flame",
		"the Breaking Light", "the Herald's Road",
	},
	"Exalted": {
		"the Raised Banner", "the Crowned Page", "the High Vigil", "the Golden Thread",
		"the Towering Lamp", "the Chosen Margin", "the Ascendant Voice", "the Radiant Hour",
		"the Lifted Veil", "the Honored Hand",
	},
	"Transcendent": {
		"the Passed Threshold", "the Boundless Page", "the Sky Unwritten", "the Risen Beyond",
		"the Open Infinite", "the Last Staircase", "the Far Side of Dawn", "the Unanchored Flame",
		"the Widened Eye", "the Crossing Star",
	},
	"Mythic": {
		"the Storied Flame", "the Living Legend", "the Thousandth Telling", "the Elder Thread",
		"the Named Star", "the Deep Chronicle", "the Unforgotten", "the Fabled Lantern",
		"the Great Margin", "the Singing Stone",
	},
	"Paragon": {
		"the Final Word", "the Perfect Page", "the Unsurpassed", "the Whole Library",
		"the Endless Vigil", "the Master Thread", "the Complete Chronicle", "the Highest Lamp",
		"the Eternal Reader", "the Last Light",
	},
}

// loreTemplates holds three lore lines per class. Both placeholders are
// strings: subclass first, epithet second. The template index is
// (len(subclass) + len(epithet)) mod 3.
var loreTemplates = map[string][3]string{
	"Mystic": {
		"A %s who walks the border of sleep, they answer only to %s.",
		"Dreams gather around the %s like moths; the wise call them %s.",
		"As %s, they read what was never written, bearing the name %s.",
	},
	"Oracle": {
		"The %s speaks plainly of what has not yet happened, and is called %s.",
		"Petitioners line up for the %s, whispering of %s.",
		"As %s, their every reading lands true; history records them as %s.",
	},
	"Sage": {
		"The %s has forgotten more books than most will open, yet answers to %s.",
		"Students trail the %s through the stacks, naming them %s.",
		"As %s, they annotate the world itself, signed always as %s.",
	},
	"Votary": {
		"The %s keeps every vow made to the page, and is remembered as %s.",
		"Candles burn long where the %s reads; the faithful say %s.",
		"As %s, devotion is their method and %s their reward.",
	},
	"Ascetic": {
		"The %s owns one robe, one bowl, one book, and the name %s.",
		"Nothing distracts the %s; even silence calls them %s.",
		"As %s, they read by denying everything else, earning the title %s.",
	},
	"Wayfarer": {
		"The %s reads at crossroads and sleeps in libraries, known widely as %s.",
		"No road refuses the %s; innkeepers toast to %s.",
		"As %s, chance favors their every page, and so they became %s.",
	},
	"Warden": {
		"The %s guards the shelf no one else remembers, standing as %s.",
		"Storms break against the %s; grateful readers call them %s.",
		"As %s, they outlast every siege of doubt, honored as %s.",
	},
	ClassFateweaver: {
		"The %s threads wonder through clarity, weaving the name %s.",
		"Both dreaming and discerning, the %s is spoken of as %s.",
		"As %s, they braid what is seen with what is hoped, titled %s.",
	},
}
