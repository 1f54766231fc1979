package quote

// builtinPacks is the embedded fallback corpus: enough to read against
// before any text is uploaded. Replaceable at startup via LoadPacks.
var builtinPacks = []Pack{
	{
		Name:   "Stoic Mornings",
		Source: "Stoic Mornings",
		Quotes: []string{
			"You have power over your mind, not outside events. Realize this, and you will find strength.",
			"Waste no more time arguing about what a good person should be. Be one.",
			"The happiness of your life depends upon the quality of your thoughts.",
			"Confine yourself to the present.",
			"Very little is needed to make a happy life; it is all within yourself, in your way of thinking.",
			"When you arise in the morning think of what a privilege it is to be alive, to think, to enjoy, to love.",
			"If it is not right do not do it; if it is not true do not say it.",
			"The best revenge is to be unlike him who performed the injury.",
		},
	},
	{
		Name:   "On Reading",
		Source: "On Reading",
		Quotes: []string{
			"A reader lives a thousand lives before he dies. The man who never reads lives only one.",
			"A room without books is like a body without a soul.",
			"Books are a uniquely portable magic.",
			"Until I feared I would lose it, I never loved to read. One does not love breathing.",
			"Sleep is good, he said, and books are better.",
			"There is no friend as loyal as a book.",
			"Reading is to the mind what exercise is to the body.",
			"Once you learn to read, you will be forever free.",
		},
	},
	{
		Name:   "Small Wonders",
		Source: "Small Wonders",
		Quotes: []string{
			"Not all those who wander are lost.",
			"It is the small everyday deeds of ordinary folk that keep the darkness at bay.",
			"The wound is the place where the light enters you.",
			"We are all in the gutter, but some of us are looking at the stars.",
			"What we know is a drop, what we do not know is an ocean.",
			"Forever is composed of nows.",
			"The obstacle is the way.",
			"Nothing is so strong as gentleness, nothing so gentle as real strength.",
		},
	},
}
