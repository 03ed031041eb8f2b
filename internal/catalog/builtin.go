package catalog

// Default returns the built-in catalog. Each call returns fresh slices, so
// callers cannot alter another caller's tables.
func Default() *Catalog {
	return &Catalog{
		Subjects: []Subject{
			{ID: "fox", Name: "Arctic Fox", Description: "Quick, curious, and clever.", BasePrice: 24, Accent: "#ff9f43", Glyph: "🦊"},
			{ID: "bear", Name: "Forest Bear", Description: "Steady, calm, and strong.", BasePrice: 28, Accent: "#795548", Glyph: "🐻"},
			{ID: "cat", Name: "Midnight Cat", Description: "Agile, playful, and bright-eyed.", BasePrice: 22, Accent: "#673ab7", Glyph: "🐱"},
			{ID: "panda", Name: "Zen Panda", Description: "Calm focus with playful spirit.", BasePrice: 26, Accent: "#b0bec5", Glyph: "🐼"},
			{ID: "wolf", Name: "Lunar Wolf", Description: "Loyal, swift, and determined.", BasePrice: 27, Accent: "#90caf9", Glyph: "🐺"},
			{ID: "dragon", Name: "Sky Dragon", Description: "Majestic, bold, and legendary.", BasePrice: 32, Accent: "#ef5350", Glyph: "🐉"},
		},
		Colors: []ColorOption{
			{ID: "amber", Name: "Amber", Hex: "#f6b352"},
			{ID: "mint", Name: "Mint", Hex: "#63d297"},
			{ID: "ocean", Name: "Ocean", Hex: "#4aa3df"},
			{ID: "violet", Name: "Violet", Hex: "#a56bff"},
		},
		Eyes: []PricedOption{
			{ID: "bright", Name: "Bright", PriceDelta: 0},
			{ID: "sleepy", Name: "Sleepy", PriceDelta: 1},
			{ID: "mischief", Name: "Mischief", PriceDelta: 2},
		},
		Body: []PricedOption{
			{ID: "compact", Name: "Compact", PriceDelta: 0},
			{ID: "athletic", Name: "Athletic", PriceDelta: 2},
			{ID: "sleek", Name: "Sleek", PriceDelta: 1},
		},
		Tail: []PricedOption{
			{ID: "fluffy", Name: "Fluffy", PriceDelta: 1},
			{ID: "short", Name: "Short", PriceDelta: 0},
			{ID: "long", Name: "Long", PriceDelta: 2},
		},
		Accessory: []PricedOption{
			{ID: "none", Name: "None", PriceDelta: 0},
			{ID: "scarf", Name: "Scarf", PriceDelta: 3},
			{ID: "visor", Name: "Visor", PriceDelta: 4},
			{ID: "backpack", Name: "Backpack", PriceDelta: 5},
		},
	}
}
