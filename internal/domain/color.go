package domain

// AuraColor is one of the eight fixed aura colors. Any value claiming to be
// an aura color must be checked against this set before it is trusted.
type AuraColor string

const (
	ColorRed    AuraColor = "RED"
	ColorOrange AuraColor = "ORANGE"
	ColorYellow AuraColor = "YELLOW"
	ColorGreen  AuraColor = "GREEN"
	ColorBlue   AuraColor = "BLUE"
	ColorPurple AuraColor = "PURPLE"
	ColorPink   AuraColor = "PINK"
	ColorWhite  AuraColor = "WHITE"
)

// FallbackColor is substituted whenever the model returns a color outside the
// domain, or the model call fails entirely.
const FallbackColor = ColorPurple

// ColorMeaning holds the static display metadata for one aura color
type ColorMeaning struct {
	Color       AuraColor `json:"color"`
	Name        string    `json:"name"`
	Meaning     string    `json:"meaning"`
	StyleTokens []string  `json:"style_tokens"`
}

// AuraColors lists all eight colors in display order
var AuraColors = []ColorMeaning{
	{
		Color:       ColorRed,
		Name:        "Red",
		Meaning:     "Passion, Energy, Drive, Willpower, Leadership, Ambition.",
		StyleTokens: []string{"bg-aura-red", "text-white", "border-aura-red"},
	},
	{
		Color:       ColorOrange,
		Name:        "Orange",
		Meaning:     "Creativity, Joy, Enthusiasm, Courage, Social connection, Adventure.",
		StyleTokens: []string{"bg-aura-orange", "text-white", "border-aura-orange"},
	},
	{
		Color:       ColorYellow,
		Name:        "Yellow",
		Meaning:     "Optimism, Intellect, Happiness, Playfulness, Confidence, Logic.",
		StyleTokens: []string{"bg-aura-yellow", "text-gray-900", "border-aura-yellow"},
	},
	{
		Color:       ColorGreen,
		Name:        "Green",
		Meaning:     "Growth, Healing, Balance, Nature, Compassion, Harmony, Renewal.",
		StyleTokens: []string{"bg-aura-green", "text-gray-900", "border-aura-green"},
	},
	{
		Color:       ColorBlue,
		Name:        "Blue",
		Meaning:     "Peace, Calm, Communication, Intuition, Truth, Expression, Loyalty.",
		StyleTokens: []string{"bg-aura-blue", "text-white", "border-aura-blue"},
	},
	{
		Color:       ColorPurple,
		Name:        "Purple",
		Meaning:     "Spirituality, Wisdom, Intuition, Mysticism, Creativity, Transformation.",
		StyleTokens: []string{"bg-aura-purple", "text-white", "border-aura-purple"},
	},
	{
		Color:       ColorPink,
		Name:        "Pink",
		Meaning:     "Love, Tenderness, Affection, Compassion, Empathy, Gentleness.",
		StyleTokens: []string{"bg-aura-pink", "text-gray-900", "border-aura-pink"},
	},
	{
		Color:       ColorWhite,
		Name:        "White",
		Meaning:     "Purity, Protection, Clarity, New beginnings, Spiritual awakening, Wholeness.",
		StyleTokens: []string{"bg-aura-white", "text-gray-900", "border-gray-400"},
	},
}

var colorIndex = func() map[AuraColor]ColorMeaning {
	m := make(map[AuraColor]ColorMeaning, len(AuraColors))
	for _, c := range AuraColors {
		m[c.Color] = c
	}
	return m
}()

// LookupColor returns the metadata for a color code, or false if the code is
// not part of the domain
func LookupColor(color AuraColor) (ColorMeaning, bool) {
	c, ok := colorIndex[color]
	return c, ok
}

// IsValidColor reports whether color belongs to the eight-color domain
func IsValidColor(color AuraColor) bool {
	_, ok := colorIndex[color]
	return ok
}

// NormalizeColor returns color unchanged when it belongs to the domain and
// FallbackColor otherwise. This is the only coercion path in the system.
func NormalizeColor(color AuraColor) AuraColor {
	if IsValidColor(color) {
		return color
	}
	return FallbackColor
}
