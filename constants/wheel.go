package constants

// Choice Registry Limits
const (
	// MaxChoices is the hard cap on the number of choices on the wheel
	MaxChoices = 50

	// MaxLabelLength is the maximum label length in runes
	MaxLabelLength = 100

	// MaxWeight is the upper bound of a choice weight, lower bound is 1
	MaxWeight = 10

	// DefaultWeight is the weight given to newly added choices
	DefaultWeight = 1
)

// Spin Physics (radians per tick)
const (
	// SpinVelocityMin is the lower bound of the random launch velocity
	SpinVelocityMin = 0.30

	// SpinVelocityMax is the exclusive upper bound of the random launch velocity
	SpinVelocityMax = 0.60

	// Damping is the per-tick velocity multiplier while spinning
	Damping = 0.985

	// MinSpeed stops the wheel once velocity magnitude falls below it
	MinSpeed = 0.002
)

// Layout Engine
const (
	// ArcStepBudget is the global number of arc samples shared by all wedges
	ArcStepBudget = 200

	// MaxFontSize is the starting size of the label fitting loop
	MaxFontSize = 30

	// MinFontSize is the floor of the label fitting loop
	MinFontSize = 10

	// LabelTruncateLength is the rune count above which wheel labels are cut
	LabelTruncateLength = 20

	// LabelEllipsis is appended to truncated wheel labels
	LabelEllipsis = ".."

	// TextRadiusFactor places labels and bounds their width, as a fraction of the radius
	TextRadiusFactor = 0.6

	// ChordFitFactor bounds label height as a fraction of the wedge chord
	ChordFitFactor = 0.9
)

// Text Measurement (virtual pixels)
const (
	// GlyphAdvance is the width of one text cell as a fraction of the font size
	GlyphAdvance = 0.55

	// LineHeight is the text box height as a fraction of the font size
	LineHeight = 1.0
)
