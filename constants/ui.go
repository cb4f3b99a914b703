package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame interval (~60 FPS), one spin tick per frame
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// Wheel Geometry (terminal cells)
const (
	// CellWidthPx is the virtual pixel width of one terminal cell
	CellWidthPx = 8.0

	// CellHeightPx is the virtual pixel height of one terminal cell
	CellHeightPx = 16.0

	// WheelMargin is the empty border kept around the wheel, in cells
	WheelMargin = 2

	// PanelMinWidth is the narrowest choice panel before the wheel takes the full screen
	PanelMinWidth = 30
)

// UI Text
const (
	// ModeIndicatorWidth is the consistent width for all mode indicators
	ModeIndicatorWidth = 10

	// Mode indicator text (all padded to ModeIndicatorWidth)
	ModeTextNormal = " NORMAL   "
	ModeTextInsert = " INSERT   "
	ModeTextRename = " RENAME   "
	ModeTextWinner = " WINNER   "
	ModeTextSpin   = " SPINNING "

	// EmptyWheelText is shown in place of the wheel when there are no choices
	EmptyWheelText = "Add options to spin the wheel !"

	// AddHintText is the input placeholder while choices can be added
	AddHintText = "Add a choice"

	// FullHintText is the input placeholder once MaxChoices is reached
	FullHintText = "Max amount of choices reached : %d"

	// PointerChar marks the winning position east of the wheel
	PointerChar = '◀'

	// WheelChar fills wheel cells
	WheelChar = ' '

	// StatusMessageTimeout is how long status messages are displayed
	StatusMessageTimeout = 2 * time.Second
)
