package engine

import "github.com/lixenwraith/spin-wheel/constants"

// GameMode is the active input mode
type GameMode int32

const (
	ModeNormal GameMode = iota
	ModeInsert
	ModeRename
	ModeWinner
)

func (m GameMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeRename:
		return "rename"
	case ModeWinner:
		return "winner"
	default:
		return "unknown"
	}
}

// Indicator returns the fixed-width status bar label
func (m GameMode) Indicator() string {
	switch m {
	case ModeInsert:
		return constants.ModeTextInsert
	case ModeRename:
		return constants.ModeTextRename
	case ModeWinner:
		return constants.ModeTextWinner
	default:
		return constants.ModeTextNormal
	}
}
