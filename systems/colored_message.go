package systems

import (
	"image/color"
)

// MessageKind groups log lines so the HUD can color them
type MessageKind int

const (
	MessageNormal MessageKind = iota
	// MessageEnvironment is used for level changes
	MessageEnvironment
	MessageCombat
	MessageItem
	// MessageAlert is used for deaths
	MessageAlert
)

// ColoredMessage is one log line and its kind
type ColoredMessage struct {
	Text string
	Kind MessageKind
}

// Color returns the HUD color for the message
func (cm ColoredMessage) Color() color.RGBA {
	switch cm.Kind {
	case MessageEnvironment:
		return color.RGBA{218, 165, 32, 255} // Gold
	case MessageCombat:
		return color.RGBA{255, 100, 100, 255}
	case MessageItem:
		return color.RGBA{100, 149, 237, 255} // Cornflower Blue
	case MessageAlert:
		return color.RGBA{255, 255, 0, 255}
	default:
		return color.RGBA{200, 200, 200, 255}
	}
}
