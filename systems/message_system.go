package systems

import (
	"fmt"
	"strings"

	"dungeon-crawl/ecs"
)

// MessageLog stores game messages
type MessageLog struct {
	Messages []string
	// Kinds[i] is the kind of Messages[i]
	Kinds       []MessageKind
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []string{},
		Kinds:       []MessageKind{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a plain message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddKind(MessageNormal, message)
}

// AddKind adds a message of the given kind
func (ml *MessageLog) AddKind(kind MessageKind, message string) {
	ml.Messages = append(ml.Messages, message)
	ml.Kinds = append(ml.Kinds, kind)

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
		ml.Kinds = ml.Kinds[len(ml.Kinds)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// RecentColored is RecentMessages with each line's kind
func (ml *MessageLog) RecentColored(n int) []ColoredMessage {
	n = min(n, len(ml.Messages))
	result := make([]ColoredMessage, n)
	for i := range result {
		j := len(ml.Messages) - 1 - i
		result[i] = ColoredMessage{Text: ml.Messages[j], Kind: ml.Kinds[j]}
	}
	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []string{}
	ml.Kinds = []MessageKind{}
}

// Subscribe turns world events into log lines
func (ml *MessageLog) Subscribe(em *ecs.EventManager) {
	em.Subscribe(EventCombat, func(e ecs.Event) {
		ev := e.(CombatEvent)
		ml.AddKind(MessageCombat, fmt.Sprintf("%s hits %s for %d damage.", ev.AttackerName, ev.DefenderName, ev.Damage))
	})
	em.Subscribe(EventDeath, func(e ecs.Event) {
		ml.AddKind(MessageAlert, fmt.Sprintf("%s was defeated!", e.(DeathEvent).Name))
	})
	em.Subscribe(EventItemPickup, func(e ecs.Event) {
		ev := e.(ItemPickupEvent)
		msg := fmt.Sprintf("You pick up the %s.", ev.ItemName)
		if len(ev.Replaced) > 0 {
			msg += fmt.Sprintf(" You drop the %s.", strings.Join(ev.Replaced, ", "))
		}
		ml.AddKind(MessageItem, msg)
	})
	em.Subscribe(EventItemUsed, func(e ecs.Event) {
		ev := e.(ItemUsedEvent)
		switch {
		case ev.Healed > 0:
			ml.AddKind(MessageItem, fmt.Sprintf("You use the %s and recover %d health.", ev.ItemName, ev.Healed))
		case ev.Revealed:
			ml.AddKind(MessageItem, fmt.Sprintf("You read the %s. The level is revealed.", ev.ItemName))
		default:
			ml.AddKind(MessageItem, fmt.Sprintf("You use the %s.", ev.ItemName))
		}
	})
	em.Subscribe(EventLevel, func(e ecs.Event) {
		ev := e.(LevelEvent)
		if ev.Final {
			ml.AddKind(MessageEnvironment, fmt.Sprintf("You descend to level %d. The Amulet of Yala is near.", ev.Level+1))
			return
		}
		ml.AddKind(MessageEnvironment, fmt.Sprintf("You descend to level %d.", ev.Level+1))
	})
}
