package input

import (
	"fmt"

	"github.com/eiannone/keyboard"
)

// Keyboard wraps the buffered key event channel so the game loop can drain
// everything that arrived since the previous frame without blocking.
type Keyboard struct {
	events <-chan keyboard.KeyEvent
}

func Open(buffer int) (*Keyboard, error) {
	events, err := keyboard.GetKeys(buffer)
	if err != nil {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	return &Keyboard{events: events}, nil
}

func (k *Keyboard) Close() error {
	return keyboard.Close()
}

// Drain returns the buffered events in arrival order.
func (k *Keyboard) Drain() []keyboard.KeyEvent {
	events := make([]keyboard.KeyEvent, 0, len(k.events))
	for i := len(k.events); i > 0; i-- {
		events = append(events, <-k.events)
	}
	return events
}

// Next blocks for a single event, for menu navigation.
func (k *Keyboard) Next() keyboard.KeyEvent {
	return <-k.events
}
