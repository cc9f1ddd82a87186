package repl

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a keyboard action that can be triggered by key bindings.
type Action int

const (
	// ActionNone represents no action (used when a key doesn't match any binding).
	ActionNone Action = iota

	ActionRecallPrev  // Show the previous submitted line (Up, Ctrl+P)
	ActionRecallNext  // Show the next submitted line or clear the input (Down, Ctrl+N)
	ActionComplete    // Complete the last token (Tab)
	ActionSubmit      // Execute the current input (Enter)
	ActionInterrupt   // Quit (Ctrl+C)
	ActionEOF         // Quit when the input is empty (Ctrl+D)
	ActionClearScreen // Run clear (Ctrl+L)
)

// String returns the string representation of an Action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRecallPrev:
		return "RecallPrev"
	case ActionRecallNext:
		return "RecallNext"
	case ActionComplete:
		return "Complete"
	case ActionSubmit:
		return "Submit"
	case ActionInterrupt:
		return "Interrupt"
	case ActionEOF:
		return "EOF"
	case ActionClearScreen:
		return "ClearScreen"
	default:
		return "Unknown"
	}
}

// KeyBinding maps key sequences to an action.
type KeyBinding struct {
	// Keys holds tea.KeyMsg string representations.
	Keys   []string
	Action Action
}

// KeyMap holds the key bindings of the prompt. Keys it does not bind are
// handled by the text input itself.
type KeyMap struct {
	lookup map[string]Action
}

// NewKeyMap creates a new KeyMap with the given bindings. Later bindings win
// when two bind the same key.
func NewKeyMap(bindings []KeyBinding) *KeyMap {
	km := &KeyMap{lookup: make(map[string]Action)}
	for _, b := range bindings {
		for _, key := range b.Keys {
			km.lookup[key] = b.Action
		}
	}
	return km
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() *KeyMap {
	return NewKeyMap([]KeyBinding{
		{Keys: []string{"up", "ctrl+p"}, Action: ActionRecallPrev},
		{Keys: []string{"down", "ctrl+n"}, Action: ActionRecallNext},
		{Keys: []string{"tab"}, Action: ActionComplete},
		{Keys: []string{"enter"}, Action: ActionSubmit},
		{Keys: []string{"ctrl+c"}, Action: ActionInterrupt},
		{Keys: []string{"ctrl+d"}, Action: ActionEOF},
		{Keys: []string{"ctrl+l"}, Action: ActionClearScreen},
	})
}

// Lookup finds the action for the given key message.
// Returns ActionNone if no binding matches.
func (km *KeyMap) Lookup(msg tea.KeyMsg) Action {
	if action, ok := km.lookup[msg.String()]; ok {
		return action
	}
	return ActionNone
}
