package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mines/internal/core"
)

// gameKeys binds key names, as reported by tea.KeyMsg.String, to actions.
var gameKeys = map[string]core.Action{
	"up": core.ActionUp, "k": core.ActionUp, "w": core.ActionUp,
	"down": core.ActionDown, "j": core.ActionDown, "s": core.ActionDown,
	"left": core.ActionLeft, "h": core.ActionLeft, "a": core.ActionLeft,
	"right": core.ActionRight, "l": core.ActionRight, "d": core.ActionRight,
	" ": core.ActionConfirm, "enter": core.ActionConfirm,
	"f": core.ActionFlag, "m": core.ActionFlag,
	"c":   core.ActionChord,
	"b":   core.ActionBack,
	"esc": core.ActionBack,
	"p":   core.ActionPause,
	"r":   core.ActionRestart,
}

var menuKeys = map[string]MenuAction{
	"up": MenuActionUp, "k": MenuActionUp, "w": MenuActionUp,
	"down": MenuActionDown, "j": MenuActionDown, "s": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"b": MenuActionBack, "esc": MenuActionBack,
	"tab": MenuActionScoreboard,
}

func isQuitKey(key string) bool {
	return key == "q" || key == "ctrl+c"
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the action bound to msg, or ActionNone. isQuit is set for
// the quit keys, which win over any other binding.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	if isQuitKey(key) {
		return core.ActionQuit, true
	}
	if a, ok := gameKeys[key]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds the key's action to frame and reports whether the key
// asked to quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction is a menu-level command.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()
	if isQuitKey(key) {
		return MenuActionQuit
	}
	return menuKeys[key]
}
