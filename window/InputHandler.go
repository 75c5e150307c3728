package window

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Action int

const (
	PROGRAM_QUIT Action = iota
)

type InputHandler struct {
	actionToKeyMap map[Action]glfw.Key
	keysPressed    [glfw.KeyLast + 1]bool
	logger         *slog.Logger
}

func NewInputHandler(logger *slog.Logger) *InputHandler {
	actionToKeyMap := map[Action]glfw.Key{
		PROGRAM_QUIT: glfw.KeyEscape,
	}

	return &InputHandler{
		actionToKeyMap: actionToKeyMap,
		logger:         logger,
	}
}

func (handler *InputHandler) IsActive(a Action) bool {
	key, ok := handler.actionToKeyMap[a]
	if !ok {
		return false
	}
	return handler.keysPressed[key]
}

func (handler *InputHandler) keyCallback(window *glfw.Window, key glfw.Key, scancode int,
	action glfw.Action, mods glfw.ModifierKey) {

	// Unknown keys are -1
	if key < 0 || key > glfw.KeyLast {
		return
	}

	switch action {
	case glfw.Press:
		handler.keysPressed[key] = true
		handler.logKey("KEY DOWN", key, scancode)
	case glfw.Release:
		handler.keysPressed[key] = false
		handler.logKey("KEY UP  ", key, scancode)
	}
}

func (handler *InputHandler) logKey(prefix string, key glfw.Key, scancode int) {
	name := glfw.GetKeyName(key, scancode)
	if name == "" {
		name = fmt.Sprintf("key %d", key)
	}
	handler.logger.Debug(fmt.Sprintf("%s - Scancode: 0x%02X, Name: %s", prefix, scancode, name))
}
