package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "bitsycart/pkg/engine/input"
)

// keyCodes maps keyboard keys to binding codes.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyW:          "w",
	ebiten.KeyA:          "a",
	ebiten.KeyS:          "s",
	ebiten.KeyD:          "d",
	ebiten.KeyH:          "h",
	ebiten.KeyJ:          "j",
	ebiten.KeyK:          "k",
	ebiten.KeyL:          "l",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyKPEnter:    "enter",
	ebiten.KeySpace:      "space",
	ebiten.KeyZ:          "z",
	ebiten.KeyX:          "x",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

// buttonCodes maps standard gamepad buttons to binding codes.
var buttonCodes = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:     "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:  "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:    "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:   "gamepad_dpad_right",
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
}

func actionFor(device engineinput.Device, code string) engineinput.Action {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device: device,
		Code:   code,
	})).Action
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.logger.Info("Main window opened", "width", w, "height", h)
	}

	pad := e.readPad()
	if e.quitPressed() {
		return ebiten.Termination
	}
	e.game.Update(pad)
	return nil
}

// readPad collects every held action from the keyboard and gamepads.
func (e *EbitenRenderer) readPad() engineinput.Pad {
	pad := engineinput.Pad{}
	for key, code := range keyCodes {
		if ebiten.IsKeyPressed(key) {
			pad[actionFor(engineinput.DeviceKeyboard, code)] = true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for button, code := range buttonCodes {
			if ebiten.IsStandardGamepadButtonPressed(id, button) {
				pad[actionFor(engineinput.DeviceGamepad, code)] = true
			}
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if act := stickAction(x, y); act != engineinput.ActionNone {
			pad[act] = true
		}
	}
	delete(pad, engineinput.ActionNone)
	delete(pad, engineinput.ActionQuit)
	return pad
}

// stickAction picks the dominant axis of an analog stick. Y grows downwards.
func stickAction(x, y float64) engineinput.Action {
	ax, ay := abs(x), abs(y)
	switch {
	case y < -stickThreshold && ay > ax:
		return engineinput.ActionMoveNorth
	case y > stickThreshold && ay > ax:
		return engineinput.ActionMoveSouth
	case x > stickThreshold && ax > ay:
		return engineinput.ActionMoveEast
	case x < -stickThreshold && ax > ay:
		return engineinput.ActionMoveWest
	}
	return engineinput.ActionNone
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// quitPressed reports a fresh press of any quit binding.
func (e *EbitenRenderer) quitPressed() bool {
	for key, code := range keyCodes {
		if actionFor(engineinput.DeviceKeyboard, code) == engineinput.ActionQuit && inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
