package input

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestReadKeyCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\x1b[A", "arrow_up"},
		{"\x1b[B", "arrow_down"},
		{"\x1bOC", "arrow_right"},
		{"\x1b[D", "arrow_left"},
		{"\x1b[Z", ""},
		{"\r", "enter"},
		{" ", "space"},
		{"q", "q"},
		{"\x03", "escape"},
		{"\x01", ""},
	}
	for _, tt := range tests {
		got, err := ReadKeyCode(strings.NewReader(tt.in))
		if err != nil {
			t.Errorf("ReadKeyCode(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ReadKeyCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadKeyCode_EOF(t *testing.T) {
	if _, err := ReadKeyCode(bytes.NewReader(nil)); err == nil {
		t.Error("ReadKeyCode(empty) error = nil, want EOF")
	}
}

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"enter", ActionAdvance},
		{"gamepad_a", ActionAdvance},
		{"escape", ActionQuit},
		{"nonsense", ActionNone},
	}
	for _, tt := range tests {
		raw := RawInput{Device: DeviceKeyboard, Code: tt.code}
		if got := MapToIntent(NewDebouncedInput(raw)).Action; got != tt.want {
			t.Errorf("MapToIntent(%q) = %s, want %s", tt.code, ActionName(got), ActionName(tt.want))
		}
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionAdvance]
	want := []string{"enter", "gamepad_a", "space", "x", "z"}
	if !reflect.DeepEqual(codes, want) {
		t.Errorf("advance bindings = %v, want %v", codes, want)
	}
}

func TestRepeater_EdgesAndRepeat(t *testing.T) {
	var r Repeater
	held := Pad{ActionMoveEast: true}

	var edges []int
	for frame := 1; frame <= 24; frame++ {
		if pressed := r.Update(held); len(pressed) > 0 {
			edges = append(edges, frame)
		}
	}
	// First press, then every 4th frame once held longer than 14 frames.
	want := []int{1, 16, 20, 24}
	if !reflect.DeepEqual(edges, want) {
		t.Errorf("edge frames = %v, want %v", edges, want)
	}

	if pressed := r.Update(Pad{}); len(pressed) != 0 {
		t.Errorf("release produced %v", pressed)
	}
	if pressed := r.Update(held); len(pressed) != 1 || pressed[0] != ActionMoveEast {
		t.Errorf("re-press = %v, want [MoveEast]", pressed)
	}
}

func TestRepeater_SimultaneousOrder(t *testing.T) {
	var r Repeater
	got := r.Update(Pad{ActionMoveNorth: true, ActionAdvance: true})
	want := []Action{ActionAdvance, ActionMoveNorth}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pressed = %v, want %v", got, want)
	}
}
