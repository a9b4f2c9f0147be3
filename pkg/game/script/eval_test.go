package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"bitsycart/pkg/engine/dialog"
)

func words(t *testing.T, e *Evaluator, markup string) []dialog.Word {
	t.Helper()
	return dialog.Collect(e.Words(markup))
}

func texts(ws []dialog.Word) []string {
	var out []string
	for _, w := range ws {
		out = append(out, w.Text)
	}
	return out
}

func TestEvaluator_Say(t *testing.T) {
	st := NewState()
	st.SetVar("a", int64(42))
	st.SetVar("mood", "very sleepy")
	e := NewEvaluator(st, nil)

	tests := []struct {
		markup string
		want   string
	}{
		{"a is {say a}", "a is 42"},
		{"{print a / 4}", "10.5"},
		{"cat is {say mood}", "cat is very sleepy"},
		{"{say a > 40}", "true"},
		{"{say undefined}", ""},
		{`{say "x" .. a}`, "x42"},
	}
	for _, tt := range tests {
		got := strings.Join(texts(words(t, e, tt.markup)), " ")
		if got != tt.want {
			t.Errorf("Words(%q) = %q, want %q", tt.markup, got, tt.want)
		}
	}
}

func TestEvaluator_SayKeepsEffect(t *testing.T) {
	st := NewState()
	st.SetVar("name", "Tea Cat")
	ws := words(t, NewEvaluator(st, nil), "{wvy}{say name}{/wvy} ok")
	if len(ws) != 3 {
		t.Fatalf("got %d words, want 3", len(ws))
	}
	for i := 0; i < 2; i++ {
		if ws[i].Effect != dialog.Wavy {
			t.Errorf("word %d effect = %v, want wvy", i, ws[i].Effect)
		}
	}
	if ws[2].Effect != dialog.None {
		t.Errorf("word after close effect = %v, want none", ws[2].Effect)
	}
}

func TestEvaluator_Assign(t *testing.T) {
	st := NewState()
	st.SetVar("n", 1)
	e := NewEvaluator(st, nil)

	got := texts(words(t, e, "{n = n + 1}{say n}"))
	if len(got) != 1 || got[0] != "2" {
		t.Errorf("words = %v, want [2]", got)
	}
	if st.Vars["n"] != 2.0 {
		t.Errorf("Vars[n] = %#v, want 2.0", st.Vars["n"])
	}

	// Persisted across dialogues.
	got = texts(words(t, e, "{say n * 10}"))
	if len(got) != 1 || got[0] != "20" {
		t.Errorf("second dialogue words = %v, want [20]", got)
	}
}

func TestEvaluator_ComparisonIsNotAssignment(t *testing.T) {
	st := NewState()
	st.SetVar("n", 3)
	e := NewEvaluator(st, nil)
	if ws := words(t, e, "{n == 4}"); len(ws) != 0 {
		t.Errorf("words = %v, want none", texts(ws))
	}
	if st.Vars["n"] != 3.0 {
		t.Errorf("Vars[n] = %#v, want unchanged 3.0", st.Vars["n"])
	}
}

func TestEvaluator_Icons(t *testing.T) {
	e := NewEvaluator(NewState(), nil)
	ws := words(t, e, `{drws "cat"} {printTile a} {drwi 'tea'}`)
	want := []struct {
		kind dialog.WordKind
		id   string
	}{
		{dialog.WordSprite, "cat"},
		{dialog.WordTile, "a"},
		{dialog.WordItem, "tea"},
	}
	if len(ws) != len(want) {
		t.Fatalf("got %d words, want %d", len(ws), len(want))
	}
	for i, w := range want {
		if ws[i].Kind != w.kind || ws[i].Text != w.id {
			t.Errorf("word %d = {%d %q}, want {%d %q}", i, ws[i].Kind, ws[i].Text, w.kind, w.id)
		}
	}
}

func TestEvaluator_InventoryAndVisited(t *testing.T) {
	st := NewState()
	st.Put("tea")
	st.Put("tea")
	st.Visit("garden")
	e := NewEvaluator(st, nil)

	got := strings.Join(texts(words(t, e, `{say item("tea")} {say item("cake")} {say visited("garden")} {say visited("attic")}`)), " ")
	if got != "2 0 true false" {
		t.Errorf("words = %q, want %q", got, "2 0 true false")
	}
}

func TestEvaluator_End(t *testing.T) {
	st := NewState()
	ws := words(t, NewEvaluator(st, nil), "Goodbye.{end}")
	if !st.End {
		t.Error("End = false after {end}")
	}
	if len(ws) != 1 {
		t.Errorf("words = %v, want [Goodbye.]", texts(ws))
	}
}

func TestEvaluator_Sandbox(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	e := NewEvaluator(NewState(), logger)

	for _, markup := range []string{
		`{say dofile("/etc/passwd")}`,
		`{say os}`,
		`{say io}`,
		`{say math.randomseed}`,
	} {
		if ws := words(t, e, markup); len(ws) != 0 {
			t.Errorf("Words(%q) = %v, want nothing", markup, texts(ws))
		}
	}
	if !strings.Contains(buf.String(), "script tag failed") {
		t.Errorf("log = %q, want a script failure", buf.String())
	}
}

func TestEvaluator_RunawayScriptStops(t *testing.T) {
	e := NewEvaluator(NewState(), nil)
	ws := words(t, e, "{say (function() while true do end end)()} after")
	if got := texts(ws); len(got) != 1 || got[0] != "after" {
		t.Errorf("words = %v, want [after]", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"hi", "hi"},
		{true, "true"},
		{3.0, "3"},
		{-2.5, "-2.5"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%#v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
