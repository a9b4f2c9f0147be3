package dialog

import (
	"reflect"
	"testing"
)

func TestMarkupSource_FoldsEffects(t *testing.T) {
	got := Collect(MarkupEvaluator{}.Words("Hello {wvy}world{/wvy}{br}Bye"))
	want := []Word{
		TextWord("Hello", None),
		TextWord("world", Wavy),
		LineBreakWord(),
		TextWord("Bye", None),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("words = %+v, want %+v", got, want)
	}
}

func TestMarkupSource_DropsUnknownTags(t *testing.T) {
	got := Collect(MarkupEvaluator{}.Words("{xyz}Text"))
	want := []Word{TextWord("Text", None)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("words = %+v, want %+v", got, want)
	}
}

func TestMarkupSource_EffectRunsToEndOfInput(t *testing.T) {
	got := Collect(MarkupEvaluator{}.Words("{shk}a b"))
	for _, w := range got {
		if w.Effect != Shaky {
			t.Errorf("word %q effect = %v, want shk", w.Text, w.Effect)
		}
	}
}

func TestMarkupSource_ExpanderSeesCurrentEffect(t *testing.T) {
	var tags []string
	expand := func(tag string, effect TextEffect) []Word {
		tags = append(tags, tag)
		return []Word{TextWord("5", effect), SpriteWord("cat")}
	}
	got := Collect(NewMarkupSource("{rbw}a {say x} b{/rbw}", expand))
	want := []Word{
		TextWord("a", Rainbow),
		TextWord("5", Rainbow),
		SpriteWord("cat"),
		TextWord("b", Rainbow),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("words = %+v, want %+v", got, want)
	}
	if len(tags) != 1 || tags[0] != "say x" {
		t.Errorf("expanded tags = %v, want [say x]", tags)
	}
}

func TestSliceSource(t *testing.T) {
	src := NewSliceSource(TextWord("a", None), PageBreakWord())
	if got := Collect(src); len(got) != 2 {
		t.Fatalf("len(Collect) = %d, want 2", len(got))
	}
	if _, ok := src.NextWord(); ok {
		t.Error("NextWord() after drain ok = true, want false")
	}
}

func TestTextEffect_Classification(t *testing.T) {
	tests := []struct {
		effect TextEffect
		stable bool
		moves  bool
		name   string
	}{
		{None, true, false, "none"},
		{Color(2), true, false, "clr2"},
		{Wavy, false, true, "wvy"},
		{Shaky, false, true, "shk"},
		{Rainbow, false, false, "rbw"},
	}
	for _, tt := range tests {
		if got := tt.effect.Stable(); got != tt.stable {
			t.Errorf("%v.Stable() = %v, want %v", tt.effect, got, tt.stable)
		}
		if got := tt.effect.Moves(); got != tt.moves {
			t.Errorf("%v.Moves() = %v, want %v", tt.effect, got, tt.moves)
		}
		if got := tt.effect.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}
