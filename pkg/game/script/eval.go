package script

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"bitsycart/pkg/engine/dialog"
)

// evalTimeout bounds one dialogue evaluation.
const evalTimeout = 100 * time.Millisecond

var assignRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*=\s*([^=].*)$`)

// Evaluator expands script tags in dialogue markup against a State. It
// implements dialog.Evaluator.
type Evaluator struct {
	State *State
	// Logger receives script errors. Nil discards them.
	Logger *log.Logger
}

// NewEvaluator returns an evaluator bound to st.
func NewEvaluator(st *State, logger *log.Logger) *Evaluator {
	return &Evaluator{State: st, Logger: logger}
}

// Words evaluates markup in one pass and returns the resulting words. Tags
// are evaluated in reading order, so an assignment is visible to every tag
// after it.
func (e *Evaluator) Words(markup string) dialog.WordSource {
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()

	L := newVM(e.State)
	defer L.Close()
	L.SetContext(ctx)

	src := dialog.NewMarkupSource(markup, func(tag string, effect dialog.TextEffect) []dialog.Word {
		words, err := e.expand(L, tag, effect)
		if err != nil && e.Logger != nil {
			e.Logger.Warn("script tag failed", "tag", tag, "err", err)
		}
		return words
	})
	return dialog.NewSliceSource(dialog.Collect(src)...)
}

func (e *Evaluator) expand(L *lua.LState, tag string, effect dialog.TextEffect) ([]dialog.Word, error) {
	if m := assignRe.FindStringSubmatch(tag); m != nil {
		v, err := eval(L, m[2])
		if err != nil {
			return nil, err
		}
		e.State.SetVar(m[1], fromLua(v))
		L.SetGlobal(m[1], v)
		return nil, nil
	}

	name, arg, _ := strings.Cut(tag, " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "say", "print":
		v, err := eval(L, arg)
		if err != nil {
			return nil, err
		}
		var words []dialog.Word
		for _, f := range strings.Fields(FormatValue(fromLua(v))) {
			words = append(words, dialog.TextWord(f, effect))
		}
		return words, nil
	case "drws", "printSprite":
		return []dialog.Word{dialog.SpriteWord(unquote(arg))}, nil
	case "drwt", "printTile":
		return []dialog.Word{dialog.TileWord(unquote(arg))}, nil
	case "drwi", "printItem":
		return []dialog.Word{dialog.ItemWord(unquote(arg))}, nil
	case "end":
		e.State.End = true
		return nil, nil
	}
	return nil, nil
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// eval runs expr and returns its value.
func eval(L *lua.LState, expr string) (lua.LValue, error) {
	if strings.TrimSpace(expr) == "" {
		return lua.LNil, fmt.Errorf("empty expression")
	}
	top := L.GetTop()
	defer L.SetTop(top)
	if err := L.DoString("return " + expr); err != nil {
		return lua.LNil, fmt.Errorf("evaluating %q: %w", expr, err)
	}
	if L.GetTop() == top {
		return lua.LNil, nil
	}
	return L.Get(top + 1), nil
}
