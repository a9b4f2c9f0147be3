// Package script evaluates the dynamic parts of dialogue: variable reads and
// writes, inline icons and the end-of-game flag.
package script

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/zyedidia/generic/mapset"
)

// State is the script-visible game state.
type State struct {
	// Vars holds string, float64 and bool values.
	Vars      map[string]any
	Inventory map[string]int
	Visited   mapset.Set[string]
	Avatar    string
	Room      string
	Palette   string
	End       bool
}

// NewState returns an empty state.
func NewState() *State {
	return &State{
		Vars:      map[string]any{},
		Inventory: map[string]int{},
		Visited:   mapset.New[string](),
	}
}

// SetVar stores v, normalising numbers to float64.
func (s *State) SetVar(name string, v any) {
	switch n := v.(type) {
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case float32:
		v = float64(n)
	}
	s.Vars[name] = v
}

// Put adds one item of kind id to the inventory.
func (s *State) Put(id string) {
	s.Inventory[id]++
}

// Count returns how many items of kind id were collected.
func (s *State) Count(id string) int {
	return s.Inventory[id]
}

// Visit records that the avatar entered room id.
func (s *State) Visit(id string) {
	s.Visited.Put(id)
}

// HasVisited reports whether room id was entered before.
func (s *State) HasVisited(id string) bool {
	return s.Visited.Has(id)
}

// VarNames returns the variable names in sorted order.
func (s *State) VarNames() []string {
	names := make([]string, 0, len(s.Vars))
	for name := range s.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatValue renders a variable value the way dialogue prints it. Whole
// numbers print without a fraction.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
