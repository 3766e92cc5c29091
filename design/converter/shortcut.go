package converter

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Shortcut is a keyboard chord bound to an action in design markup, written
// as dash-joined lowercase tokens, e.g. "ctrl-shift-s".
type Shortcut struct {
	Modifiers []string
	Key       string
}

// String renders the canonical chord form: modifiers in ctrl, alt, shift,
// meta order followed by the key name.
func (s Shortcut) String() string {
	parts := make([]string, 0, len(s.Modifiers)+1)
	parts = append(parts, s.Modifiers...)
	parts = append(parts, s.Key)
	return strings.Join(parts, "-")
}

var shortcutType = reflect.TypeOf(Shortcut{})

// modifierRank fixes the canonical modifier order.
var modifierRank = map[string]int{"ctrl": 0, "alt": 1, "shift": 2, "meta": 3}

// shortcutKeys lists the recognized key names: letters, digits, function
// keys and a set of navigation keys.
var shortcutKeys = map[string]struct{}{}

func init() {
	names := []string{
		"enter", "escape", "tab", "spacebar", "backspace", "delete", "insert",
		"home", "end", "pageup", "pagedown",
		"up", "down", "left", "right",
	}
	for r := 'a'; r <= 'z'; r++ {
		names = append(names, string(r))
	}
	for r := '0'; r <= '9'; r++ {
		names = append(names, string(r))
	}
	for i := 1; i <= 12; i++ {
		names = append(names, fmt.Sprintf("f%d", i))
	}
	for _, n := range names {
		shortcutKeys[n] = struct{}{}
	}
}

// ShortcutConverter converts keyboard chords.  Modifiers may appear in any
// order in markup; parsing normalizes them, so formatting always emits the
// canonical order.
type ShortcutConverter struct{}

func (ShortcutConverter) ModelType() reflect.Type { return shortcutType }

func (ShortcutConverter) Parse(value string, _ language.Tag) (any, error) {
	tokens := strings.Split(strings.ToLower(strings.TrimSpace(value)), "-")
	key := tokens[len(tokens)-1]
	if key == "" {
		return nil, newError(shortcutType, value, "empty shortcut", nil)
	}
	if _, ok := shortcutKeys[key]; !ok {
		return nil, newError(shortcutType, value, fmt.Sprintf("unknown key %q", key), nil)
	}
	seen := make(map[string]bool, len(tokens)-1)
	modifiers := make([]string, 0, len(tokens)-1)
	for _, tok := range tokens[:len(tokens)-1] {
		if _, ok := modifierRank[tok]; !ok {
			return nil, newError(shortcutType, value, fmt.Sprintf("unknown modifier %q", tok), nil)
		}
		if seen[tok] {
			return nil, newError(shortcutType, value, fmt.Sprintf("duplicate modifier %q", tok), nil)
		}
		seen[tok] = true
		modifiers = append(modifiers, tok)
	}
	sort.Slice(modifiers, func(i, j int) bool {
		return modifierRank[modifiers[i]] < modifierRank[modifiers[j]]
	})
	if len(modifiers) == 0 {
		modifiers = nil
	}
	return Shortcut{Modifiers: modifiers, Key: key}, nil
}

func (ShortcutConverter) Format(value any, _ language.Tag) (string, error) {
	rv, ok := concrete(value)
	if !ok || rv.Type() != shortcutType {
		return "", newError(shortcutType, value, "not a shortcut value", nil)
	}
	chord := rv.Interface().(Shortcut)
	if _, ok := shortcutKeys[strings.ToLower(chord.Key)]; !ok {
		return "", newError(shortcutType, value, fmt.Sprintf("unknown key %q", chord.Key), nil)
	}
	return chord.String(), nil
}
