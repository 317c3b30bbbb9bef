package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yllada/messages-desktop/common"
)

// Accelerator is a parsed keyboard shortcut.
// Primary is Command on macOS and Control elsewhere.
type Accelerator struct {
	Primary bool
	Shift   bool
	Alt     bool
	Super   bool
	// Key is the toolkit key name, e.g. "r", "equal", "bracketleft".
	Key string
}

// keyNames maps portable key spellings to key names.
var keyNames = map[string]string{
	"=":            "equal",
	"equal":        "equal",
	"-":            "minus",
	"minus":        "minus",
	"plus":         "plus",
	"[":            "bracketleft",
	"]":            "bracketright",
	",":            "comma",
	".":            "period",
	"/":            "slash",
	";":            "semicolon",
	"'":            "apostrophe",
	"`":            "grave",
	"\\":           "backslash",
	"space":        "space",
	"tab":          "Tab",
	"enter":        "Return",
	"return":       "Return",
	"esc":          "Escape",
	"escape":       "Escape",
	"backspace":    "BackSpace",
	"delete":       "Delete",
	"home":         "Home",
	"end":          "End",
	"pageup":       "Page_Up",
	"pagedown":     "Page_Down",
	"up":           "Up",
	"down":         "Down",
	"left":         "Left",
	"right":        "Right",
	"bracketleft":  "bracketleft",
	"bracketright": "bracketright",
}

// ParseAccelerator parses an accelerator written as "Modifier+...+Key",
// e.g. "CmdOrCtrl+R" or "CmdOrCtrl+-".
func ParseAccelerator(s string) (Accelerator, error) {
	var a Accelerator

	parts := strings.Split(s, "+")
	if len(parts) == 0 || strings.TrimSpace(s) == "" {
		return a, fmt.Errorf("%w: empty", common.ErrInvalidAccel)
	}

	for _, mod := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(mod)) {
		case "cmdorctrl", "commandorcontrol", "cmd", "command", "ctrl", "control":
			a.Primary = true
		case "shift":
			a.Shift = true
		case "alt", "option":
			a.Alt = true
		case "super", "meta":
			a.Super = true
		default:
			return Accelerator{}, fmt.Errorf("%w: unknown modifier %q in %q", common.ErrInvalidAccel, mod, s)
		}
	}

	key, err := keyName(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return Accelerator{}, fmt.Errorf("%w in %q", err, s)
	}
	a.Key = key

	return a, nil
}

func keyName(k string) (string, error) {
	if k == "" {
		return "", fmt.Errorf("%w: missing key", common.ErrInvalidAccel)
	}
	if name, ok := keyNames[strings.ToLower(k)]; ok {
		return name, nil
	}
	if len(k) == 1 {
		c := k[0]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			return k, nil
		case c >= 'A' && c <= 'Z':
			return strings.ToLower(k), nil
		}
	}
	if len(k) >= 2 && len(k) <= 3 && (k[0] == 'F' || k[0] == 'f') && k[1] >= '0' && k[1] <= '9' {
		if n, err := strconv.Atoi(k[1:]); err == nil && n >= 1 && n <= 24 {
			return fmt.Sprintf("F%d", n), nil
		}
	}
	return "", fmt.Errorf("%w: unknown key %q", common.ErrInvalidAccel, k)
}

// IsZero reports whether a carries no shortcut.
func (a Accelerator) IsZero() bool {
	return a.Key == ""
}

// GTK returns the accelerator in gtk_accelerator_parse syntax.
func (a Accelerator) GTK() string {
	if a.IsZero() {
		return ""
	}
	var b strings.Builder
	if a.Primary {
		b.WriteString("<Primary>")
	}
	if a.Shift {
		b.WriteString("<Shift>")
	}
	if a.Alt {
		b.WriteString("<Alt>")
	}
	if a.Super {
		b.WriteString("<Super>")
	}
	b.WriteString(a.Key)
	return b.String()
}
