package shell

import (
	"encoding/json"
	"fmt"
)

// ScriptExecutor runs a script in the page context of the embedded web
// view. Execution is fire-and-forget.
type ScriptExecutor interface {
	Execute(script string)
}

// Scripts produces the script text for page-level commands. The text is
// rendering-engine glue; commands are expressed in terms of this interface.
type Scripts interface {
	Reload() string
	SetZoom(level float64) string
	Navigate(url string) string
	Back() string
	Forward() string
}

// DOMScripts implements Scripts with plain DOM calls.
type DOMScripts struct{}

// Reload reloads the current page.
func (DOMScripts) Reload() string {
	return "window.location.reload();"
}

// SetZoom writes the CSS zoom of the document body.
func (DOMScripts) SetZoom(level float64) string {
	return fmt.Sprintf("if (document.body) { document.body.style.zoom = %s; }", FormatZoom(level))
}

// Navigate assigns the location; url is emitted as a JSON string literal.
func (DOMScripts) Navigate(url string) string {
	quoted, _ := json.Marshal(url)
	return fmt.Sprintf("window.location.href = %s;", quoted)
}

// Back steps one entry back in the page history.
func (DOMScripts) Back() string {
	return "history.back();"
}

// Forward steps one entry forward in the page history.
func (DOMScripts) Forward() string {
	return "history.forward();"
}
