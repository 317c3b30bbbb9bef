package shell

import "testing"

func TestDOMScripts(t *testing.T) {
	s := DOMScripts{}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"reload", s.Reload(), "window.location.reload();"},
		{"zoom", s.SetZoom(1.5), "if (document.body) { document.body.style.zoom = 1.5; }"},
		{"zoom default", s.SetZoom(1), "if (document.body) { document.body.style.zoom = 1; }"},
		{"navigate", s.Navigate("https://messages.google.com/web"), `window.location.href = "https://messages.google.com/web";`},
		{"navigate quoted", s.Navigate(`https://x.test/"';alert(1)//`), `window.location.href = "https://x.test/\"';alert(1)//";`},
		{"back", s.Back(), "history.back();"},
		{"forward", s.Forward(), "history.forward();"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
