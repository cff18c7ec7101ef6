package cui

import (
	"errors"
	"testing"
)

func TestPushPopStyle(t *testing.T) {
	c, _ := newTestContext(t)
	before, _ := c.Style("button", "fill")

	c.PushStyle(Rules{"button": {"fill": "#F00"}})
	if got, _ := c.Style("button", "fill"); got != "#F00" {
		t.Errorf("fill after push = %v, want #F00", got)
	}

	c.PopStyle()
	if got, _ := c.Style("button", "fill"); got != before {
		t.Errorf("fill after pop = %v, want %v", got, before)
	}
}

func TestStyleInheritsUnsetProperties(t *testing.T) {
	c, _ := newTestContext(t)
	c.PushStyle(Rules{"button": {"fill": "#F00"}})
	c.PushStyle(Rules{"button": {"stroke": "#0F0"}})

	tests := []struct {
		prop string
		want any
	}{
		{"fill", "#F00"},
		{"stroke", "#0F0"},
		{"padding", "0.5rem 1rem"},
	}
	for _, tt := range tests {
		if got, ok := c.Style("button", tt.prop); !ok || got != tt.want {
			t.Errorf("Style(button, %s) = %v, %v; want %v", tt.prop, got, ok, tt.want)
		}
	}
}

func TestStylePseudoCascade(t *testing.T) {
	c, _ := newTestContext(t)
	c.PushStyle(Rules{"button": {PseudoHover: Properties{"stroke": "#00F"}}})

	if got, _ := c.Style("button:hover", "stroke"); got != "#00F" {
		t.Errorf("hover stroke = %v, want #00F", got)
	}
	// The hover fill comes from the default hover layer beneath.
	if got, _ := c.Style("button:hover", "fill"); got != "#4b5263" {
		t.Errorf("hover fill = %v, want #4b5263", got)
	}
	// Pseudo layers do not fall back to the plain selector.
	if _, ok := c.Style("button:hover", "padding"); ok {
		t.Error("hover padding resolved, want undefined")
	}
	if got, _ := c.stateStyle("button", PseudoHover, "padding"); got != "0.5rem 1rem" {
		t.Errorf("stateStyle padding = %v, want plain button padding", got)
	}
}

func TestStyleUndefined(t *testing.T) {
	c, _ := newTestContext(t)
	tests := []struct{ selector, prop string }{
		{"button", "nonexistent"},
		{"slider", "fill"},
		{"slider:active", "fill"},
	}
	for _, tt := range tests {
		if v, ok := c.Style(tt.selector, tt.prop); ok {
			t.Errorf("Style(%s, %s) = %v, want undefined", tt.selector, tt.prop, v)
		}
	}
}

func TestPopStyleBaseIsNoop(t *testing.T) {
	c, _ := newTestContext(t)
	c.PopStyle()
	c.PopStyle()
	if len(c.styles) != 1 {
		t.Fatalf("styles = %d, want 1", len(c.styles))
	}
	if _, ok := c.Style("button", "fill"); !ok {
		t.Error("base style lost after popping at the base")
	}
}

func TestStyleUnwoundAtEndFrame(t *testing.T) {
	c, _ := newTestContext(t)
	frame(t, c, func(c *Context) {
		c.PushStyle(Rules{"button": {"fill": "#F00"}})
		c.PushStyle(Rules{"box": {"fill": "#0F0"}})
	})
	if len(c.styles) != 1 {
		t.Errorf("styles = %d after EndFrame, want 1", len(c.styles))
	}
	if _, ok := c.Style("box", "fill"); ok {
		t.Error("pushed box fill survived EndFrame")
	}
}

func TestPushStyleMalformedPseudo(t *testing.T) {
	c, _ := newTestContext(t)
	err := c.Frame(func(c *Context) {
		c.PushStyle(Rules{"button": {PseudoActive: "#F00"}})
	})
	if !errors.Is(err, ErrInvalidStyleRule) {
		t.Errorf("err = %v, want invalid style rule", err)
	}
}

func TestPseudoAcceptsPlainMaps(t *testing.T) {
	c, _ := newTestContext(t)
	c.PushStyle(Rules{"box": {PseudoHover: map[string]any{"fill": "#123"}}})
	if got, _ := c.Style("box:hover", "fill"); got != "#123" {
		t.Errorf("box:hover fill = %v, want #123", got)
	}
}

func TestBaseStyleFromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseStyle = Rules{"button": {"fill": "#111"}}
	c, err := NewContext(newRecordingSurface(10, 10), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := c.Style("button", "fill"); got != "#111" {
		t.Errorf("fill = %v, want #111", got)
	}
	if got, _ := c.Style("button", "radius"); got != "4px" {
		t.Errorf("radius = %v, want default 4px", got)
	}

	c.PopStyle()
	if got, _ := c.Style("button", "fill"); got != "#111" {
		t.Errorf("fill after base pop = %v, want #111", got)
	}
}

func TestBaseStyleInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseStyle = Rules{"button": {PseudoHover: 3}}
	if _, err := NewContext(newRecordingSurface(10, 10), cfg); !errors.Is(err, ErrInvalidStyleRule) {
		t.Errorf("err = %v, want invalid style rule", err)
	}
}
