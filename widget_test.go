package cui

import (
	"errors"
	"reflect"
	"testing"
)

func TestBoxSkippedWithoutPaint(t *testing.T) {
	c, s := newTestContext(t)
	frame(t, c, func(c *Context) {
		c.Box(0, 0, 10, 10)
		if len(s.calls) != 0 {
			t.Errorf("calls = %v, want none", s.calls)
		}
	})
}

func TestBoxDrawing(t *testing.T) {
	tests := []struct {
		name  string
		props Properties
		want  []string
	}{
		{
			"fill only",
			Properties{"fill": "#F00"},
			[]string{"fillRect 0 0 10 20 #ff0000ff"},
		},
		{
			"stroke only",
			Properties{"stroke": "#00F", "stroke-width": "2px"},
			[]string{"strokeRect 0 0 10 20 #0000ffff 2"},
		},
		{
			"fill and stroke",
			Properties{"fill": "#F00", "stroke": "#00F"},
			[]string{"fillRect 0 0 10 20 #ff0000ff", "strokeRect 0 0 10 20 #0000ffff 1"},
		},
		{
			"rounded",
			Properties{"fill": "#F00", "stroke": "#00F", "radius": 3},
			[]string{"beginPath", "roundRect 0 0 10 20 r=3", "fill #ff0000ff", "stroke #0000ffff 1"},
		},
		{
			"rounded clamped",
			Properties{"fill": "#F00", "radius": "1rem"},
			[]string{"beginPath", "roundRect 0 0 10 20 r=5", "fill #ff0000ff"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := newTestContext(t)
			frame(t, c, func(c *Context) {
				c.PushStyle(Rules{"box": tt.props})
				c.Box(0, 0, 10, 20)
				if !reflect.DeepEqual(s.calls, tt.want) {
					t.Errorf("calls = %q, want %q", s.calls, tt.want)
				}
			})
		})
	}
}

func TestBoxInvalidStyleAbortsFrame(t *testing.T) {
	c, s := newTestContext(t)
	err := c.Frame(func(c *Context) {
		c.PushStyle(Rules{"box": {"fill": "#F00", "radius": "huge"}})
		c.Box(0, 0, 10, 10)
		c.Box(0, 0, 10, 10)
	})
	if !errors.Is(err, ErrInvalidLength) {
		t.Errorf("err = %v, want invalid length", err)
	}
	if len(s.calls) != 0 {
		t.Errorf("calls = %v, want none after abort", s.calls)
	}
}

func TestBoxUnitlessZeroRadius(t *testing.T) {
	c, s := newTestContext(t)
	grad := LinearGradient{To: Vec2{Y: 40}, Stops: []GradientStop{{0, ColorWhite}, {1, ColorBlack}}}
	err := c.Frame(func(c *Context) {
		c.PushStyle(Rules{
			"box": {
				"fill":         grad,
				"stroke":       "#ffffff",
				"stroke-width": 2,
				"radius":       "6px 6px 0 0",
			},
		})
		c.Box(4, 4, 60, 40)
	})
	if err != nil {
		t.Fatalf("frame aborted: %v", err)
	}
	want := []string{"beginPath", "roundRect 4 4 60 40 r=6", "fill gradient", "stroke #ffffffff 2"}
	if len(s.calls) != len(want) {
		t.Fatalf("calls = %q, want %q", s.calls, want)
	}
	for i := range want {
		if s.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, s.calls[i], want[i])
		}
	}
}

// With the default style a button labeled "OK" measures 20x10 and has
// padding 8 16, so it occupies 52x26.
func TestButtonSize(t *testing.T) {
	c, _ := newTestContextSize(t, 200, 200)
	frame(t, c, func(c *Context) {
		c.Button("OK")
		if got := c.Place(0, 0, 0, 0); got.X != 52 {
			t.Errorf("cursor after button = %v, want 52", got.X)
		}
		l := c.Layout().(*FlowLayout)
		if l.MaxRowHeight != 26 {
			t.Errorf("row height = %v, want 26", l.MaxRowHeight)
		}
	})
}

func TestButtonDrawIdle(t *testing.T) {
	c, s := newTestContextSize(t, 200, 200)
	c.PointerMove(150, 150)
	frame(t, c, func(c *Context) {
		c.Button("OK")
		want := []string{
			"save",
			"translate 26 13",
			"scale 1 1",
			"translate -26 -13",
			"beginPath",
			"roundRect 0 0 52 26 r=4",
			"fill #3a3f4bff",
			`fillText "OK" 16 8 #ffffffff`,
			"restore",
		}
		if !reflect.DeepEqual(s.calls, want) {
			t.Errorf("calls = %q\nwant %q", s.calls, want)
		}
	})
}

func TestButtonStates(t *testing.T) {
	c, s := newTestContextSize(t, 200, 200)

	c.PointerMove(10, 10)
	frame(t, c, func(c *Context) {
		if c.Button("OK") {
			t.Error("hover reported a click")
		}
		if !containsCall(s.calls, "scale 1.05 1.05") || !containsCall(s.calls, "fill #4b5263ff") {
			t.Errorf("hover calls = %q", s.calls)
		}
	})

	c.PointerDown(MouseButtonLeft)
	frame(t, c, func(c *Context) {
		if c.Button("OK") {
			t.Error("press reported a click")
		}
		if !containsCall(s.calls, "scale 0.9 0.9") || !containsCall(s.calls, "fill #2c313aff") {
			t.Errorf("active calls = %q", s.calls)
		}
	})

	c.PointerUp(MouseButtonLeft)
	frame(t, c, func(c *Context) {
		if !c.Button("OK") {
			t.Error("release did not report a click")
		}
	})

	frame(t, c, func(c *Context) {
		if c.Button("OK") {
			t.Error("click reported twice")
		}
	})
}

func TestButtonTextColorFallback(t *testing.T) {
	c, s := newTestContextSize(t, 200, 200)
	c.PointerMove(150, 150)
	frame(t, c, func(c *Context) {
		c.PushStyle(Rules{"button": {PseudoHover: Properties{"color": "#F00"}}})
		c.Button("A")
		// Idle state uses the plain selector's color.
		if !containsCall(s.calls, `fillText "A" 16 8 #ffffffff`) {
			t.Errorf("calls = %q", s.calls)
		}
	})
}

func TestButtonHoverOverridesColor(t *testing.T) {
	c, s := newTestContextSize(t, 200, 200)
	c.PointerMove(5, 5)
	frame(t, c, func(c *Context) {
		c.PushStyle(Rules{"button": {PseudoHover: Properties{"color": "#F00"}}})
		c.Button("A")
		if !containsCall(s.calls, `fillText "A" 16 8 #ff0000ff`) {
			t.Errorf("calls = %q", s.calls)
		}
	})
}

func TestButtonKeyIndependentOfOrder(t *testing.T) {
	c, _ := newTestContextSize(t, 400, 200)
	c.PointerMove(5, 5)
	c.PointerDown(MouseButtonLeft)
	frame(t, c, func(c *Context) { c.ButtonKey("save", "Save") })

	c.PointerUp(MouseButtonLeft)
	var clicked bool
	frame(t, c, func(c *Context) {
		c.Button("New")
		clicked = c.ButtonKey("save", "Save")
	})
	if !clicked {
		t.Error("keyed button lost its capture when another button was added before it")
	}
}

func TestButtonsFlowAcrossRow(t *testing.T) {
	c, _ := newTestContextSize(t, 120, 200)
	// Each "OK" button is 52 wide; the third wraps.
	c.PointerMove(10, 30)
	c.PointerDown(MouseButtonLeft)
	frame(t, c, func(c *Context) {
		c.Button("OK")
		c.Button("OK")
		c.Button("OK")
	})
	if got := c.capture.owner; got != (captureKey{seq: 2}) {
		t.Errorf("owner = %v, want the wrapped third button", got)
	}
}
