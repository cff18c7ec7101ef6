package cui

import "strings"

// Properties maps a style property name to its value. The PseudoHover and
// PseudoActive keys hold nested Properties applied in those states.
type Properties map[string]any

// Rules maps a selector name (e.g. "button") to its properties.
type Rules map[string]Properties

// DefaultStyle returns the built-in base rules. Config.BaseStyle is layered
// on top of these to form the base overlay.
func DefaultStyle() Rules {
	return Rules{
		"box": {
			"stroke-width": 1,
		},
		"button": {
			"padding":      "0.5rem 1rem",
			"radius":       "4px",
			"fill":         "#3a3f4b",
			"color":        "#ffffff",
			"stroke-width": 1,
			PseudoHover: Properties{
				"fill": "#4b5263",
			},
			PseudoActive: Properties{
				"fill": "#2c313a",
			},
		},
	}
}

// propLayer holds one overlay's own properties for a selector (or for one of
// its pseudo states) plus a link to the matching layer beneath it.
type propLayer struct {
	own    map[string]any
	parent *propLayer
	pseudo map[string]*propLayer
}

func (l *propLayer) get(prop string) (any, bool) {
	for p := l; p != nil; p = p.parent {
		if v, ok := p.own[prop]; ok {
			return v, true
		}
	}
	return nil, false
}

func (l *propLayer) pseudoLayer(name string) *propLayer {
	for p := l; p != nil; p = p.parent {
		if q, ok := p.pseudo[name]; ok {
			return q
		}
	}
	return nil
}

// styleOverlay is one entry of the style stack. Selectors it does not
// define resolve through parent.
type styleOverlay struct {
	rules  map[string]*propLayer
	parent *styleOverlay
}

func (o *styleOverlay) selector(name string) *propLayer {
	for p := o; p != nil; p = p.parent {
		if l, ok := p.rules[name]; ok {
			return l
		}
	}
	return nil
}

func isPseudo(key string) bool {
	return key == PseudoHover || key == PseudoActive
}

// pseudoProps accepts both Properties and the plain maps produced by
// decoders.
func pseudoProps(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Properties:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

// newOverlay layers rules over beneath. Each selector layer inherits from
// the same selector beneath it, and each pseudo layer from the pseudo layer
// beneath it.
func newOverlay(beneath *styleOverlay, rules Rules) (*styleOverlay, error) {
	o := &styleOverlay{rules: make(map[string]*propLayer, len(rules)), parent: beneath}
	for sel, props := range rules {
		var under *propLayer
		if beneath != nil {
			under = beneath.selector(sel)
		}
		layer := &propLayer{own: make(map[string]any, len(props)), parent: under}
		for k, v := range props {
			if !isPseudo(k) {
				layer.own[k] = v
				continue
			}
			sub, ok := pseudoProps(v)
			if !ok {
				return nil, newError("PushStyle", KindInvalidStyleRule,
					"%s:%s must be a property map, got %T", sel, k, v)
			}
			var pseudoUnder *propLayer
			if under != nil {
				pseudoUnder = under.pseudoLayer(k)
			}
			pl := &propLayer{own: make(map[string]any, len(sub)), parent: pseudoUnder}
			for pk, pv := range sub {
				pl.own[pk] = pv
			}
			if layer.pseudo == nil {
				layer.pseudo = make(map[string]*propLayer, 2)
			}
			layer.pseudo[k] = pl
		}
		o.rules[sel] = layer
	}
	return o, nil
}

// PushStyle pushes an overlay of rules that inherits everything it does not
// override from the current top overlay.
func (c *Context) PushStyle(rules Rules) {
	o, err := newOverlay(c.styles[len(c.styles)-1], rules)
	if err != nil {
		panic(err)
	}
	c.styles = append(c.styles, o)
}

// PopStyle removes the top overlay. The base overlay is never removed.
func (c *Context) PopStyle() {
	if len(c.styles) > 1 {
		c.styles[len(c.styles)-1] = nil
		c.styles = c.styles[:len(c.styles)-1]
	}
}

// Style resolves property for selector against the top overlay. The
// selector may carry a pseudo state ("button:hover"). The second result is
// false when the property is unset anywhere in the cascade.
func (c *Context) Style(selector, property string) (any, bool) {
	sel, pseudo, _ := strings.Cut(selector, ":")
	layer := c.styles[len(c.styles)-1].selector(sel)
	if pseudo != "" {
		layer = layer.pseudoLayer(pseudo)
	}
	return layer.get(property)
}

// stateStyle resolves property for selector in a pseudo state, falling back
// to the plain selector when the state does not set it.
func (c *Context) stateStyle(selector, pseudo, property string) (any, bool) {
	if pseudo != "" {
		if v, ok := c.Style(selector+":"+pseudo, property); ok {
			return v, true
		}
	}
	return c.Style(selector, property)
}
