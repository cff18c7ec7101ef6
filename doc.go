// Package cui is an immediate-mode UI engine for [Ebitengine].
//
// There is no widget tree. Every frame the program calls widget functions
// such as [Context.Button] and [Context.Box] in order; each call places,
// styles, and draws its widget and reports its interaction state right
// away. All engine state lives in an explicit [Context].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := cui.DefaultConfig()
//	cui.Run(cfg, func(c *cui.Context) {
//		if c.Button("Save") {
//			save()
//		}
//	})
//
// For full control, draw to an [EbitenSurface] (or any [Surface]) from your
// own [ebiten.Game], feed pointer events with [Context.PointerMove],
// [Context.PointerDown], and [Context.PointerUp], and bracket each frame
// with [Context.Frame]:
//
//	surface := cui.NewEbitenSurface(nil, face)
//	ctx, _ := cui.NewContext(surface, cfg)
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.surface.SetTarget(screen)
//		if err := g.ctx.Frame(g.ui); err != nil {
//			log.Print(err)
//		}
//	}
//
// # Capture
//
// Pressing any button over a widget captures the pointer for it. While
// captured, no other widget sees hover or activation. Releasing the primary
// button clicks the owner, even when the pointer has left it. Widgets are
// identified by their call order within the frame; use [Context.ButtonKey]
// or [Context.CheckStateKey] when that order changes between frames.
//
// Only the primary release ends capture. A widget captured by a right or
// middle press stays captured after that button goes up, and every other
// widget stays suppressed until the next primary click.
//
// # Styles
//
// Styles are [Rules] keyed by selector ("box", "button") with CSS-like
// properties: fill, stroke, stroke-width, radius, padding, and color.
// [Context.PushStyle] layers an overlay that inherits what it does not
// override; the "hover" and "active" pseudo keys hold per-state
// properties. Lengths accept numbers, "Npx", "Nrem", and a unitless "0".
//
// # Layout
//
// Widgets are placed by the current layout context inside the current
// viewport. The built-in [FlowLayout] fills rows left to right and wraps
// when an element does not fit. [Context.Flow] pushes a nested flow.
//
// # Contract violations
//
// Misuse inside a frame (popping a layout that was never pushed, a
// malformed style, a second widget claiming capture) panics with an
// [*Error]. [Context.Frame] recovers it, finishes the frame, and returns
// it; match it with [errors.Is] against [ErrInvalidLayoutContext] and the
// other sentinels.
//
// # Testing
//
// [Context.InjectClick] and [Context.InjectDrag] queue synthetic pointer
// input, and [LoadTestScript] replays a JSON script of clicks, drags, waits,
// and screenshots. Interaction events can be forwarded to an [EventSink],
// for example a [Donburi] world through cui/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package cui
