package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/matzehuels/papernet/pkg/editor"
)

var keys = []struct {
	key ebiten.Key
	ev  editor.Event
}{
	{ebiten.KeyPageUp, editor.Event{Key: editor.KeyPageUp}},
	{ebiten.KeyPageDown, editor.Event{Key: editor.KeyPageDown}},
	{ebiten.KeyEscape, editor.Event{Key: editor.KeyEscape}},
	{ebiten.KeyF10, editor.Event{Key: editor.KeyF10}},
	{ebiten.KeyG, editor.Event{Key: editor.KeyRune, Rune: 'g'}},
	{ebiten.KeyQ, editor.Event{Key: editor.KeyRune, Rune: 'q'}},
	{ebiten.KeyZ, editor.Event{Key: editor.KeyRune, Rune: 'z'}},
	{ebiten.KeyX, editor.Event{Key: editor.KeyRune, Rune: 'x'}},
}

var buttons = []struct {
	button ebiten.MouseButton
	b      editor.Button
}{
	{ebiten.MouseButtonLeft, editor.ButtonPrimary},
	{ebiten.MouseButtonMiddle, editor.ButtonMiddle},
	{ebiten.MouseButtonRight, editor.ButtonSecondary},
}

// input tracks pointer motion between ticks.
type input struct {
	lastX, lastY int
	seen         bool
}

// poll translates this tick's ebiten input into editor events.
func (in *input) poll() []editor.Event {
	var out []editor.Event

	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if !in.seen || x != in.lastX || y != in.lastY {
		out = append(out, editor.PointerMove(fx, fy))
		in.lastX, in.lastY, in.seen = x, y, true
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			out = append(out, editor.PointerDown(fx, fy, b.b))
		}
		if inpututil.IsMouseButtonJustReleased(b.button) {
			out = append(out, editor.PointerUp(fx, fy, b.b))
		}
	}

	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.key) {
			ev := k.ev
			ev.Kind = editor.EventKeyDown
			out = append(out, ev)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			ev := k.ev
			ev.Kind = editor.EventKeyUp
			out = append(out, ev)
		}
	}
	return out
}
