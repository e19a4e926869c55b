package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellforge/event"
)

func TestTranslateKey(t *testing.T) {
	ev, ok := Translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModShift))
	if !ok {
		t.Fatal("key event not translated")
	}
	key, ok := ev.(event.Key)
	if !ok {
		t.Fatalf("translated to %T, want event.Key", ev)
	}
	if key.Rune != 'a' || key.Code != tcell.KeyRune || key.Mods != tcell.ModShift {
		t.Errorf("key = %+v", key)
	}
}

func TestTranslateCtrlCIsQuit(t *testing.T) {
	ev, ok := Translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if !ok {
		t.Fatal("ctrl-c not translated")
	}
	if _, isQuit := ev.(event.Quit); !isQuit {
		t.Errorf("ctrl-c translated to %T, want event.Quit", ev)
	}
}

func TestTranslateMouse(t *testing.T) {
	ev, ok := Translate(tcell.NewEventMouse(3, 7, tcell.Button1, tcell.ModNone))
	if !ok {
		t.Fatal("mouse event not translated")
	}
	m, ok := ev.(event.Mouse)
	if !ok {
		t.Fatalf("translated to %T, want event.Mouse", ev)
	}
	if m.X != 3 || m.Y != 7 || m.Buttons != tcell.Button1 {
		t.Errorf("mouse = %+v", m)
	}
}

func TestTranslateResize(t *testing.T) {
	ev, ok := Translate(tcell.NewEventResize(120, 40))
	if !ok {
		t.Fatal("resize event not translated")
	}
	r, ok := ev.(event.Resize)
	if !ok {
		t.Fatalf("translated to %T, want event.Resize", ev)
	}
	if r.Width != 120 || r.Height != 40 {
		t.Errorf("resize = %+v", r)
	}
}

func TestTranslateUnknownEvent(t *testing.T) {
	if _, ok := Translate(tcell.NewEventInterrupt(nil)); ok {
		t.Error("interrupt event translated, want dropped")
	}
}
