package ggbench

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

func TestHost_Defaults(t *testing.T) {
	h := NewHost(DefaultWidth, DefaultHeight, DefaultDensity)
	if h.Width() != 1280 || h.Height() != 720 || h.Density() != 1 {
		t.Errorf("screen = %dx%d@%v, want 1280x720@1", h.Width(), h.Height(), h.Density())
	}
	if h.HasPointer() {
		t.Error("new host should have no pointer")
	}
	if p := h.Pointer(); p.X != -1 || p.Y != -1 {
		t.Errorf("Pointer() = %v, want (-1,-1)", p)
	}
	if !h.IsFirstFrame() {
		t.Error("new host should be on its first frame")
	}
	if h.Params() == nil {
		t.Error("Params() = nil")
	}
}

func TestHost_UpdateScreen(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		density float64
		want    bool
	}{
		{"change size", 800, 600, 1, true},
		{"same again", 800, 600, 1, false},
		{"change density", 800, 600, 2, true},
		{"zero width", 0, 600, 2, false},
		{"negative height", 800, -1, 2, false},
		{"density below one", 800, 600, 0.5, false},
		{"change height", 800, 601, 2, true},
	}

	h := NewHost(DefaultWidth, DefaultHeight, DefaultDensity)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.UpdateScreen(tt.width, tt.height, tt.density); got != tt.want {
				t.Errorf("UpdateScreen(%d, %d, %v) = %v, want %v",
					tt.width, tt.height, tt.density, got, tt.want)
			}
		})
	}
	if h.Width() != 800 || h.Height() != 601 || h.Density() != 2 {
		t.Errorf("final screen = %dx%d@%v, want 800x601@2", h.Width(), h.Height(), h.Density())
	}
}

func TestHost_UpdateScreenLogsRejection(t *testing.T) {
	buf := captureLogs(t)
	h := NewHost(DefaultWidth, DefaultHeight, DefaultDensity)
	h.UpdateScreen(100, 100, 0.9)
	if !strings.Contains(buf.String(), "density is invalid") {
		t.Errorf("expected rejection to be logged, got: %s", buf.String())
	}
	if h.Density() != 1 {
		t.Errorf("Density() = %v after rejected update, want 1", h.Density())
	}
}

func TestHost_Pointer(t *testing.T) {
	h := NewHost(800, 600, 1)
	h.MouseMoved(10, 20)
	if !h.HasPointer() || h.Pointer() != gg.Pt(10, 20) {
		t.Errorf("Pointer() = %v, HasPointer=%v", h.Pointer(), h.HasPointer())
	}
	h.MouseLeft()
	if h.HasPointer() {
		t.Error("HasPointer() = true after MouseLeft")
	}
}

func TestHost_AddImage(t *testing.T) {
	h := NewHost(800, 600, 1)
	first := gg.ImageBufFromImage(gg.NewContext(4, 4).Image())
	second := gg.ImageBufFromImage(gg.NewContext(8, 8).Image())

	if err := h.AddImage(BridgeImage, first); err != nil {
		t.Fatalf("AddImage() = %v", err)
	}
	err := h.AddImage(BridgeImage, second)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate AddImage() = %v, want ErrDuplicateName", err)
	}
	if h.Image(BridgeImage) != first {
		t.Error("first registration was replaced")
	}
	if err := h.AddImage("", first); !errors.Is(err, ErrEmptyName) {
		t.Errorf("AddImage(\"\") = %v, want ErrEmptyName", err)
	}
	if err := h.AddImage("other", nil); !errors.Is(err, ErrNilResource) {
		t.Errorf("AddImage(nil) = %v, want ErrNilResource", err)
	}
	if h.Image("other") != nil {
		t.Error("rejected image was registered")
	}
}

func TestHost_AddTypeface(t *testing.T) {
	h := NewHost(800, 600, 1)
	src, err := LoadDefaultTypeface()
	if err != nil {
		t.Fatalf("LoadDefaultTypeface() = %v", err)
	}
	if err := h.AddTypeface(DefaultTypeface, src); err != nil {
		t.Fatalf("AddTypeface() = %v", err)
	}
	other, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource() = %v", err)
	}
	if err := h.AddTypeface(DefaultTypeface, other); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("duplicate AddTypeface() = %v, want ErrDuplicateName", err)
	}
	if h.Typeface(DefaultTypeface) != src {
		t.Error("first typeface was replaced")
	}
	if err := h.AddTypeface("mono", nil); !errors.Is(err, ErrNilResource) {
		t.Errorf("AddTypeface(nil) = %v, want ErrNilResource", err)
	}
}

func TestHost_RecordFrame(t *testing.T) {
	clk := &fakeClock{}
	h := NewHost(800, 600, 1, WithClock(clk))
	for i := 0; i < StatsWindowSize; i++ {
		clk.Advance(20_000)
		h.RecordFrame(int64(1000 * (i + 1)))
	}
	if got := h.CurrentFPS(); got != 50 {
		t.Errorf("CurrentFPS() = %v, want 50", got)
	}
	if got := h.LastDrawTime(); got != 60_000 {
		t.Errorf("LastDrawTime() = %d, want 60000", got)
	}
	if got := h.AverageDrawTime(); got != 30_500 {
		t.Errorf("AverageDrawTime() = %d, want 30500", got)
	}
	h.ResetFrames()
	if !h.IsFirstFrame() || h.CurrentFPS() != 0 {
		t.Error("ResetFrames did not clear statistics")
	}
}
