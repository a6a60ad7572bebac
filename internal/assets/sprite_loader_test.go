package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aimon-defense/internal/defs"
)

func pngBytes(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newSpriteServer(t *testing.T) *httptest.Server {
	green := pngBytes(t, 96, 96, color.RGBA{0, 200, 0, 255})
	mux := http.NewServeMux()
	mux.HandleFunc("/ok.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(green)
	})
	mux.HandleFunc("/garbage.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchScales(t *testing.T) {
	srv := newSpriteServer(t)
	l := NewLoader(time.Second, 32)

	img, err := l.Fetch(context.Background(), srv.URL+"/ok.png")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
		t.Errorf("bounds = %v, want 32x32", b)
	}
	r, g, _, _ := img.At(16, 16).RGBA()
	if g>>8 < 150 || r>>8 > 50 {
		t.Errorf("centre pixel not green: %v", img.At(16, 16))
	}
}

func TestFetchErrors(t *testing.T) {
	srv := newSpriteServer(t)
	l := NewLoader(time.Second, 32)

	for _, path := range []string{"/missing.png", "/garbage.png"} {
		if _, err := l.Fetch(context.Background(), srv.URL+path); err == nil {
			t.Errorf("Fetch(%s): expected error", path)
		}
	}
}

func TestLoadAll(t *testing.T) {
	srv := newSpriteServer(t)
	l := NewLoader(time.Second, 16)
	kinds := []*defs.KindDefinition{
		{ID: "good", Sprite: srv.URL + "/ok.png"},
		{ID: "bad", Sprite: srv.URL + "/missing.png"},
		{ID: "none"},
	}

	set := l.LoadAll(context.Background(), kinds)
	set.Wait()

	if img, ok := set.Get("good"); !ok || img.Bounds().Dx() != 16 {
		t.Errorf("good sprite = %v, %v", img, ok)
	}
	if _, ok := set.Get("bad"); ok {
		t.Error("bad sprite should be missing")
	}
	if set.Err("bad") == nil {
		t.Error("bad sprite error not kept")
	}
	if _, ok := set.Get("none"); ok || set.Err("none") != nil {
		t.Error("kind without sprite should be skipped")
	}
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	dst := Scale(src, 8)
	if dst.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Errorf("bounds = %v", dst.Bounds())
	}
}
