package systems

import "testing"

func TestCameraClampsToMap(t *testing.T) {
	c := NewCamera(10, 5, 30, 20)

	c.Pan(-3, -3)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("camera at %d,%d, want 0,0", c.X, c.Y)
	}

	c.Pan(100, 100)
	if c.X != 20 || c.Y != 15 {
		t.Fatalf("camera at %d,%d, want 20,15", c.X, c.Y)
	}

	c.CenterOn(15, 10)
	if c.X != 10 || c.Y != 8 {
		t.Fatalf("centered camera at %d,%d, want 10,8", c.X, c.Y)
	}
	if !c.IsVisible(15, 10) || c.IsVisible(9, 10) || c.IsVisible(20, 10) {
		t.Fatalf("visibility wrong for camera at %d,%d", c.X, c.Y)
	}
	if sx, sy := c.WorldToScreen(15, 10); sx != 5 || sy != 2 {
		t.Fatalf("WorldToScreen = %d,%d, want 5,2", sx, sy)
	}
}

func TestCameraSmallMapStaysAtOrigin(t *testing.T) {
	c := NewCamera(80, 50, 40, 20)
	c.CenterOn(39, 19)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("camera at %d,%d, want 0,0", c.X, c.Y)
	}
}

func TestMessageLogKeepsNewest(t *testing.T) {
	ml := NewMessageLog(3)
	for _, msg := range []string{"a", "b", "c", "d"} {
		ml.Add(msg)
	}
	if len(ml.Messages) != 3 {
		t.Fatalf("log holds %d lines, want 3", len(ml.Messages))
	}
	recent := ml.RecentMessages(5)
	if len(recent) != 3 || recent[0] != "d" || recent[2] != "b" {
		t.Fatalf("RecentMessages = %v", recent)
	}
	ml.Clear()
	if got := ml.RecentMessages(2); len(got) != 0 {
		t.Fatalf("cleared log returned %v", got)
	}
}

func TestGlyphCoords(t *testing.T) {
	if x, y := GlyphCoords('#'); x != 3 || y != 2 {
		t.Fatalf("GlyphCoords('#') = %d,%d, want 3,2", x, y)
	}
	if x, y := GlyphCoords('@'); x != 0 || y != 4 {
		t.Fatalf("GlyphCoords('@') = %d,%d, want 0,4", x, y)
	}
}

func TestNewTilesetWithoutSheet(t *testing.T) {
	ts, err := NewTileset("", 12)
	if err != nil {
		t.Fatalf("NewTileset: %v", err)
	}
	if ts.Image != nil || ts.TileSize != 12 {
		t.Fatalf("unexpected tileset %+v", ts)
	}
	if _, err := NewTileset("does-not-exist.png", 12); err == nil {
		t.Fatalf("missing sheet should fail")
	}
}
