package projector

import (
	"math"
	"testing"

	"github.com/lumident/clinic-platform/internal/mathutil"
)

func TestProjectCenterOfView(t *testing.T) {
	cam := NewCamera(800, 600)
	ndc, ok := cam.ProjectNDC(mathutil.Vec3{0, 0, 0})
	if !ok {
		t.Fatal("origin should be visible")
	}
	if math.Abs(ndc[0]) > 1e-12 || math.Abs(ndc[1]) > 1e-12 {
		t.Errorf("origin should project to NDC center, got %v", ndc)
	}
	x, y := ToScreen(ndc, 800, 600)
	if x != 400 || y != 300 {
		t.Errorf("expected screen center (400,300), got (%f,%f)", x, y)
	}
}

func TestToScreenMapping(t *testing.T) {
	// NDC corners map to viewport corners; Y is flipped.
	x, y := ToScreen(mathutil.Vec3{-1, 1, 0}, 800, 600)
	if x != 0 || y != 0 {
		t.Errorf("top-left NDC should map to (0,0), got (%f,%f)", x, y)
	}
	x, y = ToScreen(mathutil.Vec3{1, -1, 0}, 800, 600)
	if x != 800 || y != 600 {
		t.Errorf("bottom-right NDC should map to (800,600), got (%f,%f)", x, y)
	}
}

// Resizing to the same aspect ratio leaves NDC untouched and only rescales
// the pixel mapping.
func TestResizeChangesOnlyPixelMapping(t *testing.T) {
	cam := NewCamera(800, 600)
	anchor := mathutil.Vec3{1.2, -0.8, 2.5}

	before, ok := cam.ProjectNDC(anchor)
	if !ok {
		t.Fatal("anchor should be visible")
	}
	bx, by := ToScreen(before, 800, 600)

	cam.Resize(1600, 1200)
	after, ok := cam.ProjectNDC(anchor)
	if !ok {
		t.Fatal("anchor should remain visible")
	}
	if before != after {
		t.Errorf("NDC changed under same-aspect resize: %v vs %v", before, after)
	}
	ax, ay := ToScreen(after, 1600, 1200)
	if math.Abs(ax-2*bx) > 1e-9 || math.Abs(ay-2*by) > 1e-9 {
		t.Errorf("pixel mapping should scale with viewport: (%f,%f) vs (%f,%f)", ax, ay, bx, by)
	}
}

func TestResizeUpdatesAspect(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Resize(1200, 600)
	if math.Abs(cam.Aspect-2.0) > 1e-12 {
		t.Errorf("expected aspect 2.0, got %f", cam.Aspect)
	}
	// Widening the viewport compresses NDC X for off-center points.
	ndcWide, _ := cam.ProjectNDC(mathutil.Vec3{1, 0, 0})
	cam.Resize(600, 600)
	ndcSquare, _ := cam.ProjectNDC(mathutil.Vec3{1, 0, 0})
	if ndcWide[0] >= ndcSquare[0] {
		t.Errorf("wider aspect should shrink NDC x: %f vs %f", ndcWide[0], ndcSquare[0])
	}
}

func TestBehindCameraRejected(t *testing.T) {
	cam := NewCamera(800, 600)
	if _, ok := cam.ProjectNDC(mathutil.Vec3{0, 0, 20}); ok {
		t.Error("point behind the camera should not project")
	}
	if _, _, ok := cam.Screen(mathutil.Vec3{0, 0, 14}, 800, 600); ok {
		t.Error("point on the camera plane should not project")
	}
}

func TestScreenConvenience(t *testing.T) {
	cam := NewCamera(1024, 768)
	x, y, ok := cam.Screen(mathutil.Vec3{0, 1, 0}, 1024, 768)
	if !ok {
		t.Fatal("anchor should be visible")
	}
	if x != 512 {
		t.Errorf("point above center should stay horizontally centered, got x=%f", x)
	}
	if y >= 384 {
		t.Errorf("point above center should land in the upper half, got y=%f", y)
	}
}
