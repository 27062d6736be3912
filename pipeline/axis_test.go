package pipeline

import (
	"errors"
	"testing"

	freehand "github.com/bootchk/freehandTool"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	f()
}

func TestAxisDetermineOrientation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var ax Axis
	ax.Reset(freehand.Pt(0, 0))
	if ax.OrientationKnown() {
		t.Fail()
	}
	if err := ax.DetermineOrientation(freehand.Pt(3, 0)); err != nil {
		t.Fatalf("determine failed: %v", err)
	}
	if ax.Orientation() != Horizontal {
		t.Fatalf("unexpected orientation %s", ax.Orientation())
	}
}

func TestAxisVertical(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var ax Axis
	ax.Reset(freehand.Pt(2, 2))
	if err := ax.DetermineOrientation(freehand.Pt(2, 7)); err != nil {
		t.Fatalf("determine failed: %v", err)
	}
	if ax.Orientation() != Vertical {
		t.Fail()
	}
	if ax.OnAxisValue(freehand.Pt(2, 5)) != 5 {
		t.Fail()
	}
}

func TestAxisAmbiguous(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var ax Axis
	ax.Reset(freehand.Pt(0, 0))
	err := ax.DetermineOrientation(freehand.Pt(1, 1))
	if !errors.Is(err, ErrAmbiguousAxis) {
		t.Fatalf("expected ErrAmbiguousAxis, got %v", err)
	}
}

func TestAxisTryDetermineIsLazyOnAnchor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var ax Axis
	ax.Reset(freehand.Pt(1, 1))
	if err := ax.TryDetermineOrientation(freehand.Pt(1, 1)); err != nil {
		t.Fatalf("try on anchor must be a no-op: %v", err)
	}
	if ax.OrientationKnown() {
		t.Fail()
	}
}

func TestAxisDiagonal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var ax Axis
	ax.Reset(freehand.Pt(0, 0))
	// Orientation unknown: orthogonal positions are not diagonal.
	if ax.IsPositionDiagonal(freehand.Pt(0, 4)) {
		t.Fail()
	}
	if !ax.IsPositionDiagonal(freehand.Pt(1, 4)) {
		t.Fail()
	}
	if err := ax.DetermineOrientation(freehand.Pt(4, 0)); err != nil {
		t.Fatalf("determine failed: %v", err)
	}
	// Orientation known: off-axis positions are diagonal, even orthogonal ones.
	if !ax.IsPositionDiagonal(freehand.Pt(0, 4)) {
		t.Fail()
	}
	if ax.IsPositionDiagonal(freehand.Pt(7, 0)) {
		t.Fail()
	}
}

func TestAxisContractPanics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var ax Axis
	ax.Reset(freehand.Pt(0, 0))
	mustPanic(t, func() { ax.OnAxisValue(freehand.Pt(1, 0)) })
	if err := ax.DetermineOrientation(freehand.Pt(4, 0)); err != nil {
		t.Fatalf("determine failed: %v", err)
	}
	mustPanic(t, func() { ax.DetermineOrientation(freehand.Pt(5, 0)) })
	mustPanic(t, func() { ax.OnAxisValue(freehand.Pt(5, 1)) })
	mustPanic(t, func() { ax.ResetStart(freehand.Pt(5, 1)) })
}
