package pipeline

import (
	"testing"

	freehand "github.com/bootchk/freehandTool"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// detectAll feeds positions and collects detected turns.
func detectAll(t *testing.T, d *ReversalDetector, positions ...freehand.PointerPoint) []freehand.PointerPoint {
	t.Helper()
	var turns []freehand.PointerPoint
	for _, p := range positions {
		turn, ok, err := d.Detect(p)
		assert.NoError(t, err)
		if ok {
			turns = append(turns, turn)
		}
	}
	return turns
}

func TestDetectDiagonalIsTurn(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := NewReversalDetector(freehand.Pt(0, 0))
	turns := detectAll(t, d, freehand.Pt(1, 0), freehand.Pt(2, 1))
	assert.Equal(t, []freehand.PointerPoint{freehand.Pt(2, 1)}, turns)
}

func TestDetectAbsorbsGrowth(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := NewReversalDetector(freehand.Pt(0, 0))
	turns := detectAll(t, d,
		freehand.Pt(1, 0), freehand.Pt(2, 0), freehand.Pt(3, 0), freehand.Pt(4, 0))
	assert.Empty(t, turns)
}

func TestDetectToleratesOneUnitJitter(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := NewReversalDetector(freehand.Pt(0, 0))
	// Retracing exactly the last unit is jitter, not a reversal.
	turns := detectAll(t, d,
		freehand.Pt(1, 0), freehand.Pt(2, 0), freehand.Pt(3, 0), freehand.Pt(2, 0))
	assert.Empty(t, turns)
}

func TestDetectReversalReportsExtremeOnce(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := NewReversalDetector(freehand.Pt(0, 0))
	// Growth to (3,0), then a reversal past the jitter tolerance. The turn
	// is the extreme position, reported exactly once, not the new position.
	turns := detectAll(t, d,
		freehand.Pt(1, 0), freehand.Pt(2, 0), freehand.Pt(3, 0),
		freehand.Pt(1, 0), freehand.Pt(0, 0))
	assert.Equal(t, []freehand.PointerPoint{freehand.Pt(3, 0)}, turns)
}

func TestDetectReversalVertical(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := NewReversalDetector(freehand.Pt(5, 0))
	turns := detectAll(t, d,
		freehand.Pt(5, 1), freehand.Pt(5, 2), freehand.Pt(5, 3), freehand.Pt(5, 1))
	assert.Equal(t, []freehand.PointerPoint{freehand.Pt(5, 3)}, turns)
}

func TestDetectGrowsOnAfterReversal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := NewReversalDetector(freehand.Pt(0, 0))
	// After the reversal at (4,0) the detector is rebuilt with the old
	// extreme as anchor and flipped growth; continued movement back toward
	// the old start is growth, not another reversal.
	turns := detectAll(t, d,
		freehand.Pt(1, 0), freehand.Pt(2, 0), freehand.Pt(3, 0), freehand.Pt(4, 0),
		freehand.Pt(2, 0), freehand.Pt(1, 0), freehand.Pt(0, 0))
	assert.Equal(t, []freehand.PointerPoint{freehand.Pt(4, 0)}, turns)
}

func TestDetectDoubleReversal(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := NewReversalDetector(freehand.Pt(0, 0))
	turns := detectAll(t, d,
		freehand.Pt(1, 0), freehand.Pt(2, 0), freehand.Pt(3, 0), freehand.Pt(4, 0),
		freehand.Pt(1, 0),
		freehand.Pt(3, 0))
	assert.Equal(t, []freehand.PointerPoint{freehand.Pt(4, 0), freehand.Pt(1, 0)}, turns)
}

func TestDetectRepeatedPositionIsAbsorbed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := NewReversalDetector(freehand.Pt(0, 0))
	// The same position may be fed consecutively; also the anchor itself.
	turns := detectAll(t, d,
		freehand.Pt(0, 0), freehand.Pt(1, 0), freehand.Pt(1, 0), freehand.Pt(2, 0))
	assert.Empty(t, turns)
}
