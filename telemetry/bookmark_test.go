package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_PointerBurst(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndFrame: uint64(i * 120), PerturbPeakMax: 0.01})
	}

	burst := WindowStats{WindowEndFrame: 600, PerturbPeakMax: 0.4, PointerFrames: 60}
	if !hasBookmark(bd.Check(burst), BookmarkPointerBurst) {
		t.Error("expected pointer_burst bookmark")
	}
}

func TestBookmarkDetector_PointerBurstNeedsMinimumPeak(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bd.Check(WindowStats{PerturbPeakMax: 0.001})

	if hasBookmark(bd.Check(WindowStats{PerturbPeakMax: 0.01}), BookmarkPointerBurst) {
		t.Error("expected no pointer_burst for a tiny peak")
	}
}

func TestBookmarkDetector_ScrollJump(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bd.Check(WindowStats{WindowEndFrame: 120, TargetEnd: 0})

	if !hasBookmark(bd.Check(WindowStats{WindowEndFrame: 240, TargetEnd: -250}), BookmarkScrollJump) {
		t.Error("expected scroll_jump bookmark")
	}
	if hasBookmark(bd.Check(WindowStats{WindowEndFrame: 360, TargetEnd: -260}), BookmarkScrollJump) {
		t.Error("expected no scroll_jump for a small move")
	}
}

func TestBookmarkDetector_DenseField(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 4; i++ {
		bd.Check(WindowStats{SegmentsMean: 1000})
	}
	if !hasBookmark(bd.Check(WindowStats{SegmentsMean: 2000}), BookmarkDenseField) {
		t.Error("expected dense_field bookmark")
	}
}

func TestBookmarkDetector_SettledFiresOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)

	var fired int
	for i := 0; i < 12; i++ {
		if hasBookmark(bd.Check(WindowStats{OffsetLagMean: 0.1}), BookmarkSettled) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("expected settled to fire once, got %d", fired)
	}

	// Pointer activity resets the streak
	bd.Check(WindowStats{OffsetLagMean: 0.1, PointerFrames: 3})
	fired = 0
	for i := 0; i < settledWindows; i++ {
		if hasBookmark(bd.Check(WindowStats{OffsetLagMean: 0.1}), BookmarkSettled) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("expected settled to fire again after activity, got %d", fired)
	}
}
