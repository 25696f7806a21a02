package telemetry

import (
	"fmt"
	"log/slog"
	"math"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkPointerBurst BookmarkType = "pointer_burst"
	BookmarkScrollJump   BookmarkType = "scroll_jump"
	BookmarkDenseField   BookmarkType = "dense_field"
	BookmarkSettled      BookmarkType = "settled"
)

// Detection thresholds.
const (
	burstMinPeak      = 0.05 // Perturbation peak worth noting
	scrollJumpPixels  = 120  // Target change between windows
	denseFactor       = 1.5  // Segments vs rolling mean
	settledLag        = 0.5  // Offset lag in pixels
	settledWindows    = 5
	minHistoryWindows = 3
)

// Bookmark marks a notable window.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Frame       uint64       `csv:"frame"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"frame", b.Frame,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable moments in the frame stream.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	settledCount int
	settled      bool
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < settledWindows {
		historySize = settledWindows
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.historyFull || bd.historyIdx > 0 {
		if b := bd.checkPointerBurst(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkScrollJump(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkDenseField(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}
	if b := bd.checkSettled(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) previous() WindowStats {
	idx := (bd.historyIdx - 1 + bd.historySize) % bd.historySize
	return bd.history[idx]
}

func (bd *BookmarkDetector) checkPointerBurst(stats WindowStats) *Bookmark {
	if stats.PerturbPeakMax < burstMinPeak {
		return nil
	}

	history := bd.getHistory()
	var total float64
	for _, h := range history {
		total += h.PerturbPeakMax
	}
	avg := total / float64(len(history))

	if stats.PerturbPeakMax > avg*2 {
		return &Bookmark{
			Type:        BookmarkPointerBurst,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("Perturbation peak %.3f over %d pointer frames (average %.3f)", stats.PerturbPeakMax, stats.PointerFrames, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkScrollJump(stats WindowStats) *Bookmark {
	prev := bd.previous()
	delta := stats.TargetEnd - prev.TargetEnd
	if math.Abs(delta) < scrollJumpPixels {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkScrollJump,
		Frame:       stats.WindowEndFrame,
		Description: fmt.Sprintf("Parallax target moved %.0fpx to %.0f", delta, stats.TargetEnd),
	}
}

func (bd *BookmarkDetector) checkDenseField(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < minHistoryWindows {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.SegmentsMean
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.SegmentsMean > avg*denseFactor {
		return &Bookmark{
			Type:        BookmarkDenseField,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("Mean segments %.0f is %.1fx average (%.0f)", stats.SegmentsMean, stats.SegmentsMean/avg, avg),
		}
	}
	return nil
}

// checkSettled fires once when the offset has caught up with its target and
// the pointer has been away for settledWindows windows in a row.
func (bd *BookmarkDetector) checkSettled(stats WindowStats) *Bookmark {
	if stats.OffsetLagMean >= settledLag || stats.PointerFrames > 0 {
		bd.settledCount = 0
		bd.settled = false
		return nil
	}

	bd.settledCount++
	if bd.settledCount < settledWindows || bd.settled {
		return nil
	}
	bd.settled = true
	return &Bookmark{
		Type:        BookmarkSettled,
		Frame:       stats.WindowEndFrame,
		Description: fmt.Sprintf("Field at rest for %d windows at offset %.1f", bd.settledCount, stats.OffsetEnd),
	}
}
