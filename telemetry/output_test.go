package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/topo/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("expected nil manager for empty dir")
	}

	// Every method is a no-op on nil
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Error(err)
	}
	if err := om.WriteBookmark(Bookmark{}); err != nil {
		t.Error(err)
	}
	if err := om.WriteConfig(config.Defaults()); err != nil {
		t.Error(err)
	}
	if p, err := om.WriteSnapshot(&Snapshot{}); p != "" || err != nil {
		t.Errorf("expected no snapshot, got %q %v", p, err)
	}
	if om.Dir() != "" || om.Path("x") != "" {
		t.Error("expected empty paths")
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
}

func TestOutputManagerWritesHeaderOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := om.WriteWindow(WindowStats{WindowEndFrame: uint64(i * 120), SegmentsMean: 42}); err != nil {
			t.Fatalf("WriteWindow failed: %v", err)
		}
		if err := om.WritePerf(PerfStats{FramesPerSecond: 500}, uint64(i*120)); err != nil {
			t.Fatalf("WritePerf failed: %v", err)
		}
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkSettled, Frame: 360, Description: "at rest"}); err != nil {
		t.Fatalf("WriteBookmark failed: %v", err)
	}
	if err := om.WriteConfig(config.Defaults()); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	frames := readLines(t, filepath.Join(dir, "frames.csv"))
	if len(frames) != 4 {
		t.Fatalf("expected header + 3 rows, got %d lines", len(frames))
	}
	if !strings.HasPrefix(frames[0], "window_end,time,frames") {
		t.Errorf("unexpected header %q", frames[0])
	}
	if !strings.HasPrefix(frames[3], "360,") {
		t.Errorf("unexpected last row %q", frames[3])
	}

	perf := readLines(t, filepath.Join(dir, "perf.csv"))
	if len(perf) != 4 {
		t.Errorf("expected header + 3 perf rows, got %d", len(perf))
	}
	if !strings.Contains(perf[0], "perturb_pct") {
		t.Errorf("expected phase columns in perf header, got %q", perf[0])
	}

	bookmarks := readLines(t, filepath.Join(dir, "bookmarks.csv"))
	if len(bookmarks) != 2 || !strings.HasPrefix(bookmarks[1], "settled,360,") {
		t.Errorf("unexpected bookmarks %q", bookmarks)
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("expected config.yaml: %v", err)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}
