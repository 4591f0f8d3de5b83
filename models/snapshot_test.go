package models

import (
	"errors"
	"strings"
	"testing"
)

func TestParseBoardCounts(t *testing.T) {
	b := mustParse(t, `
		...
		.*.
		...`)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			c := b.At(x, y)
			if x == 1 && y == 1 {
				if !c.IsMine {
					t.Fatal("expected mine at center")
				}
				continue
			}
			if c.NearbyMines != 1 {
				t.Errorf("(%d, %d): expected 1 nearby mine, got %d", x, y, c.NearbyMines)
			}
		}
	}
	if b.MineCount() != 1 {
		t.Fatalf("expected 1 mine, got %d", b.MineCount())
	}
}

func TestParseBoardMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"..\n...",
		"..\n.?",
	} {
		if _, err := ParseBoard(in); !errors.Is(err, ErrMalformedBoard) {
			t.Errorf("%q: expected ErrMalformedBoard, got %v", in, err)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	board := "Xo.\nfF*\n..."
	in := &Snapshot{Session: "abc", Round: 3, Outcome: Lost.String(), Board: board}

	out, err := in.Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !strings.Contains(out, "outcome: lose") {
		t.Fatalf("expected outcome in YAML, got:\n%s", out)
	}

	loaded, err := LoadSnapshot(out)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if *loaded != *in {
		t.Fatalf("expected %+v, got %+v", *in, *loaded)
	}

	b, err := loaded.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := b.Serialize(); got != board {
		t.Fatalf("restored board differs:\n%s", got)
	}
	if b.MineCount() != 3 || b.FlaggedCount() != 2 || b.RevealedCount() != 2 {
		t.Fatalf("unexpected counts: mines=%d flags=%d revealed=%d", b.MineCount(), b.FlaggedCount(), b.RevealedCount())
	}
}
