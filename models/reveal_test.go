package models

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func mustParse(t *testing.T, s string) *Board {
	t.Helper()
	b, err := ParseBoard(s)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	return b
}

func TestRevealNumberedCellDoesNotPropagate(t *testing.T) {
	b := mustParse(t, `
		...
		.*.
		...`)
	if err := Reveal(b, 0, 0); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if n := b.RevealedCount(); n != 1 {
		t.Fatalf("expected only (0, 0) revealed, got %d cells:\n%s", n, b.Serialize())
	}
	if c := b.At(0, 0); !c.IsRevealed || c.NearbyMines != 1 {
		t.Fatalf("unexpected (0, 0): %+v", *c)
	}
}

func TestRevealFloodFillStopsAtBorder(t *testing.T) {
	b := mustParse(t, `
		.....
		.....
		...**
		.....
		*....`)
	if err := Reveal(b, 0, 0); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	want := strings.Join([]string{
		"ooooo",
		"ooooo",
		"ooo**",
		"ooo..",
		"*....",
	}, "\n")
	if got := b.Serialize(); got != want {
		t.Fatalf("unexpected board:\n%s\nwant:\n%s", got, want)
	}
}

func TestRevealAllSafeBoard(t *testing.T) {
	for _, start := range []Point{{0, 0}, {4, 4}, {8, 3}} {
		b, err := Generate(DefaultSize, 0, rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if err := Reveal(b, start.X, start.Y); err != nil {
			t.Fatalf("Reveal: %v", err)
		}
		if n := b.RevealedCount(); n != DefaultSize*DefaultSize {
			t.Errorf("start %v: expected whole board revealed, got %d cells", start, n)
		}
	}
}

func TestRevealMineRevealsOnlyTarget(t *testing.T) {
	b := mustParse(t, `
		*..
		...
		...`)
	if err := Reveal(b, 0, 0); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if got := b.Serialize(); got != "X..\n...\n..." {
		t.Fatalf("unexpected board:\n%s", got)
	}
}

func TestRevealClearsFlagsInRegion(t *testing.T) {
	b := mustParse(t, `
		..f
		...
		...`)
	if err := Reveal(b, 0, 0); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if c := b.At(2, 0); !c.IsRevealed || c.IsFlagged {
		t.Fatalf("expected flooded cell revealed and unflagged, got %+v", *c)
	}
}

func TestRevealOutOfBounds(t *testing.T) {
	b := NewBoard(3)
	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if err := Reveal(b, p.X, p.Y); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("%v: expected ErrInvalidCoordinate, got %v", p, err)
		}
	}
	if n := b.RevealedCount(); n != 0 {
		t.Fatalf("rejected reveal changed the board: %d cells revealed", n)
	}
}

func TestRevealProperties(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b, err := Generate(12, DefaultMineProbability, rng)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		x, y := rng.Intn(b.Size), rng.Intn(b.Size)
		if b.At(x, y).IsMine {
			continue
		}
		if err := Reveal(b, x, y); err != nil {
			t.Fatalf("seed %d: Reveal: %v", seed, err)
		}

		for cy := 0; cy < b.Size; cy++ {
			for cx := 0; cx < b.Size; cx++ {
				c := b.At(cx, cy)
				if c.IsRevealed && c.IsMine {
					t.Fatalf("seed %d: flood fill revealed mine at (%d, %d)", seed, cx, cy)
				}
				if !c.IsRevealed || c.NearbyMines != 0 {
					continue
				}
				for _, n := range b.Neighbors(cx, cy) {
					if !b.At(n.X, n.Y).IsRevealed {
						t.Fatalf("seed %d: (%d, %d) hidden next to revealed zero (%d, %d)", seed, n.X, n.Y, cx, cy)
					}
				}
			}
		}

		before := b.Serialize()
		if err := Reveal(b, x, y); err != nil {
			t.Fatalf("seed %d: second Reveal: %v", seed, err)
		}
		if after := b.Serialize(); after != before {
			t.Fatalf("seed %d: second reveal changed the board", seed)
		}
	}
}
