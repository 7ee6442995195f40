package ui

import (
	"strings"
	"testing"

	"github.com/automoto/fruitrang/shared/scoring"
)

func TestBowlLines(t *testing.T) {
	res := scoring.Result{Bowls: []scoring.BowlResult{
		{Fruits: 2, FruitScore: 8, DiversityScore: 50, Sum: 58},
		{},
	}}
	lines := BowlLines(res)
	want := []string{
		"Bowl 1: 2 fruit   8 + mass 0 + variety 50 = 58",
		"Bowl 2: 0 fruit   0 + mass 0 + variety 0 = 0",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines", len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestPagerStepsThroughPages(t *testing.T) {
	p := Pager{Pages: []string{"move", "throw", "catch"}}

	if p.Page() != "move" || p.Position() != "1/3" || p.Last() {
		t.Fatalf("start = %q %s last=%v", p.Page(), p.Position(), p.Last())
	}
	if !p.Next() || !p.Next() {
		t.Fatal("Next refused before the last page")
	}
	if p.Page() != "catch" || !p.Last() {
		t.Errorf("page = %q last=%v, want catch on the last page", p.Page(), p.Last())
	}
	if p.Next() {
		t.Error("Next moved past the last page")
	}

	p.Reset()
	if p.Page() != "move" {
		t.Errorf("page after reset = %q", p.Page())
	}

	var empty Pager
	if empty.Page() != "" || empty.Next() {
		t.Error("empty pager returned a page")
	}
}

func TestHowToPlayCoversEveryAction(t *testing.T) {
	p := Pager{Pages: HowToPlay}
	var seen []string
	for {
		seen = append(seen, p.Page())
		if !p.Next() {
			break
		}
	}
	if len(seen) != len(HowToPlay) {
		t.Fatalf("paged through %d of %d pages", len(seen), len(HowToPlay))
	}
	for _, word := range []string{"sprint", "throws", "catch", "slices", "bowl"} {
		found := false
		for _, page := range seen {
			if strings.Contains(page, word) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no how-to-play page mentions %q", word)
		}
	}
}
