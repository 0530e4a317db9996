package utils

import "testing"

type scored struct {
	name  string
	score float64
}

func TestRankByScore(t *testing.T) {
	items := []scored{
		{"low", 2}, {"high", 9}, {"mid", 5},
	}

	RankByScore(items, func(s scored) float64 { return s.score }, Descending)
	if items[0].name != "high" || items[1].name != "mid" || items[2].name != "low" {
		t.Errorf("descending order wrong: %v", items)
	}

	RankByScore(items, func(s scored) float64 { return s.score }, Ascending)
	if items[0].name != "low" || items[1].name != "mid" || items[2].name != "high" {
		t.Errorf("ascending order wrong: %v", items)
	}
}

func TestRankByScore_StableOnTies(t *testing.T) {
	items := []scored{
		{"first", 5}, {"second", 5}, {"third", 5}, {"top", 8},
	}

	RankByScore(items, func(s scored) float64 { return s.score }, Descending)

	expected := []string{"top", "first", "second", "third"}
	for i, name := range expected {
		if items[i].name != name {
			t.Errorf("position %d = %q, expected %q", i, items[i].name, name)
		}
	}
}

func TestTopN(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	if got := TopN(items, 3); len(got) != 3 {
		t.Errorf("TopN(5 items, 3) = %d items", len(got))
	}
	if got := TopN(items, 10); len(got) != 5 {
		t.Errorf("TopN(5 items, 10) = %d items", len(got))
	}
	if got := TopN(items, 0); len(got) != 0 {
		t.Errorf("TopN(5 items, 0) = %d items", len(got))
	}
	if got := TopN(items, -1); len(got) != 5 {
		t.Errorf("negative n must leave the slice untouched, got %d items", len(got))
	}
}
