package services

import (
	"testing"
	"time"

	"futnews-backend/models"
)

func TestFilterDuplicates(t *testing.T) {
	aggregator := NewSourceAggregator()

	tests := []struct {
		name     string
		titles   []string
		expected []string
	}{
		{
			name:     "Substring title is dropped",
			titles:   []string{"Time vence jogo", "O time vence jogo hoje"},
			expected: []string{"Time vence jogo"},
		},
		{
			name:     "Containment works both directions",
			titles:   []string{"Flamengo contrata atacante argentino", "Flamengo contrata"},
			expected: []string{"Flamengo contrata atacante argentino"},
		},
		{
			name:     "Case insensitive",
			titles:   []string{"PALMEIRAS CAMPEÃO", "palmeiras campeão"},
			expected: []string{"PALMEIRAS CAMPEÃO"},
		},
		{
			name:     "Distinct titles survive",
			titles:   []string{"Corinthians empata", "São Paulo vence", "Santos perde"},
			expected: []string{"Corinthians empata", "São Paulo vence", "Santos perde"},
		},
		{
			name:     "Empty batch",
			titles:   []string{},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]models.SourceItem, len(tt.titles))
			for i, title := range tt.titles {
				items[i] = models.SourceItem{Title: title}
			}

			unique := aggregator.FilterDuplicates(items)

			if len(unique) != len(tt.expected) {
				t.Fatalf("got %d items, expected %d", len(unique), len(tt.expected))
			}
			for i, item := range unique {
				if item.Title != tt.expected[i] {
					t.Errorf("item %d = %q, expected %q", i, item.Title, tt.expected[i])
				}
			}
		})
	}
}

func TestScoreItem(t *testing.T) {
	aggregator := NewSourceAggregator()
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	aggregator.now = func() time.Time { return now }

	longContent := make([]byte, 1200)
	for i := range longContent {
		longContent[i] = 'a'
	}

	tests := []struct {
		name     string
		item     models.SourceItem
		expected float64
	}{
		{
			name: "Everything maxed",
			item: models.SourceItem{
				Title:           "Palmeiras goleia no Derby",
				Content:         string(longContent),
				ContentType:     "match_result",
				Source:          "Globo Esporte",
				ScrapedAt:       now.Add(-30 * time.Minute).Format(time.RFC3339),
				EngagementCount: 2000,
				IsTrending:      true,
			},
			// 1 base + 5 engagement + 3 trending + 4 type + 5 source + 2 length + 2 recency
			expected: 22.0,
		},
		{
			name: "Unknown type and source get defaults",
			item: models.SourceItem{
				Title:       "Sem classificação",
				ContentType: "mystery",
				Source:      "blog do zé",
			},
			// 1 base + 0 engagement + 1 type default + 3 source default
			expected: 5.0,
		},
		{
			name: "Unparseable timestamp contributes nothing",
			item: models.SourceItem{
				Title:       "Data quebrada",
				ContentType: "rumor",
				Source:      "lance!",
				ScrapedAt:   "not-a-timestamp",
			},
			// 1 base + 2 rumor + 4 lance!
			expected: 7.0,
		},
		{
			name: "Stale item gets no recency bonus",
			item: models.SourceItem{
				Title:       "Notícia velha",
				ContentType: "team_update",
				Source:      "espn brasil",
				ScrapedAt:   now.Add(-10 * time.Hour).Format(time.RFC3339),
			},
			// 1 base + 2.5 type + 4.5 source
			expected: 8.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := aggregator.ScoreItem(tt.item); got != tt.expected {
				t.Errorf("ScoreItem() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestScoreItem_EngagementTiers(t *testing.T) {
	aggregator := NewSourceAggregator()

	// Same item, engagement only; thresholds are strict greater-than
	tiers := []struct {
		engagement int
		bonus      float64
	}{
		{10, 0}, {11, 1}, {50, 1}, {51, 2}, {100, 2}, {101, 3},
		{500, 3}, {501, 4}, {1000, 4}, {1001, 5},
	}

	for _, tier := range tiers {
		item := models.SourceItem{Title: "t", EngagementCount: tier.engagement}
		// 1 base + bonus + 1 type default + 3 source default
		expected := 5.0 + tier.bonus
		if got := aggregator.ScoreItem(item); got != expected {
			t.Errorf("engagement %d: score = %v, expected %v", tier.engagement, got, expected)
		}
	}
}

func TestSelectTop(t *testing.T) {
	aggregator := NewSourceAggregator()

	items := []models.SourceItem{
		{Title: "Rumor fraco", ContentType: "rumor", Source: "x"},                            // 1+2+3 = 6
		{Title: "Resultado do jogo", ContentType: "match_result", Source: "globo esporte"},   // 1+4+5 = 10
		{Title: "Transferência quente", ContentType: "transfer_news", Source: "lance!"},      // 1+3.5+4 = 8.5
		{Title: "Atualização do elenco", ContentType: "team_update", Source: "espn brasil"},  // 1+2.5+4.5 = 8
		{Title: "Análise tática da rodada", ContentType: "tactical_analysis", Source: "x"},   // 1+3+3 = 7
	}

	top := aggregator.SelectTop(items, 3)

	if len(top) != 3 {
		t.Fatalf("got %d items, expected 3", len(top))
	}
	expected := []string{"Resultado do jogo", "Transferência quente", "Atualização do elenco"}
	for i, title := range expected {
		if top[i].Title != title {
			t.Errorf("position %d = %q, expected %q", i, top[i].Title, title)
		}
	}
}

func TestSelectTop_TieKeepsFirstSeenOrder(t *testing.T) {
	aggregator := NewSourceAggregator()

	// Identical scores: the stable sort must keep batch order
	items := []models.SourceItem{
		{Title: "Primeiro rumor", ContentType: "rumor", Source: "a"},
		{Title: "Segundo rumor", ContentType: "rumor", Source: "b"},
		{Title: "Terceiro rumor", ContentType: "rumor", Source: "c"},
	}

	top := aggregator.SelectTop(items, 10)

	if len(top) != 3 {
		t.Fatalf("got %d items, expected 3", len(top))
	}
	for i, title := range []string{"Primeiro rumor", "Segundo rumor", "Terceiro rumor"} {
		if top[i].Title != title {
			t.Errorf("position %d = %q, expected %q", i, top[i].Title, title)
		}
	}
}

func TestSelectTop_EmptyBatchIsNoop(t *testing.T) {
	aggregator := NewSourceAggregator()

	top := aggregator.SelectTop(nil, 5)
	if len(top) != 0 {
		t.Errorf("expected empty selection, got %d items", len(top))
	}
}
