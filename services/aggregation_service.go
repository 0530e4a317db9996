package services

import (
	"strings"
	"time"

	"futnews-backend/models"
	"futnews-backend/utils"
)

// sourceTypeBonuses ranks content types for pre-selection. This table is
// deliberately separate from the scorer's importance weights: the two
// scoring systems were never reconciled and merging them would silently
// change ranking behavior.
var sourceTypeBonuses = map[string]float64{
	"MATCH_RESULT":      4.0,
	"TRANSFER_NEWS":     3.5,
	"TACTICAL_ANALYSIS": 3.0,
	"TEAM_UPDATE":       2.5,
	"RUMOR":             2.0,
}

// sourceCredibility scores the known Brazilian football outlets. Unknown
// sources get a neutral 3.0 rather than being rejected.
var sourceCredibility = map[string]float64{
	"globo esporte": 5.0,
	"espn brasil":   4.5,
	"lance!":        4.0,
}

// SourceAggregator filters and ranks the raw candidate pool from all
// scrapers before anything reaches the AI writer or the scheduler. It is
// lenient on malformed fields: one odd item must never abort a batch.
type SourceAggregator struct {
	// now is swappable for recency-bonus tests
	now func() time.Time
}

// NewSourceAggregator creates an aggregator
func NewSourceAggregator() *SourceAggregator {
	return &SourceAggregator{now: time.Now}
}

// FilterDuplicates drops items whose title contains, or is contained in,
// an already kept title (case-insensitive). First seen wins.
func (a *SourceAggregator) FilterDuplicates(items []models.SourceItem) []models.SourceItem {
	seenTitles := []string{}
	unique := []models.SourceItem{}

	for _, item := range items {
		title := strings.ToLower(item.Title)
		duplicate := false
		for _, seen := range seenTitles {
			if strings.Contains(seen, title) || strings.Contains(title, seen) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			seenTitles = append(seenTitles, title)
			unique = append(unique, item)
		}
	}

	return unique
}

// ScoreItem computes the pre-selection heuristic score used to rank the
// candidate pool. Distinct from ContentScorer's formula.
func (a *SourceAggregator) ScoreItem(item models.SourceItem) float64 {
	// Base score
	score := 1.0

	// Engagement score (0-5)
	engagement := item.EngagementCount
	switch {
	case engagement > 1000:
		score += 5.0
	case engagement > 500:
		score += 4.0
	case engagement > 100:
		score += 3.0
	case engagement > 50:
		score += 2.0
	case engagement > 10:
		score += 1.0
	}

	// Trending bonus
	if item.IsTrending {
		score += 3.0
	}

	// Content type score
	if bonus, ok := sourceTypeBonuses[strings.ToUpper(item.ContentType)]; ok {
		score += bonus
	} else {
		score += 1.0
	}

	// Source credibility score
	if credibility, ok := sourceCredibility[strings.ToLower(item.Source)]; ok {
		score += credibility
	} else {
		score += 3.0
	}

	// Content length score (0-2)
	contentLength := len(item.Content)
	if contentLength > 1000 {
		score += 2.0
	} else if contentLength > 500 {
		score += 1.0
	}

	// Recent content bonus; unparseable timestamps contribute nothing
	if item.ScrapedAt != "" {
		if scrapedTime, err := parseScrapedAt(item.ScrapedAt); err == nil {
			ageHours := a.now().Sub(scrapedTime).Hours()
			if ageHours < 1 {
				score += 2.0
			} else if ageHours < 3 {
				score += 1.0
			}
		}
	}

	return score
}

// SelectTop filters duplicates, ranks the remainder by the heuristic score
// and returns at most maxItems of them, best first.
func (a *SourceAggregator) SelectTop(items []models.SourceItem, maxItems int) []models.SourceItem {
	unique := a.FilterDuplicates(items)
	utils.RankByScore(unique, a.ScoreItem, utils.Descending)
	return utils.TopN(unique, maxItems)
}

func parseScrapedAt(value string) (time.Time, error) {
	// Scrapers emit ISO-8601, with or without zone
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
}
