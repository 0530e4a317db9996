package services

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"futnews-backend/models"
	"futnews-backend/utils"
)

// ErrThreadNotFound is returned for lookups of an unknown or expired thread
var ErrThreadNotFound = errors.New("story thread not found")

// portugueseStopwords are dropped before keyword extraction and similarity
// so that threads cluster on football terms, not articles and prepositions.
var portugueseStopwords = map[string]bool{
	"a": true, "o": true, "as": true, "os": true, "um": true, "uma": true,
	"de": true, "do": true, "da": true, "dos": true, "das": true, "em": true,
	"no": true, "na": true, "nos": true, "nas": true, "por": true, "para": true,
	"com": true, "sem": true, "que": true, "mais": true, "mas": true, "foi": true,
	"ser": true, "tem": true, "seu": true, "sua": true, "ele": true, "ela": true,
	"ao": true, "aos": true, "pelo": true, "pela": true, "como": true, "sobre": true,
	"entre": true, "depois": true, "antes": true, "quando": true, "ainda": true,
}

// storyThread groups the articles covering one developing story
type storyThread struct {
	id           int
	title        string
	mainKeywords []string
	articles     []models.TimelineEntry
	createdAt    time.Time
	lastUpdated  time.Time
	engagement   models.ThreadEngagement

	// lastTokens is the tokenized body of the most recent article, used for
	// similarity checks against incoming content
	lastTokens map[string]bool
}

func (t *storyThread) snapshot() models.ThreadData {
	timeline := make([]models.TimelineEntry, len(t.articles))
	copy(timeline, t.articles)
	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Timestamp.Before(timeline[j].Timestamp)
	})

	return models.ThreadData{
		ThreadID:     t.id,
		Title:        t.title,
		MainKeywords: t.mainKeywords,
		ArticleCount: len(t.articles),
		CreatedAt:    t.createdAt,
		LastUpdated:  t.lastUpdated,
		Engagement:   t.engagement,
		Timeline:     timeline,
	}
}

// ContentClusterer groups generated articles into story threads so that
// follow-ups on the same story land together. Similarity is token overlap
// against each thread's most recent article; threads idle past the age
// limit expire.
type ContentClusterer struct {
	mu                  sync.Mutex
	threads             []*storyThread
	nextID              int
	similarityThreshold float64
	maxThreadAge        time.Duration

	// now is swappable for thread-expiry tests
	now func() time.Time
}

// NewContentClusterer creates a clusterer with the production thresholds
func NewContentClusterer() *ContentClusterer {
	return &ContentClusterer{
		similarityThreshold: 0.3,
		maxThreadAge:        7 * 24 * time.Hour,
		now:                 time.Now,
	}
}

// tokenize lowercases text and returns its distinct significant words
func tokenize(text string) map[string]bool {
	tokens := map[string]bool{}
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()[]«»—-")
		if len(word) <= 2 || portugueseStopwords[word] {
			continue
		}
		tokens[word] = true
	}
	return tokens
}

// jaccard is the overlap similarity of two token sets
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for token := range a {
		if b[token] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// extractKeywordsFrom returns the top-N most frequent significant words,
// most frequent first, first-seen order on ties.
func extractKeywordsFrom(text string, topN int) []string {
	counts := map[string]int{}
	order := []string{}
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()[]«»—-")
		if len(word) <= 2 || portugueseStopwords[word] {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	utils.RankByScore(order, func(w string) float64 { return float64(counts[w]) }, utils.Descending)
	return utils.TopN(order, topN)
}

// pruneLocked drops threads idle past the age limit. Caller holds the mutex.
func (c *ContentClusterer) pruneLocked() {
	kept := c.threads[:0]
	cutoff := c.now().Add(-c.maxThreadAge)
	for _, thread := range c.threads {
		if thread.lastUpdated.After(cutoff) {
			kept = append(kept, thread)
		}
	}
	c.threads = kept
}

// findSimilarLocked returns the most similar active thread above the
// threshold, or nil. Caller holds the mutex.
func (c *ContentClusterer) findSimilarLocked(tokens map[string]bool) *storyThread {
	var best *storyThread
	bestSim := 0.0
	for _, thread := range c.threads {
		if sim := jaccard(tokens, thread.lastTokens); sim > bestSim {
			bestSim = sim
			best = thread
		}
	}
	if bestSim >= c.similarityThreshold {
		return best
	}
	return nil
}

// ProcessContent assigns an article to the story thread it continues, or
// opens a new thread when nothing similar is active.
func (c *ContentClusterer) ProcessContent(title, body string, content interface{}) models.ThreadAssignment {
	tokens := tokenize(body)
	entry := models.TimelineEntry{Content: content, Timestamp: c.now()}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked()

	thread := c.findSimilarLocked(tokens)
	isNew := thread == nil
	if isNew {
		thread = &storyThread{
			id:           c.nextID,
			title:        title,
			mainKeywords: extractKeywordsFrom(body, 5),
			createdAt:    c.now(),
		}
		c.nextID++
		c.threads = append(c.threads, thread)
	}

	thread.articles = append(thread.articles, entry)
	thread.lastUpdated = c.now()
	thread.lastTokens = tokens

	return models.ThreadAssignment{
		ThreadID:    thread.id,
		IsNewThread: isNew,
		Thread:      thread.snapshot(),
	}
}

// ActiveThreads returns snapshots of every non-expired thread
func (c *ContentClusterer) ActiveThreads() []models.ThreadData {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked()

	threads := make([]models.ThreadData, 0, len(c.threads))
	for _, thread := range c.threads {
		threads = append(threads, thread.snapshot())
	}
	return threads
}

// ThreadByID returns one thread's snapshot
func (c *ContentClusterer) ThreadByID(id int) (models.ThreadData, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, thread := range c.threads {
		if thread.id == id {
			return thread.snapshot(), nil
		}
	}
	return models.ThreadData{}, ErrThreadNotFound
}

// UpdateThreadEngagement adds engagement counts to a thread
func (c *ContentClusterer) UpdateThreadEngagement(id int, views, shares, comments int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, thread := range c.threads {
		if thread.id == id {
			thread.engagement.Views += views
			thread.engagement.Shares += shares
			thread.engagement.Comments += comments
			return nil
		}
	}
	return ErrThreadNotFound
}
