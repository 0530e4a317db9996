package services

import (
	"container/heap"

	"futnews-backend/models"
)

// itemHeap is a min-heap over the content-item ordering: the "smallest"
// element is the one with the highest score (oldest first on ties), so
// Pop always yields the next item to publish.
type itemHeap []*models.ContentItem

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].Less(h[j]) }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*models.ContentItem)) }

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// PublishQueue holds three independent priority queues, one per publish
// type. DISCARD items are never enqueued.
type PublishQueue struct {
	articles  itemHeap
	summaries itemHeap
	social    itemHeap
	seq       uint64
}

// NewPublishQueue creates an empty queue set
func NewPublishQueue() *PublishQueue {
	return &PublishQueue{}
}

// Add pushes an item onto the queue for its publish type. Items with a
// publish type outside the three queues are silently ignored.
func (q *PublishQueue) Add(item *models.ContentItem) {
	q.seq++
	item.Seq = q.seq

	switch item.PublishType {
	case models.PublishTypeFullArticle:
		heap.Push(&q.articles, item)
	case models.PublishTypeSummary:
		heap.Push(&q.summaries, item)
	case models.PublishTypeSocial:
		heap.Push(&q.social, item)
	}
}

// NextArticle pops the highest priority article, or nil if none is queued
func (q *PublishQueue) NextArticle() *models.ContentItem {
	return popItem(&q.articles)
}

// NextSummary pops the highest priority summary, or nil if none is queued
func (q *PublishQueue) NextSummary() *models.ContentItem {
	return popItem(&q.summaries)
}

// NextSocial pops the highest priority social post, or nil if none is queued
func (q *PublishQueue) NextSocial() *models.ContentItem {
	return popItem(&q.social)
}

// Pending returns the number of queued items per publish type
func (q *PublishQueue) Pending() (articles, summaries, social int) {
	return q.articles.Len(), q.summaries.Len(), q.social.Len()
}

func popItem(h *itemHeap) *models.ContentItem {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(*models.ContentItem)
}
