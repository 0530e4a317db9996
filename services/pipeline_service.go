package services

import (
	"context"
	"log"
	"time"

	"futnews-backend/config"
	"futnews-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SourceProvider is implemented by the scraping collaborators. The
// pipeline never fetches anything itself.
type SourceProvider interface {
	Name() string
	Scrape(ctx context.Context) ([]models.SourceItem, error)
}

// PipelineService runs the periodic content cycle: gather scraped items,
// filter and rank them, generate articles, schedule publication and
// persist the results. Single-flight: one cycle at a time.
type PipelineService struct {
	cfg        *config.Config
	db         *gorm.DB
	providers  []SourceProvider
	aggregator *SourceAggregator
	writer     *ArticleWriter
	scheduler  *ContentScheduler
	articles   *ArticleService
	clusterer  *ContentClusterer
}

// NewPipelineService wires the pipeline stages together
func NewPipelineService(
	cfg *config.Config,
	db *gorm.DB,
	aggregator *SourceAggregator,
	writer *ArticleWriter,
	scheduler *ContentScheduler,
	articles *ArticleService,
	clusterer *ContentClusterer,
) *PipelineService {
	return &PipelineService{
		cfg:        cfg,
		db:         db,
		aggregator: aggregator,
		writer:     writer,
		scheduler:  scheduler,
		articles:   articles,
		clusterer:  clusterer,
	}
}

// RegisterProvider adds a scraping collaborator to the cycle
func (p *PipelineService) RegisterProvider(provider SourceProvider) {
	p.providers = append(p.providers, provider)
}

// GatherSourceData collects items from every provider, removes duplicates
// and keeps the top-N candidates. A provider failure skips that provider,
// never the cycle; zero items is a valid outcome.
func (p *PipelineService) GatherSourceData(ctx context.Context) []models.SourceItem {
	allItems := []models.SourceItem{}

	for _, provider := range p.providers {
		items, err := provider.Scrape(ctx)
		if err != nil {
			log.Printf("Provider %s failed: %v", provider.Name(), err)
			continue
		}
		if len(items) > 0 {
			allItems = append(allItems, items...)
			log.Printf("Gathered %d items from %s", len(items), provider.Name())
		}
	}

	selected := p.aggregator.SelectTop(allItems, p.cfg.PostsPerDay)
	log.Printf("Selected top %d of %d gathered items", len(selected), len(allItems))
	return selected
}

// RunCycle executes one complete pipeline cycle
func (p *PipelineService) RunCycle(ctx context.Context) error {
	log.Println("Starting pipeline cycle...")

	items := p.GatherSourceData(ctx)
	if len(items) == 0 {
		log.Println("No source data gathered")
		return nil
	}

	generated := 0
	for _, item := range items {
		if err := p.processItem(ctx, item); err != nil {
			// One bad item must not abort the batch
			log.Printf("Error processing item %q: %v", item.Title, err)
			continue
		}
		generated++
	}

	if removed, err := p.articles.CleanupOldDrafts(24 * time.Hour); err != nil {
		log.Printf("Draft cleanup failed: %v", err)
	} else if removed > 0 {
		log.Printf("Removed %d old drafts", removed)
	}

	log.Printf("Pipeline cycle completed: %d articles generated", generated)
	return nil
}

func (p *PipelineService) processItem(ctx context.Context, item models.SourceItem) error {
	contentType, err := models.ParseContentType(item.ContentType)
	if err != nil {
		return err
	}

	article, err := p.writer.GenerateArticle(ctx, item)
	if err != nil {
		return err
	}

	result, err := p.scheduler.ScheduleContent(
		article,
		contentType,
		item.EngagementCount,
		item.IsTrending,
		item.HasEngagement,
	)
	if err != nil {
		return err
	}

	if !result.Scheduled {
		log.Printf("Item %q not scheduled: %s", item.Title, result.Reason)
		return nil
	}

	row := models.Article{
		ID:              uuid.NewString(),
		Slug:            article.Slug,
		Title:           article.Title,
		Content:         article.Content,
		Summary:         article.Summary,
		Category:        article.Category,
		AuthorName:      article.AuthorName,
		AuthorStyle:     article.AuthorStyle,
		SourceURL:       item.URL,
		SourceType:      item.SourceType,
		Status:          models.ArticleStatusPublished,
		MetaDescription: article.MetaDescription,
		MetaKeywords:    article.MetaKeywords,
		IsTrending:      item.IsTrending,
		PublishedAt:     time.Now(),
	}
	if err := p.db.Create(&row).Error; err != nil {
		return err
	}

	assignment := p.clusterer.ProcessContent(article.Title, article.Content, article.Slug)
	if assignment.IsNewThread {
		log.Printf("Opened story thread %d for %q", assignment.ThreadID, article.Title)
	} else {
		log.Printf("Added %q to story thread %d (%d articles)",
			article.Title, assignment.ThreadID, assignment.Thread.ArticleCount)
	}

	log.Printf("Scheduled %q as %s at %s (score %.1f)",
		article.Title, result.PublishType, result.PublishTime, result.Score)
	return nil
}

// Run loops RunCycle at the configured interval until the context is
// cancelled. Errors back off for a minute instead of waiting the full
// interval.
func (p *PipelineService) Run(ctx context.Context) {
	interval := time.Duration(p.cfg.ScrapeIntervalMinutes) * time.Minute
	log.Printf("Pipeline loop started, interval %s", interval)

	for {
		wait := interval
		if err := p.RunCycle(ctx); err != nil {
			log.Printf("Pipeline cycle error: %v", err)
			wait = time.Minute
		}

		select {
		case <-ctx.Done():
			log.Println("Pipeline loop stopped")
			return
		case <-time.After(wait):
		}
	}
}
