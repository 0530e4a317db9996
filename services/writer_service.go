package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"sync"

	"futnews-backend/config"
	"futnews-backend/models"
	"futnews-backend/prompts"
	"futnews-backend/utils"

	openai "github.com/sashabaranov/go-openai"
)

// commonKeywords drives the simple meta-keyword extraction
var commonKeywords = []string{"futebol", "gol", "campeonato", "brasileiro", "copa"}

// contentTypeStyles routes each content type to an author style: results
// and transfers get the excited narrator, analysis and squad news the
// tactical desk, rumors the humorous column.
var contentTypeStyles = map[string]string{
	string(models.ContentTypeMatchResult):      models.AuthorStyleNarracao,
	string(models.ContentTypeTransferNews):     models.AuthorStyleNarracao,
	string(models.ContentTypeTacticalAnalysis): models.AuthorStyleTatico,
	string(models.ContentTypeTeamUpdate):       models.AuthorStyleTatico,
	string(models.ContentTypeRumor):            models.AuthorStyleZoacao,
}

// styleAuthors is the byline shown for each author style
var styleAuthors = map[string]string{
	models.AuthorStyleNarracao: "Voz da Torcida",
	models.AuthorStyleTatico:   "Mesa Tática",
	models.AuthorStyleZoacao:   "Resenha FC",
}

// styleForContentType picks the author style for a source item, defaulting
// to the narration style for unclassified content.
func styleForContentType(contentType string) string {
	if style, ok := contentTypeStyles[contentType]; ok {
		return style
	}
	return models.AuthorStyleNarracao
}

func authorForStyle(style string) string {
	if name, ok := styleAuthors[style]; ok {
		return name
	}
	return "Sports Desk"
}

// ArticleWriter generates article payloads from scraped source items. It
// is a thin collaborator around the LLM: everything downstream treats its
// output as opaque content.
type ArticleWriter struct {
	client       *openai.Client
	cfg          *config.Config
	articleCache sync.Map // content hash -> *models.GeneratedArticle
}

// NewArticleWriter creates a writer for the configured LLM provider
func NewArticleWriter(cfg *config.Config) *ArticleWriter {
	var client *openai.Client

	switch cfg.LLMProvider {
	case "openai":
		clientConfig := openai.DefaultConfig(cfg.OpenAIKey)
		client = openai.NewClientWithConfig(clientConfig)
	case "groq":
		clientConfig := openai.DefaultConfig(cfg.GroqKey)
		clientConfig.BaseURL = cfg.LLMBaseURL
		client = openai.NewClientWithConfig(clientConfig)
	default:
		log.Fatalf("Invalid LLM provider: %s", cfg.LLMProvider)
	}

	return &ArticleWriter{
		client: client,
		cfg:    cfg,
	}
}

// GenerateArticle produces a full article payload for a source item.
// Identical source material is served from cache instead of re-generating.
func (w *ArticleWriter) GenerateArticle(ctx context.Context, item models.SourceItem) (*models.GeneratedArticle, error) {
	style := styleForContentType(item.ContentType)

	hash := contentHash(item.Title, item.Content, item.SourceType, style)
	if cached, ok := w.articleCache.Load(hash); ok {
		log.Printf("Using cached article for %q", item.Title)
		return cached.(*models.GeneratedArticle), nil
	}

	resp, err := w.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: w.cfg.WriterModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.ArticleSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompts.ArticlePrompt(item.Title, item.Content, item.SourceType, style)},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	})
	if err != nil {
		return nil, fmt.Errorf("article generation failed: %w", err)
	}

	content := stripMarkdownFences(resp.Choices[0].Message.Content)

	summary := w.generateSummary(ctx, content)
	category := w.determineCategory(ctx, content)

	article := &models.GeneratedArticle{
		Title:           item.Title,
		Slug:            utils.Slugify(item.Title),
		Content:         content,
		Summary:         summary,
		Category:        category,
		AuthorName:      authorForStyle(style),
		AuthorStyle:     style,
		MetaDescription: truncate(summary, 160),
		MetaKeywords:    extractKeywords(content),
	}

	w.articleCache.Store(hash, article)
	return article, nil
}

// generateSummary asks the LLM for a short summary, falling back to a
// truncated excerpt on failure.
func (w *ArticleWriter) generateSummary(ctx context.Context, content string) string {
	resp, err := w.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: w.cfg.SummaryModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.SummarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		Temperature: 0.3,
		MaxTokens:   100,
	})
	if err != nil {
		log.Printf("Error generating summary: %v", err)
		return truncate(content, 200) + "..."
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// determineCategory classifies the article, defaulting to General
func (w *ArticleWriter) determineCategory(ctx context.Context, content string) string {
	resp, err := w.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: w.cfg.SummaryModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.CategorySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		Temperature: 0.3,
		MaxTokens:   20,
	})
	if err != nil {
		log.Printf("Error determining category: %v", err)
		return "General"
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func contentHash(title, sourceText, sourceType, style string) string {
	sum := sha256.Sum256([]byte(title + "|" + sourceText + "|" + sourceType + "|" + style))
	return hex.EncodeToString(sum[:])
}

func extractKeywords(content string) string {
	seen := map[string]bool{}
	keywords := []string{}
	for _, word := range strings.Fields(strings.ToLower(content)) {
		word = strings.Trim(word, ".,!?;:\"'()")
		if len(word) > 3 && !seen[word] {
			for _, kw := range commonKeywords {
				if word == kw {
					seen[word] = true
					keywords = append(keywords, word)
				}
			}
		}
	}
	return strings.Join(keywords, ",")
}

func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```markdown")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
