package prompts

import "fmt"

// ArticleSystemPrompt sets the journalist persona for article generation
const ArticleSystemPrompt = "You are a professional sports journalist specializing in football (soccer). Write engaging, accurate, and well-structured articles."

// styleInstructions carries the per-style writing directions, keyed by the
// models.AuthorStyle* values.
var styleInstructions = map[string]string{
	"narracao": "Escreva como um narrador de futebol empolgado, usando expressões típicas " +
		"da narração esportiva brasileira. Seja energético e dramático.",
	"tatico": "Analise taticamente o jogo como um comentarista profissional, focando em " +
		"aspectos técnicos e estratégicos, mas mantendo uma linguagem acessível.",
	"zoacao": "Escreva de forma bem-humorada e descontraída, usando memes do futebol " +
		"brasileiro e gírias populares. Seja engraçado mas não ofensivo.",
}

// StyleInstruction returns the writing direction for an author style,
// defaulting to the narration style for anything unknown.
func StyleInstruction(style string) string {
	if instruction, ok := styleInstructions[style]; ok {
		return instruction
	}
	return styleInstructions["narracao"]
}

// SummarySystemPrompt produces the short article summary
const SummarySystemPrompt = "Create a brief summary of this football article in 2-3 sentences."

// CategorySystemPrompt classifies a generated article
const CategorySystemPrompt = "Categorize this football article into one of these categories: Transfer News, Match Report, Player News, Team News, Analysis, Opinion. Return ONLY the category name."

// ArticlePrompt builds the user prompt for article generation from a
// scraped source item and the chosen author style.
func ArticlePrompt(title, sourceText, sourceType, style string) string {
	return fmt.Sprintf(`Write a Brazilian football article based on the following information:

Title: %s

Source Content: %s

Type: %s

Writing Style:
%s

Guidelines:
1. Write in Brazilian Portuguese
2. Use engaging and dynamic language
3. Include relevant context and background
4. Keep it concise (500-700 words)
5. Focus on key facts and analysis
6. Maintain journalistic integrity

Please structure the article with:
- Engaging introduction
- Main content with clear paragraphs
- Conclusion or future implications`, title, sourceText, sourceType, StyleInstruction(style))
}
