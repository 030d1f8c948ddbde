package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/mstrand/cinestream/internal/config"
	"github.com/mstrand/cinestream/internal/jsonutil"
	"github.com/mstrand/cinestream/internal/logger"
	"github.com/mstrand/cinestream/internal/models"
)

// CandidateFetcher is the AI-source collaborator contract: given a category
// or search query, return candidate items or fail. Callers treat any failure
// as "no candidates".
type CandidateFetcher interface {
	FetchCandidates(ctx context.Context, query string) ([]models.Item, error)
}

// candidate mirrors the JSON shape the model is asked to produce. Image
// locators are hydrated locally; the model returns text only.
type candidate struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Synopsis   string   `json:"synopsis"`
	Rating     float64  `json:"rating"`
	Year       int      `json:"year"`
	Genres     []string `json:"genres"`
	Cast       []string `json:"cast"`
	Director   string   `json:"director"`
	Duration   string   `json:"duration"`
	MatchScore int      `json:"matchScore"`
}

type candidatePayload struct {
	Movies []candidate `json:"movies"`
}

// GeminiFetcher implements CandidateFetcher against the Gemini API.
type GeminiFetcher struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     zerolog.Logger
}

// NewGeminiFetcher builds a fetcher over an existing Gemini client.
func NewGeminiFetcher(client *genai.Client, cfg config.AIConfig) *GeminiFetcher {
	return &GeminiFetcher{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		log:     logger.With("ai"),
	}
}

// FetchCandidates asks the model for a small list of catalog items matching
// the query and normalizes the response into Item records with generated
// provenance.
func (f *GeminiFetcher) FetchCandidates(ctx context.Context, query string) ([]models.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	start := time.Now()

	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: buildPrompt(query)}},
	}}

	resp, err := f.client.Models.GenerateContent(ctx, f.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   candidateSchema(),
	})
	if err != nil {
		f.log.Error().Err(err).Str("query", query).Dur("duration", time.Since(start)).Msg("Candidate fetch failed")
		return nil, fmt.Errorf("failed to generate candidates: %w", err)
	}
	if resp == nil || resp.Text() == "" {
		f.log.Warn().Str("query", query).Msg("Empty response from Gemini")
		return nil, fmt.Errorf("received empty response from Gemini API")
	}

	payload, err := jsonutil.ParseJSON[candidatePayload](resp.Text())
	if err != nil {
		f.log.Error().Err(err).Str("query", query).Msg("Failed to parse candidate response")
		return nil, fmt.Errorf("candidate response: %w", err)
	}

	items := make([]models.Item, 0, len(payload.Movies))
	for i, c := range payload.Movies {
		if c.Title == "" {
			continue
		}
		items = append(items, hydrate(c, i))
	}

	f.log.Debug().
		Str("query", query).
		Int("candidates", len(items)).
		Dur("duration", time.Since(start)).
		Msg("Candidate fetch complete")

	return items, nil
}

// buildPrompt asks for a fixed-size list of cinematic titles. Image locators
// are intentionally excluded; the caller hydrates placeholders.
func buildPrompt(query string) string {
	return fmt.Sprintf(
		"Generate a list of 6 distinct, fictional or real movies that fit the category or search query: %q. "+
			"Focus on high-quality, cinematic titles and make the data look realistic. "+
			"Do not include image URLs; those are filled in by the caller.",
		query,
	)
}

func candidateSchema() *genai.Schema {
	stringList := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"movies": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":         {Type: genai.TypeString},
						"title":      {Type: genai.TypeString},
						"synopsis":   {Type: genai.TypeString},
						"rating":     {Type: genai.TypeNumber},
						"year":       {Type: genai.TypeInteger},
						"genres":     stringList,
						"cast":       stringList,
						"director":   {Type: genai.TypeString},
						"duration":   {Type: genai.TypeString},
						"matchScore": {Type: genai.TypeInteger},
					},
					Required: []string{"title", "synopsis", "rating", "year", "genres", "director", "duration"},
				},
			},
		},
	}
}

// hydrate converts a model candidate into a normalized Item. The model
// cannot guarantee stable ids, so missing ids get a generated one; imagery
// is seeded from the title so repeated fetches render consistently.
func hydrate(c candidate, index int) models.Item {
	id := c.ID
	if id == "" {
		id = "gen-" + uuid.NewString()
	}

	seed := strings.ReplaceAll(c.Title, " ", "") + fmt.Sprint(index)

	return models.Normalize(models.Item{
		ID:              id,
		Title:           c.Title,
		Synopsis:        c.Synopsis,
		Rating:          c.Rating,
		ReleaseYear:     c.Year,
		Genres:          c.Genres,
		Cast:            c.Cast,
		Director:        c.Director,
		DurationLabel:   c.Duration,
		MatchScore:      c.MatchScore,
		PosterLocator:   fmt.Sprintf("https://picsum.photos/seed/%s/400/600", seed),
		BackdropLocator: fmt.Sprintf("https://picsum.photos/seed/%s_wide/1280/720", seed),
		Provenance:      models.ProvenanceGenerated,
	})
}
