package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"darshan/internal/config"
	"darshan/internal/metrics"
	"darshan/internal/models"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

// ApologyMessage is what callers show when the assistant cannot answer.
const ApologyMessage = "Sorry, I'm having trouble connecting right now. Please try again later."

var (
	// ErrUnavailable means the assistant is not configured or not reachable.
	ErrUnavailable = errors.New("assistant unavailable")

	// ErrNoInterests rejects an itinerary request with nothing to plan around.
	ErrNoInterests = errors.New("at least one interest is required")

	// ErrInvalidDuration rejects a trip shorter than one day.
	ErrInvalidDuration = errors.New("duration must be at least one day")
)

const systemPrompt = "You are Darshan, a friendly and knowledgeable tour guide for the Jharkhand region of India. " +
	"Answer questions about destinations, culture, food, festivals and travel logistics. " +
	"Keep answers concise and practical. If asked about something outside Jharkhand tourism, " +
	"gently steer the conversation back."

// Client wraps the Gemini API for the concierge chat and the itinerary
// planner. Requests are rate limited client-side.
type Client struct {
	client   *genai.Client
	model    *genai.GenerativeModel
	planner  *genai.GenerativeModel
	limiter  *rate.Limiter
	language string
	logger   *zerolog.Logger
}

func New(ctx context.Context, cfg config.AssistantConfig, logger *zerolog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrUnavailable
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create assistant client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}

	planner := client.GenerativeModel(cfg.Model)
	planner.GenerationConfig.ResponseMIMEType = "application/json"
	planner.GenerationConfig.ResponseSchema = itinerarySchema()

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		client:   client,
		model:    model,
		planner:  planner,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		language: cfg.Language,
		logger:   logger,
	}, nil
}

// Chat sends one concierge message and returns the reply text. An empty
// language falls back to the configured default.
func (c *Client) Chat(ctx context.Context, message, language string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.New("message is empty")
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	if language == "" {
		language = c.language
	}
	prompt := message
	if language != "" {
		prompt = fmt.Sprintf("%s\n\nRespond in %s.", message, language)
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		metrics.IncAssistant("error")
		c.logger.Error().Err(err).Msg("assistant chat request failed")
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	metrics.IncAssistant("success")
	return collectText(resp), nil
}

// PlanItinerary asks the model for a structured day-by-day plan. Request
// shape is validated locally first so a bad request never spends quota.
func (c *Client) PlanItinerary(ctx context.Context, req models.ItineraryRequest) ([]models.ItineraryDay, error) {
	if len(req.Interests) == 0 {
		return nil, ErrNoInterests
	}
	if req.DurationDays < 1 {
		return nil, ErrInvalidDuration
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	prompt := buildItineraryPrompt(req)
	resp, err := c.planner.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		metrics.IncAssistant("error")
		c.logger.Error().Err(err).Msg("itinerary request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	days, err := parseItinerary(collectText(resp))
	if err != nil {
		metrics.IncAssistant("error")
		return nil, err
	}

	metrics.IncAssistant("success")
	return days, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.client.Close()
}

func buildItineraryPrompt(req models.ItineraryRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan a %d-day trip to Jharkhand, India.\n", req.DurationDays)
	fmt.Fprintf(&sb, "Interests: %s.\n", strings.Join(req.Interests, ", "))
	if req.BudgetTier != "" {
		fmt.Fprintf(&sb, "Budget tier: %s.\n", req.BudgetTier)
	}
	if req.Notes != "" {
		fmt.Fprintf(&sb, "Additional notes: %s.\n", req.Notes)
	}
	sb.WriteString("Produce a realistic day-by-day itinerary with timed activities. ")
	fmt.Fprintf(&sb, "Use one of %s, %s, %s or %s as each activity's category.",
		models.ActivitySightseeing, models.ActivityFood, models.ActivityTravel, models.ActivityStay)
	return sb.String()
}

func itinerarySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"itinerary": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"day":   {Type: genai.TypeString},
						"title": {Type: genai.TypeString},
						"activities": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"time":        {Type: genai.TypeString},
									"description": {Type: genai.TypeString},
									"category":    {Type: genai.TypeString},
								},
								Required: []string{"time", "description", "category"},
							},
						},
					},
					Required: []string{"day", "title", "activities"},
				},
			},
		},
		Required: []string{"itinerary"},
	}
}

func parseItinerary(raw string) ([]models.ItineraryDay, error) {
	var envelope struct {
		Itinerary []models.ItineraryDay `json:"itinerary"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse itinerary response: %w", err)
	}
	if len(envelope.Itinerary) == 0 {
		return nil, errors.New("itinerary response is empty")
	}
	return envelope.Itinerary, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}
