package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"rift-rewind/internal/apperr"
	"rift-rewind/internal/config"
	"rift-rewind/internal/domain"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"
)

const summarySystemPrompt = `You are an enthusiastic League of Legends coach.
Create a short, upbeat recap for the player below.
Keep it to 120-160 words. Use second person ("you").`

const comparisonSystemPrompt = `You are an expert League of Legends analyst and coach.
Compare the two players and decide who you'd rather have on your team.
Start your response with either "Player 1: <name>" or "Player 2: <name>" on the
first line to indicate your choice, then explain why in 150-200 words. Be
direct, analytical, and consider all aspects: consistency, champion pool, KDA,
win rate, and overall impact.`

const suggestSystemPrompt = `You are a League of Legends champion-select advisor.
Given a player's most played champions and recent matches, suggest exactly 3
champions they should try next. Respond with ONLY a JSON array of 3 objects,
each with "name" and "reason" fields. No prose outside the JSON.`

// RecapService turns aggregated stats into prose via the Anthropic API. Every
// method degrades to a deterministic template built from the same stats
// fields, so callers never fail just because generation is unavailable.
type RecapService struct {
	client     anthropic.Client
	model      string
	configured bool
	logger     zerolog.Logger
}

func NewRecapService(cfg *config.Config, logger zerolog.Logger) *RecapService {
	s := &RecapService{
		model:      cfg.AnthropicModelID,
		configured: cfg.AnthropicAPIKey != "",
		logger:     logger,
	}
	if s.configured {
		s.client = anthropic.NewClient(option.WithAPIKey(cfg.AnthropicAPIKey))
	} else {
		logger.Warn().Msg("ANTHROPIC_API_KEY not set, recaps use the deterministic fallback")
	}
	return s
}

// Summary produces the player recap. Never returns an error.
func (s *RecapService) Summary(ctx context.Context, handle string, agg *domain.AggregateStats) string {
	prompt := fmt.Sprintf(`Player: %s
Stats (last %d games):
- Win rate: %s%%
- KDA: %s
- Top champions: %s`,
		handle, agg.TotalGames, agg.WinRate, agg.KDA, formatChamps(agg.TopChamps))

	text, err := s.generate(ctx, summarySystemPrompt, prompt)
	if err != nil {
		s.logger.Debug().Err(err).Str("handle", handle).Msg("falling back to template summary")
		return fallbackSummary(handle, agg)
	}
	return text
}

// Comparison produces the head-to-head judgment: which player the model (or
// the fallback) would rather have, plus the written analysis. This verdict is
// advisory only; the win-rate comparison lives in CompareService.
func (s *RecapService) Comparison(ctx context.Context, a, b *domain.AggregateStats) (recommendation, analysis string) {
	prompt := fmt.Sprintf("Player 1: %s\n%s\nPlayer 2: %s\n%s",
		a.Handle(), describePlayer(a), b.Handle(), describePlayer(b))

	text, err := s.generate(ctx, comparisonSystemPrompt, prompt)
	if err != nil {
		s.logger.Debug().Err(err).Msg("falling back to template comparison")
		return fallbackComparison(a, b)
	}

	firstLine, _, _ := strings.Cut(text, "\n")
	switch {
	case strings.Contains(firstLine, "Player 1: "+a.Handle()):
		recommendation = a.Handle()
	case strings.Contains(firstLine, "Player 2: "+b.Handle()):
		recommendation = b.Handle()
	case strings.Contains(strings.ToLower(firstLine), "player 1"):
		recommendation = a.Handle()
	case strings.Contains(strings.ToLower(firstLine), "player 2"):
		recommendation = b.Handle()
	}
	return recommendation, text
}

// SuggestChampions returns exactly three picks. Model output that is not a
// parseable JSON array is replaced by the deterministic fallback rather than
// surfaced as an error.
func (s *RecapService) SuggestChampions(ctx context.Context, topChamps []domain.ChampionCount, matches []domain.MatchRecord) []domain.ChampionSuggestion {
	payload, _ := json.Marshal(map[string]any{
		"topChamps": topChamps,
		"matches":   matches,
	})

	text, err := s.generate(ctx, suggestSystemPrompt, string(payload))
	if err == nil {
		if suggestions := parseSuggestions(text); suggestions != nil {
			return suggestions
		}
		s.logger.Debug().Msg("suggestion output not parseable, using fallback")
	}
	return fallbackSuggestions(topChamps)
}

func (s *RecapService) generate(ctx context.Context, system, user string) (string, error) {
	if !s.configured {
		return "", apperr.ErrGenerationUnavailable
	}

	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: 400,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", apperr.ErrGenerationUnavailable, err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", apperr.ErrGenerationUnavailable
	}
	return text, nil
}

func describePlayer(a *domain.AggregateStats) string {
	return fmt.Sprintf(`- Win rate: %s%%
- KDA: %s
- Total games: %d
- Top champions: %s
- Lifetime stats: %d kills, %d deaths, %d assists`,
		a.WinRate, a.KDA, a.TotalGames, formatChamps(a.TopChamps),
		a.LifetimeKills, a.LifetimeDeaths, a.LifetimeAssists)
}

func formatChamps(champs []domain.ChampionCount) string {
	if len(champs) == 0 {
		return "none yet"
	}
	parts := make([]string, len(champs))
	for i, c := range champs {
		parts[i] = fmt.Sprintf("%s (%d)", c.Name, c.Games)
	}
	return strings.Join(parts, ", ")
}

func fallbackSummary(handle string, agg *domain.AggregateStats) string {
	names := make([]string, len(agg.TopChamps))
	for i, c := range agg.TopChamps {
		names[i] = c.Name
	}
	champs := strings.Join(names, ", ")
	if champs == "" {
		champs = "none yet"
	}
	return fmt.Sprintf("Demo summary for %s: %s%% win rate, KDA %s. Top champs: %s.",
		handle, agg.WinRate, agg.KDA, champs)
}

func fallbackComparison(a, b *domain.AggregateStats) (string, string) {
	winner := b.Handle()
	rateA, _ := strconv.ParseFloat(a.WinRate, 64)
	rateB, _ := strconv.ParseFloat(b.WinRate, 64)
	if rateA > rateB {
		winner = a.Handle()
	}
	analysis := fmt.Sprintf("Demo comparison: %s has %s%% win rate vs %s with %s%% win rate. I'd pick %s for their better performance.",
		a.Handle(), a.WinRate, b.Handle(), b.WinRate, winner)
	return winner, analysis
}

// fallbackSuggestions pads the player's most played champions out to three
// with well-rounded starters.
func fallbackSuggestions(topChamps []domain.ChampionCount) []domain.ChampionSuggestion {
	staples := []domain.ChampionSuggestion{
		{Name: "Ahri", Reason: "Safe, mobile mid laner that fits most team comps."},
		{Name: "Garen", Reason: "Forgiving top laner for building consistency."},
		{Name: "Lux", Reason: "Long-range poke and utility from a safe distance."},
	}

	suggestions := make([]domain.ChampionSuggestion, 0, 3)
	seen := make(map[string]bool)
	for _, c := range topChamps {
		if len(suggestions) == 3 {
			break
		}
		suggestions = append(suggestions, domain.ChampionSuggestion{
			Name:   c.Name,
			Reason: fmt.Sprintf("Your most played pick with %d recent games - keep the comfort going.", c.Games),
		})
		seen[c.Name] = true
	}
	for _, s := range staples {
		if len(suggestions) == 3 {
			break
		}
		if seen[s.Name] {
			continue
		}
		suggestions = append(suggestions, s)
	}
	return suggestions
}

func parseSuggestions(text string) []domain.ChampionSuggestion {
	// Models sometimes wrap JSON in a code fence.
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var suggestions []domain.ChampionSuggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &suggestions); err != nil {
		return nil
	}
	if len(suggestions) < 3 {
		return nil
	}
	return suggestions[:3]
}
