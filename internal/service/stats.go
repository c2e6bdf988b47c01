package service

import (
	"context"

	"rift-rewind/internal/constants"
	"rift-rewind/internal/domain"
	"rift-rewind/internal/riot"
	"rift-rewind/internal/stats"

	"github.com/rs/zerolog"
)

// StatsOptions selects the history window and the per-window breakdown.
type StatsOptions struct {
	Count       int
	FullHistory bool
	MaxMatches  int
	RankedOnly  bool
	Windows     []int
}

// StatsService runs the full resolution pipeline for one player: identity →
// match ids → match details → aggregation.
type StatsService struct {
	players *PlayerService
	matches *MatchService
	logger  zerolog.Logger
}

func NewStatsService(players *PlayerService, matches *MatchService, logger zerolog.Logger) *StatsService {
	return &StatsService{players: players, matches: matches, logger: logger}
}

// PlayerStats resolves the handle and aggregates its recent matches. An empty
// match history is not an error; it yields the zero-valued aggregate.
func (s *StatsService) PlayerStats(ctx context.Context, platform, name, tag string, opts StatsOptions) (*domain.AggregateStats, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	identity, err := s.players.Resolve(ctx, platform, name, tag)
	if err != nil {
		return nil, err
	}

	cluster := riot.ClusterFor(platform)

	ids, err := s.matches.ListMatchIDs(ctx, cluster, identity.PUUID, ListOptions{
		Count:       opts.Count,
		FullHistory: opts.FullHistory,
		MaxMatches:  opts.MaxMatches,
		RankedOnly:  opts.RankedOnly,
	})
	if err != nil {
		return nil, err
	}

	windows := opts.Windows
	if len(windows) == 0 {
		windows = constants.DefaultWindows
	}

	if len(ids) == 0 {
		s.logger.Info().Str("puuid", identity.PUUID).Msg("no matches found for player")
		return stats.Aggregate(*identity, nil, windows), nil
	}

	matches := s.matches.FetchMatches(ctx, cluster, ids)
	records := Records(identity.PUUID, matches)

	agg := stats.Aggregate(*identity, records, windows)
	s.logger.Info().
		Str("puuid", identity.PUUID).
		Int("matches_analyzed", agg.MatchesAnalyzed).
		Str("win_rate", agg.WinRate).
		Str("kda", agg.KDA).
		Msg("player stats aggregated")
	return agg, nil
}
