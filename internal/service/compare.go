package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"rift-rewind/internal/apperr"
	"rift-rewind/internal/constants"
	"rift-rewind/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// CompareService runs the resolution pipeline for two players concurrently
// and derives the win-rate verdict.
type CompareService struct {
	stats  *StatsService
	logger zerolog.Logger
}

func NewCompareService(stats *StatsService, logger zerolog.Logger) *CompareService {
	return &CompareService{stats: stats, logger: logger}
}

// Compare aggregates both players over the same trailing-window count. Both
// pipelines must complete before the verdict; a failure in either fails the
// comparison.
func (s *CompareService) Compare(ctx context.Context, platform, nameA, tagA, nameB, tagB string, count int) (*domain.ComparisonResult, error) {
	if strings.TrimSpace(nameA) == "" || strings.TrimSpace(nameB) == "" {
		return nil, fmt.Errorf("%w: a and b", apperr.ErrMissingParameter)
	}

	if count <= 0 {
		count = constants.DefaultCompareCount
	}
	opts := StatsOptions{Count: count}

	g, gCtx := errgroup.WithContext(ctx)
	var statsA, statsB *domain.AggregateStats

	g.Go(func() error {
		var err error
		statsA, err = s.stats.PlayerStats(gCtx, platform, nameA, tagA, opts)
		return err
	})
	g.Go(func() error {
		var err error
		statsB, err = s.stats.PlayerStats(gCtx, platform, nameB, tagB, opts)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("comparison pipeline failed")
		return nil, err
	}

	result := &domain.ComparisonResult{
		Region:  platform,
		Players: []*domain.AggregateStats{statsA, statsB},
		Winner:  WinnerByWinRate(statsA, statsB),
	}

	s.logger.Info().
		Str("player_a", statsA.Handle()).
		Str("player_b", statsB.Handle()).
		Str("winner", result.Winner).
		Msg("comparison completed")
	return result, nil
}

// WinnerByWinRate compares overall win rates numerically. Equal values,
// including two empty histories, are a tie. No other dimension participates.
func WinnerByWinRate(a, b *domain.AggregateStats) string {
	rateA, _ := strconv.ParseFloat(a.WinRate, 64)
	rateB, _ := strconv.ParseFloat(b.WinRate, 64)
	switch {
	case rateA > rateB:
		return a.Handle()
	case rateB > rateA:
		return b.Handle()
	default:
		return "tie"
	}
}
