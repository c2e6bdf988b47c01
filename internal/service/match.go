package service

import (
	"context"
	"fmt"
	"sync"

	"rift-rewind/internal/constants"
	"rift-rewind/internal/domain"
	"rift-rewind/internal/riot"

	"github.com/rs/zerolog"
)

// ListOptions selects how much history the lister walks.
type ListOptions struct {
	// Count is the single-page mode size, capped at 100.
	Count int

	// FullHistory pages backwards until MaxMatches or end of history.
	FullHistory bool
	MaxMatches  int

	// RankedOnly restricts every page to ranked solo/duo.
	RankedOnly bool
}

// MatchService lists match ids and fans out over their detail records.
type MatchService struct {
	api    RiotAPI
	logger zerolog.Logger
}

func NewMatchService(api RiotAPI, logger zerolog.Logger) *MatchService {
	return &MatchService{api: api, logger: logger}
}

// ListMatchIDs returns match ids most recent first, as the upstream orders
// them. In full-history mode pages are requested strictly in sequence so the
// offsets stay correct; a failed page aborts the whole listing.
func (s *MatchService) ListMatchIDs(ctx context.Context, cluster riot.Cluster, puuid string, opts ListOptions) ([]string, error) {
	queue := 0
	if opts.RankedOnly {
		queue = constants.RankedSoloQueueID
	}

	if !opts.FullHistory {
		count := opts.Count
		if count <= 0 {
			count = constants.DefaultMatchCount
		}
		if count > constants.MatchIDPageSize {
			count = constants.MatchIDPageSize
		}
		return s.fetchPage(ctx, cluster, puuid, 0, count, queue)
	}

	maxMatches := opts.MaxMatches
	if maxMatches <= 0 {
		maxMatches = constants.MaxMatchHistory
	}

	var ids []string
	start := 0
	for len(ids) < maxMatches {
		page, err := s.fetchPage(ctx, cluster, puuid, start, constants.MatchIDPageSize, queue)
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		ids = append(ids, page...)
		if len(page) < constants.MatchIDPageSize {
			break
		}
		start += constants.MatchIDPageSize
	}

	if len(ids) > maxMatches {
		ids = ids[:maxMatches]
	}

	s.logger.Debug().
		Str("puuid", puuid).
		Int("count", len(ids)).
		Bool("full_history", true).
		Msg("match ids listed")
	return ids, nil
}

func (s *MatchService) fetchPage(ctx context.Context, cluster riot.Cluster, puuid string, start, count, queue int) ([]string, error) {
	pageCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	page, err := s.api.GetMatchIDs(pageCtx, cluster, puuid, start, count, queue)
	if err != nil {
		return nil, fmt.Errorf("listing match ids at offset %d: %w", start, err)
	}
	return page, nil
}

// FetchMatches requests every match detail concurrently, all in flight at
// once, and recombines the results in input order. Each request settles on
// its own: a failed id is logged and dropped instead of voiding the batch.
func (s *MatchService) FetchMatches(ctx context.Context, cluster riot.Cluster, ids []string) []*riot.Match {
	batchCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	results := make([]*riot.Match, len(ids))
	errs := make([]error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i], errs[i] = s.api.GetMatch(batchCtx, cluster, id)
		}(i, id)
	}
	wg.Wait()

	matches := make([]*riot.Match, 0, len(ids))
	dropped := 0
	for i := range results {
		if errs[i] != nil {
			dropped++
			s.logger.Warn().Err(errs[i]).Str("match_id", ids[i]).Msg("dropping failed match fetch")
			continue
		}
		matches = append(matches, results[i])
	}

	s.logger.Debug().
		Int("requested", len(ids)).
		Int("fetched", len(matches)).
		Int("dropped", dropped).
		Msg("match details fetched")
	return matches
}

// Records projects raw match details down to the target player's line.
// Matches without participant data, or where the player is absent, are
// silently dropped and never counted.
func Records(puuid string, matches []*riot.Match) []domain.MatchRecord {
	records := make([]domain.MatchRecord, 0, len(matches))
	for _, m := range matches {
		if m == nil || len(m.Info.Participants) == 0 {
			continue
		}
		for _, p := range m.Info.Participants {
			if p.PUUID != puuid {
				continue
			}
			records = append(records, domain.MatchRecord{
				MatchID:         m.Metadata.MatchID,
				Champion:        p.ChampionName,
				Kills:           p.Kills,
				Deaths:          p.Deaths,
				Assists:         p.Assists,
				Win:             p.Win,
				Mode:            m.Info.GameMode,
				QueueID:         m.Info.QueueID,
				DurationSeconds: m.Info.GameDuration,
				Timestamp:       m.Info.GameStartTimestamp,
			})
			break
		}
	}
	return records
}
