package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"rift-rewind/internal/apperr"
	"rift-rewind/internal/constants"
	"rift-rewind/internal/domain"
	"rift-rewind/internal/riot"

	"github.com/rs/zerolog"
)

// Riot IDs allow letters, digits, spaces and a few punctuation marks.
var handlePattern = regexp.MustCompile(`^[\p{L}\p{N}_\s'.-]+$`)

// PlayerService resolves a typed handle to a stable account identity.
type PlayerService struct {
	api    RiotAPI
	logger zerolog.Logger
}

func NewPlayerService(api RiotAPI, logger zerolog.Logger) *PlayerService {
	return &PlayerService{api: api, logger: logger}
}

// ValidateHandle rejects malformed names before any network call is made.
func ValidateHandle(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: summoner name is required", apperr.ErrInvalidHandle)
	}
	if !handlePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", apperr.ErrInvalidHandle, name)
	}
	return nil
}

// Resolve looks the handle up on the routing cluster, then confirms the
// account on the platform shard. A single failed upstream call is surfaced
// immediately; there is no retry.
func (s *PlayerService) Resolve(ctx context.Context, platform, name, tag string) (*domain.PlayerIdentity, error) {
	if err := ValidateHandle(name); err != nil {
		return nil, err
	}

	cluster := riot.ClusterFor(platform)
	s.logger.Info().
		Str("name", name).
		Str("tag", tag).
		Str("platform", platform).
		Str("cluster", string(cluster)).
		Msg("resolving player identity")

	accCtx, accCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer accCancel()

	account, err := s.api.GetAccountByRiotID(accCtx, cluster, name, tag)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Str("tag", tag).Msg("account lookup failed")
		return nil, fmt.Errorf("account lookup: %w", err)
	}

	sumCtx, sumCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer sumCancel()

	summoner, err := s.api.GetSummonerByPUUID(sumCtx, platform, account.PUUID)
	if err != nil {
		s.logger.Error().Err(err).Str("puuid", account.PUUID).Msg("summoner lookup failed")
		return nil, fmt.Errorf("summoner lookup: %w", err)
	}

	identity := &domain.PlayerIdentity{
		PUUID: account.PUUID,
		Name:  account.GameName,
		Tag:   account.TagLine,
		Level: summoner.SummonerLevel,
	}

	s.logger.Debug().
		Str("puuid", identity.PUUID).
		Int("level", identity.Level).
		Msg("player identity resolved")
	return identity, nil
}
