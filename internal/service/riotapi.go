package service

import (
	"context"

	"rift-rewind/internal/riot"
)

// RiotAPI is the slice of the Riot client the services consume. Tests swap in
// fakes; production binds *riot.Client.
type RiotAPI interface {
	GetAccountByRiotID(ctx context.Context, cluster riot.Cluster, name, tag string) (*riot.Account, error)
	GetSummonerByPUUID(ctx context.Context, platform, puuid string) (*riot.Summoner, error)
	GetMatchIDs(ctx context.Context, cluster riot.Cluster, puuid string, start, count, queue int) ([]string, error)
	GetMatch(ctx context.Context, cluster riot.Cluster, matchID string) (*riot.Match, error)
}
