package service

import (
	"context"
	"fmt"
	"sync"

	"rift-rewind/internal/riot"
)

type idPageCall struct {
	start, count, queue int
}

// fakeRiotAPI is an in-memory stand-in for the Riot client.
type fakeRiotAPI struct {
	mu sync.Mutex

	accounts  map[string]*riot.Account  // keyed by "name#tag"
	summoners map[string]*riot.Summoner // keyed by puuid
	matches   map[string]*riot.Match    // keyed by match id

	// matchIDs is the full, most-recent-first history served page by page.
	matchIDs []string

	accountErr  error
	summonerErr error
	pageErrAt   int // fail the page starting at this offset (-1 disables)
	matchErrs   map[string]error

	pageCalls []idPageCall
}

func newFakeRiotAPI() *fakeRiotAPI {
	return &fakeRiotAPI{
		accounts:  make(map[string]*riot.Account),
		summoners: make(map[string]*riot.Summoner),
		matches:   make(map[string]*riot.Match),
		matchErrs: make(map[string]error),
		pageErrAt: -1,
	}
}

func (f *fakeRiotAPI) GetAccountByRiotID(_ context.Context, _ riot.Cluster, name, tag string) (*riot.Account, error) {
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	acc, ok := f.accounts[name+"#"+tag]
	if !ok {
		return nil, fmt.Errorf("unknown account %s#%s", name, tag)
	}
	return acc, nil
}

func (f *fakeRiotAPI) GetSummonerByPUUID(_ context.Context, _ string, puuid string) (*riot.Summoner, error) {
	if f.summonerErr != nil {
		return nil, f.summonerErr
	}
	sum, ok := f.summoners[puuid]
	if !ok {
		return nil, fmt.Errorf("unknown summoner %s", puuid)
	}
	return sum, nil
}

func (f *fakeRiotAPI) GetMatchIDs(_ context.Context, _ riot.Cluster, _ string, start, count, queue int) ([]string, error) {
	f.mu.Lock()
	f.pageCalls = append(f.pageCalls, idPageCall{start: start, count: count, queue: queue})
	f.mu.Unlock()

	if f.pageErrAt >= 0 && start == f.pageErrAt {
		return nil, fmt.Errorf("page at offset %d failed", start)
	}
	if start >= len(f.matchIDs) {
		return []string{}, nil
	}
	end := start + count
	if end > len(f.matchIDs) {
		end = len(f.matchIDs)
	}
	return f.matchIDs[start:end], nil
}

func (f *fakeRiotAPI) GetMatch(_ context.Context, _ riot.Cluster, matchID string) (*riot.Match, error) {
	if err := f.matchErrs[matchID]; err != nil {
		return nil, err
	}
	m, ok := f.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("unknown match %s", matchID)
	}
	return m, nil
}

// addPlayer registers an account + summoner pair and returns the puuid.
func (f *fakeRiotAPI) addPlayer(name, tag, puuid string, level int) {
	f.accounts[name+"#"+tag] = &riot.Account{PUUID: puuid, GameName: name, TagLine: tag}
	f.summoners[puuid] = &riot.Summoner{PUUID: puuid, SummonerLevel: level}
}

// addMatch registers a match detail record with the player's line in it.
func (f *fakeRiotAPI) addMatch(id, puuid, champion string, kills, deaths, assists int, win bool) {
	f.matches[id] = &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: id, Participants: []string{puuid, "other"}},
		Info: riot.MatchInfo{
			GameMode:           "CLASSIC",
			QueueID:            420,
			GameDuration:       1800,
			GameStartTimestamp: 1700000000000,
			Participants: []riot.Participant{
				{PUUID: "other", ChampionName: "Teemo", Kills: 1, Deaths: 1, Assists: 1, Win: !win},
				{PUUID: puuid, ChampionName: champion, Kills: kills, Deaths: deaths, Assists: assists, Win: win},
			},
		},
	}
}
