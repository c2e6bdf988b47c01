package domain

// PlayerIdentity is the resolved account for one request. The PUUID is the
// stable key; display name and tag come back from the account lookup and may
// differ in casing from what the user typed.
type PlayerIdentity struct {
	PUUID string
	Name  string
	Tag   string
	Level int
}

// MatchRecord is one match projected down to the target player's line.
type MatchRecord struct {
	MatchID         string `json:"matchId"`
	Champion        string `json:"champion"`
	Kills           int    `json:"kills"`
	Deaths          int    `json:"deaths"`
	Assists         int    `json:"assists"`
	Win             bool   `json:"win"`
	Mode            string `json:"mode"`
	QueueID         int    `json:"queueId"`
	DurationSeconds int    `json:"duration"`
	Timestamp       int64  `json:"timestamp"`
}

type ChampionCount struct {
	Name  string `json:"name"`
	Games int    `json:"games"`
}

// WindowedStats summarizes a trailing window of matches. WinRate and KDA are
// fixed-point strings ("0.0" / "0.00") so the shape is stable across callers.
type WindowedStats struct {
	Games     int             `json:"games"`
	WinRate   string          `json:"winRate"`
	KDA       string          `json:"kda"`
	TopChamps []ChampionCount `json:"topChamps"`
}

type SummonerInfo struct {
	Name    string `json:"name"`
	TagLine string `json:"tagLine"`
	Level   int    `json:"level"`
}

// AggregateStats is the full per-player result: overall numbers across every
// analyzed match, the per-window breakdown, lifetime totals and the match
// list itself.
type AggregateStats struct {
	TotalGames      int                   `json:"totalGames"`
	MatchesAnalyzed int                   `json:"matchesAnalyzed"`
	KDA             string                `json:"kda"`
	WinRate         string                `json:"winRate"`
	TopChamps       []ChampionCount       `json:"topChamps"`
	TotalMatches    int                   `json:"totalMatches"`
	LifetimeKills   int                   `json:"lifetimeKills"`
	LifetimeDeaths  int                   `json:"lifetimeDeaths"`
	LifetimeAssists int                   `json:"lifetimeAssists"`
	StatsByCount    map[int]WindowedStats `json:"statsByCount"`
	Summoner        SummonerInfo          `json:"summoner"`
	Matches         []MatchRecord         `json:"matches"`
}

// Handle is the player's display handle, "Name#TAG".
func (a *AggregateStats) Handle() string {
	return a.Summoner.Name + "#" + a.Summoner.TagLine
}

// ComparisonResult holds both players' aggregates and the win-rate verdict.
// Winner is either a player handle or "tie"; it is derived purely from the
// two win rates and never from the AI judgment.
type ComparisonResult struct {
	Region  string            `json:"region"`
	Players []*AggregateStats `json:"players"`
	Winner  string            `json:"winnerByWinRate"`
}

type ChampionSuggestion struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// RosterEntry is one name on the demo roster page.
type RosterEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
