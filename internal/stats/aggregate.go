// Package stats reduces a player's match records into windowed summary
// statistics. Everything here is pure: the input slice is most-recent-first
// and is never re-sorted or mutated.
package stats

import (
	"fmt"
	"sort"

	"rift-rewind/internal/constants"
	"rift-rewind/internal/domain"
)

// Aggregate builds the full per-player result: overall stats across every
// record, the per-window breakdown, and lifetime totals. Lifetime totals
// always cover the entire record list regardless of the requested windows.
func Aggregate(identity domain.PlayerIdentity, records []domain.MatchRecord, windows []int) *domain.AggregateStats {
	overall := Window(records, len(records))

	agg := &domain.AggregateStats{
		TotalGames:      len(records),
		MatchesAnalyzed: len(records),
		KDA:             overall.KDA,
		WinRate:         overall.WinRate,
		TopChamps:       overall.TopChamps,
		TotalMatches:    len(records),
		StatsByCount:    ByCount(records, windows),
		Summoner: domain.SummonerInfo{
			Name:    identity.Name,
			TagLine: identity.Tag,
			Level:   identity.Level,
		},
		Matches: records,
	}

	for _, r := range records {
		agg.LifetimeKills += r.Kills
		agg.LifetimeDeaths += r.Deaths
		agg.LifetimeAssists += r.Assists
	}

	if agg.Matches == nil {
		agg.Matches = []domain.MatchRecord{}
	}
	return agg
}

// ByCount computes one WindowedStats per requested window size. Sizes are
// deduplicated and sorted ascending; non-positive sizes are ignored.
func ByCount(records []domain.MatchRecord, windows []int) map[int]domain.WindowedStats {
	result := make(map[int]domain.WindowedStats, len(windows))
	seen := make(map[int]bool, len(windows))
	for _, w := range windows {
		if w <= 0 || seen[w] {
			continue
		}
		seen[w] = true
		result[w] = Window(records, w)
	}
	return result
}

// Window reduces the first min(size, len(records)) records.
func Window(records []domain.MatchRecord, size int) domain.WindowedStats {
	if size > len(records) {
		size = len(records)
	}
	if size <= 0 {
		return domain.WindowedStats{
			Games:     0,
			WinRate:   "0.0",
			KDA:       "0.00",
			TopChamps: []domain.ChampionCount{},
		}
	}

	prefix := records[:size]

	var wins, kills, deaths, assists int
	for _, r := range prefix {
		kills += r.Kills
		deaths += r.Deaths
		assists += r.Assists
		if r.Win {
			wins++
		}
	}

	// Deaths floor keeps a deathless streak from dividing by zero.
	divisor := deaths
	if divisor < 1 {
		divisor = 1
	}
	kda := float64(kills+assists) / float64(divisor)
	winRate := float64(wins) / float64(len(prefix)) * 100

	return domain.WindowedStats{
		Games:     len(prefix),
		WinRate:   fmt.Sprintf("%.1f", winRate),
		KDA:       fmt.Sprintf("%.2f", kda),
		TopChamps: TopChampions(prefix, constants.TopChampionLimit),
	}
}

// TopChampions counts games per champion within the records and returns the
// top `limit` by count. Ties keep the order in which each champion first
// appears.
func TopChampions(records []domain.MatchRecord, limit int) []domain.ChampionCount {
	counts := []domain.ChampionCount{}
	index := make(map[string]int)

	for _, r := range records {
		name := r.Champion
		if name == "" {
			name = "Unknown"
		}
		if i, ok := index[name]; ok {
			counts[i].Games++
			continue
		}
		index[name] = len(counts)
		counts = append(counts, domain.ChampionCount{Name: name, Games: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Games > counts[j].Games
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
