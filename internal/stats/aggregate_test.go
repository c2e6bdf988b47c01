package stats

import (
	"testing"

	"rift-rewind/internal/domain"

	"github.com/stretchr/testify/assert"
)

func record(champion string, kills, deaths, assists int, win bool) domain.MatchRecord {
	return domain.MatchRecord{
		Champion: champion,
		Kills:    kills,
		Deaths:   deaths,
		Assists:  assists,
		Win:      win,
	}
}

func TestWindowEmpty(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.MatchRecord
		size    int
	}{
		{name: "no records", records: nil, size: 5},
		{name: "zero window", records: []domain.MatchRecord{record("Ahri", 1, 1, 1, true)}, size: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Window(tt.records, tt.size)
			assert.Equal(t, 0, w.Games)
			assert.Equal(t, "0.0", w.WinRate)
			assert.Equal(t, "0.00", w.KDA)
			assert.Empty(t, w.TopChamps)
		})
	}
}

func TestWindowGamesCounted(t *testing.T) {
	records := []domain.MatchRecord{
		record("Ahri", 1, 1, 1, true),
		record("Zed", 2, 2, 2, false),
		record("Ahri", 3, 3, 3, true),
	}

	assert.Equal(t, 2, Window(records, 2).Games)
	assert.Equal(t, 3, Window(records, 3).Games)
	// Window larger than history counts what is available.
	assert.Equal(t, 3, Window(records, 10).Games)
}

func TestWindowKDADeathsFloor(t *testing.T) {
	records := []domain.MatchRecord{
		record("Ahri", 7, 0, 5, true),
		record("Ahri", 3, 0, 5, true),
	}

	// With zero deaths, KDA is just kills + assists.
	w := Window(records, 2)
	assert.Equal(t, "20.00", w.KDA)
}

func TestWindowWinRateRounding(t *testing.T) {
	oneOfThree := []domain.MatchRecord{
		record("Ahri", 1, 1, 1, true),
		record("Ahri", 1, 1, 1, false),
		record("Ahri", 1, 1, 1, false),
	}
	assert.Equal(t, "33.3", Window(oneOfThree, 3).WinRate)

	twoOfThree := []domain.MatchRecord{
		record("Ahri", 1, 1, 1, true),
		record("Ahri", 1, 1, 1, true),
		record("Ahri", 1, 1, 1, false),
	}
	assert.Equal(t, "66.7", Window(twoOfThree, 3).WinRate)
}

func TestTopChampionsTieOrder(t *testing.T) {
	// A and B both appear 3 times, A first; C once.
	records := []domain.MatchRecord{
		record("Aatrox", 1, 1, 1, true),
		record("Brand", 1, 1, 1, true),
		record("Aatrox", 1, 1, 1, true),
		record("Brand", 1, 1, 1, true),
		record("Caitlyn", 1, 1, 1, true),
		record("Aatrox", 1, 1, 1, true),
		record("Brand", 1, 1, 1, true),
	}

	top := TopChampions(records, 3)
	assert.Equal(t, []domain.ChampionCount{
		{Name: "Aatrox", Games: 3},
		{Name: "Brand", Games: 3},
		{Name: "Caitlyn", Games: 1},
	}, top)
}

func TestTopChampionsLimit(t *testing.T) {
	records := []domain.MatchRecord{
		record("A", 0, 0, 0, true),
		record("B", 0, 0, 0, true),
		record("C", 0, 0, 0, true),
		record("D", 0, 0, 0, true),
	}
	assert.Len(t, TopChampions(records, 3), 3)
}

func TestTopChampionsUnknownName(t *testing.T) {
	records := []domain.MatchRecord{record("", 0, 0, 0, true)}
	top := TopChampions(records, 3)
	assert.Equal(t, "Unknown", top[0].Name)
}

// The end-to-end scenario from the drawing board: 5 games, 3 wins, champion
// sequence Ahri, Ahri, Zed, Ahri, Zed.
func TestWindowFiveGameScenario(t *testing.T) {
	records := []domain.MatchRecord{
		record("Ahri", 3, 1, 5, true),
		record("Ahri", 1, 4, 2, false),
		record("Zed", 5, 2, 1, true),
		record("Ahri", 2, 1, 3, true),
		record("Zed", 0, 3, 1, false),
	}

	w := Window(records, 5)
	assert.Equal(t, 5, w.Games)
	assert.Equal(t, "60.0", w.WinRate)
	// sumK=11, sumA=12, sumD=11 -> 23/11
	assert.Equal(t, "2.09", w.KDA)
	assert.Equal(t, []domain.ChampionCount{
		{Name: "Ahri", Games: 3},
		{Name: "Zed", Games: 2},
	}, w.TopChamps)
}

func TestByCountDedupeAndIgnoreInvalid(t *testing.T) {
	records := []domain.MatchRecord{
		record("Ahri", 1, 1, 1, true),
		record("Zed", 1, 1, 1, false),
	}

	result := ByCount(records, []int{5, 5, 0, -3, 10})
	assert.Len(t, result, 2)
	assert.Contains(t, result, 5)
	assert.Contains(t, result, 10)
}

func TestAggregateLifetimeTotalsIndependentOfWindows(t *testing.T) {
	identity := domain.PlayerIdentity{PUUID: "p1", Name: "Faker", Tag: "KR1", Level: 700}
	records := []domain.MatchRecord{
		record("Ahri", 10, 2, 4, true),
		record("Zed", 5, 3, 6, false),
		record("Ahri", 2, 1, 8, true),
	}

	// Windows smaller than the history must not shrink lifetime totals.
	agg := Aggregate(identity, records, []int{2})

	assert.Equal(t, 17, agg.LifetimeKills)
	assert.Equal(t, 6, agg.LifetimeDeaths)
	assert.Equal(t, 18, agg.LifetimeAssists)
	assert.Equal(t, 3, agg.TotalGames)
	assert.Equal(t, 3, agg.TotalMatches)
	assert.Equal(t, 2, agg.StatsByCount[2].Games)
	assert.Equal(t, "Faker", agg.Summoner.Name)
	assert.Equal(t, "KR1", agg.Summoner.TagLine)
	assert.Equal(t, 700, agg.Summoner.Level)
	assert.Equal(t, "Faker#KR1", agg.Handle())
}

func TestAggregateEmptyHistory(t *testing.T) {
	identity := domain.PlayerIdentity{PUUID: "p1", Name: "Ghost", Tag: "NA1"}

	agg := Aggregate(identity, nil, []int{5, 10})

	assert.Equal(t, 0, agg.TotalGames)
	assert.Equal(t, "0.0", agg.WinRate)
	assert.Equal(t, "0.00", agg.KDA)
	assert.Empty(t, agg.TopChamps)
	assert.NotNil(t, agg.Matches)
	assert.Empty(t, agg.Matches)
	for _, w := range agg.StatsByCount {
		assert.Equal(t, 0, w.Games)
		assert.Equal(t, "0.0", w.WinRate)
	}
}
