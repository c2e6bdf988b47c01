package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"rift-rewind/internal/apperr"
	"rift-rewind/internal/config"

	"github.com/valyala/fasthttp"
)

// Client talks to the Riot API over fasthttp. One instance is shared by every
// request; the rate-limit snapshot is the only mutable state.
type Client struct {
	apiKey      string
	client      *fasthttp.Client
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors Riot's X-App-Rate-Limit headers. Informational only;
// the client never throttles or retries on its own.
type RateLimitInfo struct {
	AppLimit   string    `json:"app_limit"`
	AppCount   string    `json:"app_count"`
	RetryAfter int       `json:"retry_after"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey: cfg.RiotAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

func (c *Client) GetRateLimitInfo() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if limit := string(resp.Header.Peek("X-App-Rate-Limit")); limit != "" {
		c.rateLimit.AppLimit = limit
	}
	if count := string(resp.Header.Peek("X-App-Rate-Limit-Count")); count != "" {
		c.rateLimit.AppCount = count
	}
	if retry := string(resp.Header.Peek("Retry-After")); retry != "" {
		if val, err := strconv.Atoi(retry); err == nil {
			c.rateLimit.RetryAfter = val
		}
	} else {
		c.rateLimit.RetryAfter = 0
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// GetAccountByRiotID resolves a display name + tag to an account on the
// routing cluster.
func (c *Client) GetAccountByRiotID(ctx context.Context, cluster Cluster, name, tag string) (*Account, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		cluster, url.PathEscape(name), url.PathEscape(tag))
	return doRequest[Account](ctx, c, u)
}

// GetSummonerByPUUID confirms the account on the platform shard and returns
// profile data (level).
func (c *Client) GetSummonerByPUUID(ctx context.Context, platform, puuid string) (*Summoner, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s",
		platform, url.PathEscape(puuid))
	return doRequest[Summoner](ctx, c, u)
}

// GetMatchIDs returns one page of match ids, most recent first. queue <= 0
// means no queue filter.
func (c *Client) GetMatchIDs(ctx context.Context, cluster Cluster, puuid string, start, count, queue int) ([]string, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d",
		cluster, url.PathEscape(puuid), start, count)
	if queue > 0 {
		u += "&queue=" + strconv.Itoa(queue)
	}
	ids, err := doRequest[[]string](ctx, c, u)
	if err != nil {
		return nil, err
	}
	return *ids, nil
}

// GetMatch fetches one full match detail record.
func (c *Client) GetMatch(ctx context.Context, cluster Cluster, matchID string) (*Match, error) {
	u := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s",
		cluster, url.PathEscape(matchID))
	return doRequest[Match](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *Client, u string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = client.client.DoDeadline(req, resp, deadline)
	} else {
		err = client.client.Do(req, resp)
	}
	if err != nil {
		if errors.Is(err, fasthttp.ErrTimeout) || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s", apperr.ErrTimeout, u)
		}
		return nil, err
	}

	client.updateRateLimit(resp)

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &apperr.UpstreamError{
			Status: resp.StatusCode(),
			Body:   string(resp.Body()),
		}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decoding riot response: %w", err)
	}
	return &result, nil
}

type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type Summoner struct {
	ID            string `json:"id"`
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
	RevisionDate  int64  `json:"revisionDate"`
}

type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameMode           string        `json:"gameMode"`
	QueueID            int           `json:"queueId"`
	GameDuration       int           `json:"gameDuration"`
	GameStartTimestamp int64         `json:"gameStartTimestamp"`
	Participants       []Participant `json:"participants"`
}

type Participant struct {
	PUUID        string `json:"puuid"`
	ChampionName string `json:"championName"`
	Kills        int    `json:"kills"`
	Deaths       int    `json:"deaths"`
	Assists      int    `json:"assists"`
	Win          bool   `json:"win"`
}
