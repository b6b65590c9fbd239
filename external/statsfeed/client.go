package statsfeed

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"github.com/valyala/bytebufferpool"

	"github.com/pitchside/fantasy-core/internal/domain/scoring"
	"github.com/pitchside/fantasy-core/internal/platform/logging"
	"github.com/pitchside/fantasy-core/internal/platform/resilience"
)

const (
	defaultTimeout      = 20 * time.Second
	maxResponseBytes    = 6 << 20
	defaultFetchWorkers = 4
)

var errStatsfeedTransient = crerr.New("statsfeed transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches published gameweek performance data from the external
// results provider.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     retries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type performancePayload struct {
	Minutes     int  `json:"minutes"`
	Goals       int  `json:"goals"`
	Assists     int  `json:"assists"`
	CleanSheet  bool `json:"cleanSheet"`
	YellowCards int  `json:"yellowCards"`
	RedCards    int  `json:"redCards"`
	BonusPoints int  `json:"bonusPoints"`
}

type gameweekResultPayload struct {
	LeagueID    string                        `json:"leagueId"`
	Gameweek    int                           `json:"gameweek"`
	PublishedAt time.Time                     `json:"publishedAt"`
	Records     map[string]performancePayload `json:"records"`
}

func (p gameweekResultPayload) toDomain(leagueID string, gameweek int) scoring.GameweekResult {
	records := make(map[string]scoring.PerformanceRecord, len(p.Records))
	for playerID, rec := range p.Records {
		records[playerID] = scoring.PerformanceRecord{
			Minutes:     rec.Minutes,
			Goals:       rec.Goals,
			Assists:     rec.Assists,
			CleanSheet:  rec.CleanSheet,
			YellowCards: rec.YellowCards,
			RedCards:    rec.RedCards,
			BonusPoints: rec.BonusPoints,
		}
	}

	return scoring.GameweekResult{
		LeagueID:    leagueID,
		Gameweek:    gameweek,
		Records:     records,
		PublishedAt: p.PublishedAt,
	}
}

func (c *Client) FetchGameweekResult(ctx context.Context, leagueID string, gameweek int) (scoring.GameweekResult, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return scoring.GameweekResult{}, fmt.Errorf("league id is required")
	}
	if gameweek <= 0 {
		return scoring.GameweekResult{}, fmt.Errorf("gameweek must be greater than zero")
	}
	if c.baseURL == "" {
		return scoring.GameweekResult{}, fmt.Errorf("statsfeed base url is not configured")
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "statsfeed circuit breaker rejected request", "state", c.breaker.State())
			return scoring.GameweekResult{}, fmt.Errorf("results provider is temporarily unavailable: %w", err)
		}
	}

	path := fmt.Sprintf("/leagues/%s/gameweeks/%d/results", leagueID, gameweek)
	out, err, _ := c.flight.Do(path, func() (any, error) {
		payload, reqErr := c.fetchResultPayload(ctx, c.baseURL+path)
		if c.circuitEnabled {
			if reqErr != nil && isTransient(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		if reqErr != nil {
			return nil, reqErr
		}
		return payload, nil
	})
	if err != nil {
		return scoring.GameweekResult{}, err
	}

	payload, ok := out.(gameweekResultPayload)
	if !ok {
		return scoring.GameweekResult{}, fmt.Errorf("unexpected response payload type %T", out)
	}

	return payload.toDomain(leagueID, gameweek), nil
}

// FetchGameweekRange fetches results for gameweeks [from, to] concurrently.
// Results come back ordered by gameweek; one failed fetch fails the batch.
func (c *Client) FetchGameweekRange(ctx context.Context, leagueID string, from, to int) ([]scoring.GameweekResult, error) {
	if from <= 0 || to < from {
		return nil, fmt.Errorf("invalid gameweek range [%d, %d]", from, to)
	}

	workers := defaultFetchWorkers
	if span := to - from + 1; span < workers {
		workers = span
	}

	p := pool.NewWithResults[scoring.GameweekResult]().WithContext(ctx).WithMaxGoroutines(workers)
	for gameweek := from; gameweek <= to; gameweek++ {
		gameweek := gameweek
		p.Go(func(ctx context.Context) (scoring.GameweekResult, error) {
			return c.FetchGameweekResult(ctx, leagueID, gameweek)
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Gameweek < results[j].Gameweek
	})
	return results, nil
}

func (c *Client) fetchResultPayload(ctx context.Context, fullURL string) (gameweekResultPayload, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		payload, err := c.doRequest(ctx, fullURL)
		if err == nil {
			return payload, nil
		}
		lastErr = err
		if !isTransient(err) {
			return gameweekResultPayload{}, err
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return gameweekResultPayload{}, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "statsfeed request failed", "url", fullURL, "error", lastErr)
	return gameweekResultPayload{}, lastErr
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (gameweekResultPayload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return gameweekResultPayload{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	if c.token != "" {
		req.Header.Set("authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gameweekResultPayload{}, fmt.Errorf("%w: send request: %v", errStatsfeedTransient, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	limited := http.MaxBytesReader(nil, resp.Body, maxResponseBytes)
	if _, err := buf.ReadFrom(limited); err != nil {
		return gameweekResultPayload{}, fmt.Errorf("%w: read response body: %v", errStatsfeedTransient, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if isRetryableStatus(resp.StatusCode) {
			return gameweekResultPayload{}, fmt.Errorf("%w: provider status=%d body=%s", errStatsfeedTransient, resp.StatusCode, abbreviateBody(buf.Bytes()))
		}
		return gameweekResultPayload{}, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(buf.Bytes()))
	}

	var payload gameweekResultPayload
	if err := sonic.Unmarshal(buf.Bytes(), &payload); err != nil {
		return gameweekResultPayload{}, fmt.Errorf("decode provider payload: %w", err)
	}

	return payload, nil
}

func isTransient(err error) bool {
	return crerr.Is(err, errStatsfeedTransient)
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const maxLen = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > maxLen {
		return body[:maxLen] + "..."
	}
	return body
}
