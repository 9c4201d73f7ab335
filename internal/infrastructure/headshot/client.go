package headshot

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/dugoutlabs/statlines/internal/domain/people"
	"github.com/dugoutlabs/statlines/internal/platform/logging"
	"github.com/dugoutlabs/statlines/internal/platform/resilience"
)

const (
	defaultBaseURL  = "https://statsapi.mlb.com/api/v1"
	defaultCacheTTL = 24 * time.Hour
	photoURLFormat  = "https://img.mlbstatic.com/mlb-photos/image/upload/w_213,d_people:generic:headshot:silo:current.png,q_auto:best,f_auto/v1/people/%d/headshot/67/current"
)

var errLookupTransient = crerr.New("headshot lookup transient failure")

// directIDs pins players whose name search is known to land on the wrong
// person (namesakes sharing a debut window). Maps dataset player id to the
// provider's numeric person id.
var directIDs = map[string]int{
	"griffke01": 115135,
	"griffke02": 115096,
	"ripkeca01": 121222,
	"ripkeca99": 121217,
	"tatisfe01": 123581,
	"tatisfe02": 665487,
	"raineti01": 120891,
	"raineti02": 607483,
	"alomasa01": 110310,
	"alomasa02": 110311,
	"rosepe01":  121409,
	"baezja01":  595879,
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	CacheTTL       time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client resolves player photo URLs against the external identity-lookup
// provider. Lookups are best effort: callers treat every error as "no
// photo".
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	cacheTTL       time.Duration

	mu    sync.RWMutex
	cache map[string]cacheEntry
	now   func() time.Time
}

type cacheEntry struct {
	url     string
	expires time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 5 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
		cacheTTL:       cacheTTL,
		cache:          make(map[string]cacheEntry),
		now:            time.Now,
	}
}

// LookupURL returns the photo URL for the player, or "" when no confident
// match exists. Results (including misses) are cached.
func (c *Client) LookupURL(ctx context.Context, p people.Player) (string, error) {
	if p.ID == "" {
		return "", nil
	}

	if id, ok := directIDs[p.ID]; ok {
		return fmt.Sprintf(photoURLFormat, id), nil
	}

	if cached, ok := c.fromCache(p.ID); ok {
		return cached, nil
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "headshot circuit breaker rejected request", "state", c.breaker.State())
			return "", err
		}
	}

	personID, err := c.searchPerson(ctx, p)
	if c.circuitEnabled {
		if err != nil && stderrors.Is(err, errLookupTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return "", err
	}

	photo := ""
	if personID > 0 {
		photo = fmt.Sprintf(photoURLFormat, personID)
	}
	c.store(p.ID, photo)
	return photo, nil
}

type searchEnvelope struct {
	People []struct {
		ID           int    `json:"id"`
		FullName     string `json:"fullName"`
		MLBDebutDate string `json:"mlbDebutDate"`
	} `json:"people"`
}

// searchPerson matches by name, then narrows namesakes by debut year: the
// candidate's debut must land within one year of the dataset's debut. A
// single candidate is trusted even without a debut date.
func (c *Client) searchPerson(ctx context.Context, p people.Player) (int, error) {
	values := url.Values{}
	values.Set("names", p.FullName())

	fullURL := c.baseURL + "/people/search?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: send request: %v", errLookupTransient, err)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := io.Copy(buf, io.LimitReader(resp.Body, 1<<20)); err != nil {
		return 0, fmt.Errorf("%w: read response body: %v", errLookupTransient, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return 0, fmt.Errorf("%w: provider status=%d", errLookupTransient, resp.StatusCode)
		}
		return 0, fmt.Errorf("provider status=%d", resp.StatusCode)
	}

	var envelope searchEnvelope
	if err := sonic.Unmarshal(buf.Bytes(), &envelope); err != nil {
		return 0, fmt.Errorf("decode provider payload: %w", err)
	}

	if len(envelope.People) == 1 {
		return envelope.People[0].ID, nil
	}

	debutYear := p.DebutYear()
	for _, candidate := range envelope.People {
		year := yearOfDate(candidate.MLBDebutDate)
		if debutYear == 0 || year == 0 {
			continue
		}
		if abs(year-debutYear) <= 1 {
			return candidate.ID, nil
		}
	}
	return 0, nil
}

func (c *Client) fromCache(playerID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.cache[playerID]
	if !ok || c.now().After(entry.expires) {
		return "", false
	}
	return entry.url, true
}

func (c *Client) store(playerID, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[playerID] = cacheEntry{url: url, expires: c.now().Add(c.cacheTTL)}
}

func yearOfDate(date string) int {
	if len(date) < 4 {
		return 0
	}
	year := 0
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
