package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/Super-Badmen-Viper/CineSong/domain"
)

const (
	searchEndpoint  = "https://api.themoviedb.org/3/search/movie"
	posterBaseURL   = "https://image.tmdb.org/t/p/w500"
	requestTimeout  = 5 * time.Second
	posterKeyPrefix = "tmdb:poster:"
	overviewPrefix  = "tmdb:overview:"
)

type searchResult struct {
	PosterPath string `json:"poster_path"`
	Overview   string `json:"overview"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// Client TMDB检索客户端，仅用于展示层的海报与简介补全
// 所有失败（网络、解码、无结果）一律降级为空字符串
type Client struct {
	apiKey     string
	searchURL  string
	httpClient *http.Client
	cache      Cache
}

func NewClient(apiKey string, cache Cache) *Client {
	if cache == nil {
		cache = NewMemoryCache(256)
	}
	return &Client{
		apiKey:     apiKey,
		searchURL:  searchEndpoint,
		httpClient: &http.Client{Timeout: requestTimeout},
		cache:      cache,
	}
}

// Enabled 未配置API Key时客户端处于关闭状态
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

func (c *Client) PosterURL(ctx context.Context, title string) string {
	if !c.Enabled() || title == "" {
		return ""
	}

	cacheKey := posterKeyPrefix + title
	if cached, ok := c.cache.Get(ctx, cacheKey); ok {
		return cached
	}

	result := c.search(ctx, title)
	posterURL := ""
	if result != nil && result.PosterPath != "" {
		posterURL = posterBaseURL + result.PosterPath
	}

	// 未命中也缓存，避免对同一标题反复请求
	c.cache.Set(ctx, cacheKey, posterURL)
	return posterURL
}

func (c *Client) Overview(ctx context.Context, title string) string {
	if !c.Enabled() || title == "" {
		return ""
	}

	cacheKey := overviewPrefix + title
	if cached, ok := c.cache.Get(ctx, cacheKey); ok {
		return cached
	}

	result := c.search(ctx, title)
	overview := ""
	if result != nil {
		overview = result.Overview
	}

	c.cache.Set(ctx, cacheKey, overview)
	return overview
}

func (c *Client) search(ctx context.Context, title string) *searchResult {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil
	}
	if len(decoded.Results) == 0 {
		return nil
	}
	return &decoded.Results[0]
}

var _ domain.PosterProvider = (*Client)(nil)
