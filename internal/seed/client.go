package seed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	DefaultUserAgent = "Mozilla/5.0 (compatible; ConduitSeeder/1.0)"
	fetchAttempts    = 3
)

// statusError 非 2xx 响应
type statusError struct {
	URL    string
	Status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Status)
}

// retryable 传输错误、429 与 5xx 重试，其余直接失败
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.Status == http.StatusTooManyRequests || se.Status >= 500
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Client dev.to 公开 API 客户端，所有请求共用一个限速器
type Client struct {
	http       *resty.Client
	retryDelay time.Duration
}

func NewClient(baseURL, userAgent string, interval time.Duration) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(baseURL)
	httpClient.SetHeader("User-Agent", userAgent)
	httpClient.SetHeader("Accept", "application/json")
	httpClient.SetTimeout(30 * time.Second)

	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	limiter := rate.NewLimiter(limit, 1)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return limiter.Wait(req.Context())
	})

	return &Client{http: httpClient, retryDelay: time.Second}
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out any) error {
	return retry.Do(
		func() error {
			res, err := c.http.R().
				SetContext(ctx).
				SetQueryParams(query).
				SetResult(out).
				Get(path)
			if err != nil {
				return err
			}
			if res.IsError() {
				return &statusError{URL: res.Request.URL, Status: res.StatusCode()}
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(fetchAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(retryable),
		retry.LastErrorOnly(true),
	)
}

// ListLatest 最新文章列表，page 从 1 开始
func (c *Client) ListLatest(ctx context.Context, page, perPage int) ([]ListedArticle, error) {
	var articles []ListedArticle
	err := c.get(ctx, "/articles/latest", map[string]string{
		"page":     strconv.Itoa(page),
		"per_page": strconv.Itoa(perPage),
	}, &articles)
	if err != nil {
		return nil, fmt.Errorf("list page %d: %w", page, err)
	}
	return articles, nil
}

func (c *Client) Article(ctx context.Context, id int) (*ArticleDetail, error) {
	var detail ArticleDetail
	if err := c.get(ctx, "/articles/"+strconv.Itoa(id), nil, &detail); err != nil {
		return nil, fmt.Errorf("fetch article %d: %w", id, err)
	}
	return &detail, nil
}
