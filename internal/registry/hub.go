package registry

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"mlmcompare/internal/common/httpclient"
	"mlmcompare/pkg/types"
)

// HubOptions configures a HubClient.
type HubOptions struct {
	BaseURL        string
	Token          string
	Limit          int
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
	Logger         zerolog.Logger
}

// HubClient queries the model hub REST API.
type HubClient struct {
	baseURL string
	limit   int
	timeout time.Duration
	client  httpclient.Client
	log     zerolog.Logger
}

// hubModel is the subset of the hub listing payload this service reads.
type hubModel struct {
	ID          string `json:"id"`
	ModelID     string `json:"modelId"`
	PipelineTag string `json:"pipeline_tag"`
	LibraryName string `json:"library_name"`
	Downloads   int64  `json:"downloads"`
	Likes       int64  `json:"likes"`
}

// NewHubClient constructs a hub-backed Source.
func NewHubClient(o HubOptions) *HubClient {
	if o.Limit <= 0 {
		o.Limit = 50
	}
	return &HubClient{
		baseURL: strings.TrimRight(o.BaseURL, "/"),
		limit:   o.Limit,
		timeout: o.RequestTimeout,
		client:  httpclient.Client{HTTP: httpclient.New(o.ConnectTimeout), Token: o.Token},
		log:     o.Logger.With().Str("component", "registry").Logger(),
	}
}

// ListModels fetches models tagged with language and task, most downloaded first.
func (c *HubClient) ListModels(ctx context.Context, language, task string) ([]types.Model, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	q := url.Values{}
	q.Set("pipeline_tag", task)
	q.Set("filter", language)
	q.Set("sort", "downloads")
	q.Set("direction", "-1")
	q.Set("limit", strconv.Itoa(c.limit))
	u := c.baseURL + "/api/models?" + q.Encode()

	start := time.Now()
	var payload []hubModel
	if err := c.client.GetJSON(ctx, u, &payload); err != nil {
		registryRequests.WithLabelValues("error").Inc()
		c.log.Warn().Err(err).Str("language", language).Dur("dur", time.Since(start)).Msg("list models failed")
		return nil, fmt.Errorf("list %s models for %q: %w", task, language, err)
	}
	registryRequests.WithLabelValues("ok").Inc()

	out := make([]types.Model, 0, len(payload))
	for _, m := range payload {
		id := m.ID
		if id == "" {
			id = m.ModelID
		}
		if id == "" {
			continue
		}
		out = append(out, types.Model{
			ID:          id,
			PipelineTag: m.PipelineTag,
			LibraryName: m.LibraryName,
			Downloads:   m.Downloads,
			Likes:       m.Likes,
		})
	}
	c.log.Debug().Str("language", language).Int("count", len(out)).Dur("dur", time.Since(start)).Msg("listed models")
	return out, nil
}
