package inference

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"mlmcompare/internal/common/fsutil"
	"mlmcompare/internal/common/httpclient"
	"mlmcompare/pkg/types"
)

const taskFillMask = "fill-mask"

// Options configures a HubBackend. CachePath is required; it holds the
// resolved model metadata so restarts skip the hub lookups.
type Options struct {
	HubURL         string
	InferenceURL   string
	Token          string
	CachePath      string
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
	Logger         zerolog.Logger
}

// HubBackend resolves models against the hub API and runs them on the
// hosted inference API.
type HubBackend struct {
	hubURL       string
	inferenceURL string
	cacheDir     string
	timeout      time.Duration
	client       httpclient.Client
	log          zerolog.Logger
}

// modelMeta is persisted per model under CachePath/models.
type modelMeta struct {
	ID          string    `json:"id"`
	PipelineTag string    `json:"pipeline_tag"`
	MaskToken   string    `json:"mask_token"`
	ResolvedAt  time.Time `json:"resolved_at"`
}

// NewHubBackend creates the cache directory and returns the backend.
func NewHubBackend(o Options) (*HubBackend, error) {
	if o.CachePath == "" {
		return nil, errors.New("inference: cache path is required")
	}
	dir, err := fsutil.EnsureDir(filepath.Join(o.CachePath, "models"))
	if err != nil {
		return nil, fmt.Errorf("inference cache: %w", err)
	}
	return &HubBackend{
		hubURL:       strings.TrimRight(o.HubURL, "/"),
		inferenceURL: strings.TrimRight(o.InferenceURL, "/"),
		cacheDir:     dir,
		timeout:      o.RequestTimeout,
		client:       httpclient.Client{HTTP: httpclient.New(o.ConnectTimeout), Token: o.Token},
		log:          o.Logger.With().Str("component", "inference").Logger(),
	}, nil
}

// Resolve returns a pipeline for modelID, reading metadata from the disk
// cache when present and from the hub otherwise.
func (b *HubBackend) Resolve(ctx context.Context, modelID string) (Pipeline, error) {
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		return nil, ErrUnknownModel("(unspecified)")
	}
	if meta, ok := b.loadMeta(modelID); ok {
		resolutionsTotal.WithLabelValues("disk", "ok").Inc()
		return b.pipeline(meta), nil
	}
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	meta, err := b.fetchMeta(ctx, modelID)
	if err != nil {
		resolutionsTotal.WithLabelValues("hub", "error").Inc()
		return nil, err
	}
	resolutionsTotal.WithLabelValues("hub", "ok").Inc()
	if err := b.saveMeta(meta); err != nil {
		b.log.Warn().Err(err).Str("model", modelID).Msg("persist model metadata")
	}
	return b.pipeline(meta), nil
}

func (b *HubBackend) pipeline(meta modelMeta) *hubPipeline {
	return &hubPipeline{backend: b, meta: meta}
}

// hubModelInfo is the subset of GET /api/models/{id} this service reads.
type hubModelInfo struct {
	ID          string `json:"id"`
	PipelineTag string `json:"pipeline_tag"`
	MaskToken   string `json:"mask_token"`
}

func (b *HubBackend) fetchMeta(ctx context.Context, modelID string) (modelMeta, error) {
	var info hubModelInfo
	if err := b.client.GetJSON(ctx, b.hubURL+"/api/models/"+escapeID(modelID), &info); err != nil {
		if isNotFound(err) {
			return modelMeta{}, ErrUnknownModel(modelID)
		}
		return modelMeta{}, fmt.Errorf("model info %s: %w", modelID, err)
	}
	if info.PipelineTag != "" && info.PipelineTag != taskFillMask {
		return modelMeta{}, ErrIncompatibleTask(modelID, info.PipelineTag)
	}
	mask := info.MaskToken
	if mask == "" {
		var err error
		mask, err = b.fetchTokenizerMask(ctx, modelID)
		if err != nil {
			return modelMeta{}, err
		}
	}
	if mask == "" {
		return modelMeta{}, ErrIncompatibleTask(modelID, "")
	}
	return modelMeta{ID: modelID, PipelineTag: taskFillMask, MaskToken: mask, ResolvedAt: time.Now().UTC()}, nil
}

// fetchTokenizerMask reads mask_token from tokenizer_config.json, where it is
// either a plain string or an added-token object with a content field.
func (b *HubBackend) fetchTokenizerMask(ctx context.Context, modelID string) (string, error) {
	var cfg struct {
		MaskToken json.RawMessage `json:"mask_token"`
	}
	u := b.hubURL + "/" + escapeID(modelID) + "/resolve/main/tokenizer_config.json"
	if err := b.client.GetJSON(ctx, u, &cfg); err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("tokenizer config %s: %w", modelID, err)
	}
	return parseMaskToken(cfg.MaskToken), nil
}

func parseMaskToken(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Content
	}
	return ""
}

func (b *HubBackend) metaPath(modelID string) string {
	return filepath.Join(b.cacheDir, strings.ReplaceAll(modelID, "/", "--")+".json")
}

func (b *HubBackend) loadMeta(modelID string) (modelMeta, bool) {
	data, err := os.ReadFile(b.metaPath(modelID))
	if err != nil {
		return modelMeta{}, false
	}
	var meta modelMeta
	if err := json.Unmarshal(data, &meta); err != nil || meta.ID != modelID || meta.MaskToken == "" {
		return modelMeta{}, false
	}
	return meta, true
}

func (b *HubBackend) saveMeta(meta modelMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	path := b.metaPath(meta.ID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// hubPipeline runs fill-mask through the hosted inference API.
type hubPipeline struct {
	backend *HubBackend
	meta    modelMeta
}

type fillMaskRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters fillMaskParameters `json:"parameters"`
}

type fillMaskParameters struct {
	TopK int `json:"top_k"`
}

func (p *hubPipeline) ModelID() string   { return p.meta.ID }
func (p *hubPipeline) MaskToken() string { return p.meta.MaskToken }
func (p *hubPipeline) Close() error      { return nil }

func (p *hubPipeline) FillMask(ctx context.Context, text string, topK int) ([]types.Prediction, error) {
	b := p.backend
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}
	start := time.Now()
	var preds []types.Prediction
	err := b.client.PostJSON(ctx, b.inferenceURL+"/models/"+escapeID(p.meta.ID), fillMaskRequest{
		Inputs:     text,
		Parameters: fillMaskParameters{TopK: topK},
	}, &preds)
	if err != nil {
		fillMaskDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		b.log.Warn().Err(err).Str("model", p.meta.ID).Dur("dur", time.Since(start)).Msg("fill-mask failed")
		if isNotFound(err) {
			return nil, ErrUnknownModel(p.meta.ID)
		}
		return nil, fmt.Errorf("fill-mask %s: %w", p.meta.ID, err)
	}
	fillMaskDuration.WithLabelValues("ok").Observe(time.Since(start).Seconds())
	sort.SliceStable(preds, func(i, j int) bool { return preds[i].Score > preds[j].Score })
	if len(preds) > topK {
		preds = preds[:topK]
	}
	b.log.Debug().Str("model", p.meta.ID).Int("candidates", len(preds)).Dur("dur", time.Since(start)).Msg("fill-mask done")
	return preds, nil
}

// escapeID escapes each path segment of an "org/name" model id.
func escapeID(id string) string {
	parts := strings.Split(id, "/")
	for i, s := range parts {
		parts[i] = url.PathEscape(s)
	}
	return strings.Join(parts, "/")
}

// isNotFound also matches 401: the hub answers it for repositories that do not exist.
func isNotFound(err error) bool {
	var se *httpclient.StatusError
	return errors.As(err, &se) && (se.StatusCode == http.StatusNotFound || se.StatusCode == http.StatusUnauthorized)
}
