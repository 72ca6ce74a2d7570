package compare

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"mlmcompare/internal/common/fsutil"
	"mlmcompare/pkg/types"
)

// Comparer runs the step for two models side by side.
type Comparer struct {
	step      *Step
	diskPath  string
	diskUsage func(string) (types.DiskUsage, error)
	log       zerolog.Logger
}

// NewComparer returns a Comparer over step. An empty diskPath disables the
// disk usage readout.
func NewComparer(step *Step, diskPath string, logger *zerolog.Logger) *Comparer {
	c := &Comparer{step: step, diskPath: diskPath, diskUsage: fsutil.DiskUsage}
	if logger != nil {
		c.log = logger.With().Str("component", "compare").Logger()
	} else {
		c.log = zerolog.Nop()
	}
	return c
}

// Step exposes the underlying step for single-model calls.
func (c *Comparer) Step() *Step { return c.step }

// Column is one model's outcome; exactly one of Result and Err is set.
type Column struct {
	Model  string
	Result *Result
	Err    error
}

// Comparison is the outcome of one two-model run, rendered charts included.
type Comparison struct {
	RunID   string
	Columns []Column
	Disk    *types.DiskUsage
}

// Response converts c into its API payload.
func (c Comparison) Response() types.CompareResponse {
	resp := types.CompareResponse{RunID: c.RunID, Disk: c.Disk, Columns: make([]types.CompareColumn, len(c.Columns))}
	for i, col := range c.Columns {
		out := types.CompareColumn{Model: col.Model}
		if col.Err != nil {
			out.Error = col.Err.Error()
		} else if col.Result != nil {
			r := col.Result.Response()
			out.Result = &r
		}
		resp.Columns[i] = out
	}
	return resp
}

// Compare runs both models concurrently and returns the API payload.
func (c *Comparer) Compare(ctx context.Context, models []string, text string, topK int) (types.CompareResponse, error) {
	cmp, err := c.Run(ctx, models, text, topK)
	if err != nil {
		return types.CompareResponse{}, err
	}
	return cmp.Response(), nil
}

// Run runs both models concurrently. Input errors are returned before any
// inference starts; per-model failures land in their column.
func (c *Comparer) Run(ctx context.Context, models []string, text string, topK int) (Comparison, error) {
	if len(models) != 2 {
		comparisons.WithLabelValues("rejected").Inc()
		return Comparison{}, ErrSelection
	}
	keys := make([]Key, len(models))
	for i, m := range models {
		k, err := Validate(Key{Model: m, Text: text, TopK: topK})
		if err != nil {
			comparisons.WithLabelValues("rejected").Inc()
			return Comparison{}, err
		}
		keys[i] = k
	}

	cmp := Comparison{
		RunID:   uuid.NewString(),
		Columns: make([]Column, len(keys)),
	}
	var wg sync.WaitGroup
	for i, k := range keys {
		wg.Add(1)
		go func(i int, k Key) {
			defer wg.Done()
			col := Column{Model: k.Model}
			res, err := c.step.Run(ctx, k)
			if err != nil {
				col.Err = err
				c.log.Warn().Err(err).Str("run_id", cmp.RunID).Str("model", k.Model).Msg("column failed")
			} else {
				col.Result = &res
			}
			cmp.Columns[i] = col
		}(i, k)
	}
	wg.Wait()

	failed := 0
	for _, col := range cmp.Columns {
		if col.Err != nil {
			failed++
		}
	}
	switch failed {
	case 0:
		comparisons.WithLabelValues("ok").Inc()
	case len(cmp.Columns):
		comparisons.WithLabelValues("failed").Inc()
	default:
		comparisons.WithLabelValues("partial").Inc()
	}

	cmp.Disk = c.Disk()
	return cmp, nil
}

// Disk returns the disk usage readout, or nil when it is disabled or fails.
func (c *Comparer) Disk() *types.DiskUsage {
	if c.diskPath == "" {
		return nil
	}
	du, err := c.diskUsage(c.diskPath)
	if err != nil {
		c.log.Debug().Err(err).Str("path", c.diskPath).Msg("disk usage unavailable")
		return nil
	}
	return &du
}
