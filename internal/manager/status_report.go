package manager

import (
	"sort"
	"time"

	"mlmcompare/pkg/types"
)

// Status builds a detailed status response for /status.
func (m *Manager) Status() types.StatusResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := time.Now()
	resp := types.StatusResponse{
		MaxPipelines:   m.maxPipelines,
		State:          string(m.state),
		LastError:      m.err,
		UptimeSeconds:  int64(now.Sub(m.startTime).Seconds()),
		ServerTimeUnix: now.Unix(),
		EvictionsTotal: m.evictionsTotal,
		LoadsTotal:     m.loadsTotal,
	}
	resp.Pipelines = make([]types.PipelineStatus, 0, len(m.instances))
	for _, inst := range m.instances {
		ps := types.PipelineStatus{
			ModelID:       inst.ID,
			State:         string(inst.State),
			LastUsed:      inst.LastUsed.Unix(),
			QueueLen:      len(inst.queueCh),
			Inflight:      len(inst.genCh),
			MaxQueueDepth: cap(inst.queueCh),
		}
		if inst.Pipeline != nil {
			ps.MaskToken = inst.Pipeline.MaskToken()
		}
		if inst.lastErr != nil {
			ps.Error = inst.lastErr.Error()
		}
		resp.Pipelines = append(resp.Pipelines, ps)
	}
	sort.Slice(resp.Pipelines, func(i, j int) bool { return resp.Pipelines[i].ModelID < resp.Pipelines[j].ModelID })
	return resp
}
