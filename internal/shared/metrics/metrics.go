package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	scoreRunsTotal        atomic.Uint64
	scoreRunsFailedTotal  atomic.Uint64
	qualityCacheHitTotal  atomic.Uint64
	qualityCacheMissTotal atomic.Uint64
	qualityAIFailedTotal  atomic.Uint64

	scoreDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncScoreRun increments the completed score-run counter.
func IncScoreRun() {
	scoreRunsTotal.Add(1)
}

// IncScoreRunFailed increments the failed score-run counter.
func IncScoreRunFailed() {
	scoreRunsFailedTotal.Add(1)
}

// IncQualityCacheHit increments the quality cache hit counter.
func IncQualityCacheHit() {
	qualityCacheHitTotal.Add(1)
}

// IncQualityCacheMiss increments the quality cache miss counter.
func IncQualityCacheMiss() {
	qualityCacheMissTotal.Add(1)
}

// IncQualityAIFailure increments the AI capability failure counter.
func IncQualityAIFailure() {
	qualityAIFailedTotal.Add(1)
}

// ObserveScoreDurationMs records a score computation duration in milliseconds.
func ObserveScoreDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	scoreDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "score_runs_total", "Total resume score runs completed", scoreRunsTotal.Load())
	writeCounter(&buf, "score_runs_failed_total", "Total resume score runs failed", scoreRunsFailedTotal.Load())
	writeCounter(&buf, "quality_cache_hit_total", "Total section quality cache hits", qualityCacheHitTotal.Load())
	writeCounter(&buf, "quality_cache_miss_total", "Total section quality cache misses", qualityCacheMissTotal.Load())
	writeCounter(&buf, "quality_ai_failed_total", "Total AI section quality failures", qualityAIFailedTotal.Load())
	writeHistogram(&buf, "score_duration_ms", "Score computation duration in milliseconds", scoreDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
