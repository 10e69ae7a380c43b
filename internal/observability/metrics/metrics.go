package metrics

import (
	"strconv"
	"time"

	obserrors "github.com/davidyusaku-13/prima-mobile/internal/observability/errors"
	"github.com/davidyusaku-13/prima-mobile/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultOK    = "ok"
	ResultStale = "stale"
)

// RequestMetric captures one API call for metric emission.
type RequestMetric struct {
	Path     string
	Status   int
	Duration time.Duration
	Err      error
}

// EmitRequest emits api.request and api.request.duration.
// The result tag is "ok" or the error class of Err.
func EmitRequest(sink statsd.Sink, in RequestMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"path":   in.Path,
		"result": ResultOK,
	}
	if in.Status != 0 {
		tags["status"] = strconv.Itoa(in.Status)
	}
	if in.Err != nil {
		tags["result"] = obserrors.Classify(in.Err)
	}

	sink.Count("api.request", 1, tags)
	sink.Timing("api.request.duration", in.Duration, CloneTags(tags))
}

// OutcomeMetric captures a settled (or discarded) probe or screen load.
type OutcomeMetric struct {
	// Name is the metric stem, e.g. "admin_access.probe".
	Name     string
	Result   string
	Duration time.Duration
	Tags     map[string]string
}

// EmitOutcome emits <Name> with a result tag, and <Name>.duration unless the
// outcome was discarded as stale.
func EmitOutcome(sink statsd.Sink, in OutcomeMetric) {
	if sink == nil {
		return
	}

	tags := CloneTags(in.Tags)
	if tags == nil {
		tags = make(map[string]string, 1)
	}
	tags["result"] = in.Result

	sink.Count(in.Name, 1, tags)

	if in.Result != ResultStale && in.Duration > 0 {
		sink.Timing(in.Name+".duration", in.Duration, CloneTags(tags))
	}
}

// CloneTags creates a shallow copy of a tag map.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
