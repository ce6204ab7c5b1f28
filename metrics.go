package supadata

import "sync/atomic"

// Operational counters across all clients in the process.
var metrics struct {
	TranscriptRequests atomic.Int64
	YouTubeRequests    atomic.Int64
	WebRequests        atomic.Int64
	BatchRequests      atomic.Int64
	MetadataRequests   atomic.Int64
	APIErrors          atomic.Int64
	TransportErrors    atomic.Int64
}

// Metrics returns a snapshot of the request counters.
func Metrics() map[string]int64 {
	return map[string]int64{
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"youtube_requests":    metrics.YouTubeRequests.Load(),
		"web_requests":        metrics.WebRequests.Load(),
		"batch_requests":      metrics.BatchRequests.Load(),
		"metadata_requests":   metrics.MetadataRequests.Load(),
		"api_errors":          metrics.APIErrors.Load(),
		"transport_errors":    metrics.TransportErrors.Load(),
	}
}

func incrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func incrYouTubeRequests()    { metrics.YouTubeRequests.Add(1) }
func incrWebRequests()        { metrics.WebRequests.Add(1) }
func incrBatchRequests()      { metrics.BatchRequests.Add(1) }
func incrMetadataRequests()   { metrics.MetadataRequests.Add(1) }
func incrAPIErrors()          { metrics.APIErrors.Add(1) }
func incrTransportErrors()    { metrics.TransportErrors.Add(1) }
