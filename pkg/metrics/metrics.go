package metrics

import "time"

type Metrics interface {
	// Business
	RecordSiteSearch(status string)
	ObserveSearchResults(count int)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)

	// Infrastructure
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)

	// Ingest pipeline
	IncIngestProcessed(status string)
	IncDuplicateDropped(handlerName string)
}
