package nearby

import (
	"context"
	"time"

	"github.com/Magga23/siteradar/pkg/metrics"
)

type SearchMetricsDecorator struct {
	Next    SearchUseCase
	Metrics metrics.Metrics
}

func (d *SearchMetricsDecorator) Execute(ctx context.Context, input SearchInput) (SearchOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("SearchNearbySites", err == nil, time.Since(start))
	if err == nil {
		d.Metrics.RecordSiteSearch("success")
		d.Metrics.ObserveSearchResults(len(output.Sites))
	} else {
		d.Metrics.RecordSiteSearch("failure")
	}
	return output, err
}
