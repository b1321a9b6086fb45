package navps

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/navps-cli/internal/fetcher"
)

// DefaultEndpoint is the PIFA daily NAVPS report page.
const DefaultEndpoint = "http://pifa.com.ph/factsfignavps.asp"

// ReportURL builds the report URL for date. The date is sent as MM/DD/YYYY
// with the slashes percent-encoded.
func ReportURL(endpoint string, date time.Time) string {
	q := url.Values{}
	q.Set("D1", date.Format("01/02/2006"))
	q.Set("txtNoRecs", "False")
	return endpoint + "?" + q.Encode()
}

// Source retrieves the raw report document for a date.
type Source interface {
	Fetch(ctx context.Context, date time.Time) (io.ReadCloser, error)
}

// DocumentFetcher is the Source backed by the report endpoint.
type DocumentFetcher struct {
	Endpoint string
	Fetcher  fetcher.Fetcher
}

// NewDocumentFetcher returns a DocumentFetcher for endpoint, falling back to
// DefaultEndpoint when endpoint is empty.
func NewDocumentFetcher(endpoint string, f fetcher.Fetcher) *DocumentFetcher {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &DocumentFetcher{Endpoint: endpoint, Fetcher: f}
}

// Fetch downloads the report for date. Any transport failure is a KindFetch error.
func (d *DocumentFetcher) Fetch(ctx context.Context, date time.Time) (io.ReadCloser, error) {
	body, err := d.Fetcher.Download(ctx, ReportURL(d.Endpoint, date))
	if err != nil {
		return nil, &Error{Kind: KindFetch, Date: date, Err: eris.Wrap(err, "fetch report")}
	}
	return body, nil
}
