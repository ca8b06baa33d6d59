package api

import (
	"context"
	"net/url"
)

// Export formats accepted by AnalyticsAPI.Export.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// AnalyticsAPI groups the /analytics endpoints.
type AnalyticsAPI struct{ c *Client }

// Analytics returns the /analytics endpoint group.
func (c *Client) Analytics() AnalyticsAPI { return AnalyticsAPI{c} }

func (a AnalyticsAPI) Dashboard(ctx context.Context, period string) (*Response, error) {
	return a.c.get(ctx, "/analytics/dashboard", url.Values{"period": {orDefault(period, DefaultPeriod)}})
}

// Sales groups sales by groupBy (default "day") over period days.
func (a AnalyticsAPI) Sales(ctx context.Context, period, groupBy string) (*Response, error) {
	return a.c.get(ctx, "/analytics/sales", url.Values{
		"period":  {orDefault(period, DefaultPeriod)},
		"groupBy": {orDefault(groupBy, "day")},
	})
}

func (a AnalyticsAPI) Customers(ctx context.Context, period string) (*Response, error) {
	return a.c.get(ctx, "/analytics/customers", url.Values{"period": {orDefault(period, DefaultPeriod)}})
}

func (a AnalyticsAPI) Inventory(ctx context.Context) (*Response, error) {
	return a.c.get(ctx, "/analytics/inventory", nil)
}

func (a AnalyticsAPI) Algorithms(ctx context.Context) (*Response, error) {
	return a.c.get(ctx, "/analytics/algorithms", nil)
}

// Export downloads a dataset. CSV exports come back as raw bytes in Response.Body.
func (a AnalyticsAPI) Export(ctx context.Context, dataType, period, format string) (*Response, error) {
	return a.c.get(ctx, "/analytics/export/"+segment(dataType), url.Values{
		"period": {orDefault(period, DefaultPeriod)},
		"format": {orDefault(format, FormatJSON)},
	})
}
