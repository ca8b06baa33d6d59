package api

import "context"

// PerformanceAPI groups the /performance monitoring endpoints.
type PerformanceAPI struct{ c *Client }

// Performance returns the /performance endpoint group.
func (c *Client) Performance() PerformanceAPI { return PerformanceAPI{c} }

func (p PerformanceAPI) Metrics(ctx context.Context) (*Response, error) {
	return p.c.get(ctx, "/performance/metrics", nil)
}

func (p PerformanceAPI) SystemStatus(ctx context.Context) (*Response, error) {
	return p.c.get(ctx, "/performance/system-status", nil)
}

func (p PerformanceAPI) Algorithm(ctx context.Context, algorithm string) (*Response, error) {
	return p.c.get(ctx, "/performance/algorithm/"+segment(algorithm), nil)
}

func (p PerformanceAPI) DataStructure(ctx context.Context, dataStructure string) (*Response, error) {
	return p.c.get(ctx, "/performance/data-structure/"+segment(dataStructure), nil)
}

func (p PerformanceAPI) Reset(ctx context.Context) (*Response, error) {
	return p.c.post(ctx, "/performance/reset", nil)
}
