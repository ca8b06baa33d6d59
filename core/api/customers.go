package api

import (
	"context"
	"net/url"
)

// CustomersAPI groups the /customers endpoints.
type CustomersAPI struct{ c *Client }

// Customers returns the /customers endpoint group.
func (c *Client) Customers() CustomersAPI { return CustomersAPI{c} }

func (cu CustomersAPI) Profile(ctx context.Context, id string) (*Response, error) {
	return cu.c.get(ctx, "/customers/"+segment(id), nil)
}

func (cu CustomersAPI) UpdateProfile(ctx context.Context, id string, data any) (*Response, error) {
	return cu.c.put(ctx, "/customers/"+segment(id), data)
}

func (cu CustomersAPI) Orders(ctx context.Context, id string, params url.Values) (*Response, error) {
	return cu.c.get(ctx, "/customers/"+segment(id)+"/orders", params)
}

func (cu CustomersAPI) Recommendations(ctx context.Context, id string) (*Response, error) {
	return cu.c.get(ctx, "/customers/"+segment(id)+"/recommendations", nil)
}

func (cu CustomersAPI) List(ctx context.Context, params url.Values) (*Response, error) {
	return cu.c.get(ctx, "/customers", params)
}

func (cu CustomersAPI) ToggleStatus(ctx context.Context, id string) (*Response, error) {
	return cu.c.patch(ctx, "/customers/"+segment(id)+"/toggle-status", nil)
}

func (cu CustomersAPI) Delete(ctx context.Context, id string) (*Response, error) {
	return cu.c.delete(ctx, "/customers/"+segment(id))
}

// Stats returns the customer summary over period days; empty means DefaultPeriod.
func (cu CustomersAPI) Stats(ctx context.Context, period string) (*Response, error) {
	return cu.c.get(ctx, "/customers/stats/summary", url.Values{"period": {orDefault(period, DefaultPeriod)}})
}
