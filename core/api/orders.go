package api

import (
	"context"
	"net/url"
)

// DefaultPeriod is the reporting window, in days, used by stats endpoints.
const DefaultPeriod = "30"

// OrdersAPI groups the /orders endpoints.
type OrdersAPI struct{ c *Client }

// Orders returns the /orders endpoint group.
func (c *Client) Orders() OrdersAPI { return OrdersAPI{c} }

func (o OrdersAPI) Mine(ctx context.Context, params url.Values) (*Response, error) {
	return o.c.get(ctx, "/orders/my-orders", params)
}

func (o OrdersAPI) Get(ctx context.Context, id string) (*Response, error) {
	return o.c.get(ctx, "/orders/"+segment(id), nil)
}

func (o OrdersAPI) Create(ctx context.Context, order any) (*Response, error) {
	return o.c.post(ctx, "/orders", order)
}

func (o OrdersAPI) Cancel(ctx context.Context, id string) (*Response, error) {
	return o.c.patch(ctx, "/orders/"+segment(id)+"/cancel", nil)
}

func (o OrdersAPI) List(ctx context.Context, params url.Values) (*Response, error) {
	return o.c.get(ctx, "/orders", params)
}

func (o OrdersAPI) UpdateStatus(ctx context.Context, id, status string) (*Response, error) {
	return o.c.patch(ctx, "/orders/"+segment(id)+"/status", map[string]string{"status": status})
}

// Stats returns order statistics over period days; empty means DefaultPeriod.
func (o OrdersAPI) Stats(ctx context.Context, period string) (*Response, error) {
	return o.c.get(ctx, "/orders/stats", url.Values{"period": {orDefault(period, DefaultPeriod)}})
}

func (o OrdersAPI) SystemStatus(ctx context.Context) (*Response, error) {
	return o.c.get(ctx, "/orders/system-status", nil)
}

func (o OrdersAPI) Optimize(ctx context.Context) (*Response, error) {
	return o.c.post(ctx, "/orders/optimize", nil)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
