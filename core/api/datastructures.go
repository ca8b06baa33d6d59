package api

import "context"

// DataStructuresAPI groups the /data-structures demo endpoints.
type DataStructuresAPI struct{ c *Client }

// DataStructures returns the /data-structures endpoint group.
func (c *Client) DataStructures() DataStructuresAPI { return DataStructuresAPI{c} }

type valueBody struct {
	Value any `json:"value"`
}

func (d DataStructuresAPI) StackPush(ctx context.Context, value any) (*Response, error) {
	return d.c.post(ctx, "/data-structures/stack/push", valueBody{value})
}

func (d DataStructuresAPI) StackPop(ctx context.Context) (*Response, error) {
	return d.c.post(ctx, "/data-structures/stack/pop", nil)
}

func (d DataStructuresAPI) StackPeek(ctx context.Context) (*Response, error) {
	return d.c.get(ctx, "/data-structures/stack/peek", nil)
}

func (d DataStructuresAPI) QueueEnqueue(ctx context.Context, value any) (*Response, error) {
	return d.c.post(ctx, "/data-structures/queue/enqueue", valueBody{value})
}

func (d DataStructuresAPI) QueueDequeue(ctx context.Context) (*Response, error) {
	return d.c.post(ctx, "/data-structures/queue/dequeue", nil)
}

func (d DataStructuresAPI) CircularQueueEnqueue(ctx context.Context, value any) (*Response, error) {
	return d.c.post(ctx, "/data-structures/circular-queue/enqueue", valueBody{value})
}

func (d DataStructuresAPI) CircularQueueDequeue(ctx context.Context) (*Response, error) {
	return d.c.post(ctx, "/data-structures/circular-queue/dequeue", nil)
}

func (d DataStructuresAPI) DequeAddFront(ctx context.Context, value any) (*Response, error) {
	return d.c.post(ctx, "/data-structures/deque/add-front", valueBody{value})
}

func (d DataStructuresAPI) DequeAddRear(ctx context.Context, value any) (*Response, error) {
	return d.c.post(ctx, "/data-structures/deque/add-rear", valueBody{value})
}

func (d DataStructuresAPI) DequeRemoveFront(ctx context.Context) (*Response, error) {
	return d.c.post(ctx, "/data-structures/deque/remove-front", nil)
}

func (d DataStructuresAPI) DequeRemoveRear(ctx context.Context) (*Response, error) {
	return d.c.post(ctx, "/data-structures/deque/remove-rear", nil)
}

func (d DataStructuresAPI) PriorityQueueAdd(ctx context.Context, value any, priority int) (*Response, error) {
	return d.c.post(ctx, "/data-structures/priority-queue/add", struct {
		Value    any `json:"value"`
		Priority int `json:"priority"`
	}{value, priority})
}

func (d DataStructuresAPI) PriorityQueuePoll(ctx context.Context) (*Response, error) {
	return d.c.post(ctx, "/data-structures/priority-queue/poll", nil)
}

func (d DataStructuresAPI) HashSearchPut(ctx context.Context, key string, value any) (*Response, error) {
	return d.c.post(ctx, "/data-structures/hash-search/put", struct {
		Key   string `json:"key"`
		Value any    `json:"value"`
	}{key, value})
}

func (d DataStructuresAPI) HashSearchGet(ctx context.Context, key string) (*Response, error) {
	return d.c.get(ctx, "/data-structures/hash-search/get/"+segment(key), nil)
}

func (d DataStructuresAPI) HashSearchRemove(ctx context.Context, key string) (*Response, error) {
	return d.c.delete(ctx, "/data-structures/hash-search/remove/"+segment(key))
}
