package api

import "context"

// AlgorithmsAPI groups the /algorithms demo endpoints.
type AlgorithmsAPI struct{ c *Client }

// Algorithms returns the /algorithms endpoint group.
func (c *Client) Algorithms() AlgorithmsAPI { return AlgorithmsAPI{c} }

type searchBody struct {
	Array  []int `json:"array"`
	Target int   `json:"target"`
}

type sortBody struct {
	Array []int `json:"array"`
}

func (a AlgorithmsAPI) LinearSearch(ctx context.Context, array []int, target int) (*Response, error) {
	return a.c.post(ctx, "/algorithms/search/linear", searchBody{array, target})
}

func (a AlgorithmsAPI) BinarySearch(ctx context.Context, array []int, target int) (*Response, error) {
	return a.c.post(ctx, "/algorithms/search/binary", searchBody{array, target})
}

func (a AlgorithmsAPI) HashSearch(ctx context.Context, data map[string]any, key string) (*Response, error) {
	return a.c.post(ctx, "/algorithms/search/hash", struct {
		Data map[string]any `json:"data"`
		Key  string         `json:"key"`
	}{data, key})
}

func (a AlgorithmsAPI) QuickSort(ctx context.Context, array []int) (*Response, error) {
	return a.c.post(ctx, "/algorithms/sort/quick", sortBody{array})
}

func (a AlgorithmsAPI) MergeSort(ctx context.Context, array []int) (*Response, error) {
	return a.c.post(ctx, "/algorithms/sort/merge", sortBody{array})
}

func (a AlgorithmsAPI) CompareSearch(ctx context.Context, array []int, target int) (*Response, error) {
	return a.c.post(ctx, "/algorithms/compare/search", searchBody{array, target})
}

func (a AlgorithmsAPI) CompareSort(ctx context.Context, array []int) (*Response, error) {
	return a.c.post(ctx, "/algorithms/compare/sort", sortBody{array})
}

func (a AlgorithmsAPI) Complexity(ctx context.Context, algorithm string) (*Response, error) {
	return a.c.get(ctx, "/algorithms/complexity/"+segment(algorithm), nil)
}

func (a AlgorithmsAPI) AllComplexity(ctx context.Context) (*Response, error) {
	return a.c.get(ctx, "/algorithms/complexity/all", nil)
}
