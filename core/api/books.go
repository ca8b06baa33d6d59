package api

import (
	"context"
	"net/url"
)

// BooksAPI groups the /books endpoints.
type BooksAPI struct{ c *Client }

// Books returns the /books endpoint group.
func (c *Client) Books() BooksAPI { return BooksAPI{c} }

func (b BooksAPI) List(ctx context.Context, params url.Values) (*Response, error) {
	return b.c.get(ctx, "/books", params)
}

func (b BooksAPI) Get(ctx context.Context, id string) (*Response, error) {
	return b.c.get(ctx, "/books/"+segment(id), nil)
}

func (b BooksAPI) GetByISBN(ctx context.Context, isbn string) (*Response, error) {
	return b.c.get(ctx, "/books/isbn/"+segment(isbn), nil)
}

// Search queries books by q; filters are merged into the query string.
func (b BooksAPI) Search(ctx context.Context, q string, filters url.Values) (*Response, error) {
	params := url.Values{}
	for k, v := range filters {
		params[k] = v
	}
	params.Set("q", q)
	return b.c.get(ctx, "/books/search", params)
}

func (b BooksAPI) Categories(ctx context.Context) (*Response, error) {
	return b.c.get(ctx, "/books/categories", nil)
}

func (b BooksAPI) Authors(ctx context.Context) (*Response, error) {
	return b.c.get(ctx, "/books/authors", nil)
}

func (b BooksAPI) Create(ctx context.Context, book any) (*Response, error) {
	return b.c.post(ctx, "/books", book)
}

func (b BooksAPI) Update(ctx context.Context, id string, book any) (*Response, error) {
	return b.c.put(ctx, "/books/"+segment(id), book)
}

func (b BooksAPI) Delete(ctx context.Context, id string) (*Response, error) {
	return b.c.delete(ctx, "/books/"+segment(id))
}

func (b BooksAPI) ToggleStock(ctx context.Context, id string) (*Response, error) {
	return b.c.patch(ctx, "/books/"+segment(id)+"/toggle-stock", nil)
}
