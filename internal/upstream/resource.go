package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
)

// ListOptions are the shaping parameters list endpoints accept. They take part
// in the cache key, so a preload fetch and a plain fetch are cached apart.
type ListOptions struct {
	Preload bool
	Select  []string
}

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.Preload {
		q.Set("preload", "true")
	}
	if len(o.Select) > 0 {
		q.Set("select", strings.Join(o.Select, ","))
	}
	return q
}

// Resource is the typed client for one collection endpoint.
type Resource[E entity.Record] struct {
	client *Client
	path   string
}

func NewResource[E entity.Record](client *Client, path string) *Resource[E] {
	return &Resource[E]{client: client, path: path}
}

func (r *Resource[E]) List(ctx context.Context, opts ListOptions) (*envelope.Envelope[[]E], error) {
	var env envelope.Envelope[[]E]
	if err := r.client.do(ctx, http.MethodGet, r.path, opts.query(), nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (r *Resource[E]) Get(ctx context.Context, id string) (*envelope.Envelope[E], error) {
	var env envelope.Envelope[E]
	if err := r.client.do(ctx, http.MethodGet, r.path+"/"+id, nil, nil, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Create posts the payload and returns the authoritative record, including
// the server-assigned id and timestamps.
func (r *Resource[E]) Create(ctx context.Context, body any) (*envelope.Envelope[E], error) {
	var env envelope.Envelope[E]
	if err := r.client.do(ctx, http.MethodPost, r.path, nil, body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

func (r *Resource[E]) Update(ctx context.Context, id string, body any) (*envelope.Envelope[E], error) {
	var env envelope.Envelope[E]
	if err := r.client.do(ctx, http.MethodPut, r.path+"/"+id, nil, body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// Delete removes the record by id. The upstream replies with an empty-data
// envelope, which is discarded.
func (r *Resource[E]) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.path+"/"+id, nil, nil, nil)
}
