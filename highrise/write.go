package highrise

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func create[T any](ctx context.Context, c *Client, collection string, s *schema[T], v *T) (*T, error) {
	resp, err := c.mutate(ctx, &request{
		method:   http.MethodPost,
		endpoint: collection,
		body:     s.encode(v),
	})
	if err != nil {
		return nil, err
	}
	if resp.Kind != KindEntity {
		return nil, fmt.Errorf("create %s: %w", s.entity, ErrEmptyResponse)
	}
	return s.decode(resp.Record)
}

// update PUTs v with reload=true. When Highrise acknowledges without a body
// the submitted record is mapped back instead.
func update[T any](ctx context.Context, c *Client, collection string, s *schema[T], v *T, id int64) (*T, error) {
	sent := s.encode(v)
	resp, err := c.mutate(ctx, &request{
		method:   http.MethodPut,
		endpoint: entityPath(collection, id),
		params:   url.Values{"reload": {"true"}},
		body:     sent,
	})
	if err != nil {
		return nil, err
	}
	if resp.Kind == KindNoContent {
		c.logger.Debug().Str("entity", s.entity).Int64("id", id).Msg("Update acknowledged without body")
		return s.decode(sent)
	}
	return s.decode(resp.Record)
}

func (c *Client) remove(ctx context.Context, endpoint string) error {
	_, err := c.mutate(ctx, &request{method: http.MethodDelete, endpoint: endpoint})
	return err
}
