package highrise

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/s0up4200/highton/record"
)

// pageSize is the fixed number of records Highrise returns per list page.
const pageSize = 500

// getPaged walks an offset-paginated list endpoint and returns the child
// records of every non-empty page in request order.
//
// A parse failure on the first page is returned as a *ParseError. A parse
// failure after at least one record was collected ends the walk and the
// collected records are returned without error. Transport errors always
// surface.
func (c *Client) getPaged(ctx context.Context, endpoint string, params url.Values) ([]*record.Node, error) {
	var (
		nodes   []*record.Node
		counter int
	)

	for {
		query := cloneValues(params)
		offset := pageSize * counter
		query.Set("n", strconv.Itoa(offset))

		resp, err := c.get(ctx, endpoint, query)
		if err != nil {
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				return nil, err
			}
			return c.pageParseFailure(endpoint, offset, nodes, parseErr)
		}
		if resp.Kind != KindEntity {
			return c.pageParseFailure(endpoint, offset, nodes, &ParseError{Endpoint: endpoint, Err: ErrEmptyResponse})
		}

		page := resp.Record.Children
		c.logger.Debug().
			Str("endpoint", endpoint).
			Int("offset", offset).
			Int("count", len(page)).
			Msg("Fetched page")

		if len(page) == 0 {
			break
		}
		nodes = append(nodes, page...)
		counter++
	}

	return nodes, nil
}

func (c *Client) pageParseFailure(endpoint string, offset int, nodes []*record.Node, err *ParseError) ([]*record.Node, error) {
	if len(nodes) == 0 {
		return nil, err
	}
	// FIXME: a broken page after the first silently truncates the list; kept
	// because existing callers depend on partial results.
	c.logger.Warn().
		Err(err).
		Str("endpoint", endpoint).
		Int("offset", offset).
		Int("collected", len(nodes)).
		Msg("Stopping pagination after unparsable page")
	return nodes, nil
}

// getData fetches a non-paginated list endpoint.
func (c *Client) getData(ctx context.Context, endpoint string) ([]*record.Node, error) {
	resp, err := c.get(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if resp.Kind != KindEntity {
		return nil, &ParseError{Endpoint: endpoint, Err: ErrEmptyResponse}
	}
	return resp.Record.Children, nil
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v)+1)
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
