//nolint:ireturn
package httpclient

import (
	"context"
)

// GetJSON decodes a 200 response into T without validating its shape: fields
// missing from the payload stay at their zero value.
func GetJSON[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (T, error) {
	var result T
	err := c.Get(ctx, path, &result, opts...)

	return result, err
}
