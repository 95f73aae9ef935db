// Package identity talks to the external auth provider's admin API. The
// provider owns authentication identities; profiles stay in our own store.
package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Deleter removes an authentication identity. The deletion pipeline depends
// on this interface so tests can fake the provider.
type Deleter interface {
	DeleteUser(ctx context.Context, userId uuid.UUID) error
}

type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

func NewClient(baseURL, serviceKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// DeleteUser issues an admin-scoped delete for the identity. 404 is treated
// as success: the identity is already gone, which is the state we want.
func (c *Client) DeleteUser(ctx context.Context, userId uuid.UUID) error {
	url := fmt.Sprintf("%s/admin/users/%s", c.baseURL, userId)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build identity delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity delete request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("identity delete for %s: status %d: %s", userId, resp.StatusCode, string(body))
	}
	return nil
}
