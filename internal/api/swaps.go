package api

import (
	"context"
	"fmt"

	"skillswap-web/internal/models"
)

func (c *Client) GetCurrentUserSwapRequests(ctx context.Context, token string) ([]models.SwapRequest, error) {
	var reqs []models.SwapRequest
	err := c.get(ctx, "/swap-requests", token, &reqs)
	return reqs, err
}

func (c *Client) GetSentSwapRequests(ctx context.Context, token string) ([]models.SwapRequest, error) {
	var reqs []models.SwapRequest
	err := c.get(ctx, "/swap-requests/sent", token, &reqs)
	return reqs, err
}

func (c *Client) GetReceivedSwapRequests(ctx context.Context, token string) ([]models.SwapRequest, error) {
	var reqs []models.SwapRequest
	err := c.get(ctx, "/swap-requests/received", token, &reqs)
	return reqs, err
}

func (c *Client) GetSwapRequestsByStatus(ctx context.Context, token, status string) ([]models.SwapRequest, error) {
	var reqs []models.SwapRequest
	err := c.get(ctx, "/swap-requests/status/"+status, token, &reqs)
	return reqs, err
}

func (c *Client) GetSwapRequestByID(ctx context.Context, token string, id int64) (*models.SwapRequest, error) {
	var req models.SwapRequest
	if err := c.get(ctx, fmt.Sprintf("/swap-requests/%d", id), token, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *Client) CreateSwapRequest(ctx context.Context, token string, input models.SwapRequestInput) (*models.SwapRequest, error) {
	var req models.SwapRequest
	if err := c.post(ctx, "/swap-requests", token, input, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// The transition endpoints return the updated request so the detail page
// can re-render without a second fetch.

func (c *Client) AcceptSwapRequest(ctx context.Context, token string, id int64) (*models.SwapRequest, error) {
	return c.transition(ctx, token, id, "accept")
}

func (c *Client) RejectSwapRequest(ctx context.Context, token string, id int64) (*models.SwapRequest, error) {
	return c.transition(ctx, token, id, "reject")
}

func (c *Client) CompleteSwapRequest(ctx context.Context, token string, id int64) (*models.SwapRequest, error) {
	return c.transition(ctx, token, id, "complete")
}

func (c *Client) CancelSwapRequest(ctx context.Context, token string, id int64) (*models.SwapRequest, error) {
	return c.transition(ctx, token, id, "cancel")
}

func (c *Client) transition(ctx context.Context, token string, id int64, action string) (*models.SwapRequest, error) {
	var req models.SwapRequest
	if err := c.put(ctx, fmt.Sprintf("/swap-requests/%d/%s", id, action), token, nil, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Admin endpoints.

func (c *Client) GetAllSwapRequests(ctx context.Context, token string) ([]models.SwapRequest, error) {
	var reqs []models.SwapRequest
	err := c.get(ctx, "/swap-requests/all", token, &reqs)
	return reqs, err
}

func (c *Client) GetAllSwapRequestsByStatus(ctx context.Context, token, status string) ([]models.SwapRequest, error) {
	var reqs []models.SwapRequest
	err := c.get(ctx, "/swap-requests/all/status/"+status, token, &reqs)
	return reqs, err
}
