package api

import (
	"context"
	"fmt"

	"skillswap-web/internal/models"
)

func (c *Client) GetFeedbackForUser(ctx context.Context, token string, userID int64) ([]models.Feedback, error) {
	var fbs []models.Feedback
	err := c.get(ctx, fmt.Sprintf("/feedback/user/%d", userID), token, &fbs)
	return fbs, err
}

// GetAverageRating returns nil when the user has no feedback yet; the
// backend sends a bare JSON number (or null) for this endpoint.
func (c *Client) GetAverageRating(ctx context.Context, token string, userID int64) (*float64, error) {
	var rating *float64
	err := c.get(ctx, fmt.Sprintf("/feedback/rating/%d", userID), token, &rating)
	return rating, err
}

func (c *Client) GetFeedbackGivenBy(ctx context.Context, token string, userID int64) ([]models.Feedback, error) {
	var fbs []models.Feedback
	err := c.get(ctx, fmt.Sprintf("/feedback/given-by/%d", userID), token, &fbs)
	return fbs, err
}

func (c *Client) GetFeedbackForSwapRequest(ctx context.Context, token string, swapRequestID int64) ([]models.Feedback, error) {
	var fbs []models.Feedback
	err := c.get(ctx, fmt.Sprintf("/feedback/swap-request/%d", swapRequestID), token, &fbs)
	return fbs, err
}

func (c *Client) CreateFeedback(ctx context.Context, token string, input models.FeedbackInput) (*models.Feedback, error) {
	var fb models.Feedback
	if err := c.post(ctx, "/feedback", token, input, &fb); err != nil {
		return nil, err
	}
	return &fb, nil
}

func (c *Client) UpdateFeedback(ctx context.Context, token string, id int64, input models.FeedbackInput) (*models.Feedback, error) {
	var fb models.Feedback
	if err := c.put(ctx, fmt.Sprintf("/feedback/%d", id), token, input, &fb); err != nil {
		return nil, err
	}
	return &fb, nil
}

func (c *Client) DeleteFeedback(ctx context.Context, token string, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/feedback/%d", id), token)
}

// Admin endpoint.

func (c *Client) GetAllFeedback(ctx context.Context, token string) ([]models.Feedback, error) {
	var fbs []models.Feedback
	err := c.get(ctx, "/feedback/all", token, &fbs)
	return fbs, err
}
