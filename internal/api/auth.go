package api

import (
	"context"

	"skillswap-web/internal/models"
)

func (c *Client) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	creds := map[string]string{"username": username, "password": password}
	var auth models.AuthResponse
	if err := c.post(ctx, "/auth/login", "", creds, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}

func (c *Client) Register(ctx context.Context, input models.RegisterInput) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.post(ctx, "/auth/register", "", input, &auth); err != nil {
		return nil, err
	}
	return &auth, nil
}
