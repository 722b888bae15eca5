package api

import (
	"context"
	"fmt"
	"net/url"

	"skillswap-web/internal/models"
)

func (c *Client) GetPublicUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	err := c.get(ctx, "/users/public", token, &users)
	return users, err
}

func (c *Client) SearchUsersByOfferedSkill(ctx context.Context, token, skillName string) ([]models.User, error) {
	var users []models.User
	err := c.get(ctx, "/users/search/offered-skills?skillName="+url.QueryEscape(skillName), token, &users)
	return users, err
}

func (c *Client) SearchUsersByWantedSkill(ctx context.Context, token, skillName string) ([]models.User, error) {
	var users []models.User
	err := c.get(ctx, "/users/search/wanted-skills?skillName="+url.QueryEscape(skillName), token, &users)
	return users, err
}

func (c *Client) GetUserByID(ctx context.Context, token string, id int64) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetProfile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/users/profile", token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, input models.ProfileInput) (*models.User, error) {
	var user models.User
	if err := c.put(ctx, "/users/profile", token, input, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Admin endpoints.

func (c *Client) ActivateUser(ctx context.Context, token string, id int64) error {
	return c.put(ctx, fmt.Sprintf("/users/%d/activate", id), token, nil, nil)
}

func (c *Client) DeactivateUser(ctx context.Context, token string, id int64) error {
	return c.put(ctx, fmt.Sprintf("/users/%d/deactivate", id), token, nil, nil)
}
