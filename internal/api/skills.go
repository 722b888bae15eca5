package api

import (
	"context"
	"fmt"
	"net/url"

	"skillswap-web/internal/models"
)

func (c *Client) GetAllSkills(ctx context.Context, token string) ([]models.Skill, error) {
	var skills []models.Skill
	err := c.get(ctx, "/skills", token, &skills)
	return skills, err
}

// SearchSkills matches skills of either kind by name.
func (c *Client) SearchSkills(ctx context.Context, token, name string) ([]models.Skill, error) {
	var skills []models.Skill
	err := c.get(ctx, "/skills/search?name="+url.QueryEscape(name), token, &skills)
	return skills, err
}

func (c *Client) SearchOfferedSkills(ctx context.Context, token, name string) ([]models.Skill, error) {
	var skills []models.Skill
	err := c.get(ctx, "/skills/search/offered?name="+url.QueryEscape(name), token, &skills)
	return skills, err
}

func (c *Client) SearchWantedSkills(ctx context.Context, token, name string) ([]models.Skill, error) {
	var skills []models.Skill
	err := c.get(ctx, "/skills/search/wanted?name="+url.QueryEscape(name), token, &skills)
	return skills, err
}

func (c *Client) GetUserSkills(ctx context.Context, token string, userID int64) ([]models.Skill, error) {
	var skills []models.Skill
	err := c.get(ctx, fmt.Sprintf("/skills/user/%d", userID), token, &skills)
	return skills, err
}

func (c *Client) GetUserOfferedSkills(ctx context.Context, token string, userID int64) ([]models.Skill, error) {
	var skills []models.Skill
	err := c.get(ctx, fmt.Sprintf("/skills/user/%d/offered", userID), token, &skills)
	return skills, err
}

func (c *Client) GetUserWantedSkills(ctx context.Context, token string, userID int64) ([]models.Skill, error) {
	var skills []models.Skill
	err := c.get(ctx, fmt.Sprintf("/skills/user/%d/wanted", userID), token, &skills)
	return skills, err
}

func (c *Client) CreateSkill(ctx context.Context, token string, input models.SkillInput) (*models.Skill, error) {
	var skill models.Skill
	if err := c.post(ctx, "/skills", token, input, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (c *Client) UpdateSkill(ctx context.Context, token string, id int64, input models.SkillInput) (*models.Skill, error) {
	var skill models.Skill
	if err := c.put(ctx, fmt.Sprintf("/skills/%d", id), token, input, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (c *Client) DeleteSkill(ctx context.Context, token string, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/skills/%d", id), token)
}

// Admin endpoints.

func (c *Client) ApproveSkill(ctx context.Context, token string, id int64) error {
	return c.put(ctx, fmt.Sprintf("/skills/%d/approve", id), token, nil, nil)
}

func (c *Client) RejectSkill(ctx context.Context, token string, id int64) error {
	return c.put(ctx, fmt.Sprintf("/skills/%d/reject", id), token, nil, nil)
}

func (c *Client) GetPendingSkills(ctx context.Context, token string) ([]models.Skill, error) {
	var skills []models.Skill
	err := c.get(ctx, "/skills/pending", token, &skills)
	return skills, err
}
