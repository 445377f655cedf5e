package api

import (
	"context"
	"net/http"
)

// GenerateBio asks the AI service for an artist biography. On success the
// caller replaces the bio wholesale; there is no merge semantics.
func (c *Client) GenerateBio(ctx context.Context, req GenerateBioRequest) (string, error) {
	var out struct {
		Bio string `json:"bio"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/ai/generate-bio", nil, req, &out); err != nil {
		return "", err
	}
	return out.Bio, nil
}

// EnhanceDescription asks the AI service to rewrite an artwork description.
func (c *Client) EnhanceDescription(ctx context.Context, req EnhanceDescriptionRequest) (string, error) {
	var out struct {
		Description string `json:"description"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/ai/enhance-description", nil, req, &out); err != nil {
		return "", err
	}
	return out.Description, nil
}

// SuggestTags asks the AI service for tag suggestions.
func (c *Client) SuggestTags(ctx context.Context, req SuggestTagsRequest) ([]string, error) {
	var out struct {
		Tags []string `json:"tags"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/ai/suggest-tags", nil, req, &out); err != nil {
		return nil, err
	}
	return out.Tags, nil
}
