package api

import (
	"context"
	"net/http"
)

// PayoutOnboardingLink requests a Stripe Connect onboarding URL for the
// authenticated artist. The caller opens the URL in a browser; account
// verification continues out of band.
func (c *Client) PayoutOnboardingLink(ctx context.Context) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/stripe/connect/onboard", nil, struct{}{}, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// PayoutStatus fetches the Stripe Connect account state.
func (c *Client) PayoutStatus(ctx context.Context) (*StripeConnectStatus, error) {
	var out StripeConnectStatus
	if err := c.doJSON(ctx, http.MethodGet, "/stripe/connect/status", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
