package backend

import (
	"context"
	"fmt"
	"time"
)

// issueAccessTokenMutation exchanges a refresh token for a new access token.
// The backend rotates the refresh token on every issuance; the rotated token
// and its expiry ride along in the same payload.
const issueAccessTokenMutation = `
	mutation IssueAccessToken($refreshToken: String!) {
		issueAccessToken(refreshToken: $refreshToken) {
			accessToken
			expiresAt
			newRefreshToken
			refreshExpiresAt
		}
	}
`

// TokenGrant is the result of a successful token issuance.
type TokenGrant struct {
	AccessToken string
	ExpiresAt   time.Time
	// RefreshToken is the rotated refresh token. Empty when the backend did
	// not rotate, in which case the existing refresh token stays valid.
	RefreshToken     string
	RefreshExpiresAt time.Time
}

type issueAccessTokenPayload struct {
	IssueAccessToken struct {
		AccessToken      string `json:"accessToken"`
		ExpiresAt        string `json:"expiresAt"`
		NewRefreshToken  string `json:"newRefreshToken"`
		RefreshExpiresAt string `json:"refreshExpiresAt"`
	} `json:"issueAccessToken"`
}

// IssueAccessToken exchanges the refresh token for a new access token.
// A payload missing accessToken or expiresAt is ErrMalformedResponse: the
// session cannot be trusted on a partial grant.
func (c *Client) IssueAccessToken(ctx context.Context, refreshToken string) (TokenGrant, error) {
	var payload issueAccessTokenPayload
	err := c.Execute(ctx, issueAccessTokenMutation, map[string]any{"refreshToken": refreshToken}, &payload)
	if err != nil {
		return TokenGrant{}, err
	}

	data := payload.IssueAccessToken
	if data.AccessToken == "" || data.ExpiresAt == "" {
		return TokenGrant{}, fmt.Errorf("%w: issueAccessToken payload incomplete", ErrMalformedResponse)
	}

	expiresAt, err := time.Parse(time.RFC3339, data.ExpiresAt)
	if err != nil {
		return TokenGrant{}, fmt.Errorf("%w: expiresAt %q: %v", ErrMalformedResponse, data.ExpiresAt, err)
	}

	grant := TokenGrant{
		AccessToken:  data.AccessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: data.NewRefreshToken,
	}

	if data.RefreshExpiresAt != "" {
		refreshExpiresAt, err := time.Parse(time.RFC3339, data.RefreshExpiresAt)
		if err != nil {
			return TokenGrant{}, fmt.Errorf("%w: refreshExpiresAt %q: %v", ErrMalformedResponse, data.RefreshExpiresAt, err)
		}
		grant.RefreshExpiresAt = refreshExpiresAt
	}

	return grant, nil
}
