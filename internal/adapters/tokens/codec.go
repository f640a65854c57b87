// Package tokens holds the on-disk form of the OAuth token shared by the
// token store backends.
package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/boxtools-cli/internal/domain"
	"golang.org/x/oauth2"
)

type tokenJSON struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type,omitempty"`
	Expiry       time.Time `json:"expiry,omitzero"`
}

// Encode renders token as indented JSON.
func Encode(token *oauth2.Token) ([]byte, error) {
	if token == nil {
		return nil, errors.New("token is nil")
	}

	data, err := json.MarshalIndent(tokenJSON{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode token: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses data read from source. A document without any token wraps
// domain.ErrNotAuthorized.
func Decode(data []byte, source string) (*oauth2.Token, error) {
	var stored tokenJSON
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("decode token from %s: %w", source, err)
	}
	if stored.AccessToken == "" && stored.RefreshToken == "" {
		return nil, fmt.Errorf("token in %s is empty: %w", source, domain.ErrNotAuthorized)
	}

	return &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		TokenType:    stored.TokenType,
		Expiry:       stored.Expiry,
	}, nil
}
