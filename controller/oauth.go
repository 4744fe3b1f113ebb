package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/nacallas/SkidmarkOS-sub001/model"
	"golang.org/x/oauth2"
)

type oauthState struct {
	platform string
	expiry   time.Time
	token    *oauth2.Token
}

func (c *controller) OAuthStart(platform string) (string, error) {
	if platform != model.PlatformYahoo {
		return "", errors.New("yahoo is the only supported oauth platform")
	}

	if c.yahooConfig == nil {
		return "", errors.New("yahoo oauth client is not configured")
	}

	state := generateRandomState()
	url := c.yahooConfig.AuthCodeURL(state)

	c.statesMu.Lock()
	c.oauthStates[state] = &oauthState{
		platform: platform,
		expiry:   c.clock.Now().Add(5 * time.Minute),
	}
	c.statesMu.Unlock()

	return url, nil
}

func (c *controller) OAuthExchange(ctx context.Context, state, code string) error {
	s, err := c.lookupState(state)
	if err != nil {
		return err
	}

	if c.yahooConfig == nil {
		return errors.New("yahoo oauth client is not configured")
	}

	token, err := c.yahooConfig.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("error exchanging code: %w", err)
	}

	s.token = token
	return nil
}

func (c *controller) OAuthSave(ctx context.Context, state string, leagueID int32) error {
	s, err := c.lookupState(state)
	if err != nil {
		return err
	}
	if s.token == nil {
		return errors.New("no token has been exchanged for this state")
	}

	return c.db.SaveToken(ctx, leagueID, s.token)
}

func (c *controller) lookupState(state string) (*oauthState, error) {
	c.statesMu.Lock()
	defer c.statesMu.Unlock()

	s, ok := c.oauthStates[state]
	if !ok || c.clock.Now().After(s.expiry) {
		return nil, errors.New("state parameter is not valid")
	}
	return s, nil
}

// getToken loads the stored token for a league. Expired tokens are refreshed
// manually so the refreshed token can be saved back. If we just used
// yahooConfig.Client(ctx, t) directly it would refresh in the background
// without ever giving us access to the new token.
func (c *controller) getToken(ctx context.Context, leagueID int32) (*oauth2.Token, error) {
	t, err := c.db.GetToken(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	if t.Expiry.Before(c.clock.Now()) {
		log.Printf("refreshing token for league: %d", leagueID)
		tknSrc := c.yahooConfig.TokenSource(ctx, t)

		t, err = tknSrc.Token()
		if err != nil {
			return nil, fmt.Errorf("error refreshing token for league %d: %w", leagueID, err)
		}

		if err := c.db.SaveToken(ctx, leagueID, t); err != nil {
			return nil, fmt.Errorf("error saving refreshed token for league %d: %w", leagueID, err)
		}
	}

	return t, nil
}

func generateRandomState() string {
	var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	b := make([]rune, 15)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
