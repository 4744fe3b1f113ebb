package controller

import (
	"context"
	"net/url"
	"testing"

	"github.com/nacallas/SkidmarkOS-sub001/model"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

func TestOAuthFlow(t *testing.T) {
	c, mockDB, _ := newTestController(t)
	ctx := context.Background()

	authURL, err := c.OAuthStart(model.PlatformYahoo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := url.Parse(authURL)
	if err != nil {
		t.Fatalf("OAuthStart returned an unparseable url: %v", err)
	}
	state := parsed.Query().Get("state")
	if state == "" {
		t.Fatal("expected the auth url to carry a state parameter")
	}
	if parsed.Query().Get("client_id") != "fakeClientID" {
		t.Errorf("expected the configured client id, got %q", parsed.Query().Get("client_id"))
	}

	if err := c.OAuthExchange(ctx, state, "authcode"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockDB.On("SaveToken", ctx, int32(2), mock.MatchedBy(func(tok *oauth2.Token) bool {
		return tok.AccessToken == "access_token" && tok.RefreshToken == "refresh_token"
	})).Return(nil)

	if err := c.OAuthSave(ctx, state, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mockDB.AssertExpectations(t)
}

func TestOAuthStart_rejectsOtherPlatforms(t *testing.T) {
	c, _, _ := newTestController(t)

	if _, err := c.OAuthStart(model.PlatformSleeper); err == nil {
		t.Error("expected an error, sleeper needs no oauth")
	}
}

func TestOAuthExchange_unknownState(t *testing.T) {
	c, _, _ := newTestController(t)

	if err := c.OAuthExchange(context.Background(), "never-issued", "authcode"); err == nil {
		t.Error("expected an error for a state that was never issued")
	}
}

func TestOAuthSave_requiresExchange(t *testing.T) {
	c, mockDB, _ := newTestController(t)

	authURL, err := c.OAuthStart(model.PlatformYahoo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parsed, _ := url.Parse(authURL)
	state := parsed.Query().Get("state")

	if err := c.OAuthSave(context.Background(), state, 2); err == nil {
		t.Error("expected an error when saving before the code exchange")
	}
	mockDB.AssertNotCalled(t, "SaveToken", mock.Anything, mock.Anything, mock.Anything)
}
