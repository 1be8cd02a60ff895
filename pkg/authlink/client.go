package authlink

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/samvad-hq/authlink-go/pkg/httpclient"
)

// DefaultBaseURL is the Authlink API root every path is appended to.
const DefaultBaseURL = "https://authlink.guildedapi.com/api/v1"

// Settings identifies the calling application to Authlink.
type Settings struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"-"`
	RedirectURI  string `json:"redirect_uri"`
}

// Complete reports whether every field is set.
func (s Settings) Complete() bool {
	return s.ClientID != "" && s.ClientSecret != "" && s.RedirectURI != ""
}

// Client calls the Authlink API. A Client is immutable once built; the With*
// methods return modified copies, so a Client may be shared between goroutines.
type Client struct {
	settings  Settings
	baseURL   string
	transport httpclient.Client
	timeout   time.Duration
	log       Logger
}

// New builds a Client for the given settings. Incomplete settings are accepted
// here; every API call rejects them with ErrNotConfigured.
func New(settings Settings, opts ...Option) *Client {
	c := &Client{
		settings: settings,
		baseURL:  DefaultBaseURL,
		log:      noopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.transport == nil {
		c.transport = httpclient.NewRestyClient(c.timeout)
	}
	return c
}

// Settings returns the credentials the client was built with.
func (c *Client) Settings() Settings { return c.settings }

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// WithClientID returns a copy of c using clientID.
func (c *Client) WithClientID(clientID string) *Client {
	cp := *c
	cp.settings.ClientID = clientID
	return &cp
}

// WithClientSecret returns a copy of c using clientSecret.
func (c *Client) WithClientSecret(clientSecret string) *Client {
	cp := *c
	cp.settings.ClientSecret = clientSecret
	return &cp
}

// WithRedirectURI returns a copy of c using redirectURI.
func (c *Client) WithRedirectURI(redirectURI string) *Client {
	cp := *c
	cp.settings.RedirectURI = redirectURI
	return &cp
}

// call is the single entry point of every operation: it refuses to dispatch
// until the settings are complete.
func (c *Client) call(ctx context.Context, method, path string, opts requestOptions) (*Result, error) {
	if !c.settings.Complete() {
		return nil, ErrNotConfigured
	}
	return c.request(ctx, method, path, opts)
}

// ExchangeCode trades an authorization code for an access and refresh token pair.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Result, error) {
	return c.call(ctx, http.MethodPost, "/token", requestOptions{
		Form: url.Values{
			"client_id":     {c.settings.ClientID},
			"client_secret": {c.settings.ClientSecret},
			"redirect_uri":  {c.settings.RedirectURI},
			"grant_type":    {"authorization_code"},
			"code":          {code},
		},
		Header: formHeader(),
	})
}

// RefreshToken obtains a new token pair from a refresh token.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*Result, error) {
	return c.call(ctx, http.MethodPost, "/token", requestOptions{
		Form: url.Values{
			"client_id":     {c.settings.ClientID},
			"client_secret": {c.settings.ClientSecret},
			"grant_type":    {"refresh_token"},
			"refresh_token": {refreshToken},
		},
		Header: formHeader(),
	})
}

// RevokeToken invalidates an access or refresh token.
func (c *Client) RevokeToken(ctx context.Context, token string) (*Result, error) {
	return c.call(ctx, http.MethodPost, "/token/revoke", requestOptions{
		Form: url.Values{
			"client_id":     {c.settings.ClientID},
			"client_secret": {c.settings.ClientSecret},
			"token":         {token},
		},
		Header: formHeader(),
	})
}

// GetUser returns the profile of the user the access token belongs to.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*Result, error) {
	return c.call(ctx, http.MethodGet, "/users/@me", requestOptions{
		Header: bearerHeader(accessToken),
	})
}

// GetUserServers lists the servers the user is a member of.
func (c *Client) GetUserServers(ctx context.Context, accessToken string) (*Result, error) {
	return c.call(ctx, http.MethodGet, "/users/@me/servers", requestOptions{
		Header: bearerHeader(accessToken),
	})
}

// GetUserServerMember returns the user's membership in serverID, optionally
// including the member's permissions on that server.
func (c *Client) GetUserServerMember(ctx context.Context, accessToken, serverID string, getPermissions bool) (*Result, error) {
	return c.call(ctx, http.MethodGet, "/users/@me/servers/"+url.PathEscape(serverID)+"/member", requestOptions{
		Header: bearerHeader(accessToken),
		Query:  url.Values{"getPermissions": {strconv.FormatBool(getPermissions)}},
	})
}

func formHeader() map[string]string {
	return map[string]string{"Content-Type": formContentType}
}

func bearerHeader(accessToken string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + accessToken}
}
