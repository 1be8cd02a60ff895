// Package authlink is a thin client for the Authlink authorization API.
//
// It exchanges authorization codes, refreshes and revokes tokens, and looks up
// the user, their servers and their membership of a server. Responses are
// returned unwrapped as a Result; the library keeps no tokens, sessions or
// caches, and does not retry.
//
//	client := authlink.New(authlink.Settings{
//		ClientID:     "id",
//		ClientSecret: "secret",
//		RedirectURI:  "https://example.com/callback",
//	})
//
//	res, err := client.ExchangeCode(ctx, code)
//	if err != nil {
//		return err
//	}
//	if err := res.Err(); err != nil {
//		return err
//	}
//	tok, err := res.Token()
//
// Calls made before the client id, client secret and redirect URI are all set
// fail with ErrNotConfigured without touching the network. Network failures
// surface as *TransportError. Error responses from the API are returned as
// ordinary results; Result.Err inspects them.
package authlink
