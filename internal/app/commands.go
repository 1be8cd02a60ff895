package app

// Options is the command line surface of the authlink tool.
type Options struct {
	ProfileName string `short:"p" long:"profile" description:"Use client credentials from a saved profile"`
	Output      string `short:"o" long:"output" choice:"json" choice:"yaml" description:"Output format (defaults to OUTPUT_FORMAT)"`

	Exchange ExchangeCommand `command:"exchange" description:"Exchange an authorization code for an access and refresh token"`
	Refresh  RefreshCommand  `command:"refresh" description:"Obtain a new token pair from a refresh token"`
	Revoke   RevokeCommand   `command:"revoke" description:"Revoke an access or refresh token"`
	User     UserCommand     `command:"user" description:"Show the user an access token belongs to"`
	Servers  ServersCommand  `command:"servers" description:"List the servers of the user"`
	Member   MemberCommand   `command:"member" description:"Show the user's membership of a server"`
	Profiles ProfileCommand  `command:"profile" description:"Manage saved credential profiles"`
}

type ExchangeCommand struct {
	Args struct {
		Code string `positional-arg-name:"code" required:"yes"`
	} `positional-args:"yes"`
}

type RefreshCommand struct {
	Args struct {
		RefreshToken string `positional-arg-name:"refresh-token" required:"yes"`
	} `positional-args:"yes"`
}

type RevokeCommand struct {
	Args struct {
		Token string `positional-arg-name:"token" required:"yes"`
	} `positional-args:"yes"`
}

type UserCommand struct {
	Token string `short:"t" long:"token" required:"true" description:"Access token"`
}

type ServersCommand struct {
	Token string `short:"t" long:"token" required:"true" description:"Access token"`
}

type MemberCommand struct {
	Token       string `short:"t" long:"token" required:"true" description:"Access token"`
	Server      string `short:"s" long:"server" required:"true" description:"Server id"`
	Permissions bool   `long:"permissions" description:"Include the member's permissions"`
}

type ProfileCommand struct {
	Save   ProfileSaveCommand   `command:"save" description:"Save client credentials under a name"`
	List   ProfileListCommand   `command:"list" description:"List saved profiles"`
	Delete ProfileDeleteCommand `command:"delete" description:"Delete a saved profile"`
}

// ProfileSaveCommand stores the configured credentials, with flags taking
// precedence over the environment.
type ProfileSaveCommand struct {
	Name         string `short:"n" long:"name" required:"true" description:"Profile name"`
	ClientID     string `long:"client-id" description:"Client id (defaults to AUTHLINK_CLIENT_ID)"`
	ClientSecret string `long:"client-secret" description:"Client secret (defaults to AUTHLINK_CLIENT_SECRET)"`
	RedirectURI  string `long:"redirect-uri" description:"Redirect URI (defaults to AUTHLINK_REDIRECT_URI)"`
}

type ProfileListCommand struct{}

type ProfileDeleteCommand struct {
	Name string `short:"n" long:"name" required:"true" description:"Profile name"`
}
