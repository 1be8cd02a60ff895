package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/samvad-hq/authlink-go/internal/config"
	"github.com/samvad-hq/authlink-go/internal/logger"
	"github.com/samvad-hq/authlink-go/internal/storage"
	"github.com/samvad-hq/authlink-go/pkg/authlink"
	"github.com/samvad-hq/authlink-go/pkg/httpclient"
	"gopkg.in/yaml.v3"
)

// App is the authlink command line runtime. It turns parsed commands into
// Authlink API calls and renders their results.
type App struct {
	cfg *config.Config
	log logger.Logger
	out io.Writer
}

// New builds the CLI runtime. Output goes to out, or stdout when nil.
func New(cfg *config.Config, log logger.Logger, out io.Writer) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{cfg: cfg, log: log, out: out}, nil
}

// Run parses args and executes the selected command.
func (a *App) Run(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "authlink"
	parser.CommandHandler = func(_ flags.Commander, _ []string) error {
		return a.dispatch(ctx, activeCommand(parser), &opts)
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(a.out, flagsErr.Message)
			return nil
		}
		return err
	}
	return nil
}

// activeCommand returns the innermost command selected on the command line.
func activeCommand(parser *flags.Parser) *flags.Command {
	cmd := parser.Active
	for cmd != nil && cmd.Active != nil {
		cmd = cmd.Active
	}
	return cmd
}

func (a *App) dispatch(ctx context.Context, cmd *flags.Command, opts *Options) error {
	if cmd == nil {
		return fmt.Errorf("no command selected")
	}

	format := a.cfg.OutputFormat
	if opts.Output != "" {
		format = opts.Output
	}

	switch cmd.Name {
	case "save":
		return a.saveProfile(opts.Profiles.Save)
	case "list":
		return a.listProfiles(format)
	case "delete":
		return a.deleteProfile(opts.Profiles.Delete.Name)
	}

	client, err := a.client(opts.ProfileName)
	if err != nil {
		return err
	}

	var res *authlink.Result
	switch cmd.Name {
	case "exchange":
		res, err = client.ExchangeCode(ctx, opts.Exchange.Args.Code)
	case "refresh":
		res, err = client.RefreshToken(ctx, opts.Refresh.Args.RefreshToken)
	case "revoke":
		res, err = client.RevokeToken(ctx, opts.Revoke.Args.Token)
	case "user":
		res, err = client.GetUser(ctx, opts.User.Token)
	case "servers":
		res, err = client.GetUserServers(ctx, opts.Servers.Token)
	case "member":
		res, err = client.GetUserServerMember(ctx, opts.Member.Token, opts.Member.Server, opts.Member.Permissions)
	default:
		return fmt.Errorf("unknown command %q", cmd.Name)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}

	if err := a.renderResult(format, res); err != nil {
		return err
	}
	if apiErr := res.Err(); apiErr != nil {
		a.log.WarnObj("authlink api returned an error", "api_error", map[string]any{
			"command": cmd.Name,
			"status":  res.StatusCode,
			"error":   apiErr.Error(),
		})
		return fmt.Errorf("%s: %w", cmd.Name, apiErr)
	}
	return nil
}

// client builds an Authlink client from config, overlaid with the named
// profile when one is given.
func (a *App) client(profileName string) (*authlink.Client, error) {
	settings := authlink.Settings{
		ClientID:     a.cfg.ClientID,
		ClientSecret: a.cfg.ClientSecret,
		RedirectURI:  a.cfg.RedirectURI,
	}

	if strings.TrimSpace(profileName) != "" {
		p, err := a.loadProfile(profileName)
		if err != nil {
			return nil, err
		}
		settings = overlay(settings, p)
	}

	transport := httpclient.NewRestyClient(a.cfg.HTTPTimeout)
	if zl, ok := a.log.(*logger.ZapLogger); ok {
		transport = transport.WithLogger(zl.Sugar())
	}

	return authlink.New(settings,
		authlink.WithBaseURL(a.cfg.BaseURL),
		authlink.WithHTTPClient(transport),
		authlink.WithLogger(a.log),
	), nil
}

func overlay(s authlink.Settings, p storage.Profile) authlink.Settings {
	if p.ClientID != "" {
		s.ClientID = p.ClientID
	}
	if p.ClientSecret != "" {
		s.ClientSecret = p.ClientSecret
	}
	if p.RedirectURI != "" {
		s.RedirectURI = p.RedirectURI
	}
	return s
}

func (a *App) openStore() (storage.Store, error) {
	store, err := storage.NewStore(a.cfg.ProfileStoreType, a.cfg.ProfileStorePath)
	if err != nil {
		return nil, fmt.Errorf("init profile store: %w", err)
	}
	return store, nil
}

func (a *App) closeStore(store storage.Store) {
	if err := store.Close(); err != nil {
		a.log.ErrorObj("profile store close failed", "error", err)
	}
}

func (a *App) loadProfile(name string) (storage.Profile, error) {
	store, err := a.openStore()
	if err != nil {
		return storage.Profile{}, err
	}
	defer a.closeStore(store)

	p, found, err := store.Profile(name)
	if err != nil {
		return storage.Profile{}, fmt.Errorf("load profile %q: %w", name, err)
	}
	if !found {
		return storage.Profile{}, fmt.Errorf("profile %q not found", name)
	}
	return p, nil
}

func (a *App) saveProfile(cmd ProfileSaveCommand) error {
	p := storage.Profile{
		Name:         cmd.Name,
		ClientID:     firstNonEmpty(cmd.ClientID, a.cfg.ClientID),
		ClientSecret: firstNonEmpty(cmd.ClientSecret, a.cfg.ClientSecret),
		RedirectURI:  firstNonEmpty(cmd.RedirectURI, a.cfg.RedirectURI),
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer a.closeStore(store)

	if err := store.SaveProfile(p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	a.log.InfoObj("profile saved", "profile", map[string]any{
		"name":       cmd.Name,
		"client_id":  p.ClientID,
		"has_secret": p.ClientSecret != "",
	})
	return nil
}

func (a *App) deleteProfile(name string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer a.closeStore(store)

	if err := store.DeleteProfile(name); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	a.log.InfoObj("profile deleted", "profile", name)
	return nil
}

// profileView is a profile as printed by "profile list". The secret is never shown.
type profileView struct {
	Name        string `json:"name" yaml:"name"`
	ClientID    string `json:"client_id" yaml:"client_id"`
	RedirectURI string `json:"redirect_uri" yaml:"redirect_uri"`
	HasSecret   bool   `json:"has_secret" yaml:"has_secret"`
	UpdatedAt   string `json:"updated_at" yaml:"updated_at"`
}

func (a *App) listProfiles(format string) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer a.closeStore(store)

	profiles, err := store.Profiles()
	if err != nil {
		return fmt.Errorf("list profiles: %w", err)
	}

	views := make([]profileView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, profileView{
			Name:        p.Name,
			ClientID:    p.ClientID,
			RedirectURI: p.RedirectURI,
			HasSecret:   p.ClientSecret != "",
			UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return a.render(format, views)
}

func (a *App) renderResult(format string, res *authlink.Result) error {
	if res == nil {
		return nil
	}
	if !res.IsJSON() {
		text := res.Text()
		if text == "" {
			return nil
		}
		_, err := fmt.Fprintln(a.out, text)
		return err
	}
	return a.render(format, res.Data)
}

func (a *App) render(format string, v any) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		raw, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(a.out, string(raw))
		return err
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
