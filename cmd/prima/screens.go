package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/davidyusaku-13/prima-mobile/config"
	"github.com/davidyusaku-13/prima-mobile/internal/domain/admin"
	domainauth "github.com/davidyusaku-13/prima-mobile/internal/domain/auth"
	"github.com/davidyusaku-13/prima-mobile/internal/navigation"
	"github.com/davidyusaku-13/prima-mobile/internal/service"
)

const defaultResolveTimeout = 30 * time.Second

type openOptions struct {
	Path    string
	Timeout time.Duration
}

type tabsOptions struct {
	Admin bool
}

type usersOptions struct {
	RawJSON bool
}

type accessOptions struct {
	// Prompt offers a retry on stdin while the probe reports an error.
	Prompt bool
}

type signInOptions struct {
	Email    string
	Password string
}

// signInPasswordEnv lets scripts keep the password out of the process list.
const signInPasswordEnv = "PRIMA_SIGN_IN_PASSWORD"

func parseOpenFlags(args []string) (openOptions, error) {
	fs := flag.NewFlagSet("open", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts openOptions
	fs.DurationVar(&opts.Timeout, "timeout", defaultResolveTimeout, "How long to wait for identity and the admin probe")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		return opts, errors.New("open requires exactly one path argument, e.g. /(tabs)/admin")
	}
	opts.Path = fs.Arg(0)
	return opts, nil
}

func parseTabsFlags(args []string) (tabsOptions, error) {
	fs := flag.NewFlagSet("tabs", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts tabsOptions
	fs.BoolVar(&opts.Admin, "admin", false, "Show the tab bar of an admin user")
	return opts, fs.Parse(args)
}

func parseUsersFlags(args []string) (usersOptions, error) {
	fs := flag.NewFlagSet("admin-users", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts usersOptions
	fs.BoolVar(&opts.RawJSON, "json", false, "Print the decoded user list as JSON")
	return opts, fs.Parse(args)
}

func parseAccessFlags(args []string) (accessOptions, error) {
	fs := flag.NewFlagSet("admin-access", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts accessOptions
	fs.BoolVar(&opts.Prompt, "prompt", false, "Ask on stdin whether to retry when the probe fails")
	return opts, fs.Parse(args)
}

func parseSignInFlags(args []string) (signInOptions, error) {
	fs := flag.NewFlagSet("sign-in", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var opts signInOptions
	fs.StringVar(&opts.Email, "email", "", "Account email")
	fs.StringVar(&opts.Password, "password", "", "Account password (defaults to $"+signInPasswordEnv+")")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.Password == "" {
		opts.Password = os.Getenv(signInPasswordEnv)
	}
	return opts, nil
}

func runOpen(cmdCtx *commandContext, args []string) error {
	opts, err := parseOpenFlags(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, opts.Timeout)
	defer cancel()

	res, err := cmdCtx.Services.Shell.Resolve(ctx, opts.Path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", opts.Path, err)
	}
	return printResolution(cmdCtx.Out, res)
}

func runAdminAccess(cmdCtx *commandContext, args []string) error {
	opts, err := parseAccessFlags(args)
	if err != nil {
		return err
	}
	snap, err := cmdCtx.Services.Shell.WaitLoaded(cmdCtx.Ctx)
	if err != nil {
		return err
	}
	state := cmdCtx.Services.Access.Sync(cmdCtx.Ctx, snap)
	if opts.Prompt && cmdCtx.In != nil {
		state, err = promptRetry(cmdCtx.Ctx, cmdCtx.In, cmdCtx.Out, cmdCtx.Services.Access, state)
		if err != nil {
			return err
		}
	}
	return printAccess(cmdCtx.Out, state)
}

// promptRetry shows the probe error and refreshes each time the user answers yes.
func promptRetry(ctx context.Context, in io.Reader, out io.Writer, access *service.AdminAccessService, state service.AdminAccessState) (service.AdminAccessState, error) {
	scanner := bufio.NewScanner(in)
	for state.Error != "" {
		if err := writef(out, "%s: %s\nCoba lagi? [y/N] ", service.AdminAccessBannerTitle, state.Error); err != nil {
			return state, err
		}
		if !scanner.Scan() {
			return state, scanner.Err()
		}
		if answer := strings.ToLower(strings.TrimSpace(scanner.Text())); answer != "y" && answer != "yes" {
			return state, nil
		}
		if err := ctx.Err(); err != nil {
			return state, err
		}
		state = access.Refresh(ctx)
	}
	return state, nil
}

func runAdminOverview(cmdCtx *commandContext, _ []string) error {
	state, err := cmdCtx.Services.AdminData.LoadOverview(cmdCtx.Ctx)
	if err != nil {
		return printLoadError(cmdCtx.Out, "Gagal memuat ringkasan admin", state.Error, err)
	}
	return printOverview(cmdCtx.Out, state.Data)
}

func runAdminHealth(cmdCtx *commandContext, _ []string) error {
	state, err := cmdCtx.Services.AdminData.LoadHealth(cmdCtx.Ctx)
	if err != nil {
		return printLoadError(cmdCtx.Out, "Gagal memuat health", state.Error, err)
	}
	return printHealth(cmdCtx.Out, state.Data)
}

func runAdminUsers(cmdCtx *commandContext, args []string) error {
	opts, err := parseUsersFlags(args)
	if err != nil {
		return err
	}
	state, err := cmdCtx.Services.AdminData.LoadUsers(cmdCtx.Ctx)
	if err != nil {
		return printLoadError(cmdCtx.Out, "Gagal memuat pengguna", state.Error, err)
	}
	if opts.RawJSON {
		enc := json.NewEncoder(cmdCtx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(state.Data)
	}
	return printUsers(cmdCtx.Out, state.Data)
}

func runTabs(cmdCtx *commandContext, args []string) error {
	opts, err := parseTabsFlags(args)
	if err != nil {
		return err
	}
	if err := printTabs(cmdCtx.Out, navigation.VisibleTabs(opts.Admin)); err != nil {
		return err
	}
	return printScreens(cmdCtx.Out, navigation.VisibleScreens(opts.Admin))
}

func runSignIn(cmdCtx *commandContext, args []string) error {
	opts, err := parseSignInFlags(args)
	if err != nil {
		return err
	}
	if cmdCtx.Services.SignIn == nil {
		return fmt.Errorf("sign-in needs AUTH_MODE=%s", config.AuthModeOIDC)
	}
	res, err := cmdCtx.Services.SignIn.SignIn(cmdCtx.Ctx, opts.Email, opts.Password)
	return printSignIn(cmdCtx.Out, res, err)
}

func printLoadError(w io.Writer, title, message string, cause error) error {
	if err := writef(w, "%s\n  %s\n", title, message); err != nil {
		return err
	}
	return cause
}

func printResolution(w io.Writer, res service.Resolution) error {
	if err := writef(w, "Requested: %s\n", res.Requested); err != nil {
		return err
	}
	route := res.Route
	if res.Redirected {
		route += " (redirected)"
	}
	if err := writef(w, "Route:     %s\n", route); err != nil {
		return err
	}
	user := "-"
	if res.Snapshot.HasUser() {
		user = res.Snapshot.UserID
	}
	if err := writef(w, "User:      %s\n", user); err != nil {
		return err
	}
	if res.VisibleTabs != nil {
		if err := printTabs(w, res.VisibleTabs); err != nil {
			return err
		}
	}
	if res.Banner != "" {
		return writef(w, "\n%s: %s\n", service.AdminAccessBannerTitle, res.Banner)
	}
	return nil
}

func printAccess(w io.Writer, state service.AdminAccessState) error {
	switch {
	case state.Error != "":
		return writef(w, "%s: %s\n", service.AdminAccessBannerTitle, state.Error)
	case state.IsLoading:
		return writeln(w, "Admin access: loading")
	case state.IsAdmin:
		return writeln(w, "Admin access: granted")
	default:
		return writeln(w, "Admin access: not an admin")
	}
}

func printOverview(w io.Writer, o service.Overview) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "Ringkasan admin"); err != nil {
		return fmt.Errorf("write overview header: %w", err)
	}
	rows := []struct {
		label string
		badge admin.Badge
	}{
		{"Probe akses admin", admin.FormatProbeState(o.Root.Status)},
		{"Health endpoint", admin.FormatHealthState(o.Health.Status, o.Health.DB)},
		{"Users endpoint", admin.FormatUserCount(len(o.Users))},
	}
	for _, row := range rows {
		if err := writef(tw, "%s\t%s\n", row.label, badge(row.badge)); err != nil {
			return fmt.Errorf("write overview row %q: %w", row.label, err)
		}
	}
	return tw.Flush()
}

func printHealth(w io.Writer, h admin.Health) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := [][2]string{
		{"Status layanan", badge(admin.FormatHealthState(h.Status, h.DB))},
		{"Database", badge(admin.FormatDBState(h.DB))},
		{"Uptime", admin.FormatUptime(h.Uptime())},
		{"Started at", admin.FormatTimestamp(h.StartedAt)},
		{"Checked at", admin.FormatTimestamp(h.CheckedAt)},
	}
	for _, row := range rows {
		if err := writef(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("write health row %q: %w", row[0], err)
		}
	}
	return tw.Flush()
}

func printUsers(w io.Writer, users []admin.User) error {
	if len(users) == 0 {
		return writeln(w, "Belum ada data pengguna yang dikembalikan endpoint.")
	}
	keys := admin.ListKeys(users)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := writeln(tw, "Key\tName\tDetail\tRole\tStatus"); err != nil {
		return fmt.Errorf("write users header: %w", err)
	}
	for i, u := range users {
		if err := writef(tw, "%s\t%s\t%s\t%s\t%s\n",
			keys[i],
			admin.DisplayName(u),
			admin.DisplayDetail(u),
			admin.FormatRole(u.Role).Label,
			admin.FormatActiveState(u.IsActive).Label,
		); err != nil {
			return fmt.Errorf("write user row %q: %w", keys[i], err)
		}
	}
	return tw.Flush()
}

func printTabs(w io.Writer, tabs []navigation.Tab) error {
	if err := writeln(w, "Tabs:"); err != nil {
		return err
	}
	for _, tab := range tabs {
		if err := writef(w, "  %-14s %s\n", tab.Key, tab.Label); err != nil {
			return err
		}
		if es, ok := navigation.EmptyStateFor(tab.Key); ok {
			if err := writef(w, "  %-14s %s: %s\n", "", es.Eyebrow, es.Title); err != nil {
				return err
			}
		}
	}
	return nil
}

func printScreens(w io.Writer, screens []navigation.Screen) error {
	if err := writeln(w, "Screens:"); err != nil {
		return err
	}
	for _, s := range screens {
		marker := ""
		if navigation.IsAdminScreen(s) {
			marker = " (admin only)"
		}
		if err := writef(w, "  %-14s %s%s\n", s.Name, s.Title, marker); err != nil {
			return err
		}
	}
	return nil
}

// printSignIn reports the attempt and returns err unchanged so the exit code
// reflects a failed sign-in.
func printSignIn(w io.Writer, res domainauth.SignInResult, err error) error {
	if err != nil {
		msg := err.Error()
		var signInErr *domainauth.SignInError
		if errors.As(err, &signInErr) {
			msg = signInErr.Message
		}
		if werr := writef(w, "Sign-in failed: %s\n", msg); werr != nil {
			return werr
		}
		return err
	}
	if err := writef(w, "Signed in as %s\n", res.UserID); err != nil {
		return err
	}
	if res.RefreshToken == "" {
		return nil
	}
	return writef(w, "Store this to stay signed in:\n  OIDC_REFRESH_TOKEN=%s\n", res.RefreshToken)
}

func badge(b admin.Badge) string {
	return fmt.Sprintf("%s [%s]", b.Label, b.Tone)
}
