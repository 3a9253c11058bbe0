package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fragpit/points/internal/client"
	"golang.org/x/sync/errgroup"
)

const usage = `usage: pointsctl [-server URL] <command> [args]

commands:
  users                           list users
  user <id>                       show a user
  balance <id>                    show a user's balance
  history <id> [-limit N] [-filter all|earned|used]
  items                           list redeemable items
  redeem <user> <item>            redeem an item at its listed price
  use <user> <item> <points>      spend a custom amount on an item
  summary <id>                    user, balance and recent history
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fset := flag.NewFlagSet("pointsctl", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	server := fset.String("server", envOr("POINTS_SERVER", "http://localhost:8080"), "api base url")
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	rest := fset.Args()
	if len(rest) == 0 {
		return errUsage
	}

	c := client.New(*server)
	cmd, cmdArgs := rest[0], rest[1:]

	var (
		result any
		err    error
	)
	switch cmd {
	case "users":
		result, err = c.ListUsers(ctx)
	case "user":
		var ids []int
		if ids, err = intArgs(cmdArgs, 1); err == nil {
			result, err = c.GetUser(ctx, ids[0])
		}
	case "balance":
		var ids []int
		if ids, err = intArgs(cmdArgs, 1); err == nil {
			result, err = c.GetBalance(ctx, ids[0])
		}
	case "history":
		result, err = history(ctx, c, cmdArgs)
	case "items":
		result, err = c.ListItems(ctx)
	case "redeem":
		var ids []int
		if ids, err = intArgs(cmdArgs, 2); err == nil {
			result, err = c.RedeemItem(ctx, ids[0], ids[1])
		}
	case "use":
		var ids []int
		if ids, err = intArgs(cmdArgs, 3); err == nil {
			result, err = c.UsePoints(ctx, ids[0], ids[1], ids[2])
		}
	case "summary":
		var ids []int
		if ids, err = intArgs(cmdArgs, 1); err == nil {
			result, err = summary(ctx, c, ids[0])
		}
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
	if err != nil {
		return describe(cmd, cmdArgs, err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// describe shortens a 404 to the server's detail, keeping it matchable
// with client.ErrNotFound.
func describe(cmd string, args []string, err error) error {
	var apiErr *client.APIError
	if !errors.Is(err, client.ErrNotFound) || !errors.As(err, &apiErr) {
		return err
	}
	return &notFoundError{
		what:   strings.TrimSpace(cmd + " " + strings.Join(args, " ")),
		detail: apiErr.Detail,
		err:    err,
	}
}

type notFoundError struct {
	what   string
	detail string
	err    error
}

func (e *notFoundError) Error() string {
	return e.what + ": " + e.detail
}

func (e *notFoundError) Unwrap() error {
	return e.err
}

func history(
	ctx context.Context,
	c *client.Client,
	args []string,
) ([]client.HistoryEntry, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: history needs a user id", errUsage)
	}
	userID, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id %q", errUsage, args[0])
	}

	fset := flag.NewFlagSet("history", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	limit := fset.Int("limit", 5, "max entries, 0 for all")
	filter := fset.String("filter", "", "all, earned or used")
	if err := fset.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	return c.PointHistory(ctx, userID, *limit, *filter)
}

type userSummary struct {
	User    *client.User          `json:"user"`
	Balance *client.Balance       `json:"balance"`
	History []client.HistoryEntry `json:"recent_history"`
}

func summary(
	ctx context.Context,
	c *client.Client,
	userID int,
) (*userSummary, error) {
	var s userSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.User, err = c.GetUser(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		s.Balance, err = c.GetBalance(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		s.History, err = c.PointHistory(gctx, userID, 5, "")
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}

func intArgs(args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", errUsage, n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, a)
		}
		out[i] = v
	}
	return out, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
