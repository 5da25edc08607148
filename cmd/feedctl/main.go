package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - login:   Obtain a development token from the upstream stub and store it
// - feed:    Page through the recommendation feed
// - catalog: Load banners and categories, optionally selecting a category

func main() {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	feedCmd := flag.NewFlagSet("feed", flag.ExitOnError)
	catalogCmd := flag.NewFlagSet("catalog", flag.ExitOnError)

	// login parameters
	loginUser := loginCmd.String("user", "demo", "User name the token is issued for")

	// feed parameters
	feedPages := feedCmd.Int("pages", 3, "Number of next-page requests to make")
	feedDeny := feedCmd.Bool("deny-location", false, "Behave as if location permission was denied")

	// catalog parameters
	catalogSelect := catalogCmd.String("select", "", "Category label to store as the search keyword")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := feedctlFlags{
		Login: loginFlags{
			cmd:  loginCmd,
			user: loginUser,
		},
		Feed: feedFlags{
			cmd:          feedCmd,
			pages:        feedPages,
			denyLocation: feedDeny,
		},
		Catalog: catalogFlags{
			cmd:         catalogCmd,
			selectLabel: catalogSelect,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type feedctlFlags struct {
	Login   loginFlags
	Feed    feedFlags
	Catalog catalogFlags
}

type loginFlags struct {
	cmd  *flag.FlagSet
	user *string
}

type feedFlags struct {
	cmd          *flag.FlagSet
	pages        *int
	denyLocation *bool
}

type catalogFlags struct {
	cmd         *flag.FlagSet
	selectLabel *string
}

func runSubcommand(ctx context.Context, flags *feedctlFlags) error {
	switch os.Args[1] {
	case "login":
		return handleLogin(ctx, flags)
	case "feed":
		return handleFeed(ctx, flags)
	case "catalog":
		return handleCatalog(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleLogin(ctx context.Context, flags *feedctlFlags) error {
	if err := flags.Login.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}

	return runLogin(ctx, *flags.Login.user)
}

func handleFeed(ctx context.Context, flags *feedctlFlags) error {
	if err := flags.Feed.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse feed flags")
	}

	if *flags.Feed.pages < 1 {
		return errors.New("--pages must be at least 1")
	}

	return runFeed(ctx, *flags.Feed.pages, *flags.Feed.denyLocation)
}

func handleCatalog(ctx context.Context, flags *feedctlFlags) error {
	if err := flags.Catalog.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse catalog flags")
	}

	return runCatalog(ctx, *flags.Catalog.selectLabel)
}

func printUsage() {
	fmt.Println("Usage: feedctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  login      Obtain and store a development session token")
	fmt.Println("  feed       Page through the recommendation feed")
	fmt.Println("  catalog    Load banners and categories")
	fmt.Println("")
	fmt.Println("Use 'feedctl <command> -h' for more information about a command.")
}
