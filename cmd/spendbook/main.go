package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"spendbook/internal/cli"
	"spendbook/internal/config"
	"spendbook/internal/core"
	"spendbook/internal/ledger"
)

func main() {
	cli.LoadEnvFile()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, _ := cfg.SlogLevel()
	logger := cli.SetupLogger(level)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	store := cli.OpenStore(ctx, logger, cfg.SQLiteDBPath)
	defer store.Close()

	book := ledger.New(store)
	if err := book.Load(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Could not read expenses. Please try again.")
		os.Exit(1)
	}

	if err := run(ctx, book, cfg, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(os.Args[1], err))
		os.Exit(1)
	}
}

func run(ctx context.Context, book *ledger.Ledger, cfg *config.Config, command string, args []string) error {
	switch command {
	case "add":
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		amount := fs.String("amount", "", "expense amount, e.g. 12.50")
		category := fs.String("category", "", "expense category")
		note := fs.String("note", "", "optional note")
		date := fs.String("date", "", "date as YYYY-MM-DD (default today)")
		fs.Parse(args)
		return book.Add(ctx, core.Draft{Amount: *amount, Category: *category, Note: *note, Date: *date})

	case "edit":
		fs := flag.NewFlagSet("edit", flag.ExitOnError)
		id := fs.Int64("id", 0, "id of the expense to edit")
		amount := fs.String("amount", "", "expense amount")
		category := fs.String("category", "", "expense category")
		note := fs.String("note", "", "optional note")
		date := fs.String("date", "", "date as YYYY-MM-DD (default today)")
		fs.Parse(args)
		return book.Update(ctx, *id, core.Draft{Amount: *amount, Category: *category, Note: *note, Date: *date})

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "id of the expense to delete")
		fs.Parse(args)
		return book.Delete(ctx, *id)

	case "list":
		view, err := selectView(book, cfg, args)
		if err != nil {
			return err
		}
		printList(view)
		return nil

	case "summary":
		view, err := selectView(book, cfg, args)
		if err != nil {
			return err
		}
		printSummary(view)
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func selectView(book *ledger.Ledger, cfg *config.Config, args []string) (ledger.View, error) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	filter := fs.String("filter", string(cfg.DefaultFilter), "time window: all, week or month")
	fs.Parse(args)

	mode := core.FilterMode(*filter)
	if !mode.IsValid() {
		return ledger.View{}, fmt.Errorf("unknown filter %q", *filter)
	}
	return book.View(mode), nil
}

func printList(view ledger.View) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tCATEGORY\tNOTE")
	for _, e := range view.Records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Amount.StringFixed(2), e.Category, e.Note)
	}
	w.Flush()
	fmt.Printf("total (%s): %s\n", view.Mode, view.Summary.Total.StringFixed(2))
}

func printSummary(view ledger.View) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tAMOUNT")
	for _, c := range view.Summary.Categories {
		fmt.Fprintf(w, "%s\t%s\n", c.Name, c.Amount.StringFixed(2))
	}
	w.Flush()
	fmt.Printf("total (%s): %s\n", view.Mode, view.Summary.Total.StringFixed(2))
}

// userMessage maps errors to the messages shown to the user: validation
// failures keep their specific wording, anything else becomes a generic
// failure notice for the attempted action.
func userMessage(action string, err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		return "Invalid amount. Enter a positive number."
	case errors.Is(err, core.ErrMissingCategory):
		return "Missing category. Enter a category name."
	case errors.Is(err, core.ErrInvalidDate):
		return "Invalid date. Use the YYYY-MM-DD form."
	default:
		slog.Error("Command failed", "command", action, "error", err)
		return fmt.Sprintf("Could not complete %q. Please try again.", action)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: spendbook <command> [flags]

commands:
  add      -amount 12.50 -category Food [-note "..."] [-date YYYY-MM-DD]
  edit     -id N -amount 12.50 -category Food [-note "..."] [-date YYYY-MM-DD]
  delete   -id N
  list     [-filter all|week|month]
  summary  [-filter all|week|month]`)
}
