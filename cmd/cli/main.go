package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/banktransfer/infra/initializer"
	"github.com/amirasaad/banktransfer/pkg/app"
	"github.com/amirasaad/banktransfer/pkg/config"
	"github.com/amirasaad/banktransfer/pkg/money"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  transfer <source_account_id> <destination_account_id> <amount>
  balance <account_id>
  minimum`

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, out io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(out, usage)
		return 2
	}

	cfg, err := config.Load(".env")
	if err != nil {
		printError(out, "Failed to load configuration", err)
		return 1
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		printError(out, "Failed to initialize dependencies", err)
		return 1
	}
	if deps.Close != nil {
		defer deps.Close() //nolint:errcheck
	}
	a, err := app.New(deps, cfg)
	if err != nil {
		printError(out, "Failed to build application", err)
		return 1
	}
	return dispatch(ctx, a, args, out)
}

func dispatch(ctx context.Context, a *app.App, args []string, out io.Writer) int {
	svc := a.TransferService
	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	switch args[0] {
	case "transfer":
		if len(args) < 4 {
			fmt.Fprintln(out, "Usage: transfer <source_account_id> <destination_account_id> <amount>")
			return 2
		}
		amount, err := money.Parse(args[3])
		if err != nil {
			printError(out, "Invalid amount", err)
			return 1
		}
		receipt, err := svc.Transfer(ctx, amount, args[1], args[2])
		if err != nil {
			printError(out, "Transfer failed", err)
			return 1
		}
		fmt.Fprintf(out, "%s %s\n", green("Transfer completed:"), receipt.ID)
		fmt.Fprintf(out, "  amount: %s  fee: %s\n", bold(money.Format(receipt.TransferAmount)), money.Format(receipt.FeeAmount))
		fmt.Fprintf(out, "  %s: %s -> %s\n", receipt.FinalSourceAccount.ID,
			money.Format(receipt.InitialSourceAccount.Balance), bold(money.Format(receipt.FinalSourceAccount.Balance)))
		fmt.Fprintf(out, "  %s: %s -> %s\n", receipt.FinalDestinationAccount.ID,
			money.Format(receipt.InitialDestinationAccount.Balance), bold(money.Format(receipt.FinalDestinationAccount.Balance)))
	case "balance":
		if len(args) < 2 {
			fmt.Fprintln(out, "Usage: balance <account_id>")
			return 2
		}
		acc, err := a.Deps.Accounts.FindByID(ctx, args[1])
		if err != nil {
			printError(out, "Error fetching balance", err)
			return 1
		}
		fmt.Fprintf(out, "Account %s balance: %s\n", acc.ID, bold(money.Format(acc.Balance)))
	case "minimum":
		fmt.Fprintf(out, "Minimum transfer amount: %s\n", bold(money.Format(svc.MinimumTransferAmount())))
	default:
		printError(out, "Unknown command", fmt.Errorf("%q", args[0]))
		fmt.Fprintln(out, usage)
		return 2
	}
	return 0
}

func printError(out io.Writer, msg string, err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %v\n", red(msg+":"), err)
}
