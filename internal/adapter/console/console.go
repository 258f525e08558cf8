package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/api-sage/retail-bank-ledger/internal/adapter/console/models"
	"github.com/api-sage/retail-bank-ledger/internal/commons"
)

type LedgerService interface {
	PostTransaction(ctx context.Context, req models.PostTransactionRequest) (commons.Response[models.PostTransactionResponse], error)
	AddInterestRule(ctx context.Context, req models.AddInterestRuleRequest) (commons.Response[models.InterestRuleResponse], error)
}

type StatementService interface {
	ListTransactions(ctx context.Context, accountID string, withBalance bool) (commons.Response[models.StatementResponse], error)
	MonthlyStatement(ctx context.Context, accountID string, yearMonth string) (commons.Response[models.StatementResponse], error)
	ListRules(ctx context.Context) (commons.Response[models.StatementResponse], error)
}

// Console runs the interactive banking menu over an injected reader and
// writer pair, so sessions can be scripted in tests.
type Console struct {
	ledger     LedgerService
	statements StatementService
	in         *bufio.Scanner
	out        io.Writer
	bankName   string
}

func New(ledger LedgerService, statements StatementService, in io.Reader, out io.Writer, bankName string) *Console {
	return &Console{
		ledger:     ledger,
		statements: statements,
		in:         bufio.NewScanner(in),
		out:        out,
		bankName:   bankName,
	}
}

func (c *Console) Run(ctx context.Context) {
	fmt.Fprintf(c.out, "Welcome to %s! What would you like to do?\n", c.bankName)

	for {
		fmt.Fprintln(c.out, "[T] Input transactions")
		fmt.Fprintln(c.out, "[I] Define interest rules")
		fmt.Fprintln(c.out, "[P] Print statement")
		fmt.Fprintln(c.out, "[Q] Quit")

		line, ok := c.readLine()
		if !ok {
			return
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "T":
			c.inputTransactions(ctx)
		case "I":
			c.defineInterestRules(ctx)
		case "P":
			c.printStatement(ctx)
		case "Q":
			fmt.Fprintf(c.out, "Thank you for banking with %s.\n", c.bankName)
			fmt.Fprintln(c.out, "Have a nice day!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please try again.")
		}
	}
}

func (c *Console) inputTransactions(ctx context.Context) {
	for {
		fmt.Fprintln(c.out, "Please enter transaction details in <Date> <Account> <Type> <Amount> format")
		fmt.Fprintln(c.out, "(or enter blank to go back to main menu):")

		line, ok := c.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) != 4 {
			fmt.Fprintln(c.out, "Invalid input format. Please try again.")
			continue
		}

		resp, err := c.ledger.PostTransaction(ctx, models.PostTransactionRequest{
			Date:      parts[0],
			AccountID: parts[1],
			Type:      parts[2],
			Amount:    parts[3],
		})
		if err != nil {
			fmt.Fprintf(c.out, "Error: %s\n", resp.Reason())
		} else if resp.Data != nil {
			listResp, listErr := c.statements.ListTransactions(ctx, resp.Data.AccountID, false)
			if listErr == nil && listResp.Data != nil {
				fmt.Fprintln(c.out, listResp.Data.Statement)
			}
		}

		fmt.Fprintln(c.out, "\nIs there anything else you'd like to do?")
	}
}

func (c *Console) defineInterestRules(ctx context.Context) {
	for {
		fmt.Fprintln(c.out, "Please enter interest rules details in <Date> <RuleId> <Rate in %> format")
		fmt.Fprintln(c.out, "(or enter blank to go back to main menu):")

		line, ok := c.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) != 3 {
			fmt.Fprintln(c.out, "Invalid input format. Please try again.")
			continue
		}

		resp, err := c.ledger.AddInterestRule(ctx, models.AddInterestRuleRequest{
			Date:   parts[0],
			RuleID: parts[1],
			Rate:   parts[2],
		})
		if err != nil {
			fmt.Fprintf(c.out, "Error: %s\n", resp.Reason())
		} else {
			rulesResp, rulesErr := c.statements.ListRules(ctx)
			if rulesErr == nil && rulesResp.Data != nil {
				fmt.Fprintln(c.out, rulesResp.Data.Statement)
			}
		}

		fmt.Fprintln(c.out, "\nIs there anything else you'd like to do?")
	}
}

func (c *Console) printStatement(ctx context.Context) {
	for {
		fmt.Fprintln(c.out, "Please enter account and month to generate the statement <Account> <Year><Month>")
		fmt.Fprintln(c.out, "(or enter blank to go back to main menu):")

		line, ok := c.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			fmt.Fprintln(c.out, "Invalid input format. Please try again.")
			continue
		}

		resp, err := c.statements.MonthlyStatement(ctx, parts[0], parts[1])
		if err != nil {
			fmt.Fprintln(c.out, resp.Reason())
		} else if resp.Data != nil {
			fmt.Fprintln(c.out, resp.Data.Statement)
		}

		fmt.Fprintln(c.out, "\nIs there anything else you'd like to do?")
	}
}

func (c *Console) readLine() (string, bool) {
	fmt.Fprint(c.out, "> ")
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
