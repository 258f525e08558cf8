package main

import (
	"context"
	"log"
	"os"

	"github.com/api-sage/retail-bank-ledger/internal/adapter/console"
	"github.com/api-sage/retail-bank-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/retail-bank-ledger/internal/config"
	"github.com/api-sage/retail-bank-ledger/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	accountRepo := memory.NewAccountRepository()
	ruleRepo := memory.NewRuleRepository()

	ledgerService := services.NewLedgerService(accountRepo, ruleRepo)
	statementService := services.NewStatementService(accountRepo, ruleRepo, ledgerService)

	app := console.New(ledgerService, statementService, os.Stdin, os.Stdout, cfg.BankName)
	app.Run(context.Background())
}
