package config

import (
	"os"
	"strings"
)

const defaultBankName = "AwesomeGIC Bank"

type Config struct {
	BankName string
}

func Load() (Config, error) {
	bankName := strings.TrimSpace(os.Getenv("BANK_NAME"))
	if bankName == "" {
		bankName = defaultBankName
	}

	return Config{
		BankName: bankName,
	}, nil
}
