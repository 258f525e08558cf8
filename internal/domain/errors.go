package domain

import "errors"

var ErrInvalidDate = errors.New("Invalid date format. Please use YYYYMMDD format")
var ErrInvalidType = errors.New("Invalid transaction type. Use D for deposit or W for withdrawal")
var ErrInvalidAmount = errors.New("Invalid amount format")
var ErrNonPositiveAmount = errors.New("Amount must be greater than zero")
var ErrInsufficientFunds = errors.New("Insufficient funds for withdrawal")
var ErrInvalidRate = errors.New("Invalid rate format")
var ErrRateOutOfRange = errors.New("Interest rate must be greater than 0 and less than 100")
var ErrAccountNotFound = errors.New("Account does not exist")
var ErrNoTransactionsInPeriod = errors.New("No transactions found for the period")
var ErrInvalidMonthSelector = errors.New("Invalid year/month format. Please use YYYYMM format")
