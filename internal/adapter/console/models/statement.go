package models

type StatementResponse struct {
	AccountID string `json:"accountId,omitempty"`
	Statement string `json:"statement"`
}
