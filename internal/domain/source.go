package domain

import "context"

// SheetSource defines the interface for the remote read-only spreadsheet.
// Every call fetches all tabs and all rows; there is no caching, no
// pagination and no partial fetch.
type SheetSource interface {
	FetchSheets(ctx context.Context) ([]Sheet, error)
}

// ChatClient defines the interface for the hosted chat-completion demo.
// One synchronous call per message, no retry, no conversation state.
type ChatClient interface {
	Complete(ctx context.Context, message string) (string, error)
}
