package gsheets

import (
	"context"
	"fmt"
	"log"

	"github.com/areteselect/backend/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client reads the case library through the Google Sheets API. The API
// service is built per fetch, mirroring the per-request authorization of
// the original deployment: a bad or missing credential surfaces as a
// request-time error instead of crashing the process at startup.
type Client struct {
	spreadsheetID string
	credJSON      []byte
	extraOpts     []option.ClientOption
}

// NewClient creates a client for the given spreadsheet. credJSON is the
// service-account key as raw JSON; it may be nil when extra client options
// (e.g. a test endpoint) supply the transport instead.
func NewClient(spreadsheetID string, credJSON []byte, extra ...option.ClientOption) *Client {
	return &Client{
		spreadsheetID: spreadsheetID,
		credJSON:      credJSON,
		extraOpts:     extra,
	}
}

// service builds a Sheets API service for one fetch
func (c *Client) service(ctx context.Context) (*sheets.Service, error) {
	if c.credJSON == nil && len(c.extraOpts) == 0 {
		return nil, fmt.Errorf("%w: set CREDENTIALS_JSON or provide a credentials file", domain.ErrCredentialMissing)
	}

	opts := make([]option.ClientOption, 0, len(c.extraOpts)+2)
	if c.credJSON != nil {
		opts = append(opts,
			option.WithCredentialsJSON(c.credJSON),
			option.WithScopes(sheets.SpreadsheetsReadonlyScope, sheets.DriveReadonlyScope),
		)
	}
	opts = append(opts, c.extraOpts...)

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCredentialInvalid, err)
	}
	return svc, nil
}

// FetchSheets lists every tab of the spreadsheet and reads all of its
// rows. One sequential pass, one attempt per call; failures return to the
// caller without retry.
func (c *Client) FetchSheets(ctx context.Context) ([]domain.Sheet, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	meta, err := svc.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: listing tabs: %v", domain.ErrFetchFailed, err)
	}

	result := make([]domain.Sheet, 0, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		if sh.Properties == nil {
			continue
		}
		title := sh.Properties.Title
		values, err := svc.Spreadsheets.Values.Get(c.spreadsheetID, "'"+title+"'").Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("%w: reading tab %q: %v", domain.ErrFetchFailed, title, err)
		}
		result = append(result, mapValueRange(title, values.Values))
	}

	log.Printf("[SHEETS] fetched %d tabs from spreadsheet %s", len(result), c.spreadsheetID)
	return result, nil
}
