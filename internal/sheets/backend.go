// Package sheets implements the remote VendorService backend on the
// Google Sheets API v4 values endpoints.
//
// Contract note: reads are header-driven and writes are positional.
// FetchAll maps each cell by the header name in row 1, while Add, Update
// and Delete always write the six Columns in their fixed order. Do not
// make the two sides symmetric.
//
// Update and Delete locate their target by refetching the whole sheet and
// carry no concurrency token, so concurrent writers can overwrite each
// other.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/juju/loggo"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mesh-intelligence/vendors/pkg/types"
)

var logger = loggo.GetLogger("vendors.sheets")

// valueInputOption makes the API parse written values as if typed by a user.
const valueInputOption = "USER_ENTERED"

// Options configures the spreadsheet connection.
type Options struct {
	SpreadsheetID  string
	SheetName      string
	Credential     string
	CredentialType string // types.CredentialAPIKey (default) or types.CredentialToken.
	Endpoint       string // overrides the API base URL when set.

	// HTTPClient, when set, is used as-is and the credential is not applied.
	HTTPClient *http.Client
}

// Backend implements types.VendorService against one sheet of a spreadsheet.
type Backend struct {
	values        *sheetsapi.SpreadsheetsValuesService
	spreadsheetID string
	sheet         string
}

// New connects to the Sheets API with the given options.
func New(ctx context.Context, o Options) (*Backend, error) {
	if strings.TrimSpace(o.SpreadsheetID) == "" {
		return nil, errors.New("spreadsheet ID is required")
	}
	sheet := strings.TrimSpace(o.SheetName)
	if sheet == "" {
		sheet = types.DefaultSheetName
	}

	opts, err := clientOptions(o)
	if err != nil {
		return nil, err
	}
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	return &Backend{
		values:        svc.Spreadsheets.Values,
		spreadsheetID: o.SpreadsheetID,
		sheet:         sheet,
	}, nil
}

func clientOptions(o Options) ([]option.ClientOption, error) {
	var opts []option.ClientOption
	if o.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(o.Endpoint))
	}
	if o.HTTPClient != nil {
		return append(opts, option.WithHTTPClient(o.HTTPClient)), nil
	}

	cred := strings.TrimSpace(o.Credential)
	if cred == "" {
		return nil, errors.New("credential is required")
	}
	switch o.CredentialType {
	case "", types.CredentialAPIKey:
		opts = append(opts, option.WithAPIKey(cred))
	case types.CredentialToken:
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cred, TokenType: "Bearer"})
		opts = append(opts, option.WithTokenSource(ts))
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrCredentialTypeUnknown, o.CredentialType)
	}
	return opts, nil
}

// FetchAll reads the whole sheet. A sheet with only a header row, or no
// rows at all, yields an empty successful result.
func (b *Backend) FetchAll(ctx context.Context) types.Result[[]types.Vendor] {
	rows, err := b.readTable(ctx)
	if err != nil {
		return types.Fail[[]types.Vendor](err)
	}
	vendors := make([]types.Vendor, len(rows))
	for i, r := range rows {
		vendors[i] = r.vendor
	}
	return types.Ok(vendors)
}

// Add appends one row in the fixed column order.
func (b *Backend) Add(ctx context.Context, v types.Vendor) types.Result[types.Vendor] {
	body := &sheetsapi.ValueRange{Values: [][]any{toRow(v)}}
	_, err := b.values.Append(b.spreadsheetID, fullRange(b.sheet), body).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return types.Fail[types.Vendor](describe("append row", err))
	}
	logger.Debugf("appended vendor %q", v.CompanyName)
	return types.Ok(v)
}

// Update refetches the sheet, finds the row holding originalName, and
// overwrites that single row.
func (b *Backend) Update(ctx context.Context, originalName string, v types.Vendor) types.Result[types.Vendor] {
	rows, err := b.readTable(ctx)
	if err != nil {
		return types.Fail[types.Vendor](err)
	}
	i := indexOf(rows, originalName)
	if i < 0 {
		return types.Fail[types.Vendor](notFound(originalName))
	}

	target := rowRange(b.sheet, rows[i].row)
	body := &sheetsapi.ValueRange{Values: [][]any{toRow(v)}}
	_, err = b.values.Update(b.spreadsheetID, target, body).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return types.Fail[types.Vendor](describe("update row", err))
	}
	logger.Debugf("updated vendor %q at %s", originalName, target)
	return types.Ok(v)
}

// Delete refetches the sheet, drops the first row holding name, and
// rewrites the entire table (header plus surviving rows) in one request.
// Trailing blank rows clear the cells the table no longer covers.
func (b *Backend) Delete(ctx context.Context, name string) types.Result[struct{}] {
	rows, err := b.readTable(ctx)
	if err != nil {
		return types.Fail[struct{}](err)
	}
	i := indexOf(rows, name)
	if i < 0 {
		return types.Fail[struct{}](notFound(name))
	}

	payload := rewritePayload(rows, i)
	target := tableRange(b.sheet, len(payload))
	_, err = b.values.Update(b.spreadsheetID, target, &sheetsapi.ValueRange{Values: payload}).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return types.Fail[struct{}](describe("rewrite table", err))
	}
	logger.Debugf("deleted vendor %q, rewrote %s", name, target)
	return types.Ok(struct{}{})
}

// rewritePayload builds the full-table write that removes rows[skip]: the
// canonical header, every other vendor in order, then blank rows up to
// the last row previously in use.
func rewritePayload(rows []tableRow, skip int) [][]any {
	payload := [][]any{headerRow()}
	for j, r := range rows {
		if j != skip {
			payload = append(payload, toRow(r.vendor))
		}
	}
	lastUsed := rows[len(rows)-1].row
	for len(payload) < lastUsed {
		payload = append(payload, blankRow())
	}
	return payload
}

func (b *Backend) readTable(ctx context.Context) ([]tableRow, error) {
	resp, err := b.values.Get(b.spreadsheetID, fullRange(b.sheet)).Context(ctx).Do()
	if err != nil {
		return nil, describe("read sheet", err)
	}
	return parseRows(resp.Values), nil
}

func indexOf(rows []tableRow, name string) int {
	for i, r := range rows {
		if r.vendor.CompanyName == name {
			return i
		}
	}
	return -1
}

func notFound(name string) error {
	return fmt.Errorf("%w: %q", types.ErrNotFound, name)
}

// describe turns an API or transport failure into a readable error.
func describe(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := strings.TrimSpace(gerr.Message)
		if msg == "" {
			msg = http.StatusText(gerr.Code)
		}
		logger.Warningf("%s: status %d: %s", op, gerr.Code, msg)
		return fmt.Errorf("%s: spreadsheet API returned %d: %s", op, gerr.Code, msg)
	}
	logger.Warningf("%s: %v", op, err)
	return fmt.Errorf("%s: %w", op, err)
}
