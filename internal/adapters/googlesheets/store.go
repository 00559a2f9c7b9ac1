// Package googlesheets implements domain.TableStore on the Google Sheets v4 values API.
package googlesheets

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2/google"
	oauthjwt "golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"weddinginvite/internal/domain"
)

// valueInputOption makes the spreadsheet parse written values as if typed by a user.
const valueInputOption = "USER_ENTERED"

// Config holds the service-account credentials and the workbook ID.
type Config struct {
	PrivateKey    string
	ClientEmail   string
	SpreadsheetID string
}

// Store talks to one spreadsheet. It is safe for concurrent use.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewStore validates cfg and builds an authenticated Sheets client. Construction does no network
// I/O; a bad key or identity surfaces on the first call as domain.ErrStoreUnavailable.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	var missing []string
	if cfg.PrivateKey == "" {
		missing = append(missing, "GOOGLE_SHEETS_PRIVATE_KEY")
	}
	if cfg.ClientEmail == "" {
		missing = append(missing, "GOOGLE_SHEETS_CLIENT_EMAIL")
	}
	if cfg.SpreadsheetID == "" {
		missing = append(missing, "GOOGLE_SHEET_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissingCredentials, strings.Join(missing, ", "))
	}

	key := NormalizePrivateKey(cfg.PrivateKey)
	if _, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(key)); err != nil {
		return nil, fmt.Errorf("%w: invalid private key: %v", domain.ErrMissingCredentials, err)
	}

	jwtCfg := &oauthjwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(key),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Store{svc: svc, spreadsheetID: cfg.SpreadsheetID}, nil
}

// NewStoreWithClient builds a Store against endpoint using client as-is. Used for tests and
// for callers that manage authentication themselves.
func NewStoreWithClient(ctx context.Context, client *http.Client, endpoint, spreadsheetID string) (*Store, error) {
	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &Store{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// NormalizePrivateKey turns escaped "\n" sequences from env files into real newlines.
func NormalizePrivateKey(key string) string {
	key = strings.Trim(key, `"`)
	return strings.ReplaceAll(key, `\n`, "\n")
}

func a1(table, rangeSpec string) string {
	return fmt.Sprintf("%s!%s", table, rangeSpec)
}

func (s *Store) Read(ctx context.Context, table, rangeSpec string) ([][]string, error) {
	if rangeSpec == "" {
		rangeSpec = domain.DefaultReadRange
	}
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, a1(table, rangeSpec)).Context(ctx).Do()
	if err != nil {
		return nil, unavailable("read", table, err)
	}
	return toStrings(resp.Values), nil
}

func (s *Store) Append(ctx context.Context, table string, row []string) error {
	vr := &sheets.ValueRange{Values: [][]any{toCells(row)}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, a1(table, "A:Z"), vr).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return unavailable("append", table, err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, table, rangeSpec string, rows [][]string) error {
	values := make([][]any, len(rows))
	for i, row := range rows {
		values[i] = toCells(row)
	}
	vr := &sheets.ValueRange{Values: values}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, a1(table, rangeSpec), vr).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return unavailable("update", table, err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, table, rangeSpec string) error {
	_, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, a1(table, rangeSpec), &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return unavailable("clear", table, err)
	}
	return nil
}

func toCells(row []string) []any {
	cells := make([]any, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return cells
}

func toStrings(values [][]any) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		out[i] = make([]string, len(row))
		for j, v := range row {
			if v == nil {
				continue
			}
			out[i][j] = fmt.Sprint(v)
		}
	}
	return out
}

func unavailable(op, table string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", op, table, domain.ErrStoreUnavailable, err)
}
