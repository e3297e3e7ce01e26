package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/goleak"

	"ppc-optimizer/internal/adapter/filestore"
	"ppc-optimizer/internal/adapter/spreadsheet"
	"ppc-optimizer/internal/adapter/usecase"
	"ppc-optimizer/internal/config/configs"
	"ppc-optimizer/internal/core/domain"
	"ppc-optimizer/internal/core/port/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testHTTP = configs.HTTP{AllowedOrigins: []string{"*"}}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newServer wires the real use case, store and reader behind the router and
// returns it with the upload directory.
func newServer(t *testing.T) (http.Handler, string) {
	t.Helper()
	cfg := configs.Upload{
		Dir:               filepath.Join(t.TempDir(), "uploads"),
		AllowedExtensions: []string{"xlsx", "xls"},
		MaxBytes:          1 << 20,
	}
	store, err := filestore.New(cfg)
	require.NoError(t, err)
	svc := usecase.NewPPCUseCase(store, spreadsheet.NewReader(), cfg, discardLogger())
	return NewHandler(svc, discardLogger(), testHTTP, cfg).Router(), cfg.Dir
}

func xlsxBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func uploadRequest(t *testing.T, target, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "upload dir should be empty")
}

func TestHealth(t *testing.T) {
	h, _ := newServer(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestProcessPPC(t *testing.T) {
	h, dir := newServer(t)
	content := xlsxBytes(t, [][]any{
		{"keyword", "acos", "current_bid", "clicks"},
		{"shoes", 31, 100, 12},
		{"boots", 14, 100, 3},
		{"socks", 30, 0.5, 0},
		{"laces", 15, 2, 1},
	})

	rec := serve(h, uploadRequest(t, "/api/process-ppc", "campaigns.xlsx", content))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var raw []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Len(t, raw, 4)
	// source columns keep their order, suggested_bid comes last
	assert.Equal(t, `{"keyword":"shoes","acos":31,"current_bid":100,"clicks":12,"suggested_bid":90}`, string(raw[0]))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	assert.Equal(t, "boots", rows[1]["keyword"])
	assert.InDelta(t, 110.0, rows[1]["suggested_bid"], 1e-9)
	assert.Equal(t, 0.5, rows[2]["suggested_bid"])
	assert.Equal(t, 2.0, rows[3]["suggested_bid"])

	assertDirEmpty(t, dir)
}

func TestProcessPPCLegacyXLS(t *testing.T) {
	h, dir := newServer(t)
	content, err := os.ReadFile(filepath.Join("..", "spreadsheet", "testdata", "campaigns.xls"))
	require.NoError(t, err)

	rec := serve(h, uploadRequest(t, "/api/process-ppc", "campaigns.xls", content))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "shoes", rows[0]["keyword"])
	assert.Equal(t, "ok", rows[0]["note"])
	assert.InDelta(t, 1.125, rows[0]["suggested_bid"], 1e-9)
	assert.Equal(t, "boots", rows[1]["keyword"])
	assert.Equal(t, "#DIV/0!", rows[1]["note"])
	assert.InDelta(t, 0.88, rows[1]["suggested_bid"], 1e-9)
	assertDirEmpty(t, dir)
}

func TestProcessPPCHeaderOnlyReturnsEmptyArray(t *testing.T) {
	h, _ := newServer(t)
	content := xlsxBytes(t, [][]any{{"acos", "current_bid"}})

	rec := serve(h, uploadRequest(t, "/api/process-ppc", "empty.xlsx", content))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestProcessPPCInvalidExtension(t *testing.T) {
	h, dir := newServer(t)

	rec := serve(h, uploadRequest(t, "/api/process-ppc", "data.csv", []byte("acos,current_bid\n31,100\n")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "invalid file type")
	assertDirEmpty(t, dir)
}

func TestProcessPPCMissingFilePart(t *testing.T) {
	h, _ := newServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/process-ppc", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := serve(h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file part", errorMessage(t, rec))
}

func TestProcessPPCNotMultipart(t *testing.T) {
	h, _ := newServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/process-ppc", strings.NewReader(`{"acos":1}`))
	req.Header.Set("Content-Type", "application/json")

	rec := serve(h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "Invalid multipart form")
}

func TestProcessPPCTooLarge(t *testing.T) {
	h, dir := newServer(t)

	rec := serve(h, uploadRequest(t, "/api/process-ppc", "big.xlsx", bytes.Repeat([]byte("x"), 2<<20)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertDirEmpty(t, dir)
}

func TestProcessPPCCorruptFileIsCleanedUp(t *testing.T) {
	h, dir := newServer(t)

	rec := serve(h, uploadRequest(t, "/api/process-ppc", "broken.xlsx", []byte("not a workbook")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "parse broken.xlsx")
	assertDirEmpty(t, dir)
}

func TestProcessPPCMissingColumn(t *testing.T) {
	h, dir := newServer(t)
	content := xlsxBytes(t, [][]any{
		{"keyword", "acos"},
		{"shoes", 31},
	})

	rec := serve(h, uploadRequest(t, "/api/process-ppc", "campaigns.xlsx", content))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, `missing required column "current_bid"`, errorMessage(t, rec))
	assertDirEmpty(t, dir)
}

func TestProcessPPCNonNumericBid(t *testing.T) {
	h, _ := newServer(t)
	content := xlsxBytes(t, [][]any{
		{"acos", "current_bid"},
		{31, "lots"},
	})

	rec := serve(h, uploadRequest(t, "/api/process-ppc", "campaigns.xlsx", content))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, errorMessage(t, rec), "not numeric")
}

func TestMaxBids(t *testing.T) {
	h, _ := newServer(t)
	content := xlsxBytes(t, [][]any{
		{"keyword", "acos", "current_bid"},
		{"shoes", 60, 2},
		{"boots", 10, 1},
	})

	rec := serve(h, uploadRequest(t, "/api/max-bids?target_acos=30", "campaigns.xlsx", content))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 30.0, rows[0]["target_acos"])
	assert.InDelta(t, 1.0, rows[0]["new_max_bid"], 1e-9)
	assert.InDelta(t, 1.2, rows[1]["new_max_bid"], 1e-9)
	assert.NotContains(t, rows[0], "suggested_bid")
}

func TestMaxBidsBadTarget(t *testing.T) {
	h, dir := newServer(t)
	content := xlsxBytes(t, [][]any{{"acos", "current_bid"}, {10, 1}})

	for _, target := range []string{"abc", "-5", "0"} {
		rec := serve(h, uploadRequest(t, "/api/max-bids?target_acos="+target, "c.xlsx", content))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, errorMessage(t, rec), "target_acos", target)
	}
	assertDirEmpty(t, dir)
}

func TestBrandShare(t *testing.T) {
	h, _ := newServer(t)
	content := xlsxBytes(t, [][]any{
		{domain.ColumnSearchQuery, domain.ColumnImpressionShare, domain.ColumnClickShare, domain.ColumnCartAddShare},
		{"red shoes", "10%", "15%", "30%"},
		{"blue shoes", "90%", "15%", "95%"},
	})

	rec := serve(h, uploadRequest(t, "/api/brand-share", "brand.xlsx", content))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rows []domain.BrandShareRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "red shoes", rows[0].SearchQuery)
	assert.InDelta(t, 0.3, rows[0].CartAddShare, 1e-12)
}

func TestBrandShareReportWithMetadataRow(t *testing.T) {
	h, dir := newServer(t)
	content := xlsxBytes(t, [][]any{
		{"Brand=[Acme]", "Reporting Range=[Weekly]", "Viewing=[2024-05-05 - 2024-05-11]"},
		{domain.ColumnSearchQuery, domain.ColumnImpressionShare, domain.ColumnClickShare, domain.ColumnCartAddShare},
		{"red shoes", 10, 15, 30},
		{"blue shoes", 90, 15, 95},
	})

	rec := serve(h, uploadRequest(t, "/api/brand-share", "brand.xlsx", content))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rows []domain.BrandShareRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "red shoes", rows[0].SearchQuery)
	assert.InDelta(t, 0.1, rows[0].ImpressionShare, 1e-12)
	assertDirEmpty(t, dir)
}

func TestCORSHeaders(t *testing.T) {
	h, _ := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := serve(h, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoute(t *testing.T) {
	h, _ := newServer(t)
	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing field", &domain.MissingFieldError{Field: domain.FieldACOS, Row: 3}, http.StatusInternalServerError},
		{"type mismatch", &domain.TypeMismatchError{Field: domain.FieldACOS, Row: 3, Value: "x"}, http.StatusInternalServerError},
		{"parse", &domain.ParseError{Filename: "a.xls", Err: errors.New("bad")}, http.StatusInternalServerError},
		{"file type", &domain.InvalidFileTypeError{Filename: "a.txt"}, http.StatusBadRequest},
		{"no file", domain.ErrNoFile, http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockPPCUseCase(t)
			svc.EXPECT().
				SuggestBids(mock.Anything, mock.AnythingOfType("domain.Upload")).
				Return(nil, tt.err)

			h := NewHandler(svc, discardLogger(), testHTTP, configs.Upload{MaxBytes: 1 << 20}).Router()
			rec := serve(h, uploadRequest(t, "/api/process-ppc", "a.xlsx", []byte("x")))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.err.Error(), errorMessage(t, rec))
		})
	}
}

func TestUploadIsPassedThrough(t *testing.T) {
	svc := mocks.NewMockPPCUseCase(t)
	svc.EXPECT().
		SuggestBids(mock.Anything, mock.AnythingOfType("domain.Upload")).
		RunAndReturn(func(_ context.Context, u domain.Upload) ([]domain.CampaignRecord, error) {
			b, err := io.ReadAll(u.Body)
			if err != nil {
				return nil, err
			}
			assert.Equal(t, "Q3 Report.XLSX", u.Filename)
			assert.Equal(t, "payload", string(b))
			return []domain.CampaignRecord{}, nil
		})

	h := NewHandler(svc, discardLogger(), testHTTP, configs.Upload{}).Router()
	rec := serve(h, uploadRequest(t, "/api/process-ppc", "Q3 Report.XLSX", []byte("payload")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}
