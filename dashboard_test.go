package main

import (
	"bytes"
	"html"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/oxtoacart/bpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps(t *testing.T) *Dependencies {
	t.Helper()

	config := &ConfigData{
		HTTPPort:          3001,
		TemplatePath:      "templates",
		StaticPath:        "static",
		EchartsAssetsHost: testAssetsHost,
	}
	templates, err := loadTemplates(config)
	require.NoError(t, err)

	logger := zerolog.Nop()
	return &Dependencies{
		config:    config,
		logger:    &logger,
		templates: templates,
		bufpool:   bpool.NewBufferPool(4),
		defaults:  defaultDataset(),
	}
}

func multipartBody(t *testing.T, filename string, contents []byte) (io.Reader, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(contents)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func serve(t *testing.T, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	buildRouter(newTestDeps(t)).ServeHTTP(w, r)
	return w
}

func TestDashboardDefault(t *testing.T) {
	w := serve(t, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Using built-in sample data (no file uploaded).")
	assert.Contains(t, body, "439,478.8")
	assert.Contains(t, body, "985,295")
	assert.Contains(t, body, "revenue-chart")
	assert.Contains(t, body, "Net Operating Profit")
	assert.NotEmpty(t, w.Header().Get("Content-Security-Policy"))
}

func TestDashboardUploadSuccess(t *testing.T) {
	header, rows := uploadTable()
	body, contentType := multipartBody(t, "q3.csv", encodeCSV(t, header, rows))

	r := httptest.NewRequest("POST", "/", body)
	r.Header.Set("Content-Type", contentType)
	w := serve(t, r)

	require.Equal(t, http.StatusOK, w.Code)
	// the template escapes quotes, so unescape before matching status text
	page := html.UnescapeString(w.Body.String())
	assert.Contains(t, page, "File 'q3.csv' uploaded and parsed successfully.")
	// uploaded Year 0 consolidated revenue shows up in the income statement
	assert.Contains(t, page, "630")
	// balance sheet stays the built-in default regardless of upload
	assert.Contains(t, page, "985,295")
}

func TestDashboardUploadMissingColumnsFallsBack(t *testing.T) {
	header, rows := uploadTable()
	header[5] = "Cost of Goods"
	body, contentType := multipartBody(t, "bad.csv", encodeCSV(t, header, rows))

	r := httptest.NewRequest("POST", "/", body)
	r.Header.Set("Content-Type", contentType)
	w := serve(t, r)

	require.Equal(t, http.StatusOK, w.Code)
	page := html.UnescapeString(w.Body.String())
	assert.Contains(t, page, "Failed to parse uploaded file 'bad.csv'")
	assert.Contains(t, page, "missing columns in uploaded file: COGS")
	assert.Contains(t, page, "Falling back to built-in sample data.")
	// the rendered figures are the default dataset's
	assert.Contains(t, page, "490,923")
	assert.Contains(t, page, "439,478.8")
}

func TestDashboardUploadWithoutFileFallsBack(t *testing.T) {
	r := httptest.NewRequest("POST", "/", bytes.NewReader(nil))
	w := serve(t, r)

	require.Equal(t, http.StatusOK, w.Code)
	page := html.UnescapeString(w.Body.String())
	assert.Contains(t, page, "Failed to read upload: no file found in upload request.")
	assert.Contains(t, page, "Falling back to built-in sample data.")
	assert.NotContains(t, page, "uploaded file ''")
	assert.Contains(t, page, "490,923")
}

func TestPing(t *testing.T) {
	w := serve(t, httptest.NewRequest("GET", "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	w := serve(t, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
}
