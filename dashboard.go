package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// dashboardHandler runs one full render cycle per request. A GET renders the
// built-in sample data; a POST carries one uploaded file which replaces only
// the revenue and expense figures for this single response. Every cycle is
// self-contained: no upload outlives the request that carried it, and any
// parse failure falls back to the sample data with a status message.
func dashboardHandler(deps *Dependencies) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sublog := zerolog.Ctx(r.Context())
		nonce, _ := r.Context().Value(ContextKey("nonce")).(string)

		ds := deps.defaults
		source := "default"
		status := "Using built-in sample data (no file uploaded)."
		failed := false

		if r.Method == http.MethodPost {
			raw, filename, err := readUpload(r)
			if err == nil {
				var parsed Dataset
				parsed, err = parseUpload(raw, filename)
				if err == nil {
					ds = parsed
					source = "upload"
					status = fmt.Sprintf("File '%s' uploaded and parsed successfully.", filename)
					uploadCounter.WithLabelValues("accepted").Inc()
				}
			}
			if err != nil {
				sublog.Warn().Err(err).Str("filename", filename).Msg("rejected upload")
				if filename == "" {
					status = fmt.Sprintf("Failed to read upload: %s. Falling back to built-in sample data.", err)
				} else {
					status = fmt.Sprintf("Failed to parse uploaded file '%s': %s. Falling back to built-in sample data.", filename, err)
				}
				failed = true
				uploadCounter.WithLabelValues("rejected").Inc()
			}
		}

		artifacts := buildArtifacts(ds, nonce, deps.config.EchartsAssetsHost)
		renderCounter.WithLabelValues(source).Inc()

		webdata := map[string]interface{}{
			"artifacts": artifacts,
			"status":    status,
			"failed":    failed,
			"nonce":     nonce,
		}
		renderTemplate(w, deps, *sublog, "dashboard", webdata)
	})
}

func readUpload(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", errMissingUpload
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, header.Filename, fmt.Errorf("failed to read upload: %w", err)
	}
	return raw, header.Filename, nil
}

func pingHandler() http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
