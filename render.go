package main

import (
	"net/http"

	"github.com/rs/zerolog"
)

// renderTemplate is a wrapper around template.ExecuteTemplate.
// It writes into a bytes.Buffer before writing to the http.ResponseWriter to catch
// any errors resulting from populating the template.
func renderTemplate(w http.ResponseWriter, deps *Dependencies, sublog zerolog.Logger, tmplname string, webdata map[string]interface{}) error {
	tmpl := deps.templates
	webdata["config"] = deps.config

	// Create a buffer to temporarily write to and check if any errors were encountered.
	buf := deps.bufpool.Get()
	defer deps.bufpool.Put(buf)

	err := tmpl.ExecuteTemplate(buf, tmplname, webdata)
	if err != nil {
		sublog.Error().Err(err).Str("template", tmplname).Msg("failed to execute template")
		return err
	}

	// Set the header and write the buffer to the http.ResponseWriter
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
	return nil
}
