package main

import (
	"html/template"
	"path/filepath"

	"github.com/oxtoacart/bpool"
	"github.com/rs/zerolog"
)

// Dependencies carries everything the handlers need; it is read-only after
// startup. The default dataset is built exactly once here, so no render cycle
// depends on package-level mutable state.
type Dependencies struct {
	config    *ConfigData
	logger    *zerolog.Logger
	templates *template.Template
	bufpool   *bpool.BufferPool
	defaults  Dataset
}

func loadTemplates(config *ConfigData) (*template.Template, error) {
	return template.ParseGlob(filepath.Join(config.TemplatePath, "*.gohtml"))
}
