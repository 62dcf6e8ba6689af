package main

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errNoHeaderRow   = errors.New("uploaded file has no header row")
	errNoDataRows    = errors.New("uploaded file has no data rows")
	errNoWorksheets  = errors.New("uploaded workbook has no worksheets")
	errMissingUpload = errors.New("no file found in upload request")
)

// MissingColumnsError reports the required columns absent from an uploaded
// table. Validation is all-or-nothing: every missing name is collected before
// the upload is rejected.
type MissingColumnsError struct {
	Columns []string
}

func (e MissingColumnsError) Error() string {
	return fmt.Sprintf("missing columns in uploaded file: %s", strings.Join(e.Columns, ", "))
}
