package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	chartrender "github.com/go-echarts/go-echarts/v2/render"
	"github.com/rs/zerolog/log"
)

func renderToHtml(c interface{}) template.HTML {
	var buf bytes.Buffer
	r := c.(chartrender.Renderer)
	err := r.Render(&buf)
	if err != nil {
		log.Error().Err(err).Msg("failed to render chart snippet")
		return ""
	}

	return template.HTML(buf.String())
}

// snippetRenderer renders a chart as an embeddable html fragment instead of
// the full standalone page go-echarts produces by default.
type snippetRenderer struct {
	c      interface{}
	before []func()
}

func newSnippetRenderer(c interface{}, before ...func()) chartrender.Renderer {
	return &snippetRenderer{c: c, before: before}
}

func (r *snippetRenderer) Render(w io.Writer) error {
	const tplName = "_chart"
	for _, fn := range r.before {
		fn()
	}

	tpl := template.
		Must(template.New(tplName).
			Funcs(template.FuncMap{
				"safeJS": func(s interface{}) template.JS {
					return template.JS(fmt.Sprint(s))
				},
			}).
			ParseFiles("templates/charts/_chart.gohtml"),
		)

	err := tpl.ExecuteTemplate(w, tplName, r.c)
	return err
}
