// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/explore-registration/models"
)

// Page names
const (
	PageRegister = "register.html"
	PageThankYou = "thank_you.html"
	PageAdmin    = "admin.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is passed to every page template
type PageData struct {
	Title         string
	Notice        *models.Notice
	Registrations []models.Registration
}

// Views holds one parsed template set per page, each sharing the layout
type Views struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"ago": humanize.Time,
	"count": func(n int) string {
		return humanize.Comma(int64(n))
	},
	"date": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("2006-01-02")
	},
	"timestamp": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04:05 UTC")
	},
	"yesno": func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	},
}

// New parses the embedded templates
func New() (*Views, error) {
	v := &Views{pages: make(map[string]*template.Template)}

	for _, page := range []string{PageRegister, PageThankYou, PageAdmin} {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		v.pages[page] = t
	}

	return v, nil
}

// Render executes a page into w. Output is buffered so a template error
// never leaves a half-written page.
func (v *Views) Render(w io.Writer, page string, data PageData) error {
	t, ok := v.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
