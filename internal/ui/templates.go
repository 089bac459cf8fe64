package ui

import (
	"embed"
	"html/template"
	"io/fs"
	"time"
)

//go:embed templates/*
var templateFS embed.FS

var templates = mustParseTemplates()

var funcMap = template.FuncMap{
	"formatTime": func(t interface{}) string {
		switch v := t.(type) {
		case nil:
			return ""
		case time.Time:
			if v.IsZero() {
				return ""
			}
			return v.Format("Jan 2, 2006 3:04 pm")
		case *time.Time:
			if v == nil {
				return ""
			}
			return v.Format("Jan 2, 2006 3:04 pm")
		}
		return ""
	},
	"monthName": func(m time.Month) string { return m.String() },
	"hourLabel": func(hour int) string {
		if hour < 0 {
			return ""
		}
		return time.Date(2000, 1, 1, hour, 0, 0, 0, time.UTC).Format("3 pm")
	},
}

func mustParseTemplates() map[string]*template.Template {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		panic(err)
	}

	base := template.Must(template.New("base.html").Funcs(funcMap).ParseFS(templateFS, "templates/base.html"))

	sets := make(map[string]*template.Template)
	for _, file := range files {
		if file == "templates/base.html" {
			continue
		}

		set := template.Must(base.Clone())
		template.Must(set.ParseFS(templateFS, file))
		sets[file[len("templates/"):]] = set
	}

	return sets
}
