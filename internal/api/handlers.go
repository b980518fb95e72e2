package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/ottocompiler/plantmon/internal/db"
	"gorm.io/gorm"
)

type Handler struct {
	db        *gorm.DB
	repos     *db.Repositories
	location  *time.Location
	templates map[string]*template.Template
}

func NewHandler(database *gorm.DB, templateDir string, location *time.Location) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	funcMap := template.FuncMap{
		"orDash": func(value string) string {
			if strings.TrimSpace(value) == "" {
				return "—"
			}
			return value
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"dashboard",
		"edit",
	}
	for _, page := range pages {
		templatePath := filepath.Join(templateDir, page+".html")
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			templatePath,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	return &Handler{
		db:        database,
		repos:     db.NewRepositories(database),
		location:  location,
		templates: templates,
	}, nil
}
