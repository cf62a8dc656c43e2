package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/rentease/ms-go-rent-payments/app/gateway"
)

const (
	PageSuccess          = "success.html"
	PageAlreadyProcessed = "already_processed.html"
	PageError            = "error.html"
	PageBridge           = "bridge.html"
)

//go:embed templates/*.html
var templateFS embed.FS

// ReceiptPage is the data behind the success, already processed and error pages.
type ReceiptPage struct {
	Title           string
	Success         bool
	Message         string
	Amount          string
	TransactionCode string
	PropertyTitle   string
	Address         string
	Date            string
	// DeepLink points into the mobile app, whose scheme html/template would
	// otherwise rewrite.
	DeepLink        template.URL
}

type BridgePage struct {
	ActionURL string
	Fields    []gateway.Field
}

// Renderer renders the embedded pages. Each page is parsed together with the
// shared layout so they can all define their own body.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, 4)
	for _, name := range []string{PageSuccess, PageAlreadyProcessed, PageError} {
		tmpl, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}

	bridge, err := template.New(PageBridge).ParseFS(templateFS, "templates/"+PageBridge)
	if err != nil {
		return nil, err
	}
	pages[PageBridge] = bridge

	return &Renderer{pages: pages}, nil
}

func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return echo.ErrNotFound
	}
	return tmpl.ExecuteTemplate(w, name, data)
}
