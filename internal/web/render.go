package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/quote-wizard/internal/i18n"
	"github.com/sells-group/quote-wizard/internal/lookup"
	"github.com/sells-group/quote-wizard/internal/model"
	"github.com/sells-group/quote-wizard/internal/wizard"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageSteps = map[string]wizard.Step{
	"quotation":     wizard.StepQuotation,
	"beneficiaries": wizard.StepBeneficiaries,
	"payment":       wizard.StepPayment,
	"result":        wizard.StepResult,
}

var stepTitles = map[wizard.Step]string{
	wizard.StepQuotation:     "Quotation",
	wizard.StepBeneficiaries: "Beneficiaries",
	wizard.StepPayment:       "Payment",
	wizard.StepResult:        "Result",
}

type pages struct {
	loc   *i18n.Localizer
	byKey map[string]*template.Template
}

func parsePages(loc *i18n.Localizer) (*pages, error) {
	funcs := template.FuncMap{
		"t":      loc.T,
		"amount": loc.Amount,
		"label": func(item model.LookupItem) string {
			if !loc.RTL() && item.NameEn != "" {
				return item.NameEn
			}
			return item.Name
		},
		"date": func(s string) string {
			if ts, err := time.Parse(time.RFC3339, s); err == nil {
				return ts.Format("2006-01-02")
			}
			return s
		},
	}

	p := &pages{loc: loc, byKey: make(map[string]*template.Template, len(pageSteps))}
	for name := range pageSteps {
		tmpl, err := template.New("layout").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, eris.Wrapf(err, "web: parse template %s", name)
		}
		p.byKey[name] = tmpl
	}
	return p, nil
}

type navItem struct {
	Label  string
	Path   string
	Active bool
	Done   bool
}

type resultView struct {
	Success       bool
	PolicyNumber  string
	PolicyType    string
	Coverage      float64
	Premium       float64
	CreatedAt     string
	TransactionID string
}

type pageData struct {
	Title   string
	Lang    string
	Dir     string
	Nav     []navItem
	State   wizard.State
	Lookups *lookup.Set
	Flash   string
	Errors  map[string]string

	Quotation   wizard.QuotationForm
	Premium     float64
	Beneficiary wizard.BeneficiaryForm
	Total       int
	MethodID    string
	Result      *resultView
}

func (p *pages) data(step wizard.Step, st wizard.State, set *lookup.Set) *pageData {
	nav := make([]navItem, 0, len(wizard.Steps))
	for _, s := range wizard.Steps {
		nav = append(nav, navItem{
			Label:  stepTitles[s],
			Path:   s.Path(),
			Active: s == step,
			Done:   s < step,
		})
	}
	dir := "ltr"
	if p.loc.RTL() {
		dir = "rtl"
	}
	return &pageData{
		Title:   stepTitles[step],
		Lang:    p.loc.Tag().String(),
		Dir:     dir,
		Nav:     nav,
		State:   st,
		Lookups: set,
		Total:   model.TotalPercentage(st.Beneficiaries),
	}
}

// render executes a page into a buffer so a template failure never leaves a
// half-written response.
func (p *pages) render(w http.ResponseWriter, name string, status int, data *pageData) {
	tmpl, ok := p.byKey[name]
	if !ok {
		http.Error(w, "unknown page", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		zap.L().Error("web: render page", zap.String("page", name), zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
