package httpapi

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"mlmcompare/internal/compare"
	"mlmcompare/pkg/types"
)

// pageData is the view model of the comparison page.
type pageData struct {
	Languages      []string
	Lang           string
	Models         []types.Model
	Selected       map[string]bool
	Text           string
	TopK           string
	MinTopK        int
	MaxTopK        int
	Warning        string
	SelectionError string
	InputError     string
	RunID          string
	Columns        []pageColumn
	Disk           *types.DiskUsage
}

type pageColumn struct {
	Model string
	Chart string
	Error string
}

// handlePage renders the form and, when run was requested with a valid
// selection, both charts side by side.
func (s *server) handlePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lvl := requestLogLevel(r)
	start := time.Now()
	langs := s.svc.Languages()

	d := pageData{
		Languages: langs.Languages,
		Lang:      q.Get("lang"),
		MinTopK:   langs.MinTopK,
		MaxTopK:   langs.MaxTopK,
		Selected:  map[string]bool{},
	}
	if _, ok := langs.Templates[d.Lang]; !ok && len(d.Languages) > 0 {
		d.Lang = d.Languages[0]
	}
	prev := q.Get("prev_lang")
	langChanged := prev != "" && prev != d.Lang

	d.Text = q.Get("text")
	if d.Text == "" || langChanged {
		d.Text = langs.Templates[d.Lang]
	}

	listing, err := s.svc.ListModels(r.Context(), d.Lang)
	if err != nil {
		d.Warning = err.Error()
	}
	d.Models = listing.Models
	if listing.Warning != "" {
		d.Warning = "Model list unavailable; try again later."
	}

	selected := q["model"]
	if q.Get("submitted") == "" || langChanged {
		selected = nil
		for i := 0; i < len(d.Models) && i < 2; i++ {
			selected = append(selected, d.Models[i].ID)
		}
	}
	for _, id := range selected {
		d.Selected[id] = true
	}
	if len(selected) != 2 {
		d.SelectionError = compare.SelectionMessage
	}

	topK := langs.DefaultTopK
	d.TopK = strconv.Itoa(topK)
	if v := q.Get("topk"); v != "" {
		d.TopK = v
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < langs.MinTopK || n > langs.MaxTopK {
			d.InputError = compare.ErrInvalidTopK.Error()
		}
		topK = n
	}

	outcome := pageForm
	switch {
	case langChanged:
		outcome = pageLanguageChange
	case q.Get("run") == "":
	case d.SelectionError != "":
		outcome = pageSelectionError
	case d.InputError != "":
		outcome = pageInputError
	default:
		outcome = pageCompared
		s.runComparison(r, &d, selected, topK)
	}
	observePage(outcome)

	var buf bytes.Buffer
	if err := s.page.ExecuteTemplate(&buf, "page.html", d); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to render page")
		logEnd(r, lvl, "page", http.StatusInternalServerError, start, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
	if lvl >= LevelDebug {
		logEnd(r, lvl, "page", http.StatusOK, start, nil)
	}
}

func (s *server) runComparison(r *http.Request, d *pageData, models []string, topK int) {
	ctx, cancel := workContext(r)
	defer cancel()
	cmp, err := s.svc.Compare(ctx, types.CompareRequest{Models: models, Text: d.Text, TopK: topK})
	if err != nil {
		d.InputError = err.Error()
		return
	}
	d.RunID = cmp.RunID
	d.Disk = cmp.Disk
	d.Columns = make([]pageColumn, len(cmp.Columns))
	for i, col := range cmp.Columns {
		pc := pageColumn{Model: col.Model}
		switch {
		case col.Err != nil:
			pc.Error = col.Err.Error()
		case col.Result != nil:
			pc.Chart = string(col.Result.HTML)
		}
		d.Columns[i] = pc
	}
}
