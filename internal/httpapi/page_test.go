package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"mlmcompare/internal/compare"
	"mlmcompare/pkg/types"
)

func getPage(t *testing.T, svc Service, q url.Values) string {
	t.Helper()
	w := httptest.NewRecorder()
	NewMux(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?"+q.Encode(), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	return w.Body.String()
}

var threeModels = []types.Model{{ID: "bert-base-uncased"}, {ID: "roberta-base"}, {ID: "distilbert-base-uncased"}}

func TestPage_DefaultsToFirstTwoModels(t *testing.T) {
	svc := &mockService{models: threeModels}
	body := getPage(t, svc, url.Values{})
	if !strings.Contains(body, `<option value="bert-base-uncased" selected>`) || !strings.Contains(body, `<option value="roberta-base" selected>`) {
		t.Fatalf("first two models not preselected: %s", body)
	}
	if strings.Contains(body, `<option value="distilbert-base-uncased" selected>`) {
		t.Fatalf("third model preselected")
	}
	if !strings.Contains(body, "Paris is the [MASK] of France.") {
		t.Fatalf("template text missing")
	}
	if strings.Contains(body, compare.SelectionMessage) {
		t.Fatalf("selection error shown for default selection")
	}
	if svc.calls != 0 {
		t.Fatalf("inference ran without Run")
	}
}

func TestPage_SelectionError(t *testing.T) {
	for _, models := range [][]string{nil, {"bert-base-uncased"}, {"bert-base-uncased", "roberta-base", "distilbert-base-uncased"}} {
		svc := &mockService{models: threeModels}
		body := getPage(t, svc, url.Values{"submitted": {"1"}, "lang": {"en"}, "prev_lang": {"en"}, "model": models, "run": {"1"}, "topk": {"5"}})
		if !strings.Contains(body, compare.SelectionMessage) {
			t.Fatalf("%v: selection message missing", models)
		}
		if svc.calls != 0 {
			t.Fatalf("%v: inference ran with a bad selection", models)
		}
	}
}

func TestPage_InvalidTopK(t *testing.T) {
	for _, k := range []string{"0", "11", "x"} {
		svc := &mockService{models: threeModels}
		body := getPage(t, svc, url.Values{"submitted": {"1"}, "lang": {"en"}, "model": {"bert-base-uncased", "roberta-base"}, "run": {"1"}, "topk": {k}})
		if !strings.Contains(body, "top_k must be between 1 and 10") {
			t.Fatalf("topk=%s: input error missing", k)
		}
		if svc.calls != 0 {
			t.Fatalf("topk=%s: inference ran", k)
		}
	}
}

func TestPage_RunShowsBothColumns(t *testing.T) {
	svc := &mockService{models: threeModels, disk: &types.DiskUsage{Path: "/", TotalBytes: 4 << 30, UsedBytes: 1 << 30, FreeBytes: 3 << 30}}
	body := getPage(t, svc, url.Values{
		"submitted": {"1"}, "lang": {"en"}, "prev_lang": {"en"},
		"model": {"bert-base-uncased", "roberta-base"},
		"text":  {"The [MASK] is blue."}, "topk": {"3"}, "run": {"1"},
	})
	if svc.calls != 1 || svc.compareReq == nil || svc.compareReq.TopK != 3 || svc.compareReq.Text != "The [MASK] is blue." {
		t.Fatalf("compare request=%+v calls=%d", svc.compareReq, svc.calls)
	}
	for _, id := range []string{"<h2>bert-base-uncased</h2>", "<h2>roberta-base</h2>", "srcdoc=", "chart bert-base-uncased", "Disk /: 1.0 GiB used of 4.0 GiB (25.0%)"} {
		if !strings.Contains(body, id) {
			t.Fatalf("missing %q in page", id)
		}
	}
	if strings.Index(body, "<h2>bert-base-uncased</h2>") > strings.Index(body, "<h2>roberta-base</h2>") {
		t.Fatalf("columns out of order")
	}
}

func TestPage_ColumnError(t *testing.T) {
	svc := &mockService{models: threeModels, columns: []compare.Column{
		{Model: "bert-base-uncased", Result: chartResult("bert-base-uncased")},
		{Model: "roberta-base", Err: errors.New("model not found: roberta-base")},
	}}
	body := getPage(t, svc, url.Values{"submitted": {"1"}, "lang": {"en"}, "model": {"bert-base-uncased", "roberta-base"}, "topk": {"5"}, "run": {"1"}})
	if !strings.Contains(body, "model not found: roberta-base") || !strings.Contains(body, "chart bert-base-uncased") {
		t.Fatalf("column rendering wrong: %s", body)
	}
}

func TestPage_LanguageChangeResetsTextAndSelection(t *testing.T) {
	svc := &mockService{models: threeModels}
	body := getPage(t, svc, url.Values{"submitted": {"1"}, "lang": {"ja"}, "prev_lang": {"en"}, "text": {"Paris is the [MASK] of France."}, "model": {"distilbert-base-uncased"}, "run": {"1"}})
	if !strings.Contains(body, "大学で[MASK]の研究をしています。") {
		t.Fatalf("ja template not applied")
	}
	if !strings.Contains(body, `<option value="bert-base-uncased" selected>`) {
		t.Fatalf("selection not reset to defaults")
	}
	if svc.calls != 0 {
		t.Fatalf("language switch must not run inference")
	}
}

func TestPage_RegistryFailureIsNonFatal(t *testing.T) {
	svc := &mockService{warning: "model registry unavailable: dial tcp"}
	body := getPage(t, svc, url.Values{})
	if !strings.Contains(body, "Model list unavailable") {
		t.Fatalf("notice missing")
	}
	if !strings.Contains(body, compare.SelectionMessage) {
		t.Fatalf("empty registry must show the selection message")
	}
	svc = &mockService{modelsErr: errors.New("unknown language")}
	body = getPage(t, svc, url.Values{"lang": {"xx"}})
	if !strings.Contains(body, `<option value="en" selected>`) {
		t.Fatalf("unknown language must fall back to the first configured one")
	}
}

func TestPage_CountsOutcomes(t *testing.T) {
	run := url.Values{"submitted": {"1"}, "lang": {"en"}, "prev_lang": {"en"}, "topk": {"5"}, "run": {"1"}}
	withModels := func(v url.Values, models ...string) url.Values {
		out := url.Values{}
		for k, vs := range v {
			out[k] = vs
		}
		out["model"] = models
		return out
	}
	cases := []struct {
		name    string
		q       url.Values
		outcome string
	}{
		{"form", url.Values{}, pageForm},
		{"language change", url.Values{"submitted": {"1"}, "lang": {"ja"}, "prev_lang": {"en"}, "run": {"1"}}, pageLanguageChange},
		{"selection", withModels(run, "bert-base-uncased"), pageSelectionError},
		{"compared", withModels(run, "bert-base-uncased", "roberta-base"), pageCompared},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			before := testutil.ToFloat64(pageRendersTotal.WithLabelValues(c.outcome))
			getPage(t, &mockService{models: threeModels}, c.q)
			if after := testutil.ToFloat64(pageRendersTotal.WithLabelValues(c.outcome)); after != before+1 {
				t.Fatalf("outcome %s: before=%v after=%v", c.outcome, before, after)
			}
		})
	}
}

func TestPage_UsesChartsFromTheComparison(t *testing.T) {
	// a second chart lookup would fail; the page must not make one
	svc := &mockService{models: threeModels}
	svc.columns = []compare.Column{
		{Model: "bert-base-uncased", Result: chartResult("bert-base-uncased")},
		{Model: "roberta-base", Result: chartResult("roberta-base")},
	}
	body := getPage(t, svc, url.Values{
		"submitted": {"1"}, "lang": {"en"}, "prev_lang": {"en"},
		"model": {"bert-base-uncased", "roberta-base"}, "topk": {"5"}, "run": {"1"},
	})
	if svc.chartCalls != 0 {
		t.Fatalf("page looked charts up again: %d calls", svc.chartCalls)
	}
	if strings.Count(body, "<iframe") != 2 || !strings.Contains(body, "chart roberta-base") {
		t.Fatalf("charts missing from page: %s", body)
	}
}
