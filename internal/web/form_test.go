package web_test

import (
	"html"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	mem "edd-calculator/internal/adapters/storage/memory"
	"edd-calculator/internal/domain/calculations"
	"edd-calculator/internal/web"

	"github.com/go-chi/chi/v5"
)

func newFormServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := calculations.NewService(mem.NewCalculationsRepo(), calculations.Options{})
	r := chi.NewRouter()
	web.RegisterRoutes(r, web.NewHandler(svc, nil))
	return httptest.NewServer(r)
}

func postForm(t *testing.T, baseURL string, form url.Values) (int, string) {
	t.Helper()
	res, err := http.PostForm(baseURL+"/", form)
	if err != nil {
		t.Fatalf("post form: %v", err)
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, html.UnescapeString(string(b))
}

func baseForm() url.Values {
	return url.Values{
		"lmp":      {"2024-01-01"},
		"ref":      {"2024-02-01"},
		"edd":      {"2024-10-07"},
		"ga_weeks": {"4"},
		"ga_days":  {"3"},
		"us_date":  {"2024-03-01"},
		"us_weeks": {"8"},
		"us_days":  {"2"},
	}
}

func TestForm_GetRendersAllSections(t *testing.T) {
	ts := newFormServer(t)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(res.Body)
	body := string(b)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	for _, want := range []string{
		"Calculate EDD from LMP",
		"Calculate Date for Given GA",
		"Calculate EDD from Ultrasound",
		"Reconcile LMP and US EDDs",
		`name="lmp"`,
		`name="us_days"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in page", want)
		}
	}
	if strings.Contains(body, `class="info"`) {
		t.Fatalf("no result should be shown before submit")
	}
}

func TestForm_Sections(t *testing.T) {
	ts := newFormServer(t)
	defer ts.Close()

	cases := []struct {
		section string
		want    []string
	}{
		{"lmp", []string{"LMP: 01/01/2024 | EDD: 10/07/2024 | GA on 02/01/2024: 4w3d", "Copy LMP Result"}},
		{"ga", []string{"Date when patient will be 4w3d: 02/01/2024", "Copy GA Date"}},
		{"us", []string{"US date: 03/01/2024 | US GA: 8w2d | EDD from ultrasound: 10/09/2024", "Copy US EDD"}},
		{"recon", []string{"EDD from LMP: 10/07/2024", "ACOG threshold: 6 days", "Recommendation: Keep LMP EDD: 10/07/2024", "Copy Reconciliation"}},
	}

	for _, c := range cases {
		form := baseForm()
		form.Set("section", c.section)

		st, body := postForm(t, ts.URL, form)
		if st != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", c.section, st)
		}
		for _, want := range c.want {
			if !strings.Contains(body, want) {
				t.Fatalf("%s: expected %q in page", c.section, want)
			}
		}
		// el form conserva lo que se envió
		if !strings.Contains(body, `value="2024-03-01"`) {
			t.Fatalf("%s: submitted values should be kept", c.section)
		}
	}
}

func TestForm_InvalidInputShownInline(t *testing.T) {
	ts := newFormServer(t)
	defer ts.Close()

	form := baseForm()
	form.Set("lmp", "1312024")
	form.Set("section", "lmp")

	st, body := postForm(t, ts.URL, form)
	if st != http.StatusOK {
		t.Fatalf("validation errors are shown inline, expected 200, got %d", st)
	}
	if !strings.Contains(body, "Please enter date as MMDDYYYY") {
		t.Fatalf("expected validation message in page")
	}

	form = baseForm()
	form.Set("us_days", "9")
	form.Set("section", "us")
	_, body = postForm(t, ts.URL, form)
	if !strings.Contains(body, "days must be between 0 and 6") {
		t.Fatalf("expected days range message in page")
	}

	form = baseForm()
	form.Set("ga_weeks", "four")
	form.Set("section", "ga")
	_, body = postForm(t, ts.URL, form)
	if !strings.Contains(body, "weeks must be a whole number") {
		t.Fatalf("expected weeks message in page")
	}
}

func TestForm_AcceptsTextDates(t *testing.T) {
	ts := newFormServer(t)
	defer ts.Close()

	form := baseForm()
	form.Set("lmp", "01012024")
	form.Set("ref", "02012024")
	form.Set("section", "lmp")

	_, body := postForm(t, ts.URL, form)
	if !strings.Contains(body, "GA on 02/01/2024: 4w3d") {
		t.Fatalf("expected MMDDYYYY input to be accepted")
	}
}
