package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"textmate/internal/core/attrib"
	pnet "textmate/internal/platform/net"
	phttp "textmate/internal/platform/net/http"
	"textmate/internal/services/texts/domain"
)

// fakeService echoes canned results and records attribution
type fakeService struct {
	lastOp  domain.Operation
	lastAtt attrib.Attribution
}

func (f *fakeService) Transform(
	_ context.Context,
	op domain.Operation,
	text string,
	att attrib.Attribution,
) (string, error) {
	f.lastOp = op
	f.lastAtt = att
	return strings.ToUpper(text), nil
}

func (f *fakeService) Analyze(_ context.Context, text string, att attrib.Attribution) (domain.Analysis, error) {
	f.lastAtt = att
	return domain.Analysis{WordCount: len(strings.Fields(text))}, nil
}

func newTestServer(f *fakeService) *httptest.Server {
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, f)
	return httptest.NewServer(r.Mux())
}

func post(t *testing.T, srv *httptest.Server, path, body string, hdr map[string]string) (int, pnet.Wire) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var env pnet.Wire
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return resp.StatusCode, env
}

func TestTransformRoutes_SuccessMessages(t *testing.T) {
	f := &fakeService{}
	srv := newTestServer(f)
	defer srv.Close()

	cases := []struct {
		path string
		op   domain.Operation
		msg  string
	}{
		{"/uppercase", domain.OpUppercase, "Converted to uppercase."},
		{"/lowercase", domain.OpLowercase, "Converted to lowercase."},
		{"/titlecase", domain.OpTitlecase, "Converted to title case."},
		{"/reverse", domain.OpReverse, "Text reversed successfully."},
	}
	for _, tc := range cases {
		status, env := post(t, srv, tc.path, `{"text":"hello"}`, nil)
		if status != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", tc.path, status)
		}
		if !env.Success {
			t.Fatalf("%s: success = false", tc.path)
		}
		if env.Message != tc.msg {
			t.Fatalf("%s: message = %q, want %q", tc.path, env.Message, tc.msg)
		}
		if env.TransformedText == nil || *env.TransformedText != "HELLO" {
			t.Fatalf("%s: transformedText missing or wrong: %+v", tc.path, env)
		}
		if f.lastOp != tc.op {
			t.Fatalf("%s: service saw op %q, want %q", tc.path, f.lastOp, tc.op)
		}
	}
}

func TestTransform_BlankText(t *testing.T) {
	srv := newTestServer(&fakeService{})
	defer srv.Close()

	for _, body := range []string{`{"text":""}`, `{"text":"   "}`, `{}`} {
		status, env := post(t, srv, "/uppercase", body, nil)
		if status != http.StatusBadRequest {
			t.Fatalf("body %s: status = %d, want 400", body, status)
		}
		if env.Success {
			t.Fatalf("body %s: success = true", body)
		}
		if env.Message != "Please enter some text to perform operations." {
			t.Fatalf("body %s: message = %q", body, env.Message)
		}
	}
}

func TestAnalyze_BlankText(t *testing.T) {
	srv := newTestServer(&fakeService{})
	defer srv.Close()

	status, env := post(t, srv, "/analyze", `{"text":" "}`, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if env.Message != "Please enter some text to analyze." {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestAnalyze_Success(t *testing.T) {
	f := &fakeService{}
	srv := newTestServer(f)
	defer srv.Close()

	status, env := post(t, srv, "/analyze", `{"text":"one two three"}`, nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if env.Message != "Text analyzed successfully." {
		t.Fatalf("message = %q", env.Message)
	}
	m, ok := env.Analysis.(map[string]any)
	if !ok {
		t.Fatalf("analysis payload missing: %+v", env)
	}
	if m["wordCount"] != float64(3) {
		t.Fatalf("wordCount = %v, want 3", m["wordCount"])
	}
	if env.TransformedText != nil {
		t.Fatalf("analyze replies carry no transformedText")
	}
}

func TestSessionHeaderAttribution(t *testing.T) {
	f := &fakeService{}
	srv := newTestServer(f)
	defer srv.Close()

	post(t, srv, "/reverse", `{"text":"abc"}`, map[string]string{SessionHeader: "sess-9"})
	if f.lastAtt.Kind != attrib.KindSession || f.lastAtt.SessionID != "sess-9" {
		t.Fatalf("attribution = %+v, want session sess-9", f.lastAtt)
	}
}
