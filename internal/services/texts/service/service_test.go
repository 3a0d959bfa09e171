package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"textmate/internal/core/attrib"
	"textmate/internal/modkit/repokit"
	perr "textmate/internal/platform/errors"
	"textmate/internal/services/texts/domain"
	"textmate/internal/services/texts/repo"
)

// fakeDB satisfies repokit.TxRunner; the service never queries through it directly
type fakeDB struct{}

func (fakeDB) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (fakeDB) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (fakeDB) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (fakeDB) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(fakeDB{}) }

// recorder captures operation log rows and can fail on demand
type recorder struct {
	rows []repo.RowLog
	err  error
}

func (r *recorder) Insert(_ context.Context, row repo.RowLog) error {
	r.rows = append(r.rows, row)
	return r.err
}

type recorderBinder struct{ rec *recorder }

func (b recorderBinder) Bind(repokit.Queryer) repo.Repo { return b.rec }

func newTestSvc(rec *recorder) *Svc {
	return New(fakeDB{}, recorderBinder{rec: rec})
}

func TestTransform_Operations(t *testing.T) {
	cases := []struct {
		op   domain.Operation
		in   string
		want string
	}{
		{domain.OpUppercase, "hello world", "HELLO WORLD"},
		{domain.OpLowercase, "Hello World", "hello world"},
		{domain.OpTitlecase, "hello world", "Hello World"},
		{domain.OpReverse, "hello", "olleh"},
	}
	for _, tc := range cases {
		rec := &recorder{}
		s := newTestSvc(rec)

		got, err := s.Transform(context.Background(), tc.op, tc.in, attrib.Attribution{})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.op, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.op, got, tc.want)
		}
	}
}

func TestTransform_UnknownOperation(t *testing.T) {
	rec := &recorder{}
	s := newTestSvc(rec)

	_, err := s.Transform(context.Background(), domain.Operation("rot13"), "abc", attrib.Attribution{})
	if err == nil {
		t.Fatal("expected error for unknown operation")
	}
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("code = %v, want invalid argument", perr.CodeOf(err))
	}
	if len(rec.rows) != 0 {
		t.Fatalf("unknown operation must not be logged, got %d rows", len(rec.rows))
	}
}

func TestTransform_LogsUserAttribution(t *testing.T) {
	rec := &recorder{}
	s := newTestSvc(rec)

	att := attrib.Resolve("11111111-2222-3333-4444-555555555555", "ignored-session")
	if _, err := s.Transform(context.Background(), domain.OpUppercase, "abc", att); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rec.rows))
	}
	row := rec.rows[0]
	if row.UserID == nil || *row.UserID != "11111111-2222-3333-4444-555555555555" {
		t.Fatalf("user id not recorded: %+v", row)
	}
	if row.SessionID != nil {
		t.Fatalf("session id must be empty for user attribution, got %q", *row.SessionID)
	}
	if row.OperationType != string(domain.OpUppercase) {
		t.Fatalf("operation type = %q", row.OperationType)
	}
	if row.OriginalText != "abc" {
		t.Fatalf("original text = %q", row.OriginalText)
	}
	if row.TransformedText == nil || *row.TransformedText != "ABC" {
		t.Fatalf("transformed text not recorded: %+v", row)
	}
	if row.AnalysisResult != nil {
		t.Fatalf("transform rows carry no analysis payload")
	}
}

func TestTransform_LogsSessionAttribution(t *testing.T) {
	rec := &recorder{}
	s := newTestSvc(rec)

	att := attrib.Resolve("", "sess-42")
	if _, err := s.Transform(context.Background(), domain.OpReverse, "ab", att); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := rec.rows[0]
	if row.SessionID == nil || *row.SessionID != "sess-42" {
		t.Fatalf("session id not recorded: %+v", row)
	}
	if row.UserID != nil {
		t.Fatalf("user id must be empty for session attribution")
	}
}

func TestTransform_HistoryFailureDoesNotSurface(t *testing.T) {
	rec := &recorder{err: errors.New("db down")}
	s := newTestSvc(rec)

	got, err := s.Transform(context.Background(), domain.OpLowercase, "ABC", attrib.Attribution{})
	if err != nil {
		t.Fatalf("history failure must not surface: %v", err)
	}
	if got != "abc" {
		t.Fatalf("got %q, want %q", got, "abc")
	}
}

func TestAnalyze_RecordsPayload(t *testing.T) {
	rec := &recorder{}
	s := newTestSvc(rec)

	res, err := s.Analyze(context.Background(), "Hello world. Bye.", attrib.Resolve("", "s1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.WordCount != 3 {
		t.Fatalf("word count = %d, want 3", res.WordCount)
	}

	if len(rec.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rec.rows))
	}
	row := rec.rows[0]
	if row.OperationType != string(domain.OpAnalyze) {
		t.Fatalf("operation type = %q", row.OperationType)
	}
	if row.TransformedText != nil {
		t.Fatalf("analyze rows carry no transformed text")
	}

	var back domain.Analysis
	if err := json.Unmarshal(row.AnalysisResult, &back); err != nil {
		t.Fatalf("analysis payload is not json: %v", err)
	}
	if back.WordCount != res.WordCount {
		t.Fatalf("payload word count = %d, want %d", back.WordCount, res.WordCount)
	}
}
