//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"textmate/internal/platform/store"
	authrepo "textmate/internal/services/auth/repo"
	textsrepo "textmate/internal/services/texts/repo"
)

const schema = `
create table if not exists users (
	id uuid primary key,
	username text not null unique,
	password_hash text not null,
	created_at timestamptz not null default now()
);

create table if not exists operation_logs (
	id bigserial primary key,
	user_id uuid references users (id),
	session_id text,
	operation_type text not null,
	original_text text not null,
	transformed_text text,
	analysis_result jsonb,
	created_at timestamptz not null default now()
);

create index if not exists operation_logs_user_created_idx
	on operation_logs (user_id, created_at desc);
`

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

func TestFindByUser_OrderingAndScope_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "textmate-history-repo-test",
		PG:      store.PGConfig{Enabled: true, URL: dsn},
	})
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if _, err := st.PG.Exec(ctx, schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	users := authrepo.NewPG().Bind(st.PG)
	writes := textsrepo.NewPG().Bind(st.PG)
	reads := NewPG().Bind(st.PG)

	alice, err := users.Create(ctx, "alice", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	up := "ABC"
	rows := []textsrepo.RowLog{
		{UserID: &alice.ID, OperationType: "uppercase", OriginalText: "abc", TransformedText: &up},
		{UserID: &alice.ID, OperationType: "analyze", OriginalText: "abc", AnalysisResult: []byte(`{"wordCount":1}`)},
		{SessionID: strPtr("sess-1"), OperationType: "reverse", OriginalText: "ab", TransformedText: strPtr("ba")},
	}
	for _, r := range rows {
		if err := writes.Insert(ctx, r); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := reads.FindByUser(ctx, alice.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	// session-scoped row excluded, newest first
	if len(got) != 2 {
		t.Fatalf("rows = %d, want 2", len(got))
	}
	if got[0].OperationType != "analyze" || got[1].OperationType != "uppercase" {
		t.Fatalf("order = %s, %s; want analyze, uppercase", got[0].OperationType, got[1].OperationType)
	}
	if got[1].TransformedText == nil || *got[1].TransformedText != "ABC" {
		t.Fatalf("transformed text = %+v", got[1].TransformedText)
	}
	if len(got[0].AnalysisResult) == 0 {
		t.Fatalf("analysis payload missing")
	}

	empty, err := reads.FindByUser(ctx, "00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatalf("find unknown user: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("rows for unknown user = %d, want 0", len(empty))
	}
}

func strPtr(s string) *string { return &s }
