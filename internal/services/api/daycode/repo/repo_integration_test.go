//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"qclab/internal/platform/store"

	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

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

func openStore(t *testing.T, ctx context.Context, dsn string) *store.Store {
	t.Helper()
	st, err := store.Open(ctx, store.Config{
		AppName: "qclab-daycode-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 10},
	})
	if err != nil {
		t.Fatalf("store open: %v", err)
	}
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	const schema = `
create table if not exists day_codes (
  id bigint generated always as identity primary key,
  active boolean not null default false,
  counter bigint not null default 0,
  activated_at timestamptz,
  activated_by text
);
create unique index if not exists day_codes_one_active on day_codes (active) where active;
`
	if _, err := st.PG.Exec(ctx, schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return st
}

// Concurrent NextValue calls must yield exactly 1..N with no duplicates
func TestNextValueConcurrentUniqueness_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st := openStore(t, ctx, dsn)
	r := NewPG().Bind(st.PG)

	ok, err := r.Activate(ctx, "alice", time.Now().UTC())
	if err != nil || !ok {
		t.Fatalf("activate: ok=%v err=%v", ok, err)
	}

	const workers = 8
	const perWorker = 25

	var mu sync.Mutex
	var values []int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				v, err := r.NextValue(ctx)
				if err != nil {
					t.Errorf("next value: %v", err)
					return
				}
				mu.Lock()
				values = append(values, v)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if t.Failed() {
		return
	}

	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	if len(values) != workers*perWorker {
		t.Fatalf("got %d values, want %d", len(values), workers*perWorker)
	}
	for i, v := range values {
		if v != int64(i+1) {
			t.Fatalf("values[%d] = %d, want %d (gap or duplicate)", i, v, i+1)
		}
	}
}

// Two concurrent activations commit exactly one active row
func TestActivateRace_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st := openStore(t, ctx, dsn)
	r := NewPG().Bind(st.PG)

	const attempts = 8
	var wins int32
	var mu sync.Mutex
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(n int) {
			defer wg.Done()
			ok, err := r.Activate(ctx, fmt.Sprintf("op-%d", n), time.Now().UTC())
			if err != nil {
				t.Errorf("activate: %v", err)
				return
			}
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	if t.Failed() {
		return
	}
	if wins != 1 {
		t.Fatalf("wins = %d, want exactly 1", wins)
	}

	row, found, err := r.Active(ctx)
	if err != nil || !found {
		t.Fatalf("active: found=%v err=%v", found, err)
	}
	if row.Counter != 0 {
		t.Fatalf("counter = %d, want 0", row.Counter)
	}
}
