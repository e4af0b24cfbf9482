package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// testKV runs the behaviour every KV implementation must share.
func testKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "pescados_produtos"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() on a missing key: got error %v, want ErrNotFound", err)
	}

	if err := kv.Put(ctx, "pescados_produtos", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}
	if err := kv.Put(ctx, "pescados_transacoes", []byte(`[]`)); err != nil {
		t.Fatalf("Put() unexpected error: %v", err)
	}
	if err := kv.Put(ctx, "pescados_produtos", []byte(`[{"id":"2"}]`)); err != nil {
		t.Fatalf("Put() overwrite unexpected error: %v", err)
	}

	got, err := kv.Get(ctx, "pescados_produtos")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if string(got) != `[{"id":"2"}]` {
		t.Errorf("Get() = %s, want the last value written", got)
	}
	got, err = kv.Get(ctx, "pescados_transacoes")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Get() = %s, want %s", got, `[]`)
	}

	if err := kv.Put(ctx, "../escape", []byte(`{}`)); err == nil {
		t.Error("Put() with an invalid key: expected an error")
	}
	if _, err := kv.Get(ctx, "../escape"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Get() with an invalid key: got error %v, want an invalid key error", err)
	}
}

func TestMemory(t *testing.T) {
	testKV(t, NewMemory())
}

func TestMemory_Isolation(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	value := []byte(`[1]`)
	if err := m.Put(ctx, "k", value); err != nil {
		t.Fatal(err)
	}
	value[1] = '2'
	got, _ := m.Get(ctx, "k")
	if string(got) != `[1]` {
		t.Errorf("stored value changed with the caller's slice: %s", got)
	}
}

func TestDir(t *testing.T) {
	testKV(t, OpenDir(filepath.Join(t.TempDir(), "store"), nil))
}

func TestDir_Files(t *testing.T) {
	path := t.TempDir()
	d := OpenDir(path, nil)
	if err := d.Put(context.Background(), "pescados_produtos", []byte("[]\n")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "pescados_produtos.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory content = %v, want only pescados_produtos.json", names)
	}
}

// TestPostgres runs against a real server when PESCADOS_TEST_DATABASE_URL is set.
func TestPostgres(t *testing.T) {
	url := os.Getenv("PESCADOS_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("PESCADOS_TEST_DATABASE_URL is not set")
	}
	ctx := context.Background()
	p, err := OpenPostgres(ctx, url, nil)
	if err != nil {
		t.Fatalf("OpenPostgres() unexpected error: %v", err)
	}
	defer p.Close()
	if _, err := p.db.ExecContext(ctx, `DELETE FROM pescados_kv WHERE key IN ('pescados_produtos', 'pescados_transacoes')`); err != nil {
		t.Fatal(err)
	}
	testKV(t, p)
}
