package snapstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *DirStore {
	t.Helper()
	store, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDirStore error: %v", err)
	}
	return store
}

func TestDirStore_PutGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	doc := []byte(`{"type":"div"}`)
	if err := store.Put(ctx, "home", doc); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	got, err := store.Get(ctx, "home")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("Get = %s, want %s", got, doc)
	}
}

func TestDirStore_PutOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "home", []byte("v1")); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := store.Put(ctx, "home", []byte("v2")); err != nil {
		t.Fatalf("second Put error: %v", err)
	}

	got, err := store.Get(ctx, "home")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if string(got) != "v2" {
		t.Errorf("Get = %s after overwrite, want v2", got)
	}
}

func TestDirStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestDirStore_List(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := store.Put(ctx, name, []byte("{}")); err != nil {
			t.Fatalf("Put(%s) error: %v", name, err)
		}
	}

	// Files without the snapshot extension are not snapshots.
	if err := os.WriteFile(filepath.Join(store.Dir(), "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	names, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("List = %v, want %v", names, want)
	}
}

func TestDirStore_Delete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "gone", []byte("{}")); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if err := store.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := store.Get(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestDirStore_RejectsInvalidNames(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"", ".", "..", "../evil", "a/b", `a\b`, ".hidden"} {
		if err := store.Put(ctx, name, []byte("{}")); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Put(%q) = %v, want ErrInvalidName", name, err)
		}
		if _, err := store.Get(ctx, name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Get(%q) = %v, want ErrInvalidName", name, err)
		}
		if err := store.Delete(ctx, name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Delete(%q) = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestDirStore_PutLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)

	if err := store.Put(context.Background(), "clean", []byte("{}")); err != nil {
		t.Fatalf("Put error: %v", err)
	}

	entries, err := os.ReadDir(store.Dir())
	if err != nil {
		t.Fatalf("ReadDir error: %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Errorf("temp file %s left behind", entry.Name())
		}
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"home", "settings-page", "Header_v2", "a.b"}
	for _, name := range valid {
		if !ValidName(name) {
			t.Errorf("ValidName(%q) = false, want true", name)
		}
	}

	invalid := []string{"", ".", "..", ".hidden", "a/b", `a\b`, "../up"}
	for _, name := range invalid {
		if ValidName(name) {
			t.Errorf("ValidName(%q) = true, want false", name)
		}
	}
}
