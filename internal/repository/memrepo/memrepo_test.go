package memrepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmcvetta/isitfoo/internal/model"
	"github.com/jmcvetta/isitfoo/internal/wordclass"
)

func testRecord(word string, class wordclass.Class, offset time.Duration) *model.CheckRecord {
	return &model.CheckRecord{
		Word:      word,
		Class:     class,
		CheckTime: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Add(offset),
		Rev:       1,
	}
}

// Test basic store and get
func TestMemoryRepository_StoreAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	record := testRecord("foo", wordclass.Foo, 0)
	if err := repo.Store(ctx, record); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	got, err := repo.Get(ctx, "foo", record.CheckKey())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Word != "foo" || got.Class != wordclass.Foo {
		t.Errorf("Got record %+v, expected the stored foo record", got)
	}
}

// Test storing a nil record fails
func TestMemoryRepository_StoreNil(t *testing.T) {
	repo := NewMemoryRepository()
	if err := repo.Store(context.Background(), nil); err == nil {
		t.Error("Expected error storing nil record, got nil")
	}
}

// Test storing the same composite key twice returns ErrAlreadyExists
func TestMemoryRepository_StoreDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	record := testRecord("foo", wordclass.Foo, 0)
	if err := repo.Store(ctx, record); err != nil {
		t.Fatalf("First store failed: %v", err)
	}

	err := repo.Store(ctx, record)
	if !errors.Is(err, model.ErrAlreadyExists) {
		t.Errorf("Expected ErrAlreadyExists, got: %v", err)
	}
}

// Test getting a missing record returns ErrNotFound
func TestMemoryRepository_GetMissing(t *testing.T) {
	repo := NewMemoryRepository()
	_, err := repo.Get(context.Background(), "foo", "2026-08-01T12:00:00Z")
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got: %v", err)
	}
}

// Test listing all records
func TestMemoryRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	records := []*model.CheckRecord{
		testRecord("foo", wordclass.Foo, 0),
		testRecord("bar", wordclass.Bar, time.Hour),
		testRecord("baz", wordclass.Other, 2*time.Hour),
	}
	for _, record := range records {
		if err := repo.Store(ctx, record); err != nil {
			t.Fatalf("Store failed: %v", err)
		}
	}

	listed, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != len(records) {
		t.Errorf("Expected %d records, got %d", len(records), len(listed))
	}
}

// Test delete requires the record to exist
func TestMemoryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	record := testRecord("foo", wordclass.Foo, 0)
	if err := repo.Store(ctx, record); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	if err := repo.Delete(ctx, "foo", record.CheckKey()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := repo.Get(ctx, "foo", record.CheckKey()); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got: %v", err)
	}

	if err := repo.Delete(ctx, "foo", record.CheckKey()); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting twice, got: %v", err)
	}
}

// Test unconditional delete succeeds whether or not the record exists
func TestMemoryRepository_UnconditionalDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if err := repo.UnconditionalDelete(ctx, "foo", "2026-08-01T12:00:00Z"); err != nil {
		t.Errorf("UnconditionalDelete of missing record failed: %v", err)
	}

	record := testRecord("foo", wordclass.Foo, 0)
	if err := repo.Store(ctx, record); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := repo.UnconditionalDelete(ctx, "foo", record.CheckKey()); err != nil {
		t.Errorf("UnconditionalDelete failed: %v", err)
	}

	listed, _ := repo.List(ctx)
	if len(listed) != 0 {
		t.Errorf("Expected empty repository, got %d records", len(listed))
	}
}

// Test that a file-backed repository persists across reopens
func TestMemoryRepository_Persistence(t *testing.T) {
	ctx := context.Background()
	filePath := filepath.Join(t.TempDir(), "checks.json")

	repo, err := NewMemoryRepositoryWithPersistence(filePath)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	record := testRecord("foo", wordclass.Foo, 0)
	if err := repo.Store(ctx, record); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	// Reopen from the same file
	reopened, err := NewMemoryRepositoryWithPersistence(filePath)
	if err != nil {
		t.Fatalf("Failed to reopen repository: %v", err)
	}

	got, err := reopened.Get(ctx, "foo", record.CheckKey())
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got.Word != "foo" || got.Class != wordclass.Foo || got.Rev != 1 {
		t.Errorf("Reopened record %+v does not match stored record", got)
	}
}

// Test that persistence creates missing parent directories
func TestMemoryRepository_PersistenceCreatesDir(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "nested", "dir", "checks.json")

	repo, err := NewMemoryRepositoryWithPersistence(filePath)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	record := testRecord("foo", wordclass.Foo, 0)
	if err := repo.Store(context.Background(), record); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	if _, err := os.Stat(filePath); err != nil {
		t.Errorf("Expected persistence file to exist: %v", err)
	}
}

// Test loading a repository from a JSON string
func TestMemoryRepository_FromJsonString(t *testing.T) {
	jsonString := `[
		{
			"Word": "foo",
			"Class": "f",
			"Message": "",
			"CheckTime": "2026-08-01T12:00:00Z",
			"Rev": 1
		},
		{
			"Word": "bar",
			"Class": "b",
			"Message": "bar is forbidden",
			"CheckTime": "2026-08-01T13:00:00Z",
			"Rev": 1
		}
	]`

	repo, err := NewMemoryRepositoryFromJsonString(jsonString)
	if err != nil {
		t.Fatalf("Failed to create repository from JSON: %v", err)
	}

	listed, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(listed))
	}

	got, err := repo.Get(context.Background(), "bar", "2026-08-01T13:00:00Z")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Message != "bar is forbidden" {
		t.Errorf("Expected stored message, got %q", got.Message)
	}
}

// Test that malformed JSON is rejected
func TestMemoryRepository_FromJsonStringInvalid(t *testing.T) {
	if _, err := NewMemoryRepositoryFromJsonString("not json"); err == nil {
		t.Error("Expected error for malformed JSON, got nil")
	}
}
