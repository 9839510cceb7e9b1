package memrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmcvetta/isitfoo/internal/model"
)

// MemoryRepository is an in-memory implementation of CheckRepository optionally backed by a JSON file
type MemoryRepository struct {
	mu       sync.RWMutex
	data     map[string]*model.CheckRecord
	filePath string
}

// makeKey creates a composite key from word and check key
// This matches the DynamoDB schema where PK=word and SK=check key
func makeKey(word, checkKey string) string {
	return word + "#" + checkKey
}

// NewMemoryRepository creates a new in-memory repository without persistence.
// Data is stored only in memory and will be lost when the process terminates.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		data:     make(map[string]*model.CheckRecord),
		filePath: "",
	}
}

// NewMemoryRepositoryWithPersistence creates a new in-memory repository backed by a JSON file.
// The repository will load existing data from the file on initialization and persist
// all changes (Store, Delete) to the file automatically.
func NewMemoryRepositoryWithPersistence(filePath string) (*MemoryRepository, error) {
	repo := &MemoryRepository{
		data:     make(map[string]*model.CheckRecord),
		filePath: filePath,
	}

	// Create parent directory if it doesn't exist
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	// Try to load existing data from file
	if err := repo.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return repo, nil
}

// NewMemoryRepositoryFromJsonString creates a new in-memory repository initialized with data from a JSON string.
// The repository will not be backed by a file and will not persist changes.
// The JSON string should contain an array of CheckRecord objects.
func NewMemoryRepositoryFromJsonString(jsonString string) (*MemoryRepository, error) {
	repo := &MemoryRepository{
		data:     make(map[string]*model.CheckRecord),
		filePath: "",
	}

	// Parse JSON from the string
	if err := repo.loadFromReader(strings.NewReader(jsonString)); err != nil {
		return nil, err
	}

	return repo, nil
}

// loadFromReader reads JSON data from a reader and populates the in-memory data
func (r *MemoryRepository) loadFromReader(reader io.Reader) error {
	var dataSlice []*model.CheckRecord
	if err := json.NewDecoder(reader).Decode(&dataSlice); err != nil {
		return err
	}

	r.data = make(map[string]*model.CheckRecord)
	for _, record := range dataSlice {
		key := makeKey(record.Word, record.CheckKey())

		// Print a warning if the key already exists.
		// This will not be possible in Dynamo, where a PUT with the same PK and SK will overwrite the existing item.
		if _, exists := r.data[key]; exists {
			fmt.Fprintf(os.Stderr, "Warning: duplicate entry found for Word=%s, CheckTime=%s (keeping last occurrence)\n", record.Word, record.CheckKey())
		}

		r.data[key] = record
	}

	return nil
}

// load reads the JSON file and populates the in-memory data
func (r *MemoryRepository) load() error {
	file, err := os.Open(r.filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	// Check if file is empty
	stat, err := file.Stat()
	if err != nil {
		return err
	}
	if stat.Size() == 0 {
		return nil
	}

	return r.loadFromReader(file)
}

// save writes the in-memory data to the JSON file
// If filePath is empty, this is a no-op
func (r *MemoryRepository) save() error {
	// Skip persistence if no file path is configured
	if r.filePath == "" {
		return nil
	}

	dataSlice := make([]*model.CheckRecord, 0, len(r.data))
	for _, record := range r.data {
		dataSlice = append(dataSlice, record)
	}

	file, err := os.Create(r.filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(dataSlice)
}

// Store saves a check record
func (r *MemoryRepository) Store(ctx context.Context, record *model.CheckRecord) error {
	if record == nil {
		return errors.New("check record cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := makeKey(record.Word, record.CheckKey())
	if _, exists := r.data[key]; exists {
		return model.ErrAlreadyExists
	}

	r.data[key] = record
	return r.save()
}

// Get retrieves a check record by word and check key
func (r *MemoryRepository) Get(ctx context.Context, word, checkKey string) (*model.CheckRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := makeKey(word, checkKey)
	record, exists := r.data[key]
	if !exists {
		return nil, model.ErrNotFound
	}

	return record, nil
}

// List retrieves all check records
func (r *MemoryRepository) List(ctx context.Context) ([]*model.CheckRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.CheckRecord, 0, len(r.data))
	for _, record := range r.data {
		result = append(result, record)
	}

	return result, nil
}

// Delete removes a check record by word and check key
func (r *MemoryRepository) Delete(ctx context.Context, word, checkKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := makeKey(word, checkKey)
	if _, exists := r.data[key]; !exists {
		return model.ErrNotFound
	}

	delete(r.data, key)
	return r.save()
}

// UnconditionalDelete removes a check record without requiring it to exist
func (r *MemoryRepository) UnconditionalDelete(ctx context.Context, word, checkKey string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, makeKey(word, checkKey))
	return r.save()
}
