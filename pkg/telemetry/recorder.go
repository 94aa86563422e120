package telemetry

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/parquet-go/parquet-go"
)

// QueryRecord is one retrieval's diagnostics row in Parquet storage.
type QueryRecord struct {
	ID            string    `parquet:"id"`
	Timestamp     time.Time `parquet:"timestamp"`
	Query         string    `parquet:"query"`
	HouseType     string    `parquet:"house_type"`
	Category      string    `parquet:"category"`
	Intent        string    `parquet:"intent"`
	MatchedNodes  int       `parquet:"matched_nodes"`
	SubgraphNodes int       `parquet:"subgraph_nodes"`
	SubgraphEdges int       `parquet:"subgraph_edges"`
	Paths         int       `parquet:"paths"`
	Tips          int       `parquet:"tips"`
	TopScore      float64   `parquet:"top_score"`
	DurationMs    int64     `parquet:"duration_ms"`
}

// Recorder buffers query records and writes them to Parquet files in
// batches. Safe for concurrent use.
type Recorder struct {
	outputDir string
	logger    *slog.Logger

	mu        sync.Mutex
	buffer    []QueryRecord
	batchSize int
}

// NewRecorder creates a Recorder writing under outputDir.
func NewRecorder(outputDir string, logger *slog.Logger) (*Recorder, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create telemetry directory: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Recorder{
		outputDir: outputDir,
		logger:    logger,
		batchSize: 100,
		buffer:    make([]QueryRecord, 0, 100),
	}, nil
}

// Record buffers one query record, flushing when the batch fills.
func (r *Recorder) Record(record QueryRecord) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.buffer = append(r.buffer, record)
	if len(r.buffer) >= r.batchSize {
		r.flush()
	}
}

// Flush writes any buffered records to a new Parquet file.
func (r *Recorder) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flush()
}

// Close flushes remaining records.
func (r *Recorder) Close() error {
	r.Flush()
	return nil
}

// flush writes the current buffer to a new Parquet file.
// Caller must hold the lock.
func (r *Recorder) flush() {
	if len(r.buffer) == 0 {
		return
	}

	filename := fmt.Sprintf("queries_%s_%d.parquet", time.Now().Format("20060102_150405"), time.Now().UnixNano())
	path := filepath.Join(r.outputDir, filename)

	if err := parquet.WriteFile(path, r.buffer); err != nil {
		r.logger.Error("failed to write telemetry parquet file", "path", path, "error", err)
		return
	}

	r.buffer = r.buffer[:0]
}
