package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"
)

// DefaultStartRow skips a single header row.
const DefaultStartRow = 2

// Options controls how a file is read.
type Options struct {
	// Sheet is the XLSX sheet to read; empty means the first sheet.
	Sheet string
	// StartRow is the first 1-based row holding data.
	StartRow int
}

// DefaultOptions returns options for a file with one header row.
func DefaultOptions() Options {
	return Options{StartRow: DefaultStartRow}
}

// RowError reports a row that could not be turned into a word.
type RowError struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e RowError) Unwrap() error {
	return e.Err
}

// Result summarizes an import. Processed equals Inserted + Skipped +
// len(Errors). Skipped counts duplicates, both within the file and against
// words already stored.
type Result struct {
	Processed int
	Inserted  int
	Skipped   int
	Errors    []RowError
}

// ErrMissingColumns is reported for rows with fewer than two columns.
var ErrMissingColumns = errors.New("expected columns: word, difficulty_level")

// Importer writes parsed rows to the word store in one transaction.
type Importer struct {
	tx     store.Transactor
	words  store.WordStore
	logger *slog.Logger
}

// New creates an Importer.
func New(tx store.Transactor, words store.WordStore, logger *slog.Logger) (*Importer, error) {
	if tx == nil {
		return nil, errors.New("transactor cannot be nil")
	}
	if words == nil {
		return nil, errors.New("word store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		tx:     tx,
		words:  words,
		logger: logger.With(slog.String("component", "word_importer")),
	}, nil
}

// ImportFile reads path as CSV or XLSX, chosen by extension, and imports it.
func (i *Importer) ImportFile(ctx context.Context, path string, opts Options) (*Result, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if opts.StartRow < 1 {
		opts.StartRow = DefaultStartRow
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open import file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var rows []Row
	switch format {
	case FormatCSV:
		rows, err = ReadCSV(f, opts.StartRow)
	case FormatXLSX:
		rows, err = ReadXLSX(f, opts.Sheet, opts.StartRow)
	}
	if err != nil {
		return nil, err
	}

	i.logger.Info("read import file",
		slog.String("format", string(format)),
		slog.Int("rows", len(rows)))

	return i.Import(ctx, rows)
}

// Import validates rows, drops duplicates and inserts the rest. Invalid rows
// are collected in Result.Errors and do not abort the import; a store error
// does, and nothing is inserted in that case.
func (i *Importer) Import(ctx context.Context, rows []Row) (*Result, error) {
	result := &Result{}

	var parsed []*domain.Word
	for _, row := range rows {
		if isBlank(row.Cells) {
			continue
		}
		result.Processed++

		word, err := parseRow(row.Cells)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Line: row.Line, Err: err})
			continue
		}
		parsed = append(parsed, word)
	}

	unique := lo.UniqBy(parsed, func(w *domain.Word) string {
		return w.Word + "\x00" + string(w.DifficultyLevel)
	})

	inserted := 0
	if len(unique) > 0 {
		err := i.tx.RunInTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
			n, err := i.words.WithTx(tx).CreateMany(ctx, unique)
			inserted = n
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("insert words: %w", err)
		}
	}

	result.Inserted = inserted
	result.Skipped = len(parsed) - inserted

	i.logger.Info("word import finished",
		slog.Int("processed", result.Processed),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", len(result.Errors)))

	return result, nil
}

func parseRow(cells []string) (*domain.Word, error) {
	if len(cells) < 2 {
		return nil, ErrMissingColumns
	}

	level, err := domain.ParseDifficultyLevel(cells[1])
	if err != nil {
		return nil, err
	}
	return domain.NewWord(cells[0], level)
}

func isBlank(cells []string) bool {
	return lo.EveryBy(cells, func(c string) bool {
		return strings.TrimSpace(c) == ""
	})
}
