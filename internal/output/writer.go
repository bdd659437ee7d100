package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/store"
)

// GameWriter is the interface for writing game records to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *store.Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// NewGameWriter returns the writer the configuration asks for.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes games as tag lines and movetext.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteGame writes a game immediately.
func (tw *TextWriter) WriteGame(rec *store.Record) error {
	OutputRecord(rec, tw.cfg, tw.w)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error { return nil }

// Close is a no-op.
func (tw *TextWriter) Close() error { return nil }

// JSONWriter buffers games and writes them as one JSON document on Flush
// or Close.
type JSONWriter struct {
	w     io.Writer
	games []*store.Record
}

// NewJSONWriter creates a new batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a game.
func (jw *JSONWriter) WriteGame(rec *store.Record) error {
	jw.games = append(jw.games, rec)
	return nil
}

// Flush writes all buffered games as {"games": [...]}.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	out := &JSONOutput{Games: make([]*JSONGame, 0, len(jw.games))}
	for _, rec := range jw.games {
		out.Games = append(out.Games, RecordToJSON(rec))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)
	jw.games = jw.games[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
