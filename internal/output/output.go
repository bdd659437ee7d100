// Package output formats finished games as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/store"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, separated from the previous one by a space or a
// line break when the line would grow too long.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputRecord writes a game record as tag lines, numbered movetext and,
// when configured, a diagram of the final position.
func OutputRecord(rec *store.Record, cfg *config.Config, w io.Writer) {
	outputTags(rec, w)
	fmt.Fprintln(w)

	outputMoves(rec, cfg, w)

	if cfg.Output.ShowBoard {
		if board, err := engine.Setup(rec.Final, chess.DefaultRules()); err == nil {
			fmt.Fprintln(w)
			fmt.Fprint(w, Diagram(board))
		}
	}
	fmt.Fprintln(w)
}

func outputTags(rec *store.Record, w io.Writer) {
	tags := [][2]string{
		{"Game", rec.ID},
		{"White", rec.White},
		{"Black", rec.Black},
		{"Result", rec.Result},
	}
	if rec.Placement != engine.InitialPlacement {
		tags = append(tags, [2]string{"Placement", rec.Placement})
	}
	if !rec.StartedAt.IsZero() {
		tags = append(tags, [2]string{"Date", rec.StartedAt.Format("2006.01.02")})
	}
	for _, tag := range tags {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag[0], escapeTagValue(tag[1]))
	}
}

// escapeTagValue escapes backslashes and quotes in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves writes "1. e2e4 e7e5 2. ..." followed by the result.
// Games always start with White to move.
func outputMoves(rec *store.Record, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, cfg.Output.MaxLineLength)
	for i, m := range rec.Moves {
		if i%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", i/2+1))
		}
		ow.Write(m)
	}
	ow.Write(rec.Result)
	ow.NewLine()
}

// Diagram draws the board with White at the bottom. Empty cells are dots.
func Diagram(board *chess.Board) string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for rank := 0; rank < chess.BoardSize; rank++ {
		fmt.Fprintf(&sb, "%d |", chess.BoardSize-rank)
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			if p := board.At(chess.Cell{File: file, Rank: rank}); p != nil {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString(" |\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")
	return sb.String()
}
