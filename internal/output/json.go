package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/store"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID         string     `json:"id"`
	White      string     `json:"white"`
	Black      string     `json:"black"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	Initial    string     `json:"initial"`
	Final      string     `json:"final"`
	Moves      []JSONMove `json:"moves,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt time.Time  `json:"finishedAt"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Colour     string `json:"colour"`
	Move       string `json:"move"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// RecordToJSON converts an archived game to its JSON form.
func RecordToJSON(rec *store.Record) *JSONGame {
	jg := &JSONGame{
		ID:         rec.ID,
		White:      rec.White,
		Black:      rec.Black,
		Result:     rec.Result,
		PlyCount:   rec.Plies,
		Initial:    rec.Placement,
		Final:      rec.Final,
		StartedAt:  rec.StartedAt,
		FinishedAt: rec.FinishedAt,
	}
	for i, m := range rec.Moves {
		colour := chess.White
		if i%2 == 1 {
			colour = chess.Black
		}
		jg.Moves = append(jg.Moves, JSONMove{MoveNumber: i/2 + 1, Colour: colour.String(), Move: m})
	}
	return jg
}

// OutputRecordJSON writes a single game as indented JSON.
func OutputRecordJSON(rec *store.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(RecordToJSON(rec))
}
