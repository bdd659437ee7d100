// Package store archives finished games in a BadgerDB key-value store.
package store

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

const gamePrefix = "game/"

// Result strings as they appear in a Record.
const (
	ResultWhiteWins  = "1-0"
	ResultBlackWins  = "0-1"
	ResultDraw       = "1/2-1/2"
	ResultUnfinished = "*"
)

// Record is an archived game.
type Record struct {
	ID         string    `json:"id"`
	Placement  string    `json:"placement"` // starting position
	Moves      []string  `json:"moves"`     // long algebraic, e.g. "e2e4"
	Result     string    `json:"result"`
	Final      string    `json:"final"` // final placement
	Plies      int       `json:"plies"`
	White      string    `json:"white"`
	Black      string    `json:"black"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Stats summarises the archive.
type Stats struct {
	Games      int `json:"games"`
	WhiteWins  int `json:"white_wins"`
	BlackWins  int `json:"black_wins"`
	Draws      int `json:"draws"`
	Unfinished int `json:"unfinished"`
	TotalPlies int `json:"total_plies"`
}

// Store wraps BadgerDB for game records.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the archive in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive %s", dir)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an archive that lives only as long as the process.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open in-memory archive")
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}

// SaveGame stores rec under its ID, replacing any earlier version.
func (s *Store) SaveGame(rec *Record) error {
	if rec.ID == "" {
		return fmt.Errorf("record without id: %w", errors.ErrInvalidConfig)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
}

// LoadGame returns the record stored under id, or ErrGameNotFound.
func (s *Store) LoadGame(id string) (*Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteGame removes a record. Deleting a missing record is not an error.
func (s *Store) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(gameKey(id))
	})
}

// ListGames returns every record, oldest first.
func (s *Store) ListGames() ([]*Record, error) {
	var recs []*Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(gamePrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return errors.Wrapf(err, "decode %s", it.Item().Key())
			}
			recs = append(recs, &rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(recs, func(a, b *Record) int {
		if c := a.StartedAt.Compare(b.StartedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return recs, nil
}

// Stats counts results over the whole archive.
func (s *Store) Stats() (*Stats, error) {
	recs, err := s.ListGames()
	if err != nil {
		return nil, err
	}
	st := &Stats{}
	for _, r := range recs {
		st.Games++
		st.TotalPlies += r.Plies
		switch r.Result {
		case ResultWhiteWins:
			st.WhiteWins++
		case ResultBlackWins:
			st.BlackWins++
		case ResultDraw:
			st.Draws++
		default:
			st.Unfinished++
		}
	}
	return st, nil
}
