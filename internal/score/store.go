package score

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"quadstep/internal/game"
)

// Store is the owned best-score database for song+difficulty pairs. Callers
// hold the one instance and pass it where lookups are needed; there is no
// package-level state.
type Store struct {
	db *sql.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("unable to open score database: %w", err)
	}

	initStatement := `
	create table if not exists scores
	  (
		  id text not null primary key,
		  song_id text not null,
		  title text not null,
		  difficulty integer not null,
		  level integer not null,
		  score integer not null,
		  grade text not null,
		  max_combo integer not null,
		  percentage real not null,
		  total_notes integer not null,
		  full_combo integer not null,
		  failed integer not null,
		  counts blob,
		  created_at timestamp default current_timestamp
	  );
	create index if not exists scores_song on scores(song_id, difficulty);
	`
	if _, err := db.Exec(initStatement); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to initialize score database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save records a finished play.
func (s *Store) Save(r Results) error {
	counts, err := json.Marshal(r.Counts)
	if err != nil {
		return fmt.Errorf("unable to marshal judgement counts: %w", err)
	}
	_, err = s.db.Exec(
		`insert into scores
		   (id, song_id, title, difficulty, level, score, grade, max_combo, percentage, total_notes, full_combo, failed, counts)
		 values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), r.SongID, r.Title, int(r.Difficulty), r.Level, r.Score, r.Grade,
		r.MaxCombo, r.Percentage, r.TotalNotes, r.FullCombo, r.Failed, counts,
	)
	if err != nil {
		return fmt.Errorf("unable to save score: %w", err)
	}
	return nil
}

// Best returns the highest-scoring play for the song and difficulty, or nil
// when none has been recorded.
func (s *Store) Best(songID string, d game.Difficulty) (*Results, error) {
	row := s.db.QueryRow(
		`select song_id, title, difficulty, level, score, grade, max_combo, percentage, total_notes, full_combo, failed, counts
		   from scores
		  where song_id = ? and difficulty = ?
		  order by score desc
		  limit 1`,
		songID, int(d),
	)

	var r Results
	var difficulty int
	var counts []byte
	err := row.Scan(&r.SongID, &r.Title, &difficulty, &r.Level, &r.Score, &r.Grade,
		&r.MaxCombo, &r.Percentage, &r.TotalNotes, &r.FullCombo, &r.Failed, &counts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load best score: %w", err)
	}
	r.Difficulty = game.Difficulty(difficulty)
	if err := json.Unmarshal(counts, &r.Counts); err != nil {
		return nil, fmt.Errorf("unable to unmarshal judgement counts: %w", err)
	}
	return &r, nil
}
