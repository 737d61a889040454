// Package snapshot is the persistence collaborator of the store: it
// saves and replays the Users and Communities collections through a
// single SQLite file. Sessions never persist. Ordered collections are
// stored as JSON columns so the entity model round-trips losslessly.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"jackut/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	pos          INTEGER PRIMARY KEY,
	login        TEXT NOT NULL UNIQUE,
	password     TEXT NOT NULL,
	display_name TEXT NOT NULL,
	attributes   TEXT NOT NULL,
	friends      TEXT NOT NULL,
	idols        TEXT NOT NULL,
	fans         TEXT NOT NULL,
	flirts       TEXT NOT NULL,
	enemies      TEXT NOT NULL,
	inbox        TEXT NOT NULL,
	timeline     TEXT NOT NULL,
	communities  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS communities (
	pos         INTEGER PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL,
	owner       TEXT NOT NULL,
	members     TEXT NOT NULL
);`

// DB wraps the SQLite handle backing the snapshot.
type DB struct {
	db *sql.DB
}

// Open creates or opens the snapshot file and ensures the schema.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging snapshot %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshot schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// Load replays the stored Users and Communities collections in their
// original order.
func (d *DB) Load(ctx context.Context) ([]*domain.User, []*domain.Community, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT login, password, display_name, attributes, friends, idols,
		       fans, flirts, enemies, inbox, timeline, communities
		FROM users ORDER BY pos`)
	if err != nil {
		return nil, nil, fmt.Errorf("loading users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var u domain.User
		var attrs, friends, idols, fans, flirts, enemies, inbox, timeline, communities string
		if err := rows.Scan(&u.Login, &u.Password, &u.DisplayName,
			&attrs, &friends, &idols, &fans, &flirts, &enemies,
			&inbox, &timeline, &communities); err != nil {
			return nil, nil, fmt.Errorf("scanning user row: %w", err)
		}
		cols := []struct {
			data string
			dst  any
		}{
			{attrs, &u.Attributes}, {friends, &u.Friends}, {idols, &u.Idols},
			{fans, &u.Fans}, {flirts, &u.Flirts}, {enemies, &u.Enemies},
			{inbox, &u.Inbox}, {timeline, &u.Timeline}, {communities, &u.Communities},
		}
		for _, col := range cols {
			if err := json.Unmarshal([]byte(col.data), col.dst); err != nil {
				return nil, nil, fmt.Errorf("decoding user %s: %w", u.Login, err)
			}
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("loading users: %w", err)
	}

	crows, err := d.db.QueryContext(ctx,
		`SELECT name, description, owner, members FROM communities ORDER BY pos`)
	if err != nil {
		return nil, nil, fmt.Errorf("loading communities: %w", err)
	}
	defer crows.Close()

	var communities []*domain.Community
	for crows.Next() {
		var c domain.Community
		var members string
		if err := crows.Scan(&c.Name, &c.Description, &c.Owner, &members); err != nil {
			return nil, nil, fmt.Errorf("scanning community row: %w", err)
		}
		if err := json.Unmarshal([]byte(members), &c.Members); err != nil {
			return nil, nil, fmt.Errorf("decoding community %s: %w", c.Name, err)
		}
		communities = append(communities, &c)
	}
	if err := crows.Err(); err != nil {
		return nil, nil, fmt.Errorf("loading communities: %w", err)
	}

	return users, communities, nil
}

// Save overwrites the snapshot with the given collections in one
// transaction.
func (d *DB) Save(ctx context.Context, users []*domain.User, communities []*domain.Community) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting snapshot save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("clearing users: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM communities`); err != nil {
		return fmt.Errorf("clearing communities: %w", err)
	}

	for pos, u := range users {
		cols, err := encodeAll(
			u.Attributes, u.Friends, u.Idols, u.Fans, u.Flirts,
			u.Enemies, u.Inbox, u.Timeline, u.Communities,
		)
		if err != nil {
			return fmt.Errorf("encoding user %s: %w", u.Login, err)
		}
		args := append([]any{pos, u.Login, u.Password, u.DisplayName}, cols...)
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (pos, login, password, display_name, attributes,
				friends, idols, fans, flirts, enemies, inbox, timeline, communities)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...); err != nil {
			return fmt.Errorf("saving user %s: %w", u.Login, err)
		}
	}

	for pos, c := range communities {
		members, err := json.Marshal(c.Members)
		if err != nil {
			return fmt.Errorf("encoding community %s: %w", c.Name, err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO communities (pos, name, description, owner, members)
			VALUES (?, ?, ?, ?, ?)`,
			pos, c.Name, c.Description, c.Owner, string(members)); err != nil {
			return fmt.Errorf("saving community %s: %w", c.Name, err)
		}
	}

	return tx.Commit()
}

// Discard drops any stored snapshot; the next Load yields empty
// collections.
func (d *DB) Discard(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		return fmt.Errorf("discarding users: %w", err)
	}
	if _, err := d.db.ExecContext(ctx, `DELETE FROM communities`); err != nil {
		return fmt.Errorf("discarding communities: %w", err)
	}
	return nil
}

// encodeAll marshals each collection to its JSON column value. Nil
// collections stay the literal "null" so the model round-trips exactly.
func encodeAll(values ...any) ([]any, error) {
	cols := make([]any, 0, len(values))
	for _, v := range values {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		cols = append(cols, string(b))
	}
	return cols, nil
}
