// Package store implements persistent storage of variables and command
// history in a bbolt database.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/xiaq/inductive/pkg/logutil"
	"github.com/xiaq/inductive/pkg/nat"
)

var logger = logutil.GetLogger("[store] ")

// Store is the permanent storage backend.
type Store interface {
	Var(name string) (nat.Nat, error)
	SetVar(name string, v nat.Nat) error
	DelVar(name string) error
	Vars() ([]string, error)

	NextCmdSeq() (int, error)
	AddCmd(text string) (int, error)
	Cmd(seq int) (string, error)
	Cmds(from, upto int) ([]Cmd, error)

	Close() error
}

// Cmd is an entry in the command history.
type Cmd struct {
	Text string
	Seq  int
}

const (
	bucketVars = "vars"
	bucketCmd  = "cmd"
)

// Functions that initialize the database, keyed by their descriptions.
var initDB = map[string](func(*bolt.Tx) error){}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a Store backed by the database at the given path,
// creating it if it doesn't exist.
func NewStore(dbname string) (Store, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a Store backed by an open database.
func NewStoreFromDB(db *bolt.DB) (Store, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &dbStore{db}, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error { return s.db.Close() }
