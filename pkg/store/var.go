package store

import (
	"bytes"
	"errors"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/xiaq/inductive/pkg/nat"
)

// ErrNoVar is returned by (Store).Var when there is no such variable.
var ErrNoVar = errors.New("no such variable")

// ErrBadValue is returned by (Store).Var when the stored value is not the
// unary byte representation of a Nat.
var ErrBadValue = errors.New("bad stored value")

func init() {
	initDB["initialize variable table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketVars))
		return err
	}
}

// Var gets the value of a variable.
func (s *dbStore) Var(name string) (nat.Nat, error) {
	var value nat.Nat
	err := s.db.View(func(tx *bolt.Tx) error {
		key := []byte(name)
		// A cursor distinguishes Zero, stored as an empty value, from a
		// missing key.
		k, v := tx.Bucket([]byte(bucketVars)).Cursor().Seek(key)
		if k == nil || !bytes.Equal(k, key) {
			return fmt.Errorf("%w: %s", ErrNoVar, name)
		}
		if bytes.Count(v, []byte{0}) != len(v) {
			return fmt.Errorf("%w: %s", ErrBadValue, name)
		}
		value = nat.LengthOf(v)
		return nil
	})
	return value, err
}

// SetVar sets the value of a variable.
func (s *dbStore) SetVar(name string, v nat.Nat) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketVars)).Put([]byte(name), v.Bytes())
	})
}

// DelVar deletes a variable. Deleting a variable that doesn't exist is not an
// error.
func (s *dbStore) DelVar(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketVars)).Delete([]byte(name))
	})
}

// Vars returns the names of all variables in lexicographical order.
func (s *dbStore) Vars() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketVars)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
