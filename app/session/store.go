// Package session provides a cookie-backed session whose values live
// server-side in Badger. The cookie carries only a signed session id; entry
// TTLs expire idle sessions without a sweeper goroutine.
package session

import (
	"bytes"
	"crypto/rand"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"net/http"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const (
	// Name is the cookie and session name shared by the login flow and the
	// identity middleware.
	Name = "inkwell_session"

	// UserIDKey indexes the serialized user id inside the session values.
	UserIDKey = "user_id"

	keyPrefix = "session:"
)

func init() {
	// Flash messages are stored as []interface{} inside the values map.
	gob.Register([]interface{}{})
}

// Open opens the Badger database backing the session store.
func Open(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1)
	return badger.Open(opts)
}

// Store implements sessions.Store on top of a Badger database.
type Store struct {
	db      *badger.DB
	codecs  []securecookie.Codec
	options *sessions.Options
}

// NewStore creates a Store signing session ids with the given key pairs.
// maxAge is the session lifetime in seconds, applied both to the cookie and
// to the Badger entry's TTL.
func NewStore(db *badger.DB, maxAge int, keyPairs ...[]byte) *Store {
	codecs := securecookie.CodecsFromPairs(keyPairs...)
	for _, codec := range codecs {
		if sc, ok := codec.(*securecookie.SecureCookie); ok {
			sc.MaxAge(maxAge)
		}
	}
	return &Store{
		db:     db,
		codecs: codecs,
		options: &sessions.Options{
			Path:     "/",
			MaxAge:   maxAge,
			HttpOnly: true,
		},
	}
}

// Get returns the named session from the request registry.
func (s *Store) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New loads the session identified by the request cookie, or starts a fresh
// one when the cookie is absent, fails signature verification, or names an
// expired entry. Only a real storage failure returns an error.
func (s *Store) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.options
	session.Options = &opts
	session.IsNew = true

	cookie, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}
	var id string
	if err := securecookie.DecodeMulti(name, cookie.Value, &id, s.codecs...); err != nil {
		return session, nil
	}
	session.ID = id
	if err := s.load(session); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return session, nil
		}
		return session, err
	}
	session.IsNew = false
	return session, nil
}

// Save persists the session values and writes the signed id cookie. A
// negative MaxAge deletes the stored entry and expires the cookie.
func (s *Store) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge < 0 {
		if err := s.delete(session); err != nil {
			return err
		}
		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = newSessionID()
	}
	if err := s.save(session); err != nil {
		return err
	}
	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

func (s *Store) load(session *sessions.Session) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + session.ID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return gob.NewDecoder(bytes.NewReader(val)).Decode(&session.Values)
		})
	})
}

func (s *Store) save(session *sessions.Session) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(session.Values); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(keyPrefix+session.ID), buf.Bytes())
		if session.Options.MaxAge > 0 {
			entry = entry.WithTTL(time.Duration(session.Options.MaxAge) * time.Second)
		}
		return txn.SetEntry(entry)
	})
}

func (s *Store) delete(session *sessions.Session) error {
	if session.ID == "" {
		return nil
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + session.ID))
	})
}

func newSessionID() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}
