package jsonfile

import (
	"context"
	"strings"

	"github.com/careerpilot/backend/pkg/storage/jsonfile"
	"github.com/careerpilot/backend/pkg/user"
)

// UserRepository implements user.Repository backed by the JSON file store.
type UserRepository struct {
	store *jsonfile.Store
}

func NewUserRepository(store *jsonfile.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create inserts a new record. The duplicate check and the insert run inside
// one store Update, so two concurrent signups with the same email cannot
// both succeed.
func (r *UserRepository) Create(ctx context.Context, email string, rec user.Record) error {
	email = strings.ToLower(email)
	return r.store.Update(func(doc *jsonfile.Document) error {
		if _, ok := doc.Users[email]; ok {
			return user.ErrAlreadyExists
		}
		doc.Users[email] = rec
		return nil
	})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.Record, error) {
	email = strings.ToLower(email)
	doc, err := r.store.Read()
	if err != nil {
		return user.Record{}, err
	}
	rec, ok := doc.Users[email]
	if !ok {
		return user.Record{}, user.ErrNotFound
	}
	rec.Email = email
	return rec, nil
}

// Update applies fn to the stored record under the store lock and persists
// the result. Cross-user writes still race at whole-document granularity
// (last writer wins), but a single user's read-modify-write is atomic.
func (r *UserRepository) Update(ctx context.Context, email string, fn func(*user.Record) error) (user.Record, error) {
	email = strings.ToLower(email)
	var out user.Record
	err := r.store.Update(func(doc *jsonfile.Document) error {
		rec, ok := doc.Users[email]
		if !ok {
			return user.ErrNotFound
		}
		rec.Email = email
		if err := fn(&rec); err != nil {
			return err
		}
		doc.Users[email] = rec
		out = rec
		return nil
	})
	if err != nil {
		return user.Record{}, err
	}
	return out, nil
}
