// Package sessionstore persists the session pair (bearer token and
// serialized user profile) in a gocloud.dev blob bucket. The pair is
// always written together and cleared together; a store holding only
// one half is treated as empty.
package sessionstore

import (
	"context"
	"log/slog"
	"sync"

	"washify/config"
	"washify/internal/domain/repository"
	"washify/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Local filesystem bucket driver.
	_ "gocloud.dev/blob/fileblob"
)

const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// Params defines the parameters required for the blob session store.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

type blobStore struct {
	mu     sync.Mutex
	bucket *blob.Bucket
}

// New opens the configured bucket and registers its shutdown hook.
func New(params Params) (repository.SessionRepository, error) {
	if params.Config.Session == nil || params.Config.Session.BucketURL == "" {
		return nil, errors.New("session bucket URL is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Session.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "open session bucket")
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("session store initialized",
		slog.String("bucket", params.Config.Session.BucketURL))

	return &blobStore{bucket: bucket}, nil
}

// NewWithBucket builds a store over an already-open bucket. The caller
// owns the bucket's lifetime.
func NewWithBucket(bucket *blob.Bucket) repository.SessionRepository {
	return &blobStore{bucket: bucket}
}

func (s *blobStore) Load(ctx context.Context) (repository.StoredSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.bucket.ReadAll(ctx, tokenKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return repository.StoredSession{}, repository.ErrSessionNotFound
		}

		return repository.StoredSession{}, errors.Wrap(err, "read session token")
	}

	userRaw, err := s.bucket.ReadAll(ctx, userKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			// Half a session is no session.
			return repository.StoredSession{}, repository.ErrSessionNotFound
		}

		return repository.StoredSession{}, errors.Wrap(err, "read session user")
	}

	if len(token) == 0 || len(userRaw) == 0 {
		return repository.StoredSession{}, repository.ErrSessionNotFound
	}

	return repository.StoredSession{
		Token:   string(token),
		UserRaw: userRaw,
	}, nil
}

func (s *blobStore) Save(ctx context.Context, session repository.StoredSession) error {
	if session.Token == "" || len(session.UserRaw) == 0 {
		return errors.New("refusing to persist a partial session")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.bucket.WriteAll(ctx, tokenKey, []byte(session.Token), nil); err != nil {
		return errors.Wrap(err, "write session token")
	}
	if err := s.bucket.WriteAll(ctx, userKey, session.UserRaw, nil); err != nil {
		// Roll the token back so a later Load never sees half a pair.
		if delErr := s.bucket.Delete(ctx, tokenKey); delErr != nil && gcerrors.Code(delErr) != gcerrors.NotFound {
			return errors.Join(
				errors.Wrap(err, "write session user"),
				errors.Wrap(delErr, "roll back session token"),
			)
		}

		return errors.Wrap(err, "write session user")
	}

	return nil
}

func (s *blobStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{tokenKey, userKey} {
		if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrapf(err, "clear session key %s", key)
		}
	}

	return nil
}
