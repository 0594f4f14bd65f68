package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "washify/internal/delivery/context"
	"washify/internal/domain/entity"
	domainerrors "washify/internal/domain/errors"
	"washify/internal/domain/repository"
	"washify/internal/domain/service"
	"washify/internal/errors"
	"washify/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
)

// AuthServiceParams defines the parameters required for the auth service.
type AuthServiceParams struct {
	fx.In

	Sessions repository.SessionRepository
	Gateway  repository.AuthGateway
	Tokens   service.TokenCarrier
	Logger   *slog.Logger
}

// authService implements the AuthUsecase interface.
type authService struct {
	sessions repository.SessionRepository
	gateway  repository.AuthGateway
	tokens   service.TokenCarrier
	logger   *slog.Logger

	mu      sync.RWMutex
	session entity.Session
	loading bool

	subMu   sync.Mutex
	subs    map[int]func(entity.Session)
	nextSub int
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		sessions: params.Sessions,
		gateway:  params.Gateway,
		tokens:   params.Tokens,
		logger:   params.Logger,
		loading:  true,
		subs:     make(map[int]func(entity.Session)),
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Initialize restores the persisted session. Nothing here is fatal: a
// missing, half-present, corrupted or expired session just means
// starting logged out.
func (srv *authService) Initialize(ctx context.Context) error {
	defer func() {
		srv.mu.Lock()
		srv.loading = false
		srv.mu.Unlock()
	}()

	stored, err := srv.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Warn("session load failed, starting logged out", slog.Any("error", err))
			srv.clearPersisted(ctx)
		}

		return nil
	}

	var user entity.User
	if err := json.Unmarshal(stored.UserRaw, &user); err != nil {
		// Corrupted profile forces a logout.
		srv.log(ctx).Warn("persisted user profile is malformed, clearing session",
			slog.Any("error", err))
		srv.clearPersisted(ctx)

		return nil
	}

	if expired, expiry := tokenExpired(stored.Token); expired {
		srv.log(ctx).Info("persisted token expired, clearing session",
			slog.Time("expired_at", expiry))
		srv.clearPersisted(ctx)

		return nil
	}

	session := entity.Session{Token: stored.Token, User: &user}

	srv.mu.Lock()
	srv.session = session
	srv.mu.Unlock()
	srv.tokens.Set(session.Token)

	srv.log(ctx).Info("session restored",
		slog.String("username", user.Username))
	srv.notify(session)

	return nil
}

// Login exchanges credentials for a session. Empty credentials never
// reach the network.
func (srv *authService) Login(ctx context.Context, creds entity.Credentials) (entity.Session, error) {
	if strings.TrimSpace(creds.Username) == "" || strings.TrimSpace(creds.Password) == "" {
		return entity.Session{}, domainerrors.ErrMissingCredentials
	}

	session, err := srv.gateway.Login(ctx, creds)
	if err != nil {
		srv.log(ctx).Warn("login failed",
			slog.String("username", creds.Username),
			slog.Any("error", err))

		return entity.Session{}, err
	}
	if !session.Valid() {
		return entity.Session{}, domainerrors.ErrMalformedLoginResponse
	}

	userRaw, err := json.Marshal(session.User)
	if err != nil {
		return entity.Session{}, errors.Wrap(err, "serialize user profile")
	}
	if err := srv.sessions.Save(ctx, repository.StoredSession{
		Token:   session.Token,
		UserRaw: userRaw,
	}); err != nil {
		// The session still works for this process; only the restart
		// restore is lost.
		srv.log(ctx).Warn("session persistence failed", slog.Any("error", err))
	}

	srv.mu.Lock()
	srv.session = session
	srv.mu.Unlock()
	srv.tokens.Set(session.Token)

	srv.log(ctx).Info("login succeeded",
		slog.String("username", session.User.Username))
	srv.notify(session)

	return session, nil
}

// Logout clears everything and never fails: the in-memory session and
// the token carrier go synchronously, the persisted pair best-effort.
func (srv *authService) Logout(ctx context.Context) {
	srv.mu.Lock()
	srv.session = entity.Session{}
	srv.mu.Unlock()
	srv.tokens.Clear()

	if err := srv.sessions.Clear(ctx); err != nil {
		srv.log(ctx).Warn("session clear failed", slog.Any("error", err))
	}

	srv.log(ctx).Info("logged out")
	srv.notify(entity.Session{})
}

func (srv *authService) Session() (entity.Session, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.session, srv.session.Valid()
}

func (srv *authService) IsAuthenticated() bool {
	_, ok := srv.Session()

	return ok
}

func (srv *authService) IsLoading() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.loading
}

// Subscribe registers a session-change listener.
func (srv *authService) Subscribe(fn func(entity.Session)) func() {
	srv.subMu.Lock()
	id := srv.nextSub
	srv.nextSub++
	srv.subs[id] = fn
	srv.subMu.Unlock()

	return func() {
		srv.subMu.Lock()
		delete(srv.subs, id)
		srv.subMu.Unlock()
	}
}

func (srv *authService) notify(session entity.Session) {
	srv.subMu.Lock()
	listeners := make([]func(entity.Session), 0, len(srv.subs))
	for _, fn := range srv.subs {
		listeners = append(listeners, fn)
	}
	srv.subMu.Unlock()

	for _, fn := range listeners {
		fn(session)
	}
}

func (srv *authService) clearPersisted(ctx context.Context) {
	if err := srv.sessions.Clear(ctx); err != nil {
		srv.log(ctx).Warn("session clear failed", slog.Any("error", err))
	}
}

// tokenExpired checks the bearer token's exp claim without verifying
// the signature (the signing key belongs to the backend). A token that
// is not a JWT or carries no expiry is given the benefit of the doubt;
// the backend will reject it with a 401 if it is stale.
func tokenExpired(token string) (bool, time.Time) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false, time.Time{}
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false, time.Time{}
	}

	return expiry.Before(time.Now()), expiry.Time
}
