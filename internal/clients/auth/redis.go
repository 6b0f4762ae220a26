package auth

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/poketeam-api/internal/errors"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/clock"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/poketeam-api/internal/redis"
)

const (
	sessionKeyPrefix = "auth:session:"
	userKeyPrefix    = "auth:user:"
	eventsChannel    = "auth:events"

	defaultSessionTTL = 30 * 24 * time.Hour
)

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func userKey(userID string) string {
	return userKeyPrefix + userID
}

// RedisConfig contains configuration for the Redis session provider
type RedisConfig struct {
	Client redisclient.Client
	// Verifier checks sign-in credentials
	Verifier Verifier
	// SessionTTL defaults to 30 days
	SessionTTL     time.Duration
	Clock          clock.Clock
	TokenGenerator idgen.Generator
	Logger         *zap.Logger
}

// Validate validates the RedisConfig and sets defaults if not provided
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.Verifier == nil {
		return errors.InvalidArgument("verifier cannot be nil")
	}
	if cfg.SessionTTL < 0 {
		return errors.InvalidArgument("session ttl cannot be negative")
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = defaultSessionTTL
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.TokenGenerator == nil {
		cfg.TokenGenerator = idgen.NewUUID("")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type redisProvider struct {
	client   redisclient.Client
	verifier Verifier
	ttl      time.Duration
	clock    clock.Clock
	tokens   idgen.Generator
	logger   *zap.Logger
}

// NewRedis creates a Redis-backed session provider
func NewRedis(cfg *RedisConfig) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisProvider{
		client:   cfg.Client,
		verifier: cfg.Verifier,
		ttl:      cfg.SessionTTL,
		clock:    cfg.Clock,
		tokens:   cfg.TokenGenerator,
		logger:   cfg.Logger,
	}, nil
}

func (p *redisProvider) SignIn(ctx context.Context, credential string) (*Session, error) {
	if credential == "" {
		return nil, errors.InvalidArgument("credential cannot be empty")
	}

	identity, err := p.verifier.Verify(ctx, credential)
	if err != nil {
		return nil, err
	}
	if identity == nil || identity.UserID == "" {
		return nil, errors.Unauthenticated("credential does not name a user")
	}

	session := &Session{
		Token:     p.tokens.Generate(),
		Identity:  *identity,
		ExpiresAt: p.clock.Now().Add(p.ttl),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	pipe := p.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.Token), data, p.ttl)
	pipe.SAdd(ctx, userKey(identity.UserID), session.Token)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store session")
	}

	p.publish(ctx, EventSignedIn, identity.UserID)
	return session, nil
}

func (p *redisProvider) session(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}

	raw, err := p.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return nil, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read session")
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}
	return &session, nil
}

func (p *redisProvider) CurrentUser(ctx context.Context, token string) (*Identity, error) {
	session, err := p.session(ctx, token)
	if err != nil || session == nil {
		return nil, err
	}
	return &session.Identity, nil
}

func (p *redisProvider) SignOut(ctx context.Context, token string) error {
	session, err := p.session(ctx, token)
	if err != nil {
		return err
	}
	if session == nil {
		return nil
	}

	pipe := p.client.TxPipeline()
	pipe.Del(ctx, sessionKey(token))
	pipe.SRem(ctx, userKey(session.Identity.UserID), token)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to end session")
	}

	p.publish(ctx, EventSignedOut, session.Identity.UserID)
	return nil
}

func (p *redisProvider) DeleteAccount(ctx context.Context, token string) error {
	session, err := p.session(ctx, token)
	if err != nil {
		return err
	}
	if session == nil {
		return errors.Unauthenticated("not signed in")
	}

	userID := session.Identity.UserID
	tokens, err := p.client.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list sessions")
	}

	keys := make([]string, 0, len(tokens)+2)
	for _, t := range tokens {
		keys = append(keys, sessionKey(t))
	}
	keys = append(keys, sessionKey(token), userKey(userID))

	if err := p.client.Del(ctx, keys...).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete sessions")
	}

	p.logger.Info("account deleted",
		zap.String("user_id", userID),
		zap.Int("sessions", len(tokens)))
	p.publish(ctx, EventAccountDeleted, userID)
	return nil
}

// publish announces a state change; delivery is best effort
func (p *redisProvider) publish(ctx context.Context, eventType EventType, userID string) {
	data, err := json.Marshal(Event{Type: eventType, UserID: userID, At: p.clock.Now()})
	if err != nil {
		p.logger.Warn("failed to marshal auth event", zap.Error(err))
		return
	}
	if err := p.client.Publish(ctx, eventsChannel, data).Err(); err != nil {
		p.logger.Warn("failed to publish auth event",
			zap.String("type", string(eventType)),
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

func (p *redisProvider) Subscribe(ctx context.Context, fn func(Event)) (func(), error) {
	if fn == nil {
		return nil, errors.InvalidArgument("callback cannot be nil")
	}

	pubsub := p.client.Subscribe(ctx, eventsChannel)
	// wait for the subscription to be confirmed so no event published after
	// Subscribe returns is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to subscribe to auth events")
	}

	subCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	messages := pubsub.Channel()

	go func() {
		defer close(done)
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					p.logger.Warn("dropping malformed auth event", zap.Error(err))
					continue
				}
				fn(event)
			}
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			cancel()
			_ = pubsub.Close()
			<-done
		})
	}
	return unsubscribe, nil
}
