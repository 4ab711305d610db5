package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"peterparts/config"
	"peterparts/internal/domain/entity"
	"peterparts/internal/domain/repository"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		OTP:     &config.OTPConfig{Expiry: 10 * time.Minute},
		Storage: &config.StorageConfig{MaxImageBytes: 1024},
	}
}

// memoryStore backs the in-memory repositories used to exercise full flows.
type memoryStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
	codes map[uuid.UUID]*entity.VerificationCode
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users: make(map[uuid.UUID]*entity.User),
		codes: make(map[uuid.UUID]*entity.VerificationCode),
	}
}

func (s *memoryStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *memoryStore) NewUserRepository() repository.UserRepository {
	return &memoryUserRepo{store: s}
}

func (s *memoryStore) NewVerificationCodeRepository() repository.VerificationCodeRepository {
	return &memoryCodeRepo{store: s}
}

func (s *memoryStore) NewProductRepository() repository.ProductRepository {
	panic("product repository is not backed by memoryStore")
}

func (s *memoryStore) userCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.users)
}

type memoryUserRepo struct {
	store *memoryStore
}

func (r *memoryUserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if match(user) {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *memoryUserRepo) FindByGoogleID(_ context.Context, googleID string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.GoogleID != nil && *u.GoogleID == googleID })
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.store.users[user.ID] = &clone

	return nil
}

func (r *memoryUserRepo) Update(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	clone := *user
	r.store.users[user.ID] = &clone

	return nil
}

type memoryCodeRepo struct {
	store *memoryStore
}

func (r *memoryCodeRepo) Create(_ context.Context, code *entity.VerificationCode) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	code.ID = uuid.New()
	clone := *code
	r.store.codes[code.ID] = &clone

	return nil
}

func (r *memoryCodeRepo) FindValid(_ context.Context, userID uuid.UUID, code string, now time.Time) (*entity.VerificationCode, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, stored := range r.store.codes {
		if stored.UserID == userID && stored.Code == code && stored.IsValid(now) {
			clone := *stored

			return &clone, nil
		}
	}

	return nil, repository.ErrVerificationCodeNotFound
}

func (r *memoryCodeRepo) MarkUsed(_ context.Context, id uuid.UUID, usedAt time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.codes[id]
	if !ok || stored.UsedAt != nil {
		return repository.ErrVerificationCodeNotFound
	}
	stored.UsedAt = &usedAt

	return nil
}

func (r *memoryCodeRepo) DeleteUnusedByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var deleted int64
	for id, stored := range r.store.codes {
		if stored.UserID == userID && stored.UsedAt == nil {
			delete(r.store.codes, id)
			deleted++
		}
	}

	return deleted, nil
}

func (r *memoryCodeRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var deleted int64
	for id, stored := range r.store.codes {
		if stored.ExpiresAt.Before(now) {
			delete(r.store.codes, id)
			deleted++
		}
	}

	return deleted, nil
}

// recordingMailer keeps the last code mailed to each address.
type recordingMailer struct {
	mu       sync.Mutex
	codes    map[string]string
	welcomes []string
	err      error
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{codes: make(map[string]string)}
}

func (m *recordingMailer) SendVerificationCode(_ context.Context, to, code string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.codes[to] = code

	return nil
}

func (m *recordingMailer) SendWelcome(_ context.Context, to string, _ *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.welcomes = append(m.welcomes, to)

	return nil
}

func (m *recordingMailer) lastCode(to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.codes[to]
}

type noopMetrics struct{}

func (noopMetrics) OTPSent(string)     {}
func (noopMetrics) OTPVerified(string) {}
func (noopMetrics) OAuthLogin(string)  {}
