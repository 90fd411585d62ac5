// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"cabinet/config"
	domainerrors "cabinet/internal/domain/errors"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultBcryptCost is the work factor for new hashes when none is
	// configured. Cost 12 takes roughly 100-300ms on current server CPUs.
	DefaultBcryptCost = 12

	// MaxPasswordBytes is the longest input bcrypt hashes without truncation.
	MaxPasswordBytes = 72

	defaultHashTimeout         = 5 * time.Second
	defaultMaxConcurrentHashes = 4
	defaultMinPasswordLength   = 8
)

var defaultForbiddenWords = []string{"password", "admin", "qwerty", "letmein", "123456"}

type generateFunc func(password []byte, cost int) ([]byte, error)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	timeout  time.Duration
	slots    *semaphore.Weighted
	strength config.PasswordStrengthConfig
	generate generateFunc
}

// HasherParams holds dependencies for the bcrypt hasher, injected by Fx.
type HasherParams struct {
	fx.In

	Config *config.Config
}

// NewBcryptHasher builds the hasher from the auth and passwordStrength sections.
func NewBcryptHasher(params HasherParams) service.PasswordHasher {
	var (
		cost        int
		timeout     time.Duration
		concurrency int
		strength    *config.PasswordStrengthConfig
	)
	if params.Config != nil {
		if params.Config.Auth != nil {
			cost = params.Config.Auth.BcryptCost
			timeout = params.Config.Auth.HashTimeout
			concurrency = params.Config.Auth.MaxConcurrentHashes
		}
		strength = params.Config.PasswordStrength
	}

	return newBcryptHasher(cost, timeout, concurrency, strength)
}

// NewBcryptHasherWithCost returns a hasher using cost and default limits.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return newBcryptHasher(cost, 0, 0, nil)
}

func newBcryptHasher(cost int, timeout time.Duration, concurrency int, strength *config.PasswordStrengthConfig) *bcryptHasher {
	if timeout <= 0 {
		timeout = defaultHashTimeout
	}
	if concurrency <= 0 {
		concurrency = defaultMaxConcurrentHashes
	}

	return &bcryptHasher{
		cost:     normalizeCost(cost),
		timeout:  timeout,
		slots:    semaphore.NewWeighted(int64(concurrency)),
		strength: normalizeStrength(strength),
		generate: bcrypt.GenerateFromPassword,
	}
}

func normalizeCost(cost int) int {
	switch {
	case cost <= 0:
		return DefaultBcryptCost
	case cost < bcrypt.MinCost:
		return bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		return bcrypt.MaxCost
	default:
		return cost
	}
}

func normalizeStrength(cfg *config.PasswordStrengthConfig) config.PasswordStrengthConfig {
	if cfg == nil {
		return config.PasswordStrengthConfig{
			MinLength:        defaultMinPasswordLength,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
			MaxLength:        MaxPasswordBytes,
			ForbiddenWords:   defaultForbiddenWords,
		}
	}

	normalized := *cfg
	if normalized.MinLength <= 0 {
		normalized.MinLength = defaultMinPasswordLength
	}
	if normalized.MaxLength <= 0 || normalized.MaxLength > MaxPasswordBytes {
		normalized.MaxLength = MaxPasswordBytes
	}
	if normalized.ForbiddenWords == nil {
		normalized.ForbiddenWords = defaultForbiddenWords
	}

	return normalized
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// The work runs on its own goroutine, bounded by the concurrency slots and the timeout.
func (h *bcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if plaintext == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("password must not be empty")
	}
	if len(plaintext) > MaxPasswordBytes {
		return "", domainerrors.ErrPasswordStrength.WrapMessage("password must be at most 72 bytes long")
	}

	hashed, err := runBounded(ctx, h, func() ([]byte, error) {
		return h.generate([]byte(plaintext), h.cost)
	})
	if err != nil {
		return "", errors.WithStack(errors.Join(domainerrors.ErrPasswordHashFailed, err))
	}

	return string(hashed), nil
}

// Verify compares a plaintext candidate with a bcrypt hash. bcrypt compares
// digests in constant time. Decode failures and oversize candidates are a
// mismatch; failing to get a slot or finish in time is ErrPasswordHashFailed.
func (h *bcryptHasher) Verify(ctx context.Context, storedHash, candidate string) (bool, error) {
	if len(candidate) > MaxPasswordBytes {
		return false, nil
	}

	matched, err := runBounded(ctx, h, func() (bool, error) {
		return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(candidate)) == nil, nil
	})
	if err != nil {
		return false, errors.WithStack(errors.Join(domainerrors.ErrPasswordHashFailed, err))
	}

	return matched, nil
}

// NeedsRehash reports whether storedHash is weaker than the configured cost.
func (h *bcryptHasher) NeedsRehash(storedHash string) bool {
	cost, err := bcrypt.Cost([]byte(storedHash))

	return err == nil && cost < h.cost
}

// Cost returns the work factor embedded in storedHash.
func (h *bcryptHasher) Cost(storedHash string) (int, error) {
	cost, err := bcrypt.Cost([]byte(storedHash))
	if err != nil {
		return 0, errors.Wrap(err, "read bcrypt cost")
	}

	return cost, nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(plaintext string) error {
	rules := h.strength

	if utf8.RuneCountInString(plaintext) < rules.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("min_length").
			WrapMessage("password must be at least " + strconv.Itoa(rules.MinLength) + " characters long")
	}
	if len(plaintext) > rules.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("max_length").
			WrapMessage("password must be at most " + strconv.Itoa(rules.MaxLength) + " bytes long")
	}
	if rules.RequireLowercase && !h.hasLowercase(plaintext) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one lowercase letter")
	}
	if rules.RequireUppercase && !h.hasUppercase(plaintext) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one uppercase letter")
	}
	if rules.RequireNumbers && !h.hasNumbers(plaintext) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one number")
	}
	if rules.RequireSpecial && !h.hasSpecialChars(plaintext) {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one special character")
	}
	if h.containsForbiddenWords(plaintext, rules.ForbiddenWords) {
		return domainerrors.ErrPasswordForbiddenWords.WrapMessage("password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lowered := strings.ToLower(s)
	for _, word := range words {
		if word != "" && strings.Contains(lowered, strings.ToLower(word)) {
			return true
		}
	}

	return false
}

// runBounded executes fn on its own goroutine once a slot is free. The caller
// stops waiting at the timeout; the slot is held until fn actually returns.
func runBounded[T any](ctx context.Context, h *bcryptHasher, fn func() (T, error)) (T, error) {
	var zero T

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.slots.Acquire(ctx, 1); err != nil {
		return zero, errors.Wrap(err, "wait for hashing slot")
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)

	go func() {
		defer h.slots.Release(1)

		value, err := fn()
		done <- result{value: value, err: err}
	}()

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		return zero, errors.Wrap(ctx.Err(), "hashing did not finish in time")
	}
}
