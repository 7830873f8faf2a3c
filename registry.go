package lawfold

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"time"
)

// Verified records that a type passed law checking.
type Verified struct {
	TypeName   string    // As printed by %T, e.g. "lawfold.Moments"
	Laws       []Law     // Laws that held
	VerifiedAt time.Time // When the check ran
	Source     string    // Where the check ran, e.g. a test package
}

// Has reports whether law is among the verified laws.
func (v Verified) Has(law Law) bool {
	return slices.Contains(v.Laws, law)
}

// Registry holds the law verification records of types. Values arriving from
// outside a trust boundary (plugins, decoded snapshots) can be checked against
// it before they are merged.
//
// A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	verified map[string]Verified
	logger   *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registrations and rejections.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry logging to slog.Default().
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		verified: make(map[string]Verified),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds or replaces the record for v.TypeName.
func (r *Registry) Register(v Verified) {
	r.mu.Lock()
	r.verified[v.TypeName] = v
	r.mu.Unlock()

	r.logger.Debug("law verification registered",
		"type", v.TypeName, "laws", v.Laws, "source", v.Source)
}

// IsVerified returns the record for typeName.
func (r *Registry) IsVerified(typeName string) (Verified, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.verified[typeName]
	return v, ok
}

// Require returns an error unless the dynamic type of v is registered with
// every law in laws.
func (r *Registry) Require(v any, laws ...Law) error {
	t := reflect.TypeOf(v)
	if t == nil {
		return fmt.Errorf("nil value: %w", ErrUnverified)
	}
	name := t.String()

	verified, ok := r.IsVerified(name)
	if !ok {
		return fmt.Errorf("type %s: %w", name, ErrUnverified)
	}

	for _, law := range laws {
		if !verified.Has(law) {
			return fmt.Errorf("type %s: %w: %s (has: %v)", name, ErrMissingLaw, law, verified.Laws)
		}
	}
	return nil
}

// Checker is the signature shared by CheckSemigroup, CheckMonoid,
// CheckCommutativeMonoid and CheckSemiring.
type Checker[T any] func(Generator[T], Equal[T], CheckConfig) ([]Law, error)

// Verify runs check against T and registers the laws that held, even when
// others failed. The returned error lists the violations.
//
//	lawfold.Verify(reg, "stats_test", lawfold.CheckCommutativeMonoid[lawfold.Moments], gen, eq, cfg)
func Verify[T any](r *Registry, source string, check Checker[T], gen Generator[T], eq Equal[T], cfg CheckConfig) (Verified, error) {
	held, err := check(gen, eq, cfg)

	var probe T
	v := Verified{
		TypeName:   reflect.TypeOf(&probe).Elem().String(),
		Laws:       held,
		VerifiedAt: time.Now(),
		Source:     source,
	}
	r.Register(v)

	if err != nil {
		r.logger.Warn("law verification failed", "type", v.TypeName, "error", err)
		return v, fmt.Errorf("verify %s: %w", v.TypeName, err)
	}
	return v, nil
}

// Combine returns a.Op(b) after checking that T is registered with laws.
//
// Use it where the values, or the code that built them, are not trusted; in
// hot paths call Op directly.
func Combine[T Semigroup[T]](r *Registry, a, b T, laws ...Law) (T, error) {
	if err := r.Require(a, laws...); err != nil {
		r.logger.Warn("combine rejected", "error", err)
		var zero T
		return zero, fmt.Errorf("combine: %w", err)
	}
	return a.Op(b), nil
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the package-level registry.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds v to the default registry.
func Register(v Verified) { defaultRegistry.Register(v) }

// Require checks v against the default registry.
func Require(v any, laws ...Law) error { return defaultRegistry.Require(v, laws...) }
