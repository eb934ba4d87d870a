package prng

import "sync"

// Default is a caller-owned, lazily created engine. Nothing is seeded until
// the first call to Engine, and the configuration decides whether the
// stream is reproducible (fixed Seed) or not (empty Seed).
//
// The engine it hands out is wrapped with Synchronized, so one Default may
// be shared across goroutines.
type Default struct {
	config Config
	once   sync.Once
	engine Engine
	err    error
}

// NewDefault creates a Default that will build its engine from config.
func NewDefault(config Config) *Default {
	return &Default{config: config}
}

// Engine returns the shared engine, creating it on first use. A creation
// error is sticky.
func (d *Default) Engine() (Engine, error) {
	d.once.Do(func() {
		e, err := New(d.config)
		if err != nil {
			d.err = err
			return
		}
		d.engine = Synchronized(e)
		traceDefaultCreated(d.config.Variant, d.config.Seed != "")
	})
	return d.engine, d.err
}

// syncEngine serializes every call on the wrapped engine.
type syncEngine struct {
	mu sync.Mutex
	e  Engine
}

// Synchronized returns an Engine that guards e with a mutex. Derived
// objects such as Range or Unit built on top of it still need their own
// synchronization.
func Synchronized(e Engine) Engine {
	if s, ok := e.(*syncEngine); ok {
		return s
	}
	return &syncEngine{e: e}
}

func (s *syncEngine) Variant() Variant { return s.e.Variant() }

func (s *syncEngine) Next32() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Next32()
}

func (s *syncEngine) Next64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Next64()
}

func (s *syncEngine) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.e.Step()
}

func (s *syncEngine) Seed(src BitGenerator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.Seed(src)
}

func (s *syncEngine) MergeSeed(src BitGenerator) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.MergeSeed(src)
}

func (s *syncEngine) SaveState() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.SaveState()
}

func (s *syncEngine) RestoreState(state []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.RestoreState(state)
}

// CopyStateFrom snapshots other before taking s's lock, so copying between
// two synchronized engines cannot deadlock.
func (s *syncEngine) CopyStateFrom(other Engine) error {
	if other == Engine(s) {
		return nil
	}
	return copyState(s, other)
}

func (s *syncEngine) SkipAheadMagnitude() int { return s.e.SkipAheadMagnitude() }
func (s *syncEngine) SkipBackMagnitude() int  { return s.e.SkipBackMagnitude() }

func (s *syncEngine) SkipAhead() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.SkipAhead()
}

func (s *syncEngine) SkipBack() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.e.SkipBack()
}

// Advance moves the wrapped engine forward by exactly n steps.
func (s *syncEngine) Advance(n uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	Advance(s.e, n)
}
