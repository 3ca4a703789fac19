package fcmp

import (
	"sync"
	"sync/atomic"
)

// Params is the process-wide proving and verification state. A published
// Params is never mutated.
type Params struct {
	Config   Config
	Pedersen *PedersenGens
	Layers   *LayerGens
}

var (
	paramsMu sync.Mutex
	params   atomic.Pointer[Params]
)

func newParams(cfg Config) (*Params, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pg, err := NewPedersenGens()
	if err != nil {
		return nil, err
	}
	return &Params{
		Config:   cfg,
		Pedersen: pg,
		Layers:   NewLayerGens(cfg.Generators),
	}, nil
}

// Init loads the configuration and initializes the parameters. Calling it
// while initialized is a no-op.
func Init() error {
	if IsInitialized() {
		return nil
	}
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	return InitWithConfig(cfg)
}

func InitWithConfig(cfg Config) error {
	paramsMu.Lock()
	defer paramsMu.Unlock()

	if params.Load() != nil {
		return nil
	}
	p, err := newParams(cfg)
	if err != nil {
		return err
	}
	enableDebugLog(cfg.Debug)
	params.Store(p)
	logger.Printf("initialized with %d layer generators", cfg.Generators)
	return nil
}

func Cleanup() {
	paramsMu.Lock()
	defer paramsMu.Unlock()

	if params.Swap(nil) != nil {
		logger.Println("parameters released")
	}
}

func IsInitialized() bool {
	return params.Load() != nil
}

// CurrentParams returns the published parameters. The snapshot stays valid for
// the caller even if Cleanup runs concurrently.
func CurrentParams() (*Params, error) {
	p := params.Load()
	if p == nil {
		return nil, ErrNotInitialized
	}
	return p, nil
}
