package bot

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Factory builds a bot for one player of a match.
type Factory func(player int, params map[string]string) (Bot, error)

type registration struct {
	factory Factory
	builtin bool
}

var (
	mu       sync.RWMutex
	registry = map[string]registration{}
)

func init() {
	registerBuiltin("first", func(int, map[string]string) (Bot, error) {
		return NewFirst(), nil
	})
	registerBuiltin("random", func(_ int, params map[string]string) (Bot, error) {
		seed, err := uintParamOr(params, "seed", uint64(time.Now().UnixNano()))
		if err != nil {
			return nil, err
		}
		return NewRandom(seed), nil
	})
	registerBuiltin("human", func(int, map[string]string) (Bot, error) {
		return NewHuman(), nil
	})
}

func registerBuiltin(name string, factory Factory) {
	register(name, factory, true)
}

// Register makes a custom bot available under name. Registering a name twice panics.
func Register(name string, factory Factory) {
	register(name, factory, false)
}

func register(name string, factory Factory, builtin bool) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[name]; ok {
		panic("bot " + strconv.Quote(name) + " registered twice")
	}
	registry[name] = registration{factory: factory, builtin: builtin}
}

// New creates a bot from a configuration string: the bot name, optionally
// followed by a colon and comma-separated key=value parameters, e.g.
// "random:seed=7".
func New(player int, config string) (Bot, error) {
	name, rest, _ := strings.Cut(config, ":")
	mu.RLock()
	reg, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, errors.Errorf("unknown bot %q", name)
	}

	b, err := reg.factory(player, splitParams(rest))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create bot %q", name)
	}
	return b, nil
}

// Names lists every registered bot, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Opponents lists the bots a game can be played against: the configured ones
// that are registered, then every custom bot.
func Opponents(configured []string) []string {
	mu.RLock()
	defer mu.RUnlock()
	var out []string
	for _, name := range configured {
		if _, ok := registry[name]; ok && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	var custom []string
	for name, reg := range registry {
		if !reg.builtin && !slices.Contains(out, name) {
			custom = append(custom, name)
		}
	}
	slices.Sort(custom)
	return append(out, custom...)
}

func splitParams(config string) map[string]string {
	params := make(map[string]string)
	if config == "" {
		return params
	}
	for _, part := range strings.Split(config, ",") {
		key, value, _ := strings.Cut(part, "=")
		params[key] = value
	}
	return params
}

func uintParamOr(params map[string]string, key string, defaultValue uint64) (uint64, error) {
	value, ok := params[key]
	if !ok || value == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse parameter %s=%q", key, value)
	}
	return v, nil
}
