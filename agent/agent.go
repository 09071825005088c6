package agent

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"github.com/ncugit-sec/Game-2584/game"
)

// Agent is a game-playing participant: a player choosing slides or an
// environment placing tiles. TakeAction reports ok == false when no action
// is possible, the normal terminal condition of an episode. Close releases
// the agent and flushes any configured weight file.
type Agent interface {
	Name() string
	Role() string
	OpenEpisode()
	CloseEpisode()
	TakeAction(b game.Board) (game.Action, bool)
	Close() error
}

// Kind selects the agent variant. Resolved once at construction; no agent
// re-checks its own kind per call.
type Kind int

const (
	TD Kind = iota
	Dummy
	GreedyScore
	GreedyPos
	RandomEnv
)

func (k Kind) String() string {
	switch k {
	case TD:
		return "TD"
	case Dummy:
		return "dummy"
	case GreedyScore:
		return "greedy_score"
	case GreedyPos:
		return "greedy_pos"
	case RandomEnv:
		return "random"
	}
	return "unknown"
}

// Options is the typed configuration of an agent, populated by a single
// validated parse of the flat key=value string.
type Options struct {
	Kind  Kind
	Role  string
	Alpha float64

	Seed   uint64
	Seeded bool

	Init     bool
	LoadPath string
	SavePath string
}

// DefaultOptions mirrors the historical player defaults: a TD learner with
// learning rate 0.005.
func DefaultOptions() Options {
	return Options{Kind: TD, Role: "player", Alpha: 0.005}
}

// ParseOptions parses a space-separated key=value string such as
// "name=TD alpha=0.0025 save=weights.bin" into typed options. Unknown keys,
// unknown agent names and malformed numbers are errors.
func ParseOptions(args string) (Options, error) {
	opts := DefaultOptions()
	for _, pair := range strings.Fields(args) {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return opts, fmt.Errorf("malformed option %q, want key=value", pair)
		}
		switch key {
		case "name":
			kind, err := parseKind(value)
			if err != nil {
				return opts, err
			}
			opts.Kind = kind
		case "role":
			if value != "player" && value != "environment" {
				return opts, fmt.Errorf("%q is not a valid role", value)
			}
			opts.Role = value
		case "alpha":
			alpha, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return opts, fmt.Errorf("invalid alpha %q: %w", value, err)
			}
			opts.Alpha = alpha
		case "seed":
			seed, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return opts, fmt.Errorf("invalid seed %q: %w", value, err)
			}
			opts.Seed = seed
			opts.Seeded = true
		case "init":
			opts.Init = true
		case "load":
			opts.LoadPath = value
		case "save":
			opts.SavePath = value
		default:
			return opts, fmt.Errorf("unknown option %q", key)
		}
	}
	return opts, nil
}

func parseKind(name string) (Kind, error) {
	switch name {
	case "TD":
		return TD, nil
	case "dummy":
		return Dummy, nil
	case "greedy_score":
		return GreedyScore, nil
	case "greedy_pos":
		return GreedyPos, nil
	case "random":
		return RandomEnv, nil
	}
	return 0, fmt.Errorf("%q is not a valid agent name", name)
}

// New builds the concrete agent for the options.
func New(opts Options) (Agent, error) {
	switch opts.Kind {
	case TD:
		return NewPlayer(opts)
	case Dummy:
		return NewDummyPlayer(opts), nil
	case GreedyScore:
		return NewGreedyScorePlayer(opts), nil
	case GreedyPos:
		return NewGreedyPosPlayer(opts), nil
	case RandomEnv:
		return NewRandomEnv(opts), nil
	}
	return nil, fmt.Errorf("unknown agent kind %d", opts.Kind)
}

// newSource returns the agent's private randomness source, seeded from the
// options when a seed was given.
func newSource(opts Options) rand.Source {
	if opts.Seeded {
		return rand.NewSource(opts.Seed)
	}
	return rand.NewSource(uint64(time.Now().UnixNano()))
}

func newRand(opts Options) *rand.Rand {
	return rand.New(newSource(opts))
}
