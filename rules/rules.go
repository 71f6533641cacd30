// Package rules selects a rules backend by name.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"chess-bot/engine"
	"chess-bot/rules/dragon"
	"chess-bot/rules/goose"
	"chess-bot/rules/nchess"
)

const DefaultBackend = "dragon"

type factory func(fen string) (engine.Position, error)

var backends = map[string]factory{
	"dragon": func(fen string) (engine.Position, error) {
		p, err := dragon.New(fen)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
	"goose": func(fen string) (engine.Position, error) {
		p, err := goose.New(fen)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
	"nchess": func(fen string) (engine.Position, error) {
		p, err := nchess.New(fen)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
}

// Backends lists the registered backend names, sorted.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Valid reports whether name is a registered backend.
func Valid(name string) bool {
	_, ok := backends[strings.ToLower(name)]
	return ok
}

// New parses fen with the named backend.
func New(backend, fen string) (engine.Position, error) {
	f, ok := backends[strings.ToLower(backend)]
	if !ok {
		return nil, fmt.Errorf("rules: unknown backend %q (have %s)", backend, strings.Join(Backends(), ", "))
	}
	return f(fen)
}
