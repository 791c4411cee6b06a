package ai

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/ladders/internal/config"
	"github.com/vovakirdan/ladders/internal/dice"
)

// SelectorFactory builds a pawn selector. src supplies any randomness it needs.
type SelectorFactory func(src dice.Source) Selector

var (
	selectors = make(map[config.SelectionMode]SelectorFactory)
	mu        sync.RWMutex
)

func init() {
	RegisterSelector(config.SelectRandom, randomSelector)
	RegisterSelector(config.SelectHeuristic, func(dice.Source) Selector { return HeuristicPawn })
}

// RegisterSelector adds a selection mode usable from the computer config.
// Panics if the mode is already registered.
func RegisterSelector(mode config.SelectionMode, f SelectorFactory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := selectors[mode]; exists {
		panic(fmt.Sprintf("ai: selection mode %q already registered", mode))
	}
	selectors[mode] = f
}

// newSelector instantiates a registered selection mode.
func newSelector(mode config.SelectionMode, src dice.Source) (Selector, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := selectors[mode]
	if !ok {
		return nil, fmt.Errorf("ai: unknown selection mode %q", mode)
	}
	return f(src), nil
}

// SelectionModes returns the registered modes, sorted.
func SelectionModes() []config.SelectionMode {
	mu.RLock()
	defer mu.RUnlock()

	modes := make([]config.SelectionMode, 0, len(selectors))
	for m := range selectors {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}
