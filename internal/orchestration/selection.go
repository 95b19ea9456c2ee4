package orchestration

import (
	"github.com/agbru/parsum/internal/config"
	"github.com/agbru/parsum/internal/reduce"
)

// GetReducersToRun resolves an algorithm selection against the registry.
// config.AlgoAll yields every registered reducer in registry order. An
// unknown name yields nil.
func GetReducersToRun(algo string, registry *reduce.Registry) []reduce.Reducer {
	if algo == config.AlgoAll {
		return registry.All()
	}
	if r, err := registry.Get(algo); err == nil {
		return []reduce.Reducer{r}
	}
	return nil
}
