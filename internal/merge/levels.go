package merge

import (
	"go.uber.org/zap"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/common"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/etl"
)

// Combine merges level sets into one frequency table: counts of equal
// values are summed and the result is sorted by value. It fails on empty
// input.
func Combine(levelSets []etl.LevelSet) (etl.LevelSet, error) {
	if common.IsEmpty(levelSets) {
		return nil, &etl.EmptyInputError{Op: "combine levels"}
	}

	counts := map[string]int{}
	order := []string{}

	for _, ls := range levelSets {
		for _, l := range ls {
			if _, ok := counts[l.Value]; !ok {
				order = append(order, l.Value)
			}

			counts[l.Value] += l.Count
		}
	}

	merged := make(etl.LevelSet, 0, len(order))
	for _, v := range order {
		merged = append(merged, etl.Level{Value: v, Count: counts[v]})
	}

	return merged.Sorted(), nil
}

// CombineLevels merges the levels of every source. Failures are logged and
// yield an empty level set.
func (m *Merger) CombineLevels(sources []etl.Source) etl.LevelSet {
	levelSets := common.Pluck(sources, func(s *etl.Source) etl.LevelSet { return s.Levels })

	merged, err := Combine(levelSets)
	if err != nil {
		m.logger.Warn("combine levels failed; using empty levels",
			zap.Int("sources", len(sources)), zap.Error(err))

		return etl.LevelSet{}
	}

	return merged
}
