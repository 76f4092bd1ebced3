package merge

import (
	"go.uber.org/zap"

	"github.com/EdmundsEcho/data-join-ui-sub004/internal/common"
	"github.com/EdmundsEcho/data-join-ui-sub004/internal/etl"
)

// CombineSymbols folds symbol maps left to right; on a key collision the
// later map's value wins. Nil or empty input yields an empty map.
func CombineSymbols(maps []map[string]string) map[string]string {
	out := map[string]string{}

	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}

	return out
}

// CombineSymbolMaps merges the map-symbols arrows of every source. It never
// fails; sources without arrows contribute nothing.
func (m *Merger) CombineSymbolMaps(sources []etl.Source) etl.SymbolMap {
	if len(sources) == 0 {
		m.logger.Warn("combine symbols called without sources; using empty arrows",
			zap.Int("sources", len(sources)))

		return etl.SymbolMap{Arrows: map[string]string{}}
	}

	symbols := common.PluckNonNil(sources, func(s *etl.Source) *etl.SymbolMap { return s.MapSymbols })

	arrows := common.Pluck(symbols, func(ms *etl.SymbolMap) map[string]string { return ms.Arrows })

	return etl.SymbolMap{Arrows: CombineSymbols(arrows)}
}
