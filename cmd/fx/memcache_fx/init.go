package memcache_fx

import (
	"go.uber.org/fx"

	"jaktrip/internal/planner"
	mem "jaktrip/pkg/memcache"
)

var Module = fx.Provide(provideCatalogCache)

func provideCatalogCache() mem.SnapshotStore[[]planner.RawDestination] {
	return mem.NewSnapshots[[]planner.RawDestination]()
}
