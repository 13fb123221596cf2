package bc1

import "sync"

// The partition-descriptor and single-color tables are written exactly once,
// before any encode touches them; after that they are read-only and shared
// across any number of encoder goroutines.
var tablesOnce sync.Once

func initTables() {
	initSingleColorTables()
	initClusterTables()
}

// Init builds the static lookup tables. Calling it up front is optional: the
// entry points initialize lazily behind the same sync.Once.
func Init() {
	tablesOnce.Do(initTables)
}

func ensureTables() {
	tablesOnce.Do(initTables)
}

// debug enables internal invariant checks. Release builds keep it off.
const debug = false

func debugAssert(cond bool) {
	if debug && !cond {
		panic("bc1: internal invariant violated")
	}
}
