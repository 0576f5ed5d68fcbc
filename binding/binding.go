package binding

import (
	"github.com/hhkbp2/kvbench"
)

// AddBindings registers the concrete store bindings with the harness.
func AddBindings() {
	kvbench.Stores["mysql"] = func() kvbench.Store {
		return NewMysqlStore()
	}
	kvbench.Stores["sqlite"] = func() kvbench.Store {
		return NewSqliteStore()
	}
	kvbench.Stores["redis"] = func() kvbench.Store {
		return NewRedisStore()
	}
	kvbench.Stores["badger"] = func() kvbench.Store {
		return NewBadgerStore()
	}
}
