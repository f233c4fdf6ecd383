// Package modkit provides module wiring and core deps
package modkit

import (
	"qclab/internal/modkit/repokit"
	"qclab/internal/platform/config"
	"qclab/internal/platform/logger"
	"qclab/internal/platform/store"
)

// Deps holds core dependencies passed to modules.
// This is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
