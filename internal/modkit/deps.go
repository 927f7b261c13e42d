package modkit

import (
	"umamiconnector/internal/adapters/credentials"
	"umamiconnector/internal/adapters/umami"
	"umamiconnector/internal/platform/config"
	"umamiconnector/internal/platform/logger"
	"umamiconnector/internal/platform/store"
)

// Deps are the process singletons modules are built from
type Deps struct {
	Log logger.Logger
	// Cfg is the CORE_API_ view
	Cfg config.Conf
	// Store is nil when credentials live in memory
	Store  *store.Store
	Umami  *umami.Client
	Tokens credentials.Store
}
