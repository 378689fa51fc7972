package state

import (
	"github.com/sidereusnuntius/magazine/internal/config"
	"github.com/sidereusnuntius/magazine/internal/db"
	"github.com/sidereusnuntius/magazine/internal/storage"
)

// State bundles the dependencies shared by the service layer.
type State struct {
	DB      db.DB
	Config  config.Configuration
	Storage storage.Storage
}
