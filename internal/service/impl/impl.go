package core

import (
	"time"

	"codeberg.org/gruf/go-mutexes"
	"github.com/sidereusnuntius/magazine/internal/config"
	"github.com/sidereusnuntius/magazine/internal/db"
	"github.com/sidereusnuntius/magazine/internal/service"
	"github.com/sidereusnuntius/magazine/internal/state"
	"github.com/sidereusnuntius/magazine/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 10

type AppService struct {
	Config  config.Configuration
	DB      db.DB
	storage storage.Storage
	// locks serializes ledger operations on the same user and article pair within this process.
	locks *mutexes.MutexMap
	// dummyHash is compared against when the username is unknown, so that both failure cases cost one bcrypt
	// comparison.
	dummyHash []byte
	now       func() time.Time
}

func New(state *state.State) (service.Service, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("not a real password"), BcryptCost)
	if err != nil {
		return nil, err
	}

	locks := mutexes.MutexMap{}
	return &AppService{
		Config:    state.Config,
		DB:        state.DB,
		storage:   state.Storage,
		locks:     &locks,
		dummyHash: dummy,
		now:       time.Now,
	}, nil
}
