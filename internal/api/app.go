package api

import (
	"time"

	"github.com/yourname/wearmock/internal"
	"github.com/yourname/wearmock/internal/store"
)

// App is what the handlers need from the wider application.
type App interface {
	Logger() internal.Logger
	Store() *store.Store
	TokenTTL() time.Duration
}

type app struct {
	logger   internal.Logger
	store    *store.Store
	tokenTTL time.Duration
}

func NewApp(logger internal.Logger, s *store.Store, tokenTTL time.Duration) App {
	return &app{logger: logger, store: s, tokenTTL: tokenTTL}
}

func (a *app) Logger() internal.Logger { return a.logger }
func (a *app) Store() *store.Store     { return a.store }
func (a *app) TokenTTL() time.Duration { return a.tokenTTL }
