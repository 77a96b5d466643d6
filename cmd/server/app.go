package server

import (
	"os"
	"syscall"

	"github.com/go-chi/chi"
	"go.uber.org/zap"
)

// App is the entrypoint into our application and what configures our
// routes and common middleware for each of our http handlers.
type App struct {
	*chi.Mux
	log      *zap.SugaredLogger
	shutdown chan os.Signal
}

// NewApp creates an App value that handles a set of routes for the
// application.
func NewApp(shutdown chan os.Signal, log *zap.SugaredLogger) *App {
	return &App{
		Mux:      chi.NewRouter(),
		log:      log,
		shutdown: shutdown,
	}
}

// SignalShutdown is used to gracefully shut down the app when an
// integrity issue is identified.
func (a *App) SignalShutdown() {
	a.log.Info("signalling shutdown")
	a.shutdown <- syscall.SIGTERM
}
