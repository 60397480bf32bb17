package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mywallet/internal/handlers"
	"mywallet/internal/logger"
	"mywallet/internal/repository"
	"mywallet/internal/repository/db"
	"mywallet/internal/server"
	"mywallet/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const (
	shutdownTimeout  = 10 * time.Second
	redisPingTimeout = 5 * time.Second
)

// @title                       MyWallet API
// @version                     1.0
// @description                 Expense tracking: registration, login and per-user financial records.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfgErr := loadConfig()

	// init logger
	log := logger.Get(viper.GetString("log.level"), viper.GetString("log.format"))
	defer func() { _ = log.Sync() }()

	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	// open DB before accepting any traffic
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	sessions, closeSessions, err := openSessionStore(log)
	if err != nil {
		log.Fatalw("failed to init session store", "err", err)
	}
	defer closeSessions()

	// wire dependencies
	repos := repository.NewRepository(conn, sessions)
	services := service.NewService(repos)
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	log.Infow("opening database", "path", dbPath)
	return db.InitDB(dbPath)
}

// openSessionStore returns nil for the sqlite driver so the repository
// falls back to the sessions table.
func openSessionStore(log *logger.Logger) (repository.SessionRepo, func(), error) {
	driver := viper.GetString("sessions.driver")
	switch driver {
	case sessionsDriverSQLite:
		return nil, func() {}, nil
	case sessionsDriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		})
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, err
		}
		log.Infow("sessions stored in redis", "addr", viper.GetString("redis.addr"))
		return repository.NewSessionRedis(rdb), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, errors.New("unknown sessions.driver " + driver)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
