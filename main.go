package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	addr      = flag.String("addr", ":8080", "address to serve the API on")
	dbName    = flag.String("db", os.Getenv("PGDATABASE"), "postgres database name, empty keeps games in memory")
	idleEvery = flag.Duration("idle", time.Second, "pause between computer move and eviction passes")
	verbose   = flag.Bool("v", false, "debug logging")
)

var sigint chan os.Signal

func waitShutdown(e *echo.Echo, idleConnsClosed chan<- interface{}) {
	defer close(idleConnsClosed)

	sigint = make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	<-sigint
	log.Info("received shutdown signal")

	idleError("HTTP server shutdown:", e.Shutdown(context.Background()))
}

func listenAndServe(addr string, idleConnsClosed chan<- interface{}) {
	e := apiHandler()
	go waitShutdown(e, idleConnsClosed)

	e.Use(middleware.Logger())

	idleError("HTTP server end:", e.Start(addr))
}

// Open serves the API on addr until interrupted.
func Open(addr string) {
	idleConnsClosed := make(chan interface{})
	go listenAndServe(addr, idleConnsClosed)
	<-idleConnsClosed
}

func idle() {
	idleError("agent idle complete:", agentIdle())
	idleError("game idle complete:", gameIdle())
}

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := openDB(*dbName); err != nil {
		log.WithError(err).WithField("dbname", *dbName).Fatal("failed to connect database")
	}
	defer func() {
		idleError("close server:", Close())
	}()
	go func() {
		for {
			idle()
			time.Sleep(*idleEvery)
		}
	}()
	Open(*addr)
}
