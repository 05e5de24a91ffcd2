// Package main CarGoOwner API.
//
// @title           CarGoOwner API
// @version         1.0
// @description     Car rental back office: vehicles, customers, rentals, due-date notifications and reports.
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/zirachw/CarGoOwner/app/echoServer"
	customerctrl "github.com/zirachw/CarGoOwner/app/echoServer/controller/customer"
	notificationctrl "github.com/zirachw/CarGoOwner/app/echoServer/controller/notification"
	rentalctrl "github.com/zirachw/CarGoOwner/app/echoServer/controller/rental"
	reportctrl "github.com/zirachw/CarGoOwner/app/echoServer/controller/report"
	vehiclectrl "github.com/zirachw/CarGoOwner/app/echoServer/controller/vehicle"
	"github.com/zirachw/CarGoOwner/app/echoServer/validation"
	"github.com/zirachw/CarGoOwner/config"
	customerrepo "github.com/zirachw/CarGoOwner/repository/customer"
	rentalrepo "github.com/zirachw/CarGoOwner/repository/rental"
	reportrepo "github.com/zirachw/CarGoOwner/repository/report"
	vehiclerepo "github.com/zirachw/CarGoOwner/repository/vehicle"
	customersvc "github.com/zirachw/CarGoOwner/service/customer"
	notificationsvc "github.com/zirachw/CarGoOwner/service/notification"
	rentalsvc "github.com/zirachw/CarGoOwner/service/rental"
	reportsvc "github.com/zirachw/CarGoOwner/service/report"
	vehiclesvc "github.com/zirachw/CarGoOwner/service/vehicle"
	"github.com/zirachw/CarGoOwner/util/database"
	"github.com/zirachw/CarGoOwner/util/mutation"
)

const usage = `usage: CarGoOwner [serve|migrate|seed]

  serve    create missing tables, seed empty ones (SEED_ON_START) and serve HTTP (default)
  migrate  create missing tables and exit
  seed     create missing tables, fill empty ones with sample rows and exit`

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if cmd != "serve" && cmd != "migrate" && cmd != "seed" {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	policy, err := mutation.ParsePolicy(cfg.DeletePolicy)
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DBPath)
	if err != nil {
		log.Error("db open failed", "path", cfg.DBPath, "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Error("schema failed", "err", err)
		os.Exit(1)
	}
	if cmd == "migrate" {
		log.Info("schema ready", "path", cfg.DBPath)
		return
	}

	if cmd == "seed" || cfg.SeedOnStart {
		if err := seed(ctx, db, log); err != nil {
			log.Error("seed failed", "err", err)
			os.Exit(1)
		}
	}
	if cmd == "seed" {
		return
	}

	e := newServer(db, log, policy)

	log.Info("starting server", "addr", cfg.Addr, "env", cfg.Env, "delete_policy", policy.String())
	if err := e.Start(cfg.Addr); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	now := time.Now()
	st, err := database.Seed(ctx, db, rand.New(rand.NewSource(now.UnixNano())), now)
	if err != nil {
		return err
	}
	log.Info("seeded", "mobil", st.Mobil, "pelanggan", st.Pelanggan, "peminjaman", st.Peminjaman)
	return nil
}

func newServer(db *sql.DB, log *slog.Logger, policy mutation.Policy) *echo.Echo {
	// repos
	vr := vehiclerepo.New(db)
	cr := customerrepo.New(db)
	rr := rentalrepo.New(db)
	pr := reportrepo.New(db)

	// services
	v := mutation.NewValidator()
	vs := vehiclesvc.New(vr, v, policy)
	cs := customersvc.New(cr, v, policy)
	rs := rentalsvc.New(db, rr, v, policy)
	ns := notificationsvc.New(rr)
	ps := reportsvc.New(vr, pr)

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e, log)
	e.Validator = validation.New(v)

	e.GET("/health", func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			return c.JSON(503, map[string]any{"status": "down", "message": "database unreachable"})
		}
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, controllers(vs, cs, rs, ns, ps, log))
	return e
}

func controllers(vs vehiclesvc.Service, cs customersvc.Service, rs rentalsvc.Service, ns notificationsvc.Service, ps reportsvc.Service, log *slog.Logger) echoServer.C {
	return echoServer.C{
		Vehicle:      &vehiclectrl.Controller{Svc: vs, Log: log},
		Customer:     &customerctrl.Controller{Svc: cs, Log: log},
		Rental:       &rentalctrl.Controller{Svc: rs, Log: log},
		Notification: &notificationctrl.Controller{Svc: ns, Log: log},
		Report:       &reportctrl.Controller{Svc: ps, Log: log},
	}
}
