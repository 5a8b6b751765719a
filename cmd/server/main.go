package main

//go:generate go run github.com/swaggo/swag/cmd/swag init -d ../.. -g cmd/server/main.go -o ../../docs

//	@title			PCRH API
//	@version		1.0
//	@description	Backend for the PCRH services-business manager.
//	@schemes		http https
//	@BasePath		/api/v1

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/bootstrap"
	"github.com/izabelforte/ProjetoPCRH/internal/config"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/session"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/handler"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/authz"
	"github.com/izabelforte/ProjetoPCRH/internal/router"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	sessions := do.MustInvoke[session.Store](inj)

	// init gin
	gin.SetMode(cfg.App.Env)

	// build handlers
	accountHandler := do.MustInvoke[*handler.AccountHandler](inj)
	clientHandler := do.MustInvoke[*handler.ClientHandler](inj)
	employeeHandler := do.MustInvoke[*handler.EmployeeHandler](inj)
	projectHandler := do.MustInvoke[*handler.ProjectHandler](inj)
	contractHandler := do.MustInvoke[*handler.ContractHandler](inj)
	invoiceHandler := do.MustInvoke[*handler.InvoiceHandler](inj)
	reportHandler := do.MustInvoke[*handler.ReportHandler](inj)
	userHandler := do.MustInvoke[*handler.UserHandler](inj)

	engine := router.NewRouter(router.RouterDeps{
		Config:          cfg,
		Log:             log,
		Sessions:        sessions,
		Policy:          authz.DefaultPolicy(),
		AccountHandler:  accountHandler,
		ClientHandler:   clientHandler,
		EmployeeHandler: employeeHandler,
		ProjectHandler:  projectHandler,
		ContractHandler: contractHandler,
		InvoiceHandler:  invoiceHandler,
		ReportHandler:   reportHandler,
		UserHandler:     userHandler,
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
