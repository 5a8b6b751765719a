package bootstrap

import (
	"time"

	"github.com/izabelforte/ProjetoPCRH/internal/config"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/cache"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/db"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/logger"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/session"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/handler"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/model"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/repo"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/service"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.Client{},
				&model.Employee{},
				&model.Project{},
				&model.ProjectAssignment{},
				&model.Contract{},
				&model.Invoice{},
				&model.Report{},
				&model.User{},
			)
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// Session store
	do.Provide(inj, func(i *do.Injector) (session.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		rdb := do.MustInvoke[*redis.Client](i)
		ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
		return session.NewRedisStore(rdb, ttl), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ClientRepo, error) {
		return repo.NewClientRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.EmployeeRepo, error) {
		return repo.NewEmployeeRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ContractRepo, error) {
		return repo.NewContractRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.InvoiceRepo, error) {
		return repo.NewInvoiceRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ReportRepo, error) {
		return repo.NewReportRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(do.MustInvoke[repo.UserRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ClientService, error) {
		return service.NewClientService(do.MustInvoke[repo.ClientRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.EmployeeService, error) {
		return service.NewEmployeeService(do.MustInvoke[repo.EmployeeRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ContractService, error) {
		return service.NewContractService(do.MustInvoke[repo.ContractRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.InvoiceService, error) {
		return service.NewInvoiceService(do.MustInvoke[repo.InvoiceRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ReportService, error) {
		return service.NewReportService(do.MustInvoke[repo.ReportRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UserService, error) {
		return service.NewUserService(do.MustInvoke[repo.UserRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AccountHandler, error) {
		return handler.NewAccountHandler(
			do.MustInvoke[service.AuthService](i),
			do.MustInvoke[session.Store](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ClientHandler, error) {
		return handler.NewClientHandler(do.MustInvoke[service.ClientService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.EmployeeHandler, error) {
		return handler.NewEmployeeHandler(do.MustInvoke[service.EmployeeService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[service.UserService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ContractHandler, error) {
		return handler.NewContractHandler(do.MustInvoke[service.ContractService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.InvoiceHandler, error) {
		return handler.NewInvoiceHandler(do.MustInvoke[service.InvoiceService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ReportHandler, error) {
		return handler.NewReportHandler(
			do.MustInvoke[service.ReportService](i),
			do.MustInvoke[service.UserService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UserHandler, error) {
		return handler.NewUserHandler(do.MustInvoke[service.UserService](i)), nil
	})

	return inj
}
