package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/campusflow/cert-api/api"
	certificate_controller "github.com/campusflow/cert-api/api/controllers/certificate"
	certificatemodel "github.com/campusflow/cert-api/api/model/certificateModel"
	eventmodel "github.com/campusflow/cert-api/api/model/eventModel"
	usermodel "github.com/campusflow/cert-api/api/model/userModel"
	"github.com/campusflow/cert-api/common"
	"github.com/campusflow/cert-api/common/config"
	"github.com/campusflow/cert-api/common/gorm"
	"github.com/campusflow/cert-api/common/util"
	"github.com/campusflow/cert-api/internal/generator"
	"github.com/campusflow/cert-api/internal/renderer"
	"github.com/campusflow/cert-api/internal/scheduler"
	"github.com/campusflow/cert-api/internal/store"
	"github.com/robfig/cron/v3"
)

const defaultBatchSchedule = "0 2 * * *"

func main() {
	isMigrate := flag.Bool("Migrate", false, "Run database migration")
	isRunAfter := flag.Bool("Run", false, "Run after migration")
	flag.Parse()

	config.LoadConfig()
	gorm.InitGorm()

	if *isMigrate {
		gorm.Migrate()
		if !*isRunAfter {
			return
		}
	}

	if err := util.InitMinIO(); err != nil {
		slog.Error("Failed to initialize MinIO mirror", "error", err)
		os.Exit(1)
	}
	util.InitDialer()

	certRepo := certificatemodel.NewCertificateRepository(common.Gorm)
	eventRepo := eventmodel.NewEventRepository(common.Gorm)
	userRepo := usermodel.NewUserRepository(common.Gorm)

	certStore, err := store.NewCertificateStore(*common.Config.CertificateDir)
	if err != nil {
		slog.Error("Failed to initialize certificate store", "error", err)
		os.Exit(1)
	}

	watermarkPath := ""
	if common.Config.WatermarkPath != nil {
		watermarkPath = *common.Config.WatermarkPath
	}
	certRenderer := renderer.NewCertificateRenderer(watermarkPath)

	signer, err := renderer.NewCertificateSigner()
	if err != nil {
		slog.Warn("Failed to initialize PDF signer, signatures will be disabled", "error", err)
		signer = nil
	}

	engine := generator.NewEngine(certRenderer, signer, certStore, *common.Config.FrontendURL)

	var notifier scheduler.Notifier
	if common.Dialer != nil {
		notifier = util.NewMailNotifier()
	}

	batch := scheduler.NewScheduler(eventRepo, certRepo, engine, notifier, *common.Config.FrontendURL)

	schedule := defaultBatchSchedule
	if common.Config.BatchSchedule != nil {
		schedule = *common.Config.BatchSchedule
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if _, err := batch.RunBatch(context.Background()); err != nil && !errors.Is(err, scheduler.ErrBatchRunning) {
			slog.Error("Scheduled certificate batch failed", "error", err)
		}
	}); err != nil {
		slog.Error("Invalid batch schedule", "error", err, "schedule", schedule)
		os.Exit(1)
	}
	c.Start()
	slog.Info("Certificate batch scheduled", "schedule", schedule)

	controller := certificate_controller.NewCertificateController(certRepo, eventRepo, userRepo, engine, certStore, batch)

	api.InitFiber(controller)
}
