package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"
	"vacation-calendar-bot/internal/config"
	"vacation-calendar-bot/internal/handler"
	"vacation-calendar-bot/internal/repository"
	"vacation-calendar-bot/internal/service"
	"vacation-calendar-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.SetLevel(cfg.LogLevel)
	logrus.Info("Config initialized...")

	// vacation dates are stored as UTC midnights, keep timestamps in UTC too
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}
	// sqlite allows one writer at a time
	sqlDB.SetMaxOpenConns(1)

	employeeRepo, err := repository.NewGormEmployeeRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create employee repository")
	}

	vacationRepo, err := repository.NewGormVacationRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create vacation repository")
	}

	userRepo, err := repository.NewGormUserRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create user repository")
	}

	employeeService := service.NewEmployeeService(employeeRepo)
	vacationService := service.NewVacationService(vacationRepo)
	calendarService := service.NewCalendarService(vacationRepo, employeeRepo)
	userService := service.NewUserService(userRepo, employeeRepo)

	if err := employeeService.SeedEmployees(cfg.SeedEmployees); err != nil {
		logrus.WithError(err).Fatal("Failed to seed employees")
	}

	if err := userService.InitializeManagers(cfg.ManagerChatIDs); err != nil {
		logrus.Infof("Warning: Failed to initialize managers: %v", err)
	} else if len(cfg.ManagerChatIDs) > 0 {
		logrus.Infof("Managers initialized with chat IDs: %v", cfg.ManagerChatIDs)
	}

	client, err := telegram.NewClient(cfg.TelegramToken, cfg.BotDebug)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		userService,
		employeeService,
		vacationService,
		calendarService,
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(client.Updates())

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	client.Stop()

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
