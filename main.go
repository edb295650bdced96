package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/utils"

	"school360_backend/internals/configs"
	database "school360_backend/internals/databases"
	financeService "school360_backend/internals/features/finance/dva/service"
	payrollService "school360_backend/internals/features/payroll/service"
	reportService "school360_backend/internals/features/school/reports/service"
	middlewares "school360_backend/internals/middlewares"
	"school360_backend/internals/platform/ai"
	"school360_backend/internals/platform/pdf"
	"school360_backend/internals/platform/sms"
	routes "school360_backend/internals/route"
	"school360_backend/internals/scheduler"
)

func main() {
	configs.LoadEnv()
	settings := configs.LoadSettings()

	app := fiber.New(fiber.Config{
		// 🚀 fast JSON
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ base + performance middleware
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		// request timeout guard, aligned with the DB statement_timeout
		ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// 🤝 vendor clients, injected into services
	aiSvc := reportService.NewAIService(ai.NewClient(settings), settings.AIModel)
	smsClient := sms.NewClient(settings)
	payrollSvc := payrollService.NewPayrollService(database.DB, pdf.NewClient(settings))
	useMidtransProd, _ := strconv.ParseBool(configs.GetEnv("MIDTRANS_USE_PROD", "false"))
	financeSvc := financeService.NewVirtualAccountService(settings.MidtransServerKey, useMidtransProd)

	// ⏱ background jobs after DB is ready
	jobs := scheduler.New(database.DB, payrollSvc, smsClient, settings.PayrollCronSpec, settings.DigestCronSpec)
	if err := jobs.Start(); err != nil {
		log.Fatalf("scheduler: %v", err)
	}

	// ❤️ health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, routes.Deps{
		AI:      aiSvc,
		Payroll: payrollSvc,
		Finance: financeSvc,
		Sender:  smsClient,
	})

	// 🔒 server timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: stop cron, drain HTTP, close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	jobs.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
