package configs

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file, using system ENV")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 running in Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET not set!")
	}
	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// =======================
// VENDOR SETTINGS
// =======================
// Settings carries every external-service credential read once at startup.
// Clients receive these by injection; nothing else reads os.Getenv for them.
type Settings struct {
	AIBaseURL  string
	AIAPIKey   string
	AIModel    string
	AIMaxRetry int

	SMSBaseURL string
	SMSAPIKey  string
	SMSSender  string

	PDFBaseURL string
	PDFAPIKey  string

	MidtransServerKey string

	PayrollCronSpec string
	DigestCronSpec  string
}

func LoadSettings() Settings {
	return Settings{
		AIBaseURL:  GetEnv("AI_BASE_URL", "https://api.openai.com/v1"),
		AIAPIKey:   GetEnv("AI_API_KEY"),
		AIModel:    GetEnv("AI_MODEL", "gpt-4o-mini"),
		AIMaxRetry: 3,

		SMSBaseURL: GetEnv("SMS_BASE_URL", "https://api.ng.termii.com"),
		SMSAPIKey:  GetEnv("SMS_API_KEY"),
		SMSSender:  GetEnv("SMS_SENDER_ID", "School360"),

		PDFBaseURL: GetEnv("PDF_BASE_URL", "https://api.pdfshift.io/v3"),
		PDFAPIKey:  GetEnv("PDF_API_KEY"),

		MidtransServerKey: GetEnv("MIDTRANS_SERVER_KEY"),

		PayrollCronSpec: GetEnv("PAYROLL_CRON", "0 6 28 * *"),
		DigestCronSpec:  GetEnv("DIGEST_CRON", "0 7 * * *"),
	}
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	switch {
	case err != nil && l.LogLevel >= gormLogger.Error:
		log.Printf("[SQL-ERROR] %s | %v | rows=%d | %s", utils.FileWithLineNum(), err, rows, sql)
	case elapsed > l.SlowThreshold && l.SlowThreshold != 0 && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SQL-SLOW] %s | %s | rows=%d | %s", utils.FileWithLineNum(), elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[SQL] %s | %s | rows=%d | %s", utils.FileWithLineNum(), elapsed, rows, sql)
	}
}
