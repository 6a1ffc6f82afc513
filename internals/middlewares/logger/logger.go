package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request. reqid diisi middleware
// request-ID di main, jadi log akses bisa dikorelasikan dengan [REQ].
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] reqid=${locals:reqid} ${ip} ${method} ${path} ${status} ${latency}\n",
	})
}
