// Package app wires the HTTP surface together
package app

import (
	"fmt"
	"time"

	"hexanotes/notes-api/app/auth"
	"hexanotes/notes-api/app/notes"
	"hexanotes/notes-api/app/root"
	"hexanotes/notes-api/db"
	"hexanotes/notes-api/internal"
	"hexanotes/notes-api/internal/otp"
	"hexanotes/notes-api/internal/service"
	"hexanotes/notes-api/pkg/middleware"

	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	d := &internal.Deps{
		OTP:  otp.NewStore(time.Duration(viper.GetInt("otp.ttl_minutes"))*time.Minute, time.Minute),
		Mail: service.NewSMTPMailer(),
	}

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	d.DB = database

	return NewRouterWithDeps(d), nil
}

// NewRouterWithDeps assembles the gin engine around already-built
// dependencies. Split from NewRouter so tests can inject an in-memory
// database and a capturing mailer.
func NewRouterWithDeps(d *internal.Deps) *gin.Engine {
	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors_origins"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("requestID", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware()
	rateLimit := viper.GetInt("security.rate_limit")
	rateLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: rateLimit,
		Burst:             rateLimit * 2,
	})

	m := router.Group("/api", rateLimiter, middleware.BodySizeLimiter(1<<20))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// GET /api/validate		-> Validates a JWT token
		m.GET("/validate", jwt, root.Validate)
	}

	a := m.Group("/auth")
	{
		// POST /api/auth/send-otp	-> Issues an OTP and mails it
		a.POST("/send-otp", func(c *gin.Context) { auth.SendOTP(c, d) })

		// POST /api/auth/login		-> Trades an OTP for a bearer token
		a.POST("/login", func(c *gin.Context) { auth.Login(c, d) })

		// POST /api/auth/signup	-> Creates a user, returns a bearer token
		a.POST("/signup", func(c *gin.Context) { auth.Signup(c, d) })
	}

	n := m.Group("/notes", jwt)
	{
		// GET /api/notes/fetchallnotes		-> Returns the caller's notes
		n.GET("/fetchallnotes", func(c *gin.Context) { notes.FetchAll(c, d) })

		// POST /api/notes/addnote		-> Creates a note
		n.POST("/addnote", func(c *gin.Context) { notes.Add(c, d) })

		// PUT /api/notes/updatenote/:id	-> Partially updates an owned note
		n.PUT("/updatenote/:id", func(c *gin.Context) { notes.Update(c, d) })

		// DELETE /api/notes/deletenote/:id	-> Deletes an owned note
		n.DELETE("/deletenote/:id", func(c *gin.Context) { notes.Delete(c, d) })
	}

	return router
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()

	var level zapcore.Level
	if err := level.Set(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
