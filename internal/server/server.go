package server

import (
	"context"
	"net/http"
	"time"

	"github.com/DanielePL/Prometheus-Gym-Suite/internal/alert"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/auth"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/coach"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/config"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/dashboard"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/gym"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/member"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/message"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/notify"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/payment"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/session"
	"github.com/DanielePL/Prometheus-Gym-Suite/internal/visit"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, rdb redis.Cmdable, cfg *config.Config, notifier *notify.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	gymRepo := gym.NewRepository(db)
	memberRepo := member.NewRepository(db)
	coachRepo := coach.NewRepository(db)
	visitRepo := visit.NewRepository(db)
	paymentRepo := payment.NewRepository(db)
	sessionRepo := session.NewRepository(db)
	messageRepo := message.NewRepository(db)
	alertRepo := alert.NewRepository(db)

	gymService := gym.NewService(gymRepo)
	coachService := coach.NewService(coachRepo)
	memberService := member.NewService(memberRepo, coachService)
	visitService := visit.NewService(visitRepo, memberRepo, rdb, cfg.VisitDedupeWindow)
	alertService := alert.NewService(alertRepo, gymRepo, notifier)
	paymentService := payment.NewService(paymentRepo, memberRepo, coachService, alertService)
	sessionService := session.NewService(sessionRepo, coachService)
	messageService := message.NewService(messageRepo)
	dashboardService := dashboard.NewService(memberRepo, paymentRepo, sessionService, alertRepo)

	gymHandler := gym.NewHandler(gymService)
	coachHandler := coach.NewHandler(coachService)
	memberHandler := member.NewHandler(memberService)
	visitHandler := visit.NewHandler(visitService)
	paymentHandler := payment.NewHandler(paymentService)
	sessionHandler := session.NewHandler(sessionService)
	messageHandler := message.NewHandler(messageService)
	alertHandler := alert.NewHandler(alertService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/dashboard", dashboardHandler.GetSnapshot)

		protected.POST("/members", memberHandler.CreateMember)
		protected.GET("/members", memberHandler.ListMembers)
		protected.GET("/members/:memberID", memberHandler.GetMember)
		protected.PUT("/members/:memberID", memberHandler.UpdateMember)
		protected.DELETE("/members/:memberID", memberHandler.DeleteMember)
		protected.POST("/members/:memberID/visits", visitHandler.CheckIn)
		protected.GET("/members/:memberID/visits", visitHandler.ListVisits)

		protected.POST("/coaches", coachHandler.CreateCoach)
		protected.GET("/coaches", coachHandler.ListCoaches)
		protected.GET("/coaches/:coachID", coachHandler.GetCoach)
		protected.PUT("/coaches/:coachID", coachHandler.UpdateCoach)

		protected.POST("/sessions", sessionHandler.CreateSession)
		protected.GET("/sessions", sessionHandler.ListSessions)
		protected.PATCH("/sessions/:sessionID/status", sessionHandler.UpdateStatus)

		protected.POST("/payments", paymentHandler.CreatePayment)
		protected.GET("/payments", paymentHandler.ListPayments)
		protected.GET("/payments/summary", paymentHandler.Summary)
		protected.GET("/payments/revenue-by-month", paymentHandler.RevenueByMonth)
		protected.POST("/payments/:paymentID/mark-paid", paymentHandler.MarkPaid)
		protected.POST("/payments/:paymentID/mark-overdue", paymentHandler.MarkOverdue)

		protected.POST("/messages", messageHandler.Send)
		protected.GET("/messages", messageHandler.Inbox)
		protected.GET("/messages/unread-count", messageHandler.UnreadCount)
		protected.POST("/messages/:messageID/read", messageHandler.MarkRead)

		protected.GET("/alerts/unread", alertHandler.ListUnread)
		protected.POST("/alerts/:alertID/read", alertHandler.MarkRead)
		protected.POST("/alerts/read-all", alertHandler.MarkAllRead)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/gyms", gymHandler.CreateGym)
		admin.GET("/gyms", gymHandler.ListGyms)
		admin.GET("/gyms/:gymID", gymHandler.GetGym)
		admin.POST("/coaches/:coachID/recalculate", coachHandler.Recalculate)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
