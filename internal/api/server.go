package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/doarbem/donation-api/docs"
	v1 "github.com/doarbem/donation-api/internal/api/handler/v1"
	"github.com/doarbem/donation-api/internal/api/middleware"
	"github.com/doarbem/donation-api/internal/cache"
	"github.com/doarbem/donation-api/internal/config"
	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/mail"
	"github.com/doarbem/donation-api/internal/repository"
	"github.com/doarbem/donation-api/internal/repository/dao"
	"github.com/doarbem/donation-api/internal/service"
	"github.com/doarbem/donation-api/internal/storage"
)

type Server struct {
	Config *config.Config
	Router *gin.Engine

	cache     *cache.Cache
	mailQueue mail.Queue
	store     *storage.FileStore
	signer    *storage.URLSigner
}

func NewServer(conf *config.Config, db *gorm.DB, c *cache.Cache, queue mail.Queue, store *storage.FileStore, signer *storage.URLSigner) *Server {
	engine := gin.New()

	s := &Server{
		Config:    conf,
		Router:    engine,
		cache:     c,
		mailQueue: queue,
		store:     store,
		signer:    signer,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	adminHandler := s.initAdminHandler(db)
	donorHandler := s.initDonorHandler(db)
	campaignHandler := s.initCampaignHandler(db)
	donationHandler := s.initDonationHandler(db)
	eventHandler := s.initEventHandler(db)
	newsHandler := s.initNewsHandler(db)
	howToHelpHandler := s.initHowToHelpHandler(db)
	newsletterHandler := s.initNewsletterHandler(db)
	fileHandler := s.initFileHandler()
	mailHandler := s.initMailHandler()
	metricsHandler := s.initMetricsHandler(db)
	s.MountHandlers(
		authHandler,
		adminHandler,
		donorHandler,
		campaignHandler,
		donationHandler,
		eventHandler,
		newsHandler,
		howToHelpHandler,
		newsletterHandler,
		fileHandler,
		mailHandler,
		metricsHandler,
	)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	tokenRepo := repository.NewPasswordResetTokenRepository(dao.NewPasswordResetTokenDAO(db))
	svc := service.NewAuthService(userRepo, tokenRepo, s.mailQueue)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initAdminHandler(db *gorm.DB) *v1.AdminHandler {
	repo := repository.NewAdminRepository(dao.NewAdminDAO(db))
	svc := service.NewAdminService(repo)
	handler := v1.NewAdminHandler(svc)

	return handler
}

func (s *Server) initDonorHandler(db *gorm.DB) *v1.DonorHandler {
	repo := repository.NewDonorRepository(dao.NewDonorDAO(db))
	svc := service.NewDonorService(repo)
	handler := v1.NewDonorHandler(svc)

	return handler
}

func (s *Server) initCampaignHandler(db *gorm.DB) *v1.CampaignHandler {
	repo := repository.NewCampaignRepository(dao.NewCampaignDAO(db))
	svc := service.NewCampaignService(repo)
	adminSvc := service.NewAdminService(repository.NewAdminRepository(dao.NewAdminDAO(db)))
	handler := v1.NewCampaignHandler(svc, adminSvc)

	return handler
}

func (s *Server) initDonationHandler(db *gorm.DB) *v1.DonationHandler {
	repo := repository.NewDonationRepository(dao.NewDonationDAO(db))
	campaignRepo := repository.NewCampaignRepository(dao.NewCampaignDAO(db))
	donorRepo := repository.NewDonorRepository(dao.NewDonorDAO(db))
	svc := service.NewDonationService(repo, campaignRepo, donorRepo)
	handler := v1.NewDonationHandler(svc)

	return handler
}

func (s *Server) initEventHandler(db *gorm.DB) *v1.EventHandler {
	repo := repository.NewEventRepository(dao.NewEventDAO(db))
	svc := service.NewEventService(repo)
	handler := v1.NewEventHandler(svc)

	return handler
}

func (s *Server) initNewsHandler(db *gorm.DB) *v1.NewsHandler {
	repo := repository.NewNewsRepository(dao.NewNewsDAO(db))
	svc := service.NewNewsService(repo)
	handler := v1.NewNewsHandler(svc)

	return handler
}

func (s *Server) initHowToHelpHandler(db *gorm.DB) *v1.HowToHelpHandler {
	repo := repository.NewHowToHelpRepository(dao.NewHowToHelpDAO(db))
	svc := service.NewHowToHelpService(repo)
	handler := v1.NewHowToHelpHandler(svc)

	return handler
}

func (s *Server) initNewsletterHandler(db *gorm.DB) *v1.NewsletterHandler {
	repo := repository.NewNewsletterRepository(dao.NewNewsletterDAO(db))
	svc := service.NewNewsletterService(repo)
	handler := v1.NewNewsletterHandler(svc)

	return handler
}

func (s *Server) initFileHandler() *v1.FileHandler {
	svc := service.NewFileService(s.store, s.signer)
	handler := v1.NewFileHandler(svc)

	return handler
}

func (s *Server) initMailHandler() *v1.MailHandler {
	svc := service.NewMailService(s.mailQueue)
	handler := v1.NewMailHandler(svc)

	return handler
}

func (s *Server) initMetricsHandler(db *gorm.DB) *v1.MetricsHandler {
	repo := repository.NewMetricsRepository(dao.NewMetricsDAO(db))
	svc := service.NewMetricsService(repo, s.cache)
	handler := v1.NewMetricsHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.CORS(s.Config.API.AllowedOrigins))
	s.Router.Use(middleware.Metrics())

	if s.Config.API.RateLimitRPS > 0 {
		s.Router.Use(middleware.RateLimit(rate.Limit(s.Config.API.RateLimitRPS), s.Config.API.RateLimitBurst))
	}
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	adminHandler *v1.AdminHandler,
	donorHandler *v1.DonorHandler,
	campaignHandler *v1.CampaignHandler,
	donationHandler *v1.DonationHandler,
	eventHandler *v1.EventHandler,
	newsHandler *v1.NewsHandler,
	howToHelpHandler *v1.HowToHelpHandler,
	newsletterHandler *v1.NewsletterHandler,
	fileHandler *v1.FileHandler,
	mailHandler *v1.MailHandler,
	metricsHandler *v1.MetricsHandler,
) {
	const basePath = "/api/v1"

	healthHandler := v1.NewHealthHandler()
	s.Router.GET("/ping", healthHandler.HandlePing)
	s.Router.GET("/health", healthHandler.HandleHealth)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)
		public.POST("/donors/signup", donorHandler.HandleSignup)
		public.POST("/newsletter", newsletterHandler.HandleSubscribe)

		public.GET("/campaigns", campaignHandler.HandleListCampaigns)
		public.GET("/campaigns/root", campaignHandler.HandleGetRootCampaign)
		public.GET("/campaigns/:id", campaignHandler.HandleGetCampaign)
		public.GET("/events", eventHandler.HandleListEvents)
		public.GET("/events/:id", eventHandler.HandleGetEvent)
		public.GET("/news", newsHandler.HandleListNews)
		public.GET("/news/:id", newsHandler.HandleGetNews)
		public.GET("/how-to-help", howToHelpHandler.HandleListEntries)
		public.GET("/how-to-help/:id", howToHelpHandler.HandleGetEntry)

		public.GET("/files/download", fileHandler.HandleDownload)
	}

	// Password reset is rate limited per IP so codes cannot be brute-forced.
	reset := s.Router.Group(basePath, middleware.RateLimitPerIP(1, 5))
	{
		reset.POST("/auth/send-password-reset-token", authHandler.HandleSendResetToken)
		reset.POST("/auth/verify-code", authHandler.HandleVerifyCode)
		reset.POST("/auth/reset-password", authHandler.HandleResetPassword)
	}

	authed := s.Router.Group(basePath, middleware.BearerAuth(s.Config.API.JWTSigningKey))
	{
		authed.GET("/donors/me", donorHandler.HandleGetMe)
		authed.GET("/donors/:id", donorHandler.HandleGetDonor)
		authed.PUT("/donors/:id", donorHandler.HandleUpdateDonor)

		authed.POST("/donations", donationHandler.HandleCreateDonation)
		authed.GET("/donations/me", donationHandler.HandleListMyDonations)
		authed.GET("/donations/:id", donationHandler.HandleGetDonation)
	}

	admins := s.Router.Group(basePath,
		middleware.BearerAuth(s.Config.API.JWTSigningKey),
		middleware.RequireRole(domain.RoleAdmin),
	)
	{
		admins.POST("/admins", adminHandler.HandleCreateAdmin)
		admins.GET("/admins", adminHandler.HandleListAdmins)
		admins.GET("/admins/me", adminHandler.HandleGetMe)
		admins.GET("/admins/:id", adminHandler.HandleGetAdmin)
		admins.PUT("/admins/:id", adminHandler.HandleUpdateAdmin)
		admins.DELETE("/admins/:id", adminHandler.HandleDeleteAdmin)

		admins.GET("/donors", donorHandler.HandleListDonors)
		admins.DELETE("/donors/:id", donorHandler.HandleDeleteDonor)

		admins.GET("/donations", donationHandler.HandleListDonations)

		admins.POST("/campaigns", campaignHandler.HandleCreateCampaign)
		admins.PUT("/campaigns/:id", campaignHandler.HandleUpdateCampaign)
		admins.PUT("/campaigns/:id/root", campaignHandler.HandleSetRootCampaign)
		admins.DELETE("/campaigns/:id", campaignHandler.HandleDeleteCampaign)

		admins.POST("/events", eventHandler.HandleCreateEvent)
		admins.PUT("/events/:id", eventHandler.HandleUpdateEvent)
		admins.DELETE("/events/:id", eventHandler.HandleDeleteEvent)

		admins.POST("/news", newsHandler.HandleCreateNews)
		admins.PUT("/news/:id", newsHandler.HandleUpdateNews)
		admins.DELETE("/news/:id", newsHandler.HandleDeleteNews)

		admins.POST("/how-to-help", howToHelpHandler.HandleCreateEntry)
		admins.PUT("/how-to-help/:id", howToHelpHandler.HandleUpdateEntry)
		admins.DELETE("/how-to-help/:id", howToHelpHandler.HandleDeleteEntry)

		admins.GET("/newsletter", newsletterHandler.HandleListSubscriptions)
		admins.DELETE("/newsletter/:id", newsletterHandler.HandleUnsubscribe)

		admins.POST("/files", fileHandler.HandleUpload)
		admins.GET("/files", fileHandler.HandleFetch)
		admins.DELETE("/files", fileHandler.HandleDelete)

		admins.POST("/mail", mailHandler.HandleSendMail)

		admins.GET("/metrics/summary", metricsHandler.HandleSummary)
		admins.GET("/metrics/donors", metricsHandler.HandleDonorDistribution)
		admins.GET("/metrics/payment-methods", metricsHandler.HandlePaymentMethods)
		admins.GET("/metrics/raised", metricsHandler.HandleRaisedByPeriod)
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Donation Platform API"
	docs.SwaggerInfo.Description = "REST backend for the donation management platform."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
