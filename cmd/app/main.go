package main

import (
	"log"

	"github.com/csestrada2005/puebla-barf-connect-sub001/external/abstractapi"
	"github.com/csestrada2005/puebla-barf-connect-sub001/external/gateway"
	"github.com/csestrada2005/puebla-barf-connect-sub001/external/resend"
	"github.com/csestrada2005/puebla-barf-connect-sub001/external/sheets"
	"github.com/csestrada2005/puebla-barf-connect-sub001/external/storage"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/config"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/db"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/middleware"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/repository"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	auth := middleware.NewAuth(cfg.JWTSecret)

	// ======================
	// EXTERNALS
	// ======================
	gw, err := gateway.NewClient(cfg.GatewayAPIKey, cfg.GatewayBaseURL)
	if err != nil {
		log.Fatal(err)
	}

	var emailValidator services.EmailValidator
	if cfg.UseEmailReputation {
		emailValidator, err = abstractapi.NewAbstractReputationValidator(cfg.AbstractAPIKey)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		emailValidator = services.NewLocalValidator()
	}

	var forwarder *sheets.Forwarder
	if cfg.SheetsWebhookURL != "" {
		forwarder, err = sheets.NewForwarder(cfg.SheetsWebhookURL)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("SHEETS_WEBHOOK_URL not set, order sync disabled")
	}

	var mailer *resend.ResendMailer
	if cfg.ResendAPIKey != "" {
		mailer, err = resend.NewResendMailer(cfg.ResendAPIKey, "BARF Connect<pedidos@barfconnect.mx>")
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("RESEND_API_KEY not set, confirmation emails disabled")
	}

	var photoStorage *storage.Client
	if cfg.StorageURL != "" {
		photoStorage, err = storage.NewClient(cfg.StorageURL, cfg.StorageServiceKey, cfg.StorageBucket)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("STORAGE_URL not set, delivery photo uploads disabled")
	}

	// ======================
	// REPOSITORIES
	// ======================
	authRepo := repository.NewAuthRepository(pool)
	customerRepo := repository.NewCustomerRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	zoneRepo := repository.NewZoneRepository(pool)
	diagnosisRepo := repository.NewDiagnosisRepository(pool)
	photoRepo := repository.NewDeliveryPhotoRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(authRepo, customerRepo, emailValidator, auth)
	customerSvc := services.NewCustomerService(customerRepo)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(cartRepo, customerRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo, customerRepo, zoneRepo, gw, forwarder, mailer, logger)
	coverageSvc := services.NewCoverageService(zoneRepo)
	diagnosisSvc := services.NewDiagnosisService(diagnosisRepo, productRepo)
	paymentSvc := services.NewPaymentService(orderRepo, cfg.GatewayAPIKey, cfg.GatewayHMACSecret, logger)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/barf-connect")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc)
	registerCustomerRoutes(api, customerSvc, auth)
	registerProductRoutes(api, productSvc)
	registerCartRoutes(api, cartSvc, auth)
	registerOrderRoutes(api, orderSvc, auth)
	registerCoverageRoutes(api, coverageSvc)
	registerDiagnosisRoutes(api, diagnosisSvc)
	registerWebhookRoutes(api, paymentSvc, forwarder, cfg.MaskStoreFailures, logger)

	if photoStorage != nil {
		deliverySvc := services.NewDeliveryService(photoRepo, orderRepo, photoStorage, logger)
		registerDeliveryRoutes(api, deliverySvc, auth)
	}

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
