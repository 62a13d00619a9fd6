package main

import (
	"strconv"
	"time"

	"farmmarket/internal/config"
	"farmmarket/internal/domain/model"
	"farmmarket/internal/handler"
	"farmmarket/internal/infra/db"
	infraRepo "farmmarket/internal/infra/repository"
	"farmmarket/internal/jobs"
	"farmmarket/internal/logging"
	"farmmarket/internal/notification"
	"farmmarket/internal/server"
	"farmmarket/internal/usecase"
	auth "farmmarket/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(userID int64, role model.Role, tokenVersion int, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": string(role),
		"tv":   tokenVersion,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envが無くても環境変数だけで起動できる
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.Init("farmmarket-api", cfg.LogFile)

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Farmer{},
		&model.Courier{},
		&model.Product{},
		&model.Order{},
		&model.WishlistItem{},
		&model.Notification{},
		&model.AuditLog{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	farmerRepo := infraRepo.NewFarmerGormRepository(gormDB)
	courierRepo := infraRepo.NewCourierGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	wishlistRepo := infraRepo.NewWishlistGormRepository(gormDB)
	notificationRepo := infraRepo.NewNotificationGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	codeGen := usecase.NewDeliveryCodeGenerator()

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//SMTP設定が無ければログだけのmailer
	var mailer notification.Mailer
	if cfg.SMTPHost != "" {
		mailer = notification.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		mailer = notification.NewLogMailer(logger)
	}

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(txManager, hasher, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	orderUC := usecase.NewOrderUsecase(txManager, customerRepo, courierRepo, farmerRepo, productRepo, orderRepo, codeGen, idGen, clock)
	dashboardUC := usecase.NewDashboardUsecase(farmerRepo, orderRepo, productRepo)
	productUC := usecase.NewProductUsecase(productRepo, farmerRepo)
	wishlistUC := usecase.NewWishlistUsecase(customerRepo, productRepo, wishlistRepo)

	//Handler生成
	authH := handler.NewAuthHandler(registerUC, loginUC)
	orderH := handler.NewOrderHandler(orderUC)
	farmerH := handler.NewFarmerHandler(orderUC, dashboardUC, productUC)
	productH := handler.NewProductHandler(productUC)
	wishlistH := handler.NewWishlistHandler(wishlistUC)

	//outboxを掃く送信ジョブ
	dispatchJob := jobs.NewNotificationDispatchJob(notificationRepo, mailer, logger)
	if err := dispatchJob.Start(); err != nil {
		panic(err)
	}
	defer dispatchJob.Stop()

	//Server起動
	e := server.New()
	authH.RegisterRoutes(e)
	orderH.RegisterRoutes(e, cfg, userRepo)
	farmerH.RegisterRoutes(e, cfg, userRepo)
	productH.RegisterRoutes(e)
	wishlistH.RegisterRoutes(e, cfg, userRepo)

	addr := ":" + cfg.Port
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := e.Start(addr); err != nil {
		panic(err)
	}
}
