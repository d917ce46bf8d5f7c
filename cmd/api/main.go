package main

import (
	"context"
	"log"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/seed"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無ければ環境変数だけで動く
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	//migrate
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Item{},
		&model.Table{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	itemRepo := infraRepo.NewItemGormRepository(gormDB)
	tableRepo := infraRepo.NewTableGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//seed
	ctx := context.Background()
	if err := seed.Tables(ctx, cfg, tableRepo); err != nil {
		log.Fatalf("seed tables failed: %v", err)
	}
	if err := seed.Staff(ctx, cfg, userRepo); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator())
	catalogUC := usecase.NewCatalogUsecase(itemRepo, categoryRepo, validator.NewItemValidator())
	cartUC := usecase.NewCartUsecase(cartItemRepo, itemRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager)
	tableUC := usecase.NewTableUsecase(tableRepo)
	orderUC := usecase.NewOrderUsecase(txManager, userRepo)
	staffUC := usecase.NewStaffUsecase(userRepo)

	//Handler生成
	authH := handler.NewAuthHandler(authUC, cfg)
	itemH := handler.NewItemHandler(catalogUC)
	cartH := handler.NewCartHandler(cartUC)
	checkoutH := handler.NewCheckoutHandler(checkoutUC, tableUC)
	orderH := handler.NewOrderHandler(orderUC)
	staffH := handler.NewStaffHandler(catalogUC, orderUC, staffUC)

	//Server起動
	e := server.New(cfg, userRepo, authH, itemH, cartH, checkoutH, orderH, staffH)

	addr := ":" + cfg.Port
	e.Logger.Fatal(e.Start(addr))
}
