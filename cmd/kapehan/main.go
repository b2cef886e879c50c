package main

import (
	"kapehan/internal/cart"
	"kapehan/internal/catalog"
	"kapehan/internal/config"
	"kapehan/internal/logger"
	"kapehan/internal/order"
	"kapehan/internal/session"
	"kapehan/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func buildModel(cfg *config.Config) ui.Model {
	catalogRepo := catalog.NewRepository()
	catalogSvc := catalog.NewService(catalogRepo)

	cartRepo := cart.NewRepository()
	cartSvc := cart.NewService(cartRepo, catalogRepo)

	orderSvc := order.NewService(cartSvc)

	approval := ui.NewApproval()
	sess := session.New(catalogSvc, cartSvc, orderSvc, approval)

	return ui.New(sess, approval, ui.Config{
		StoreName: cfg.StoreName,
		Currency:  cfg.Currency,
	})
}

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	logger.L().Info("kapehan ready", zap.String("store", cfg.StoreName))

	program := tea.NewProgram(buildModel(cfg))
	if _, err := program.Run(); err != nil {
		logger.L().Fatal("terminal UI failed", zap.Error(err))
	}
}
