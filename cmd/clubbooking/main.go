// Package main запускает интерактивную систему бронирования клуба.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/mmeshcher/clubbooking-system/internal/config"
	"github.com/mmeshcher/clubbooking-system/internal/model"
	"github.com/mmeshcher/clubbooking-system/internal/repository"
	"github.com/mmeshcher/clubbooking-system/internal/service"
	"github.com/mmeshcher/clubbooking-system/internal/shell"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	repo := repository.NewMemoryRepository()

	svc := service.NewService(repo, cfg.UPIAddress)
	defer svc.Close()

	seed(svc)

	sh := shell.New(svc, os.Stdin, os.Stdout, logger)

	sugar.Infow("starting club booking shell", "upi_address", cfg.UPIAddress)

	if err := sh.Run(); err != nil {
		sugar.Fatalw("shell terminated with error", "error", err)
	}
}

// seed наполняет систему стартовыми пользователями и каталогом объектов.
func seed(svc *service.Service) {
	svc.Register("john", "1234")
	svc.Register("alice", "pass")

	svc.AddFacility(model.NewFacility(1, "Cricket Turf", 1200))
	svc.AddFacility(model.NewPremiumFacility(2, "Indoor Basketball Court", 1800, "Air-conditioned"))
	svc.AddFacility(model.NewFacility(3, "Pickleball Court", 900))
}
