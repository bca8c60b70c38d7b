package app

import (
	"fmt"

	"github.com/monjauro/app/internal/config"
	"github.com/monjauro/app/internal/service"
	"github.com/monjauro/app/internal/service/payment"
	"github.com/monjauro/app/internal/store"
)

type App struct {
	Cfg            *config.Config
	Store          store.Store
	TrackerService *service.TrackerService
	ProfileService *service.ProfileService
	PaymentService payment.Provider
	LegalService   *service.LegalService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize persistence
	st, err := store.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %v", err)
	}

	// Payment provider based on config
	paymentProvider, err := payment.NewProvider(cfg.PaymentProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment provider: %v", err)
	}

	// Services
	trackerService := service.NewTrackerService(st, st)
	profileService := service.NewProfileService(st)
	legalService := service.NewLegalService(cfg.ContentPath)

	// Seed the profile slot on first start
	err = profileService.InitializeDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize profile: %v", err)
	}

	return &App{
		Cfg:            cfg,
		Store:          st,
		TrackerService: trackerService,
		ProfileService: profileService,
		PaymentService: paymentProvider,
		LegalService:   legalService,
	}, nil
}

func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
