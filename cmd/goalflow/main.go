package main

import (
	"fmt"
	"os"

	"github.com/kyawhtet1234/GoalFlow/internal/api"
	"github.com/kyawhtet1234/GoalFlow/internal/cli"
	"github.com/kyawhtet1234/GoalFlow/internal/config"
	"github.com/kyawhtet1234/GoalFlow/internal/logging"
	"github.com/kyawhtet1234/GoalFlow/internal/services"
)

func main() {
	logger := logging.Init()

	// Load configuration from defaults and environment
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Create the record store for the current environment
	factory := NewRepositoryFactory(getEnvironment(), cfg)
	repo, err := factory.CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	// Wire the stores and the orchestration layer
	timeService := services.NewTimeService()
	idGenerator := services.NewIDGenerator()

	container := &services.ServiceContainer{
		TimeService:      timeService,
		TaskService:      services.NewTaskService(repo, timeService, idGenerator, logger, cfg.Recurrence.WindowDays),
		CategoryService:  services.NewCategoryService(repo, idGenerator, logger),
		SalesGoalService: services.NewSalesGoalService(repo, timeService, logger, cfg.Sales.DefaultGoal),
	}
	businessAPI := api.NewBusinessAPI(container)

	root := cli.NewRootCommand(businessAPI, repo, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
