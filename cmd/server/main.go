package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Nishan123/yumm-ai/catalog"
	"github.com/Nishan123/yumm-ai/config"
	"github.com/Nishan123/yumm-ai/controllers"
	"github.com/Nishan123/yumm-ai/database"
	"github.com/Nishan123/yumm-ai/imagegen"
	"github.com/Nishan123/yumm-ai/jobs"
	"github.com/Nishan123/yumm-ai/llm"
	"github.com/Nishan123/yumm-ai/logger"
	"github.com/Nishan123/yumm-ai/repository"
	"github.com/Nishan123/yumm-ai/routes"
	"github.com/Nishan123/yumm-ai/services"
	"github.com/Nishan123/yumm-ai/storage"
)

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using system env vars")
	}

	cfg, err := config.ReadConfig(config.GetEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		logger.Fatal("failed to read config", zap.Error(err))
	}

	db, err := database.NewPostgres(cfg.PostgresConfig)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	catalogs, err := catalog.Load(
		config.GetEnv("INGREDIENTS_PATH", "data/ingredients.json"),
		config.GetEnv("KITCHEN_TOOLS_PATH", "data/kitchen_tools.json"),
	)
	if err != nil {
		logger.Fatal("failed to load catalogs", zap.Error(err))
	}

	recipeRepo := repository.NewRecipeRepo(db)
	cookbookRepo := repository.NewCookbookRepo(db)
	userRepo := repository.NewUserRepo(db)

	ephemeral := services.NewEphemeralCache()
	generator := services.NewGenerationService(
		llm.NewClient(),
		imagegen.NewClient(),
		storage.NewUploader(),
		recipeRepo,
		catalogs,
	)
	resolver := services.NewRecipeResolver(recipeRepo, cookbookRepo, ephemeral)
	auth := services.NewAuthService(userRepo)

	broker := jobs.GetBroker()

	authController := controllers.NewAuthController(auth, []byte(cfg.JWTSecretKey))
	recipeController := controllers.NewRecipeController(generator, resolver, recipeRepo, ephemeral, broker)
	cookbookController := controllers.NewCookbookController(resolver, cookbookRepo)

	r := routes.SetupRouter(cfg, authController, recipeController, cookbookController)

	port := config.GetEnv("PORT", "8080")
	logger.Info("Server starting", zap.String("port", port))
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Error("Server failed to start", zap.Error(err))
	}
}
