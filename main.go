package main

import (
	"log"
	"os"

	"fitplanhub-backend/cache"
	"fitplanhub-backend/db"
	_ "fitplanhub-backend/docs"
	"fitplanhub-backend/routes"
	"fitplanhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title API FitPlanHub Backend
// @version 1.0
// @description API pour la marketplace fitness FitPlanHub
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Entrez le JWT avec le préfixe Bearer: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	cache.InitRedis()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Avertissement: Initialisation de Cloudinary a échoué: %v", err)
		log.Println("Le téléchargement d'images ne fonctionnera pas correctement.")
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
