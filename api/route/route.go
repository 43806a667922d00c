package route

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ninesong/wordcloud/api/route/route_word_cloud"
	"github.com/ninesong/wordcloud/bootstrap"
	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_models"
)

// Setup registers every serve-mode route on the engine.
func Setup(app *bootstrap.Application, engine *gin.Engine) error {
	if path := app.Env.StylesheetPath; path != "" {
		engine.StaticFile("/"+word_cloud_models.StylesheetName, path)
		log.Printf("serving %s from %s", word_cloud_models.StylesheetName, path)
	}

	publicRouter := engine.Group("/api")
	return route_word_cloud.NewWordCloudRouter(app, publicRouter)
}
