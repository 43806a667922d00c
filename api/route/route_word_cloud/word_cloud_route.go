package route_word_cloud

import (
	"github.com/gin-gonic/gin"

	"github.com/ninesong/wordcloud/api/controller/controller_word_cloud"
	"github.com/ninesong/wordcloud/bootstrap"
)

func NewWordCloudRouter(
	app *bootstrap.Application,
	group *gin.RouterGroup,
) error {
	repoWordCloud := app.WordCloudRepository(true)
	usecase, err := app.NewWordCloudUsecase(repoWordCloud)
	if err != nil {
		return err
	}
	ctrl := controller_word_cloud.NewWordCloudController(usecase)

	wordCloudGroup := group.Group("/word_cloud")
	{
		wordCloudGroup.GET("", ctrl.GetAllWordCloudHandler)
		wordCloudGroup.GET("high", ctrl.GetHighFrequencyWordCloudHandler)
		wordCloudGroup.POST("generate", ctrl.GenerateHandler)
	}
	return nil
}
