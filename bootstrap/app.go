package bootstrap

import (
	"log"

	"github.com/ninesong/wordcloud/domain"
	"github.com/ninesong/wordcloud/domain/domain_file_entity"
	"github.com/ninesong/wordcloud/domain/domain_word_cloud/word_cloud_interface"
	"github.com/ninesong/wordcloud/mongo"
	"github.com/ninesong/wordcloud/repository/repository_word_cloud"
	"github.com/ninesong/wordcloud/usecase/usecase_word_cloud"
)

type Application struct {
	Env   *Env
	Mongo mongo.Client
}

// App loads configuration and, when DB_URI is set, connects to Mongo.
// A failed connection is logged and the application runs without it.
func App(configPath string) (*Application, error) {
	env, err := NewEnv(configPath)
	if err != nil {
		return nil, err
	}

	app := &Application{Env: env}
	if env.DBURI != "" {
		client, err := NewMongoDatabase(env)
		if err != nil {
			log.Printf("word cloud persistence disabled: %v", err)
		} else {
			app.Mongo = client
		}
	}
	return app, nil
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
	app.Mongo = nil
}

// Database returns the configured database, or nil without a connection.
func (app *Application) Database() mongo.Database {
	if app.Mongo == nil {
		return nil
	}
	return app.Mongo.Database(app.Env.DBName)
}

// WordCloudRepository picks the Mongo repository when connected. Otherwise
// it returns an in-memory one if memoryFallback is set, or nil.
func (app *Application) WordCloudRepository(memoryFallback bool) word_cloud_interface.WordCloudRepository {
	if db := app.Database(); db != nil {
		return repository_word_cloud.NewWordCloudRepository(db, domain.CollectionWordCloudEntries)
	}
	if memoryFallback {
		return repository_word_cloud.NewMemoryWordCloudRepository()
	}
	return nil
}

func (app *Application) NewWordCloudUsecase(
	repoWordCloud word_cloud_interface.WordCloudRepository,
) (word_cloud_interface.WordCloudUsecase, error) {
	repoSource, err := repository_word_cloud.NewSourceFileRepository(
		domain_file_entity.NewFileDetector(),
		app.Env.InputEncoding,
		app.Env.ShowProgress,
	)
	if err != nil {
		return nil, err
	}

	return usecase_word_cloud.NewWordCloudUsecase(
		repoSource,
		repository_word_cloud.NewPageFileRepository(),
		repoWordCloud,
		usecase_word_cloud.NewRenderer(usecase_word_cloud.NewColorPicker(app.Env.ColorSeed)),
		app.Env.Timeout(),
	), nil
}
