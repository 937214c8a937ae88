package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"
	mongoclient "go.mongodb.org/mongo-driver/mongo"

	"github.com/kingrain94/usage-billing-api/internal/config"
	"github.com/kingrain94/usage-billing-api/internal/repository"
	"github.com/kingrain94/usage-billing-api/internal/repository/mongo"
	"github.com/kingrain94/usage-billing-api/internal/repository/opensearch"
	"github.com/kingrain94/usage-billing-api/internal/repository/postgres"
)

type compositeRepository struct {
	repository.PostgresRepository
	eventStore    repository.EventStoreRepository
	knowledgeBase repository.KnowledgeBaseRepository
}

type Clients struct {
	Databases   *config.DatabaseConnections
	Mongo       *mongoclient.Client
	MongoConfig *config.MongoConfig
	OpenSearch  *opensearchclient.Client
	OSConfig    *config.OpenSearchConfig
}

func NewCompositeRepository(clients Clients) repository.Repository {
	return &compositeRepository{
		PostgresRepository: postgres.NewPostgresRepository(clients.Databases),
		eventStore:         mongo.NewEventStoreFromClient(clients.Mongo, clients.MongoConfig),
		knowledgeBase:      opensearch.NewRepository(clients.OpenSearch, clients.OSConfig),
	}
}

func (r *compositeRepository) EventStore() repository.EventStoreRepository {
	return r.eventStore
}

func (r *compositeRepository) KnowledgeBase() repository.KnowledgeBaseRepository {
	return r.knowledgeBase
}
