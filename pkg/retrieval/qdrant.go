package retrieval

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"
)

const defaultTopK = 5

// Embedder turns a query into a vector. The engine does not care how;
// deployments typically point this at their embedding model.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// QdrantSearcher retrieves documents from a Qdrant collection.
type QdrantSearcher struct {
	client     *qdrant.Client
	embedder   Embedder
	collection string
}

// QdrantConfig holds Qdrant connection settings.
type QdrantConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	APIKey     string `yaml:"api_key"`
	UseTLS     bool   `yaml:"use_tls"`
	Collection string `yaml:"collection"`
}

// NewQdrantSearcher connects to Qdrant and returns a Searcher over the
// configured collection.
func NewQdrantSearcher(cfg QdrantConfig, embedder Embedder) (*QdrantSearcher, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
		UseTLS: cfg.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}
	return &QdrantSearcher{
		client:     client,
		embedder:   embedder,
		collection: cfg.Collection,
	}, nil
}

// Search implements Searcher. Content filters are applied on the payload
// after retrieval; the vector search over-fetches to compensate.
func (s *QdrantSearcher) Search(ctx context.Context, req SearchRequest) ([]Document, error) {
	query := req.Query
	if req.ConversationContext != "" {
		query = req.ConversationContext + "\n" + query
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	topK := req.TopK
	if topK <= 0 {
		topK = defaultTopK
	}
	fetch := topK
	if len(req.ContentFilters) > 0 {
		fetch = topK * 4
	}

	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(fetch)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("qdrant query failed: %w", err)
	}

	docs := make([]Document, 0, topK)
	for _, point := range points {
		doc := Document{Metadata: map[string]any{"score": float64(point.Score)}}
		for key, value := range point.Payload {
			switch key {
			case "content":
				doc.Content = value.GetStringValue()
			default:
				doc.Metadata[key] = payloadValue(value)
			}
		}
		if !MatchesFilters(doc, req.ContentFilters) {
			continue
		}
		docs = append(docs, doc)
		if len(docs) == topK {
			break
		}
	}
	return docs, nil
}

func payloadValue(v *qdrant.Value) any {
	switch kind := v.GetKind().(type) {
	case *qdrant.Value_StringValue:
		return kind.StringValue
	case *qdrant.Value_IntegerValue:
		return kind.IntegerValue
	case *qdrant.Value_DoubleValue:
		return kind.DoubleValue
	case *qdrant.Value_BoolValue:
		return kind.BoolValue
	default:
		return v.String()
	}
}
