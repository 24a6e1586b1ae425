// Package embedding computes text embeddings with the watsonx.ai embedding
// service and compares them.
//
// # Overview
//
// The package exposes a single public entrypoint, Client, which hides the
// HTTP details, IAM authentication and request parameters of the service.
//
//	cfg, err := embedding.NewConfig()
//	client, err := embedding.NewClient(cfg)
//
// All texts of a call are sent in one request and the embeddings come back
// in input order:
//
//	q, err := client.GetQueryEmbedding(ctx, "What is a data mart?")
//	vs, err := client.GetTextsEmbedding(ctx, []string{"a", "b"})
//	ds, err := client.GetDocumentsEmbedding(ctx, docs)
//
// # Configuration
//
// Config is read from the environment:
//
//	WATSONX_EMBEDDING_API_KEY                 IBM Cloud API key (required)
//	WATSONX_EMBEDDING_URL                     service URL, e.g. https://us-south.ml.cloud.ibm.com (required)
//	WATSONX_EMBEDDING_PROJECT_ID              project id (one of project/space is required)
//	WATSONX_EMBEDDING_SPACE_ID                space id
//	WATSONX_EMBEDDING_MODEL                   default ibm/slate-30m-english-rtrvr
//	WATSONX_EMBEDDING_TRUNCATE_INPUT_TOKENS   default 512
//	WATSONX_EMBEDDING_VERSION                 API version date, default 2023-10-25
//	WATSONX_EMBEDDING_TIMEOUT                 default 30s
//
// When both ids are set the project id is used.
//
// # Similarity
//
// Similarity compares two embeddings of equal length. Higher is always more
// similar:
//
//   - SimilarityCosine (default): dot product over the product of the norms;
//   - SimilarityDotProduct: the raw inner product;
//   - SimilarityEuclidean: the negated Euclidean distance.
//
// # Fx
//
// FXModule provides *Config and *Client.
package embedding
