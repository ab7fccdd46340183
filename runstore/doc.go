// Package runstore records a ledger of clustering runs.
//
// Each run is stored as a Record keyed by a random UUID. DynamoStore keeps
// the ledger in a DynamoDB table; MemoryStore serves tests and dry runs.
//
// Table schema for DynamoStore:
//   - Partition key: run_id (string)
//
// Create table with:
//
//	aws dynamodb create-table \
//	  --table-name kmeans-runs \
//	  --attribute-definitions AttributeName=run_id,AttributeType=S \
//	  --key-schema AttributeName=run_id,KeyType=HASH \
//	  --billing-mode PAY_PER_REQUEST
package runstore
