package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/marcelsud/github-webhook-counter/counter"
)

/* DynamoDB implementation of counter.Store
 * Items are keyed by the "date" string attribute and hold "eventCount".
 * Increment is one UpdateItem with if_not_exists, so DynamoDB applies it atomically.
 */

const (
	keyAttribute   = "date"
	countAttribute = "eventCount"

	incrementExpression = "SET eventCount = if_not_exists(eventCount, :zero) + :one"
)

// API is the subset of the DynamoDB client used by the store
type API interface {
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

type item struct {
	Date       string `dynamodbav:"date"`
	EventCount int64  `dynamodbav:"eventCount"`
}

type Store struct {
	client API
	table  string
}

// NewStore creates a store over an existing client
func NewStore(client API, table string) *Store {
	return &Store{
		client: client,
		table:  table,
	}
}

// NewStoreFromConfig builds the DynamoDB client from an AWS config.
// endpoint overrides the service URL, e.g. for DynamoDB Local.
func NewStoreFromConfig(cfg aws.Config, table, endpoint string) *Store {
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return NewStore(client, table)
}

// Increment adds one to eventCount for date, creating the item when absent
func (s *Store) Increment(ctx context.Context, date string) (counter.Record, error) {
	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			keyAttribute: &types.AttributeValueMemberS{Value: date},
		},
		UpdateExpression: aws.String(incrementExpression),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": &types.AttributeValueMemberN{Value: "0"},
			":one":  &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return counter.Record{}, fmt.Errorf("updating item in %s: %w", s.table, err)
	}

	var it item
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return counter.Record{}, fmt.Errorf("unmarshaling item: %w", err)
	}
	return counter.Record{Date: date, Count: it.EventCount}, nil
}

// Get returns the count for date, zero when the item does not exist
func (s *Store) Get(ctx context.Context, date string) (counter.Record, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			keyAttribute: &types.AttributeValueMemberS{Value: date},
		},
		ProjectionExpression: aws.String("#c"),
		ExpressionAttributeNames: map[string]string{
			"#c": countAttribute,
		},
	})
	if err != nil {
		return counter.Record{}, fmt.Errorf("getting item from %s: %w", s.table, err)
	}
	if len(out.Item) == 0 {
		return counter.Record{Date: date}, nil
	}

	var it item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return counter.Record{}, fmt.Errorf("unmarshaling item: %w", err)
	}
	return counter.Record{Date: date, Count: it.EventCount}, nil
}

// Close is a no-op, the SDK client holds no connection to release
func (s *Store) Close(ctx context.Context) error {
	return nil
}
