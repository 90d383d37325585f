package dynamostore

import (
	"context"
	"fmt"

	"github.com/Ricky294/perdict/driver/internal/aws/awsx"
	"github.com/Ricky294/perdict/driver/internal/aws/dynamox"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// document is an implementation of [store.Document] that reads and writes
// a single DynamoDB item.
type document struct {
	client    *dynamodb.Client
	onRequest func(any) []func(*dynamodb.Options)
	table     string
	name      string
}

func (d *document) Name() string {
	return d.name
}

func (d *document) Load(ctx context.Context) ([]byte, error) {
	out, err := awsx.Do(
		ctx,
		d.client.GetItem,
		d.onRequest,
		&dynamodb.GetItemInput{
			TableName:      aws.String(d.table),
			ConsistentRead: aws.Bool(true),
			Key: map[string]types.AttributeValue{
				nameAttr: &types.AttributeValueMemberS{Value: d.name},
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("cannot get document item: %w", err)
	}

	if out.Item == nil {
		return nil, nil
	}

	data, err := dynamox.AttrAs[*types.AttributeValueMemberB](out.Item, dataAttr)
	if err != nil {
		return nil, err
	}

	return data.Value, nil
}

func (d *document) Save(ctx context.Context, data []byte) error {
	if _, err := awsx.Do(
		ctx,
		d.client.PutItem,
		d.onRequest,
		&dynamodb.PutItemInput{
			TableName: aws.String(d.table),
			Item: map[string]types.AttributeValue{
				nameAttr: &types.AttributeValueMemberS{Value: d.name},
				dataAttr: &types.AttributeValueMemberB{Value: data},
			},
		},
	); err != nil {
		return fmt.Errorf("cannot put document item: %w", err)
	}

	return nil
}

func (d *document) Close() error {
	return nil
}
