package repository

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cloud-wave-best-zizon/backoffice-service/internal/domain"
	pkgconfig "github.com/cloud-wave-best-zizon/backoffice-service/pkg/config"
)

// keyAttr is the partition key shared by every table. Identifiers are
// caller-supplied strings.
const keyAttr = "id"

type attrValue = types.AttributeValue

func NewDynamoDBClient(cfg *pkgconfig.Config) (*dynamodb.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.LocalMode {
		// DynamoDB Local does not verify credentials, but the SDK insists
		// on having some.
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.LocalMode && cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

// SecondaryIndex declares a lookup index on a table. RangeKey is optional.
type SecondaryIndex struct {
	Name     string
	HashKey  string
	RangeKey string
}

// Store adapts one DynamoDB table to the document-store contract shared by
// the entity repositories: conditional insert, get, atomic partial update,
// delete-with-count and paged listing.
type Store struct {
	client    *dynamodb.Client
	tableName string
	timeout   time.Duration
}

func NewStore(client *dynamodb.Client, tableName string, timeout time.Duration) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		timeout:   timeout,
	}
}

// opCtx bounds one store operation by the configured timeout. No call may
// block indefinitely; expiry surfaces as domain.ErrUnavailable via wrap.
func (s *Store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// EnsureTable creates the table and its secondary indexes. Safe to call on
// every startup: an already existing table is not an error.
func (s *Store) EnsureTable(ctx context.Context, indexes ...SecondaryIndex) error {
	attrs := map[string]struct{}{keyAttr: {}}
	gsis := make([]types.GlobalSecondaryIndex, 0, len(indexes))
	for _, idx := range indexes {
		attrs[idx.HashKey] = struct{}{}
		schema := []types.KeySchemaElement{
			{AttributeName: aws.String(idx.HashKey), KeyType: types.KeyTypeHash},
		}
		if idx.RangeKey != "" {
			attrs[idx.RangeKey] = struct{}{}
			schema = append(schema, types.KeySchemaElement{
				AttributeName: aws.String(idx.RangeKey), KeyType: types.KeyTypeRange,
			})
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.Name),
			KeySchema:  schema,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	defs := make([]types.AttributeDefinition, 0, len(attrs))
	for name := range attrs {
		defs = append(defs, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}

	input := &dynamodb.CreateTableInput{
		TableName:            aws.String(s.tableName),
		BillingMode:          types.BillingModePayPerRequest,
		AttributeDefinitions: defs,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(keyAttr), KeyType: types.KeyTypeHash},
		},
	}
	if len(gsis) > 0 {
		input.GlobalSecondaryIndexes = gsis
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	_, err := s.client.CreateTable(ctx, input)
	if err != nil {
		var inUse *types.ResourceInUseException
		if errors.As(err, &inUse) {
			return nil
		}
		return s.wrap("create table", err)
	}
	return nil
}

// PutNew inserts a document, failing with domain.ErrDuplicateID if the
// primary key is already taken.
func (s *Store) PutNew(ctx context.Context, item map[string]types.AttributeValue) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return domain.ErrDuplicateID
		}
		return s.wrap("put item", err)
	}
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (map[string]types.AttributeValue, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.key(id),
	})
	if err != nil {
		return nil, s.wrap("get item", err)
	}
	if out.Item == nil {
		return nil, domain.ErrNotFound
	}
	return out.Item, nil
}

// UpdateFields atomically applies the given fields to an existing document
// and returns its post-update state. The existence check and the write are a
// single conditional operation; callers must not read-then-write around it.
// An empty fields map is the caller's short-circuit, not ours.
func (s *Store) UpdateFields(ctx context.Context, id string, fields map[string]any) (map[string]types.AttributeValue, error) {
	var update expression.UpdateBuilder
	for name, value := range fields {
		update = update.Set(expression.Name(name), expression.Value(value))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name(keyAttr))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build update expression: %w", err)
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       s.key(id),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, domain.ErrNotFound
		}
		return nil, s.wrap("update item", err)
	}
	return out.Attributes, nil
}

// DeleteByID removes at most one document and reports how many were removed
// (0 or 1).
func (s *Store) DeleteByID(ctx context.Context, id string) (int, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	out, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(s.tableName),
		Key:          s.key(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return 0, s.wrap("delete item", err)
	}
	if len(out.Attributes) == 0 {
		return 0, nil
	}
	return 1, nil
}

// ScanAll pages through the table in store-natural order. projection narrows
// the returned attributes when non-empty; limit <= 0 means no cap.
func (s *Store) ScanAll(ctx context.Context, projection []string, skip, limit int) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(s.tableName)}
	if len(projection) > 0 {
		expr, err := buildProjection(projection)
		if err != nil {
			return nil, err
		}
		input.ProjectionExpression = expr.Projection()
		input.ExpressionAttributeNames = expr.Names()
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var items []map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, s.wrap("scan", err)
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil || (limit > 0 && len(items) >= skip+limit) {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return page(items, skip, limit), nil
}

// QueryByAttr reads a secondary index by hash-key equality, paged like
// ScanAll.
func (s *Store) QueryByAttr(ctx context.Context, indexName, attr, value string, skip, limit int) ([]map[string]types.AttributeValue, error) {
	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(attr).Equal(expression.Value(value))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build key condition: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		IndexName:                 aws.String(indexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var items []map[string]types.AttributeValue
	for {
		out, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, s.wrap("query", err)
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil || (limit > 0 && len(items) >= skip+limit) {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return page(items, skip, limit), nil
}

// Count returns the number of documents in the table without transferring
// them.
func (s *Store) Count(ctx context.Context) (int, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
		Select:    types.SelectCount,
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var count int
	for {
		out, err := s.client.Scan(ctx, input)
		if err != nil {
			return 0, s.wrap("scan count", err)
		}
		count += int(out.Count)
		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return count, nil
}

func (s *Store) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keyAttr: &types.AttributeValueMemberS{Value: id},
	}
}

// wrap classifies store failures: anything that means "the store could not
// be reached" becomes domain.ErrUnavailable so the boundary can answer 503
// instead of 500. That covers deadline expiry and cancellation as well as
// transport-level failures (connection refused, DNS, dropped connections),
// which the SDK surfaces inside its operation error chain.
func (s *Store) wrap(op string, err error) error {
	if isUnreachable(err) {
		return fmt.Errorf("%s %s: %w: %v", op, s.tableName, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%s %s: %w", op, s.tableName, err)
}

func isUnreachable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var (
		opErr  *net.OpError
		dnsErr *net.DNSError
		urlErr *url.Error
	)
	return errors.As(err, &opErr) || errors.As(err, &dnsErr) || errors.As(err, &urlErr)
}

func buildProjection(names []string) (expression.Expression, error) {
	proj := expression.ProjectionBuilder{}
	for _, n := range names {
		proj = proj.AddNames(expression.Name(n))
	}
	expr, err := expression.NewBuilder().WithProjection(proj).Build()
	if err != nil {
		return expression.Expression{}, fmt.Errorf("build projection: %w", err)
	}
	return expr, nil
}

// page applies skip/limit to an already collected result set. DynamoDB has
// no server-side offset, so the skip happens here.
func page(items []map[string]types.AttributeValue, skip, limit int) []map[string]types.AttributeValue {
	if skip > 0 {
		if skip >= len(items) {
			return nil
		}
		items = items[skip:]
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
