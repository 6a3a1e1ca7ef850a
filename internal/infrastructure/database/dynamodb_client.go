package database

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoDBSettings carries everything needed to reach the verification
// history table, local-friendly defaults included (DynamoDB Local does not
// validate credentials but the SDK requires them).
type DynamoDBSettings struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

// ConnectDynamoDB creates the DynamoDB client for the history repository.
func ConnectDynamoDB(s DynamoDBSettings) *dynamodb.Client {
	cfg, err := NewDynamoDBConfig(context.Background(), s)
	if err != nil {
		log.Fatalf("failed to create dynamodb config: %v", err)
	}
	return dynamodb.NewFromConfig(cfg)
}

func NewDynamoDBConfig(ctx context.Context, s DynamoDBSettings) (aws.Config, error) {
	region := s.Region
	if region == "" {
		region = "us-east-1"
	}
	accessKey := s.AccessKey
	if accessKey == "" {
		accessKey = "local"
	}
	secretKey := s.SecretKey
	if secretKey == "" {
		secretKey = "local"
	}

	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	}

	if s.Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
			if service == dynamodb.ServiceID {
				return aws.Endpoint{URL: s.Endpoint, SigningRegion: region, HostnameImmutable: true}, nil
			}
			return aws.Endpoint{}, &aws.EndpointNotFoundError{}
		})
		loadOpts = append(loadOpts, config.WithEndpointResolverWithOptions(resolver))
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}
