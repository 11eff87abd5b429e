package aws

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/breezy-weather/breezy-weather-sub005/pkg/resource"
)

var Config aws.Config

func init() {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	// Custom credentials are only used when configured; otherwise the SDK's
	// default credential chain applies.
	if accessKey := resource.GetString("app.cloud.aws-access-key-id"); accessKey != "" {
		if secretKey := resource.GetString("app.cloud.aws-secret-access-key"); secretKey != "" {
			opts = append(opts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
		}
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}
	Config = cfg
}
