package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/breezy-weather/breezy-weather-sub005/pkg/resource"
)

func NewSqsClient() *sqs.Client {
	return sqs.NewFromConfig(Config, func(o *sqs.Options) {
		// A configured endpoint points the client at LocalStack.
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
