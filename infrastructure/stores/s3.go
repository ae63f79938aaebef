package stores

import (
	"bytes"
	"code/helpers"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const jsonContentType = "application/json; charset=utf-8"

type S3Helper struct {
	client     *s3.Client
	bucketName string
	pathPrefix string
	timeout    time.Duration
}

func InitializeS3Helper(ctx context.Context, bucketName string, pathPrefix string, timeout time.Duration, endpointURL *string) (*S3Helper, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %v", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpointURL != nil {
			o.BaseEndpoint = aws.String(*endpointURL)
			if helpers.IsLocalhostURL(*endpointURL) {
				o.UsePathStyle = true
			}
		}
	})
	return &S3Helper{client: client, bucketName: bucketName, pathPrefix: strings.Trim(pathPrefix, "/"), timeout: timeout}, nil
}

func (s3Helper *S3Helper) PutDocument(ctx context.Context, fileName string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s3Helper.timeout)
	defer cancel()
	putObjectInput := &s3.PutObjectInput{
		Bucket:      aws.String(s3Helper.bucketName),
		Key:         aws.String(s3Helper.getObjectKey(fileName)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(jsonContentType),
	}
	if _, err := s3Helper.client.PutObject(ctx, putObjectInput); err != nil {
		return fmt.Errorf("error on PutObject: %v", err)
	}
	return nil
}

func (s3Helper *S3Helper) GetDocument(ctx context.Context, fileName string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s3Helper.timeout)
	defer cancel()
	getObjectInput := &s3.GetObjectInput{Bucket: aws.String(s3Helper.bucketName), Key: aws.String(s3Helper.getObjectKey(fileName))}
	output, err := s3Helper.client.GetObject(ctx, getObjectInput)
	if err != nil {
		return nil, fmt.Errorf("error on GetObject: %v", err)
	}
	defer output.Body.Close()
	data, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, fmt.Errorf("error on reading object body: %v", err)
	}
	return data, nil
}

func (s3Helper *S3Helper) DeleteDocument(ctx context.Context, fileName string) error {
	ctx, cancel := context.WithTimeout(ctx, s3Helper.timeout)
	defer cancel()
	deleteObjectInput := &s3.DeleteObjectInput{Bucket: aws.String(s3Helper.bucketName), Key: aws.String(s3Helper.getObjectKey(fileName))}
	if _, err := s3Helper.client.DeleteObject(ctx, deleteObjectInput); err != nil {
		return fmt.Errorf("error on DeleteObject: %v", err)
	}
	return nil
}

func (s3Helper *S3Helper) getObjectKey(fileName string) string {
	if s3Helper.pathPrefix == "" {
		return fileName
	}
	return s3Helper.pathPrefix + "/" + fileName
}
