// Copyright © Rob Burke inchworks.com, 2025.

// This file is part of OsisWeb.
//
// OsisWeb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// OsisWeb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with OsisWeb.  If not, see <https://www.gnu.org/licenses/>.

// Package publish uploads an exported copy of the site to S3,
// and optionally invalidates the CloudFront distribution in front of it.
package publish

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultContentType = "application/octet-stream"

// Uploader is satisfied by *manager.Uploader.
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// Invalidator is satisfied by *cloudfront.Client.
type Invalidator interface {
	CreateInvalidation(ctx context.Context, params *cloudfront.CreateInvalidationInput, optFns ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error)
}

type Publisher struct {
	Uploader    Uploader
	Invalidator Invalidator
	InfoLog     *log.Logger

	Bucket       string
	Distribution string // optional CloudFront distribution ID
	CacheControl string // optional, applied to every object
}

// New returns a publisher using the default AWS configuration (environment, shared files or instance role).
func New(ctx context.Context, bucket string, distribution string, infoLog *log.Logger) (*Publisher, error) {

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("publish: loading AWS config: %w", err)
	}

	p := &Publisher{
		Uploader:     manager.NewUploader(s3.NewFromConfig(cfg)),
		InfoLog:      infoLog,
		Bucket:       bucket,
		Distribution: distribution,
	}
	if distribution != "" {
		p.Invalidator = cloudfront.NewFromConfig(cfg)
	}
	return p, nil
}

// Publish uploads all files under dir, then requests invalidation of the distribution, if any.
// It returns the number of files uploaded.
func (p *Publisher) Publish(ctx context.Context, dir string) (int, error) {

	n := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)

		if err := p.upload(ctx, path, key); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return n, err
	}
	p.logf("Uploaded %d files to s3://%s", n, p.Bucket)

	if p.Distribution != "" && p.Invalidator != nil {
		if err := p.invalidate(ctx); err != nil {
			return n, err
		}
	}
	return n, nil
}

// ContentType returns the MIME type to be stored with an object.
func ContentType(name string) string {
	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		ct = defaultContentType
	}
	return ct
}

// invalidate asks CloudFront to drop all cached copies.
func (p *Publisher) invalidate(ctx context.Context) error {

	ref := "osisweb-" + strconv.FormatInt(time.Now().UnixNano(), 10)
	out, err := p.Invalidator.CreateInvalidation(ctx, &cloudfront.CreateInvalidationInput{
		DistributionId: aws.String(p.Distribution),
		InvalidationBatch: &types.InvalidationBatch{
			CallerReference: aws.String(ref),
			Paths: &types.Paths{
				Quantity: aws.Int32(1),
				Items:    []string{"/*"},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("publish: invalidating distribution %s: %w", p.Distribution, err)
	}

	if out != nil && out.Invalidation != nil {
		p.logf("Invalidation %s requested for distribution %s", aws.ToString(out.Invalidation.Id), p.Distribution)
	}
	return nil
}

func (p *Publisher) logf(format string, v ...any) {
	if p.InfoLog != nil {
		p.InfoLog.Printf(format, v...)
	}
}

// upload sends one file.
func (p *Publisher) upload(ctx context.Context, path string, key string) error {

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	defer f.Close()

	in := &s3.PutObjectInput{
		Bucket:      aws.String(p.Bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(ContentType(path)),
	}
	if p.CacheControl != "" {
		in.CacheControl = aws.String(p.CacheControl)
	}

	if _, err = p.Uploader.Upload(ctx, in); err != nil {
		return fmt.Errorf("publish: uploading %s: %w", key, err)
	}
	return nil
}
