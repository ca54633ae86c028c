// SPDX-License-Identifier: EPL-2.0

package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// MinioConfig locates the object store used by the blob package.
type MinioConfig struct {
	Endpoint string `env:"MINIO_ENDPOINT, required"`
	Username string `env:"MINIO_USERNAME, required"`
	Password string `env:"MINIO_PASSWORD, required"`
	Bucket   string `env:"MINIO_BUCKET, default=sndstream"`
	Region   string `env:"MINIO_REGION"`
	Secure   bool   `env:"MINIO_SECURE, default=false"`
}

func NewMinioConfigFromEnv() (*MinioConfig, error) {
	return NewMinioConfig(context.Background(), envconfig.OsLookuper())
}

// NewMinioConfig reads the configuration from l.
func NewMinioConfig(ctx context.Context, l envconfig.Lookuper) (*MinioConfig, error) {
	var cfg MinioConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
