// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// All violated groups are reported at once, joined with errors.Join.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.Auth.validate(),
		cfg.Storage.validate(),
		cfg.Server.validate(),
		cfg.Adapter.validate(),
	)
}

func (a Auth) validate() error {
	switch {
	case a.AccessTokenSecret == "" || a.RefreshTokenSecret == "":
		return fmt.Errorf("%w: token secrets are required", ErrInvalidAuthConfigs)
	case a.AccessTokenSecret == a.RefreshTokenSecret:
		return fmt.Errorf("%w: access and refresh secrets must differ", ErrInvalidAuthConfigs)
	case a.AccessTokenTTL <= 0 || a.RefreshTokenTTL <= 0:
		return fmt.Errorf("%w: token lifetimes must be positive", ErrInvalidAuthConfigs)
	case a.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAuthConfigs)
	}
	return nil
}

func (s Storage) validate() error {
	if s.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if !slices.Contains([]string{DriverPostgres, DriverSQLite}, s.DB.Driver) {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, s.DB.Driver)
	}
	return nil
}

func (s Server) validate() error {
	if s.HTTPAddress == "" && s.GRPCAddress == "" {
		return fmt.Errorf("%w: at least one server address is required", ErrInvalidServerConfigs)
	}
	if s.MaxBodyBytes <= 0 || s.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: body limits must be positive", ErrInvalidServerConfigs)
	}
	return nil
}

func (a Adapter) validate() error {
	switch a.ImageHost.Provider {
	case ImageHostHTTP:
		if a.ImageHost.BaseURL == "" || a.ImageHost.CloudName == "" {
			return fmt.Errorf("%w: image host base url and cloud name are required", ErrInvalidAdapterConfigs)
		}
	case ImageHostS3:
		if a.ImageHost.S3.Bucket == "" || a.ImageHost.S3.Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidAdapterConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported image host provider %q", ErrInvalidAdapterConfigs, a.ImageHost.Provider)
	}

	if len(a.Events.Brokers) > 0 && a.Events.Topic == "" {
		return fmt.Errorf("%w: events topic is required when brokers are set", ErrInvalidAdapterConfigs)
	}
	return nil
}
