package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and [Duration] fields that accept "15m"-style strings.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Auth struct {
		AccessTokenSecret  string   `json:"access_token_secret"`
		AccessTokenTTL     Duration `json:"access_token_ttl"`
		RefreshTokenSecret string   `json:"refresh_token_secret"`
		RefreshTokenTTL    Duration `json:"refresh_token_ttl"`
		TokenIssuer        string   `json:"token_issuer"`
		BcryptCost         int      `json:"bcrypt_cost"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`

		Uploads struct {
			TempDir string `json:"temp_dir"`
		} `json:"uploads,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodyBytes   int64    `json:"max_body_bytes"`
		MaxUploadBytes int64    `json:"max_upload_bytes"`
		CookieSecure   bool     `json:"cookie_secure"`
	} `json:"server,omitempty"`

	Adapter struct {
		ImageHost struct {
			Provider  string   `json:"provider"`
			BaseURL   string   `json:"base_url"`
			CloudName string   `json:"cloud_name"`
			APIKey    string   `json:"api_key"`
			APISecret string   `json:"api_secret"`
			Folder    string   `json:"folder"`
			Timeout   Duration `json:"timeout"`
			S3        struct {
				Bucket          string `json:"bucket"`
				Region          string `json:"region"`
				Endpoint        string `json:"endpoint"`
				AccessKeyID     string `json:"access_key_id"`
				SecretAccessKey string `json:"secret_access_key"`
				PublicBaseURL   string `json:"public_base_url"`
			} `json:"s3,omitempty"`
		} `json:"image_host,omitempty"`

		Events struct {
			Brokers []string `json:"brokers"`
			Topic   string   `json:"topic"`
		} `json:"events,omitempty"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	imageHost := jsonCfg.Adapter.ImageHost
	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Auth: Auth{
			AccessTokenSecret:  jsonCfg.Auth.AccessTokenSecret,
			AccessTokenTTL:     time.Duration(jsonCfg.Auth.AccessTokenTTL),
			RefreshTokenSecret: jsonCfg.Auth.RefreshTokenSecret,
			RefreshTokenTTL:    time.Duration(jsonCfg.Auth.RefreshTokenTTL),
			TokenIssuer:        jsonCfg.Auth.TokenIssuer,
			BcryptCost:         jsonCfg.Auth.BcryptCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
			Uploads: Uploads{
				TempDir: jsonCfg.Storage.Uploads.TempDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodyBytes:   jsonCfg.Server.MaxBodyBytes,
			MaxUploadBytes: jsonCfg.Server.MaxUploadBytes,
			CookieSecure:   jsonCfg.Server.CookieSecure,
		},
		Adapter: Adapter{
			ImageHost: ImageHost{
				Provider:  imageHost.Provider,
				BaseURL:   imageHost.BaseURL,
				CloudName: imageHost.CloudName,
				APIKey:    imageHost.APIKey,
				APISecret: imageHost.APISecret,
				Folder:    imageHost.Folder,
				Timeout:   time.Duration(imageHost.Timeout),
				S3: S3{
					Bucket:          imageHost.S3.Bucket,
					Region:          imageHost.S3.Region,
					Endpoint:        imageHost.S3.Endpoint,
					AccessKeyID:     imageHost.S3.AccessKeyID,
					SecretAccessKey: imageHost.S3.SecretAccessKey,
					PublicBaseURL:   imageHost.S3.PublicBaseURL,
				},
			},
			Events: Events{
				Brokers: jsonCfg.Adapter.Events.Brokers,
				Topic:   jsonCfg.Adapter.Events.Topic,
			},
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
