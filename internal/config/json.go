package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are written as strings ("5s").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Remote struct {
		Backend        string   `json:"backend"`
		BaseURL        string   `json:"base_url"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
		WorkbookPath   string   `json:"workbook_path"`
	} `json:"remote,omitempty"`

	ObjectStore struct {
		Endpoint        string   `json:"endpoint"`
		AccessKey       string   `json:"access_key"`
		SecretKey       string   `json:"secret_key"`
		Bucket          string   `json:"bucket"`
		Region          string   `json:"region"`
		UseSSL          bool     `json:"use_ssl"`
		PublicBaseURL   string   `json:"public_base_url"`
		TransferTimeout Duration `json:"transfer_timeout"`
	} `json:"object_store,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		QueueCapacity  int      `json:"queue_capacity"`
		MaxRetries     int      `json:"max_retries"`
		RetryBaseDelay Duration `json:"retry_base_delay"`
		InterTaskDelay Duration `json:"inter_task_delay"`
		ReconcileDelay Duration `json:"reconcile_delay"`
		SourceRoot     string   `json:"source_root"`
	} `json:"workers,omitempty"`

	Lock struct {
		RedisURL string   `json:"redis_url"`
		TTL      Duration `json:"ttl"`
	} `json:"lock,omitempty"`

	Log struct {
		Level      string `json:"level"`
		File       string `json:"file"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxBackups int    `json:"max_backups"`
	} `json:"log,omitempty"`

	Entities struct {
		File string `json:"file"`
	} `json:"entities,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: j.App.TokenSignKey,
			TokenIssuer:  j.App.TokenIssuer,
			Version:      j.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:             j.Storage.DB.DSN,
				MaxOpenConns:    j.Storage.DB.MaxOpenConns,
				MaxIdleConns:    j.Storage.DB.MaxIdleConns,
				ConnMaxLifetime: time.Duration(j.Storage.DB.ConnMaxLifetime),
			},
		},
		Remote: Remote{
			Backend:        j.Remote.Backend,
			BaseURL:        j.Remote.BaseURL,
			APIKey:         j.Remote.APIKey,
			RequestTimeout: time.Duration(j.Remote.RequestTimeout),
			WorkbookPath:   j.Remote.WorkbookPath,
		},
		ObjectStore: ObjectStore{
			Endpoint:        j.ObjectStore.Endpoint,
			AccessKey:       j.ObjectStore.AccessKey,
			SecretKey:       j.ObjectStore.SecretKey,
			Bucket:          j.ObjectStore.Bucket,
			Region:          j.ObjectStore.Region,
			UseSSL:          j.ObjectStore.UseSSL,
			PublicBaseURL:   j.ObjectStore.PublicBaseURL,
			TransferTimeout: time.Duration(j.ObjectStore.TransferTimeout),
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			GRPCAddress:     j.Server.GRPCAddress,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),
		},
		Workers: Workers{
			QueueCapacity:  j.Workers.QueueCapacity,
			MaxRetries:     j.Workers.MaxRetries,
			RetryBaseDelay: time.Duration(j.Workers.RetryBaseDelay),
			InterTaskDelay: time.Duration(j.Workers.InterTaskDelay),
			ReconcileDelay: time.Duration(j.Workers.ReconcileDelay),
			SourceRoot:     j.Workers.SourceRoot,
		},
		Lock: Lock{
			RedisURL: j.Lock.RedisURL,
			TTL:      time.Duration(j.Lock.TTL),
		},
		Log: Log{
			Level:      j.Log.Level,
			File:       j.Log.File,
			MaxSizeMB:  j.Log.MaxSizeMB,
			MaxBackups: j.Log.MaxBackups,
		},
		Entities:     Entities{File: j.Entities.File},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
