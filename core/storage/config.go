package storage

// Config holds configuration for the storage backend and client.
type Config struct {
	// Provider selects the backend implementation (minio or gcs).
	Provider string `mapstructure:"provider" default:"minio"`
	// ProjectID is the cloud project used for storage operations.
	ProjectID string `mapstructure:"project_id" default:""`
	// DefaultBucket is used when a call does not name a bucket.
	DefaultBucket string `mapstructure:"default_bucket" default:""`
	// Endpoint is the URL of the storage service (minio).
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication (minio).
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication (minio).
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections (minio).
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// CredentialsFile is a path to a service account key file (gcs).
	CredentialsFile string `mapstructure:"credentials_file" default:""`
	// CredentialsJSON is an inline service account key (gcs).
	CredentialsJSON string `mapstructure:"credentials_json" default:""`
}
