package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CloudinarySettings holds the Cloudinary account credentials
type CloudinarySettings struct {
	CloudName string `mapstructure:"cloud_name"`
	APIKey    string `mapstructure:"api_key"`
	APISecret string `mapstructure:"api_secret"`
}

// Configured reports whether every credential is present
func (s CloudinarySettings) Configured() bool {
	return s.CloudName != "" && s.APIKey != "" && s.APISecret != ""
}

// S3Settings holds the bucket and credentials for an S3 compatible object store
type S3Settings struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
}

// AzureBlobSettings holds the Azure Blob Storage connection
type AzureBlobSettings struct {
	ConnectionString string `mapstructure:"connection_string"`
	ContainerName    string `mapstructure:"container_name"`
}

// StorageSettings selects where uploaded media lives.
// Backend receives images. DocumentBackend receives documents (resumes, PDFs) and defaults to Backend.
type StorageSettings struct {
	Backend         string             `mapstructure:"backend" validate:"required,oneof=local cloudinary s3 azure"`
	DocumentBackend string             `mapstructure:"document_backend" validate:"omitempty,oneof=local cloudinary s3 azure"`
	UseCloudinary   bool               `mapstructure:"use_cloudinary"`
	MediaRoot       string             `mapstructure:"media_root" validate:"required"`
	MediaURL        string             `mapstructure:"media_url" validate:"required,startswith=/"`
	StaticRoot      string             `mapstructure:"static_root"`
	Cloudinary      CloudinarySettings `mapstructure:"cloudinary"`
	S3              S3Settings         `mapstructure:"s3"`
	Azure           AzureBlobSettings  `mapstructure:"azure"`
}

// ResolveBackend applies the USE_CLOUDINARY compatibility switch when no backend was chosen explicitly
func (s *StorageSettings) ResolveBackend() {
	if s.Backend != "" {
		return
	}
	if s.UseCloudinary && s.Cloudinary.Configured() {
		s.Backend = CloudinaryStorageBackend
		return
	}
	s.Backend = LocalStorageBackend
}

// Backends returns the distinct backends the settings make use of
func (s *StorageSettings) Backends() []string {
	backends := []string{LocalStorageBackend}
	for _, b := range []string{s.Backend, s.DocumentBackend} {
		if b == "" {
			continue
		}
		seen := false
		for _, existing := range backends {
			if existing == b {
				seen = true
				break
			}
		}
		if !seen {
			backends = append(backends, b)
		}
	}
	return backends
}

// Validate checks that the selected backends are fully configured
func (s *StorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}

	for _, backend := range s.Backends() {
		switch backend {
		case CloudinaryStorageBackend:
			if !s.Cloudinary.Configured() {
				return fmt.Errorf("cloudinary backend requires cloud name, api key and api secret")
			}
		case S3StorageBackend:
			if s.S3.Bucket == "" || s.S3.Region == "" {
				return fmt.Errorf("s3 backend requires bucket and region")
			}
		case AzureStorageBackend:
			if s.Azure.ConnectionString == "" || s.Azure.ContainerName == "" {
				return fmt.Errorf("azure backend requires connection string and container name")
			}
		}
	}

	return nil
}
