package config

// Storage backend constants
const (
	LocalStorageBackend      = "local"
	CloudinaryStorageBackend = "cloudinary"
	S3StorageBackend         = "s3"
	AzureStorageBackend      = "azure"
)

// Environment constants
const (
	DevEnvironment  = "dev"
	ProdEnvironment = "prod"
)

// Mail backend constants
const (
	SMTPMailBackend    = "smtp"
	ConsoleMailBackend = "console"
)
