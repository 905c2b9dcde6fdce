package connector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const cloudinaryDeliveryHost = "res.cloudinary.com"

// cloudinaryUploader is the part of the Cloudinary upload API the connector uses
type cloudinaryUploader interface {
	Upload(ctx context.Context, file interface{}, uploadParams uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// httpDoer sends delivery requests
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type cloudinaryConnector struct {
	cloudName string
	uploader  cloudinaryUploader
	client    httpDoer
	logger    logger.Logger
}

// NewCloudinaryConnector creates a connector for the Cloudinary account in settings
func NewCloudinaryConnector(settings *config.CloudinarySettings, logger logger.Logger) (media.Connector, error) {
	if !settings.Configured() {
		return nil, fmt.Errorf("cloudinary requires cloud name, api key and api secret")
	}

	cld, err := cloudinary.NewFromParams(settings.CloudName, settings.APIKey, settings.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	cld.Config.URL.Secure = true

	return newCloudinaryConnector(settings.CloudName, &cld.Upload, &http.Client{Timeout: 30 * time.Second}, logger), nil
}

func newCloudinaryConnector(cloudName string, up cloudinaryUploader, client httpDoer, logger logger.Logger) *cloudinaryConnector {
	return &cloudinaryConnector{
		cloudName: cloudName,
		uploader:  up,
		client:    client,
		logger:    logger,
	}
}

func (c *cloudinaryConnector) Name() string {
	return config.CloudinaryStorageBackend
}

// resourceType maps a media kind onto the Cloudinary resource type. Documents are stored as raw files.
func resourceType(kind media.Kind) string {
	if kind == media.KindDocument {
		return "raw"
	}
	return "image"
}

func (c *cloudinaryConnector) Save(ctx context.Context, upload *media.Upload) (*media.Ref, error) {
	kind := upload.Kind()
	// raw public IDs keep their extension so downloads open with the right application
	publicID := objectKey(upload.Slot.Folder(), upload.Filename, kind == media.KindDocument)

	result, err := c.uploader.Upload(ctx, upload.Body, uploader.UploadParams{
		PublicID:       publicID,
		ResourceType:   resourceType(kind),
		Type:           api.Upload,
		Overwrite:      api.Bool(false),
		UniqueFilename: api.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload to cloudinary: %s", result.Error.Message)
	}

	if result.PublicID != "" {
		publicID = result.PublicID
	}
	url := result.SecureURL
	if url == "" {
		url, _ = c.URL(publicID, kind)
	}

	c.logger.Info("Uploaded media to cloudinary with public id ", publicID)
	return &media.Ref{
		Backend: c.Name(),
		Kind:    kind,
		Key:     publicID,
		URL:     url,
	}, nil
}

func (c *cloudinaryConnector) request(ctx context.Context, method, key string) (*http.Response, error) {
	// Existence checks cannot know the kind, so images are tried before raw files
	var lastStatus int
	for _, kind := range []media.Kind{media.KindImage, media.KindDocument} {
		url, _ := c.URL(key, kind)
		req, err := http.NewRequestWithContext(ctx, method, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build cloudinary request: %w", err)
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to reach cloudinary: %w", err)
		}
		if resp.StatusCode == http.StatusOK {
			return resp, nil
		}
		lastStatus = resp.StatusCode
		resp.Body.Close()
	}
	if lastStatus == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", key, media.ErrNotFound)
	}
	return nil, fmt.Errorf("cloudinary returned status %d for %s", lastStatus, key)
}

func (c *cloudinaryConnector) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	resp, err := c.request(ctx, http.MethodGet, key)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *cloudinaryConnector) Exists(ctx context.Context, key string) (bool, error) {
	resp, err := c.request(ctx, http.MethodHead, key)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	resp.Body.Close()
	return true, nil
}

func (c *cloudinaryConnector) Delete(ctx context.Context, key string) error {
	for _, kind := range []media.Kind{media.KindImage, media.KindDocument} {
		result, err := c.uploader.Destroy(ctx, uploader.DestroyParams{
			PublicID:     key,
			ResourceType: resourceType(kind),
		})
		if err != nil {
			return fmt.Errorf("failed to delete from cloudinary: %w", err)
		}
		if result.Error.Message != "" {
			return fmt.Errorf("failed to delete from cloudinary: %s", result.Error.Message)
		}
		if result.Result == "ok" {
			c.logger.Info("Deleted cloudinary media with public id ", key)
			return nil
		}
	}
	return nil
}

func (c *cloudinaryConnector) URL(key string, kind media.Kind) (string, error) {
	if key == "" {
		return "", fmt.Errorf("empty key: %w", media.ErrInvalidKey)
	}
	return fmt.Sprintf("https://%s/%s/%s/upload/%s", cloudinaryDeliveryHost, c.cloudName, resourceType(kind), strings.TrimPrefix(key, "/")), nil
}
