package connector

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// azureBlobConnector stores media as blobs in one Azure container
type azureBlobConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureBlobConnector connects to the container named in settings, creating it when missing
func NewAzureBlobConnector(ctx context.Context, settings *config.AzureBlobSettings, logger logger.Logger) (media.Connector, error) {
	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create Azure container: %w", err)
	}

	return &azureBlobConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

func (c *azureBlobConnector) Name() string {
	return config.AzureStorageBackend
}

func (c *azureBlobConnector) Save(ctx context.Context, upload *media.Upload) (*media.Ref, error) {
	key := objectKey(upload.Slot.Folder(), upload.Filename, true)

	opts := &azblob.UploadStreamOptions{}
	if upload.ContentType != "" {
		contentType := upload.ContentType
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: &contentType}
	}
	if _, err := c.client.UploadStream(ctx, c.containerName, key, upload.Body, opts); err != nil {
		return nil, fmt.Errorf("failed to upload blob '%s': %w", key, err)
	}

	kind := upload.Kind()
	blobURL, err := c.URL(key, kind)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Uploaded blob ", key)
	return &media.Ref{
		Backend: c.Name(),
		Kind:    kind,
		Key:     key,
		URL:     blobURL,
	}, nil
}

func (c *azureBlobConnector) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	resp, err := c.client.DownloadStream(ctx, c.containerName, key, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, fmt.Errorf("%s: %w", key, media.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to download blob '%s': %w", key, err)
	}
	return resp.Body, nil
}

func (c *azureBlobConnector) Exists(ctx context.Context, key string) (bool, error) {
	blobClient := c.client.ServiceClient().NewContainerClient(c.containerName).NewBlobClient(key)
	if _, err := blobClient.GetProperties(ctx, nil); err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get properties of blob '%s': %w", key, err)
	}
	return true, nil
}

func (c *azureBlobConnector) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteBlob(ctx, c.containerName, key, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.BlobNotFound) {
		return fmt.Errorf("failed to delete blob '%s': %w", key, err)
	}

	c.logger.Info("Deleted blob ", key)
	return nil
}

func (c *azureBlobConnector) URL(key string, kind media.Kind) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", fmt.Errorf("empty key: %w", media.ErrInvalidKey)
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.client.URL(), "/"), c.containerName, key), nil
}
