//go:build integration
// +build integration

package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/connector"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageService_Check_ReportsMissingFiles(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	ref, err := services.MediaService.Upload(ctx, &media.Upload{
		Filename: "shot.png",
		Slot:     media.SlotProjectImage,
		Body:     bytes.NewReader([]byte("png")),
	})
	require.NoError(t, err)
	project, err := services.ProjectService.Create(ctx, &content.Project{Title: "Checked", Description: "d", Image: *ref})
	require.NoError(t, err)

	_, err = services.PersonalInfoService.UploadResume(ctx, "cv.pdf", "application/pdf", 3, bytes.NewReader([]byte("pdf")))
	require.NoError(t, err)

	results, err := services.StorageService.Check(ctx)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.True(t, result.Exists, result.Owner)
	}

	require.NoError(t, os.Remove(filepath.Join(services.MediaRoot, filepath.FromSlash(ref.Key))))

	results, err = services.StorageService.Check(ctx)
	require.NoError(t, err)
	var missing []string
	for _, result := range results {
		if !result.Exists {
			missing = append(missing, result.Owner)
		}
	}
	assert.Equal(t, []string{"project:" + project.ID}, missing)
}

func TestStorageService_Migrate_SkipsFilesAlreadyOnTarget(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	ref, err := services.MediaService.Upload(ctx, &media.Upload{
		Filename: "shot.png",
		Slot:     media.SlotProjectImage,
		Body:     bytes.NewReader([]byte("png")),
	})
	require.NoError(t, err)
	_, err = services.ProjectService.Create(ctx, &content.Project{Title: "Local", Description: "d", Image: *ref})
	require.NoError(t, err)

	_, err = services.PersonalInfoService.UploadResume(ctx, "cv.pdf", "application/pdf", 3, bytes.NewReader([]byte("pdf")))
	require.NoError(t, err)

	report, err := services.StorageService.Migrate(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Migrated)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 0, report.Failed)

	report, err = services.StorageService.Migrate(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Migrated)
	assert.Equal(t, 2, report.Skipped)
}

// bucketConnector keeps uploads in memory under the s3 backend name
type bucketConnector struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newBucketConnector() *bucketConnector {
	return &bucketConnector{objects: map[string][]byte{}}
}

func (c *bucketConnector) Name() string { return config.S3StorageBackend }

func (c *bucketConnector) Save(_ context.Context, upload *media.Upload) (*media.Ref, error) {
	data, err := io.ReadAll(upload.Body)
	if err != nil {
		return nil, err
	}
	key := upload.Slot.Folder() + "/" + upload.Filename

	c.mu.Lock()
	defer c.mu.Unlock()
	c.objects[key] = data
	url, _ := c.URL(key, upload.Kind())
	return &media.Ref{Backend: c.Name(), Kind: upload.Kind(), Key: key, URL: url}, nil
}

func (c *bucketConnector) Open(_ context.Context, key string) (io.ReadCloser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.objects[key]
	if !ok {
		return nil, media.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (c *bucketConnector) Exists(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.objects[key]
	return ok, nil
}

func (c *bucketConnector) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.objects, key)
	return nil
}

func (c *bucketConnector) URL(key string, _ media.Kind) (string, error) {
	return "https://portfolio-media.s3.amazonaws.com/" + key, nil
}

// storageServiceOnS3 returns a StorageService over the same database whose uploads go to bucket
func storageServiceOnS3(t *testing.T, services *TestServices, bucket *bucketConnector) *StorageService {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	settings := &config.StorageSettings{
		Backend:   config.S3StorageBackend,
		MediaRoot: services.MediaRoot,
		MediaURL:  "/media/",
	}
	local, err := connector.NewLocalConnector(settings, logger)
	require.NoError(t, err)
	resolver, err := connector.NewResolver(settings, local, bucket)
	require.NoError(t, err)
	mediaService, err := NewMediaService(resolver, logger)
	require.NoError(t, err)

	db := services.DBContext
	storageService, err := NewStorageService(StorageRepositories{
		PersonalInfo:   db.PersonalInfoRepo,
		Projects:       db.ProjectRepo,
		Posts:          db.BlogPostRepo,
		Testimonials:   db.TestimonialRepo,
		Certifications: db.CertificationRepo,
		Awards:         db.AwardRepo,
		SEO:            db.SEORepo,
	}, mediaService, logger)
	require.NoError(t, err)
	return storageService
}

func TestStorageService_Migrate_CopiesFilesToNewBackend(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	image, err := services.MediaService.Upload(ctx, &media.Upload{
		Filename: "shot.png",
		Slot:     media.SlotProjectImage,
		Body:     bytes.NewReader([]byte("png bytes")),
	})
	require.NoError(t, err)
	require.Equal(t, config.LocalStorageBackend, image.Backend)
	project, err := services.ProjectService.Create(ctx, &content.Project{Title: "Moved", Description: "d", Image: *image})
	require.NoError(t, err)

	_, err = services.PersonalInfoService.UploadResume(ctx, "cv.pdf", "application/pdf", 9, bytes.NewReader([]byte("pdf bytes")))
	require.NoError(t, err)

	bucket := newBucketConnector()
	storageService := storageServiceOnS3(t, services, bucket)

	report, err := storageService.Migrate(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Migrated)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Failed)

	stored, err := services.DBContext.ProjectRepo.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, config.S3StorageBackend, stored.Image.Backend)
	exists, err := bucket.Exists(ctx, stored.Image.Key)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.FileExists(t, filepath.Join(services.MediaRoot, filepath.FromSlash(image.Key)))

	info, err := services.DBContext.PersonalInfoRepo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.LocalStorageBackend, info.Resume.Backend)

	report, err = storageService.Migrate(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Migrated)
	assert.Equal(t, 1, report.Skipped)

	info, err = services.DBContext.PersonalInfoRepo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.S3StorageBackend, info.Resume.Backend)
	assert.Equal(t, media.KindDocument, info.Resume.Kind)
	assert.Len(t, bucket.objects, 2)
}
