//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/testutil"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func takenSlugs(slugs ...string) slugExistsFunc {
	taken := map[string]bool{}
	for _, s := range slugs {
		taken[s] = true
	}
	return func(_ context.Context, slug, _ string) (bool, error) {
		return taken[slug], nil
	}
}

func TestAssignSlug(t *testing.T) {
	ctx := context.Background()

	t.Run("generated from title", func(t *testing.T) {
		s, err := assignSlug(ctx, "", "Hello, World!", "", takenSlugs())
		require.NoError(t, err)
		assert.Equal(t, "hello-world", s)
	})

	t.Run("numbered on collision", func(t *testing.T) {
		s, err := assignSlug(ctx, "", "Hello World", "", takenSlugs("hello-world", "hello-world-2"))
		require.NoError(t, err)
		assert.Equal(t, "hello-world-3", s)
	})

	t.Run("last numbered candidate tried", func(t *testing.T) {
		taken := []string{"post"}
		for n := 2; n < maxSlugAttempts; n++ {
			taken = append(taken, fmt.Sprintf("post-%d", n))
		}
		s, err := assignSlug(ctx, "", "Post", "", takenSlugs(taken...))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("post-%d", maxSlugAttempts), s)

		taken = append(taken, s)
		_, err = assignSlug(ctx, "", "Post", "", takenSlugs(taken...))
		assert.ErrorIs(t, err, content.ErrConflict)
	})

	t.Run("explicit slug kept", func(t *testing.T) {
		s, err := assignSlug(ctx, "custom", "Ignored Title", "", takenSlugs())
		require.NoError(t, err)
		assert.Equal(t, "custom", s)
	})

	t.Run("explicit slug taken", func(t *testing.T) {
		_, err := assignSlug(ctx, "custom", "Title", "", takenSlugs("custom"))
		assert.ErrorIs(t, err, content.ErrConflict)
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := assignSlug(ctx, "", "!!!", "", takenSlugs())
		assert.ErrorIs(t, err, validators.ErrValidation)
	})

	t.Run("long title truncated", func(t *testing.T) {
		s, err := assignSlug(ctx, "", strings.Repeat("word ", 100), "", takenSlugs())
		require.NoError(t, err)
		assert.LessOrEqual(t, len(s), maxSlugLength)
		assert.False(t, strings.HasSuffix(s, "-"))
	})

	t.Run("lookup error", func(t *testing.T) {
		failing := func(context.Context, string, string) (bool, error) { return false, errors.New("db down") }
		_, err := assignSlug(ctx, "", "Title", "", failing)
		assert.EqualError(t, err, "db down")
	})
}

func TestHealthService(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	t.Run("healthy", func(t *testing.T) {
		svc, err := NewHealthService(func(context.Context) error { return nil }, true, logger)
		require.NoError(t, err)

		report := svc.Check(context.Background())
		assert.True(t, report.Healthy())
		assert.Equal(t, databaseConnected, report.Service.Database)
		assert.True(t, report.Service.Debug)
		assert.Equal(t, config.ApplicationName, report.Application.Name)
		assert.Equal(t, StatusReady, svc.Ready(context.Background()).Status)
	})

	t.Run("database down", func(t *testing.T) {
		svc, err := NewHealthService(func(context.Context) error { return errors.New("connection refused") }, false, logger)
		require.NoError(t, err)

		report := svc.Check(context.Background())
		assert.Equal(t, StatusUnhealthy, report.Status)
		assert.Equal(t, "error: connection refused", report.Service.Database)

		ready := svc.Ready(context.Background())
		assert.Equal(t, StatusNotReady, ready.Status)
		assert.Equal(t, "connection refused", ready.Error)
	})

	t.Run("ping gets a deadline", func(t *testing.T) {
		var deadline bool
		svc, err := NewHealthService(func(ctx context.Context) error {
			_, deadline = ctx.Deadline()
			return nil
		}, false, logger)
		require.NoError(t, err)
		svc.Ready(context.Background())
		assert.True(t, deadline)
	})

	_, err := NewHealthService(nil, false, logger)
	assert.Error(t, err)
}

func TestSeedData_Embedded(t *testing.T) {
	data, err := DefaultSeedData()
	require.NoError(t, err)
	require.NotNil(t, data.PersonalInfo)
	assert.NotEmpty(t, data.Skills)
	assert.NotEmpty(t, data.Projects)
	assert.NotEmpty(t, data.BlogPosts)
	assert.False(t, data.Education[0].StartDate.IsZero())

	_, err = ParseSeedData([]byte("skills: [unterminated"))
	assert.Error(t, err)

	_, err = LoadSeedFile("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestSeedReport_Record(t *testing.T) {
	report := &SeedReport{}
	report.record("skills", true)
	report.record("skills", false)
	report.record("tags", true)

	assert.Equal(t, []SeedCount{
		{Entity: "skills", Created: 1, Existing: 1},
		{Entity: "tags", Created: 1},
	}, report.Counts)
	assert.Equal(t, 2, report.Created())
}

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) Create(ctx context.Context, message *contact.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *mockContactRepository) List(ctx context.Context, query *contact.MessageQuery) ([]*contact.ContactMessage, error) {
	args := m.Called(ctx, query)
	messages, _ := args.Get(0).([]*contact.ContactMessage)
	return messages, args.Error(1)
}

func (m *mockContactRepository) Count(ctx context.Context, query *contact.MessageQuery) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*contact.ContactMessage, error) {
	args := m.Called(ctx, id)
	message, _ := args.Get(0).(*contact.ContactMessage)
	return message, args.Error(1)
}

func (m *mockContactRepository) SetRead(ctx context.Context, ids []string, read bool) (int64, error) {
	args := m.Called(ctx, ids, read)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockContactRepository) Delete(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockContactRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, email *contact.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type panickingMailer struct{}

func (panickingMailer) Send(context.Context, *contact.Email) error {
	panic("smtp exploded")
}

func validForm() *contact.Form {
	return &contact.Form{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello there",
		Message: "I liked your portfolio a lot.",
	}
}

func TestContactService_Submit_MailFailureIsIgnored(t *testing.T) {
	repo := &mockContactRepository{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*contact.ContactMessage")).Return(nil)

	mailer := &mockMailer{}
	mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	settings := &config.MailSettings{From: "noreply@example.com", SubjectPrefix: "[Contact] ", SendAutoReply: true}
	svc, err := NewContactService(repo, mailer, settings, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	message, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", message.Email)

	mailer.AssertNumberOfCalls(t, "Send", 2)
	admin := mailer.Calls[0].Arguments.Get(1).(*contact.Email)
	assert.Equal(t, []string{"noreply@example.com"}, admin.To)
	assert.Equal(t, "[Contact] Hello there", admin.Subject)
	assert.Contains(t, admin.Body, "I liked your portfolio a lot.")
	repo.AssertExpectations(t)
}

func TestContactService_Submit_MailerPanicIsRecovered(t *testing.T) {
	repo := &mockContactRepository{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc, err := NewContactService(repo, panickingMailer{}, &config.MailSettings{From: "noreply@example.com"}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, err = svc.Submit(context.Background(), validForm())
	})
	assert.NoError(t, err)
}

func TestContactService_Submit_NoAutoReply(t *testing.T) {
	repo := &mockContactRepository{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer := &mockMailer{}
	mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

	svc, err := NewContactService(repo, mailer, &config.MailSettings{From: "noreply@example.com", ContactEmail: "me@example.com"}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	mailer.AssertNumberOfCalls(t, "Send", 1)
	email := mailer.Calls[0].Arguments.Get(1).(*contact.Email)
	assert.Equal(t, []string{"me@example.com"}, email.To)
	assert.Equal(t, "jane@example.com", email.ReplyTo)
}

func TestContactService_Submit_InvalidFormNotStored(t *testing.T) {
	repo := &mockContactRepository{}
	svc, err := NewContactService(repo, nil, &config.MailSettings{From: "noreply@example.com"}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), &contact.Form{Name: "J", Email: "bad", Subject: "hi", Message: "short"})
	var formErr *contact.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Len(t, formErr.Fields, 4)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactService_Bulk_RejectsUnknownAction(t *testing.T) {
	svc, err := NewContactService(&mockContactRepository{}, nil, &config.MailSettings{}, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = svc.Bulk(context.Background(), contact.BulkAction("archive"), []string{"1"})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.Bulk(context.Background(), contact.ActionDelete, nil)
	assert.ErrorIs(t, err, validators.ErrValidation)
}
