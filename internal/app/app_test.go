package app

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-clip/internal/clip"
	"github.com/MKhiriev/go-vault-clip/internal/config"
	"github.com/MKhiriev/go-vault-clip/internal/logger"
	"github.com/MKhiriev/go-vault-clip/internal/mock"
	"github.com/MKhiriev/go-vault-clip/internal/template"
	"github.com/MKhiriev/go-vault-clip/models"
)

// memClipboard backs the real broker in tests.
type memClipboard struct {
	mu    sync.Mutex
	value string
}

func (m *memClipboard) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

func (m *memClipboard) Write(value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	return nil
}

type appFixture struct {
	session   *mock.MockManager
	resolver  *mock.MockResolver
	provider  *mock.MockClient
	clipboard *memClipboard
	broker    *clip.Broker
	out       bytes.Buffer
	app       *App
}

func newAppFixture(t *testing.T, ctrl *gomock.Controller) *appFixture {
	t.Helper()

	f := &appFixture{
		session:   mock.NewMockManager(ctrl),
		resolver:  mock.NewMockResolver(ctrl),
		provider:  mock.NewMockClient(ctrl),
		clipboard: &memClipboard{},
	}
	f.broker = clip.NewBroker(f.clipboard, 20*time.Millisecond, "", logger.Nop())
	f.app = New(f.session, f.resolver, f.provider, f.broker, logger.Nop(), &f.out)
	return f
}

func wifiRecord() models.ItemRecord {
	return models.ItemRecord{
		Identifier: "id-wifi",
		Title:      "Home WiFi",
		Kind:       models.KindPassword,
		Details:    models.ItemDetails{Password: "s3cret"},
	}
}

func TestApp_EmptyTitleListsTitles(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAppFixture(t, ctrl)

	f.session.EXPECT().EnsureSession(gomock.Any(), false).Return("tok", nil)
	f.resolver.EXPECT().Titles(gomock.Any(), false).Return([]string{"GitHub", "Home WiFi"}, nil)

	delivered, err := f.app.Run(context.Background(), config.Options{})
	require.NoError(t, err)
	assert.False(t, delivered)
	assert.Equal(t, "GitHub\nHome WiFi\n", f.out.String())
}

func TestApp_DefaultFieldDeliversPasswordToClipboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAppFixture(t, ctrl)

	f.session.EXPECT().EnsureSession(gomock.Any(), false).Return("tok", nil)
	f.resolver.EXPECT().ResolveTitle(gomock.Any(), "Home WiFi", false).
		Return(models.IndexEntry{Identifier: "id-wifi", Title: "Home WiFi", Kind: models.KindPassword}, nil)
	f.resolver.EXPECT().EnsureItemCached(gomock.Any(), "id-wifi", false).Return(nil)
	f.resolver.EXPECT().CachedItem(gomock.Any(), "id-wifi").Return(wifiRecord(), nil)

	delivered, err := f.app.Run(context.Background(), config.Options{Title: "Home WiFi"})
	require.NoError(t, err)
	assert.True(t, delivered)

	current, err := f.clipboard.Read()
	require.NoError(t, err)
	assert.Equal(t, "s3cret", current)
	assert.Empty(t, f.out.String())

	f.broker.Stop()
}

func TestApp_PrintModeWritesToOutOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAppFixture(t, ctrl)

	f.session.EXPECT().EnsureSession(gomock.Any(), false).Return("tok", nil)
	f.resolver.EXPECT().ResolveTitle(gomock.Any(), "Home WiFi", false).
		Return(models.IndexEntry{Identifier: "id-wifi", Kind: models.KindPassword}, nil)
	f.resolver.EXPECT().EnsureItemCached(gomock.Any(), "id-wifi", false).Return(nil)
	f.resolver.EXPECT().CachedItem(gomock.Any(), "id-wifi").Return(wifiRecord(), nil)

	delivered, err := f.app.Run(context.Background(), config.Options{Title: "Home WiFi", Print: true})
	require.NoError(t, err)
	assert.False(t, delivered)
	assert.Equal(t, "s3cret\n", f.out.String())

	current, err := f.clipboard.Read()
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestApp_UUIDFieldSkipsItemFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAppFixture(t, ctrl)

	f.session.EXPECT().EnsureSession(gomock.Any(), false).Return("tok", nil)
	f.resolver.EXPECT().ResolveTitle(gomock.Any(), "Home WiFi", false).
		Return(models.IndexEntry{Identifier: "id-wifi", Kind: models.KindPassword}, nil)
	// No EnsureItemCached or CachedItem expectations: the uuid path must
	// not touch the item cache.

	delivered, err := f.app.Run(context.Background(), config.Options{Title: "Home WiFi", Field: FieldUUID, Print: true})
	require.NoError(t, err)
	assert.False(t, delivered)
	assert.Equal(t, "id-wifi\n", f.out.String())
}

func TestApp_TotpNeverReadsItemCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAppFixture(t, ctrl)

	f.session.EXPECT().EnsureSession(gomock.Any(), false).Return("tok", nil).Times(2)
	f.resolver.EXPECT().ResolveTitle(gomock.Any(), "GitHub", false).
		Return(models.IndexEntry{Identifier: "id-github", Kind: models.KindLogin}, nil)
	f.provider.EXPECT().GetTotp(gomock.Any(), "tok", "id-github").Return("492039", nil)

	delivered, err := f.app.Run(context.Background(), config.Options{Title: "GitHub", Field: FieldTotp, Print: true})
	require.NoError(t, err)
	assert.False(t, delivered)
	assert.Equal(t, "492039\n", f.out.String())
}

func TestApp_ListFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAppFixture(t, ctrl)

	record := models.ItemRecord{
		Identifier: "id-github",
		Kind:       models.KindLogin,
		Details: models.ItemDetails{
			Fields: []models.DesignatedField{
				{Designation: "username", Value: "octocat"},
				{Designation: "password", Value: "hunter2"},
			},
			Sections: []models.Section{
				{Fields: []models.SectionField{{Label: "pin", Value: "0000"}}},
			},
		},
	}

	f.session.EXPECT().EnsureSession(gomock.Any(), false).Return("tok", nil)
	f.resolver.EXPECT().ResolveTitle(gomock.Any(), "GitHub", false).
		Return(models.IndexEntry{Identifier: "id-github", Kind: models.KindLogin}, nil)
	f.resolver.EXPECT().EnsureItemCached(gomock.Any(), "id-github", false).Return(nil)
	f.resolver.EXPECT().CachedItem(gomock.Any(), "id-github").Return(record, nil)

	delivered, err := f.app.Run(context.Background(), config.Options{Title: "GitHub", ListFields: true})
	require.NoError(t, err)
	assert.False(t, delivered)
	assert.Equal(t, "username\npassword\npin\n", f.out.String())
}

func TestApp_RefreshFlagPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAppFixture(t, ctrl)

	f.session.EXPECT().EnsureSession(gomock.Any(), true).Return("tok", nil)
	f.resolver.EXPECT().ResolveTitle(gomock.Any(), "Home WiFi", true).
		Return(models.IndexEntry{Identifier: "id-wifi", Kind: models.KindPassword}, nil)
	f.resolver.EXPECT().EnsureItemCached(gomock.Any(), "id-wifi", true).Return(nil)
	f.resolver.EXPECT().CachedItem(gomock.Any(), "id-wifi").Return(wifiRecord(), nil)

	_, err := f.app.Run(context.Background(), config.Options{Title: "Home WiFi", Refresh: true, Print: true})
	require.NoError(t, err)
}

func TestApp_ForgetShortCircuits(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAppFixture(t, ctrl)

	f.session.EXPECT().Forget().Return(nil)
	// No EnsureSession expectation: forget must not establish a session.

	delivered, err := f.app.Run(context.Background(), config.Options{Forget: true})
	require.NoError(t, err)
	assert.False(t, delivered)
}

func TestApp_UnknownFieldAbortsBeforeDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := newAppFixture(t, ctrl)

	f.session.EXPECT().EnsureSession(gomock.Any(), false).Return("tok", nil)
	f.resolver.EXPECT().ResolveTitle(gomock.Any(), "Home WiFi", false).
		Return(models.IndexEntry{Identifier: "id-wifi", Kind: models.KindPassword}, nil)
	f.resolver.EXPECT().EnsureItemCached(gomock.Any(), "id-wifi", false).Return(nil)
	f.resolver.EXPECT().CachedItem(gomock.Any(), "id-wifi").Return(wifiRecord(), nil)

	delivered, err := f.app.Run(context.Background(), config.Options{Title: "Home WiFi", Field: "no-such-field"})
	require.Error(t, err)
	assert.ErrorIs(t, err, template.ErrFieldNotFound)
	assert.False(t, delivered)

	current, readErr := f.clipboard.Read()
	require.NoError(t, readErr)
	assert.Empty(t, current)
}
