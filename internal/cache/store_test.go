package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rohmanhakim/crawlkit/internal/cache"
	"github.com/rohmanhakim/crawlkit/internal/metadata"
)

type metadataSinkMock struct {
	mock.Mock
}

func (m *metadataSinkMock) RecordFetch(fetchURL string, httpStatus int, duration time.Duration, contentType string, retryCount int, crawlDepth int) {
	m.Called(fetchURL, httpStatus, duration, contentType, retryCount, crawlDepth)
}

func (m *metadataSinkMock) RecordAssetFetch(fetchURL string, httpStatus int, duration time.Duration, retryCount int) {
	m.Called(fetchURL, httpStatus, duration, retryCount)
}

func (m *metadataSinkMock) RecordError(observedAt time.Time, packageName string, action string, cause metadata.ErrorCause, errorString string, attrs []metadata.Attribute) {
	m.Called(observedAt, packageName, action, cause, errorString, attrs)
}

func (m *metadataSinkMock) RecordArtifact(kind metadata.ArtifactKind, path string, attrs []metadata.Attribute) {
	m.Called(kind, path, attrs)
}

func TestStore_PutThenGet_ReturnsFreshEntry(t *testing.T) {
	sink := &metadataSinkMock{}
	sink.On("RecordArtifact", mock.Anything, mock.Anything, mock.Anything).Return()

	store := cache.NewStore(sink, t.TempDir(), time.Hour)

	entry := cache.Entry{
		URL:         "https://example.com/docs/page",
		StatusCode:  200,
		ContentType: "text/html",
		Body:        []byte("<html></html>"),
		FetchedAt:   time.Now(),
	}

	err := store.Put(entry)
	assert.Nil(t, err)

	got, ok := store.Get(entry.URL)
	assert.True(t, ok)
	assert.Equal(t, entry.URL, got.URL)
	assert.Equal(t, entry.StatusCode, got.StatusCode)
	assert.Equal(t, entry.Body, got.Body)
}

func TestStore_Get_MissReturnsFalse(t *testing.T) {
	sink := &metadataSinkMock{}
	store := cache.NewStore(sink, t.TempDir(), time.Hour)

	_, ok := store.Get("https://example.com/never-cached")
	assert.False(t, ok)
}

func TestStore_Get_StaleEntryIsAMiss(t *testing.T) {
	sink := &metadataSinkMock{}
	sink.On("RecordArtifact", mock.Anything, mock.Anything, mock.Anything).Return()

	store := cache.NewStore(sink, t.TempDir(), time.Millisecond)

	entry := cache.Entry{
		URL:       "https://example.com/docs/old",
		FetchedAt: time.Now().Add(-time.Hour),
	}
	assert.Nil(t, store.Put(entry))

	time.Sleep(2 * time.Millisecond)
	_, ok := store.Get(entry.URL)
	assert.False(t, ok)
}

func TestStore_SurvivesAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	sink := &metadataSinkMock{}
	sink.On("RecordArtifact", mock.Anything, mock.Anything, mock.Anything).Return()

	first := cache.NewStore(sink, dir, time.Hour)
	entry := cache.Entry{URL: "https://example.com/docs/persisted", StatusCode: 200, FetchedAt: time.Now()}
	assert.Nil(t, first.Put(entry))

	second := cache.NewStore(sink, dir, time.Hour)
	got, ok := second.Get(entry.URL)
	assert.True(t, ok)
	assert.Equal(t, entry.URL, got.URL)
}

func TestEntry_Stale_ZeroTTLNeverExpires(t *testing.T) {
	entry := cache.Entry{FetchedAt: time.Now().Add(-365 * 24 * time.Hour)}
	assert.False(t, entry.Stale(0))
}
