package service

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/buscavan/api/config"
	"github.com/buscavan/api/data"
	"github.com/buscavan/api/internal/jsonlog"
	"github.com/buscavan/api/repository"
	"github.com/jellydator/ttlcache/v3"
)

// mockRepo is a hand-written test double for repository.Repository. Each
// method is a function field, so a test only sets the ones it expects to be
// called. An unset method panics, which fails the test loudly.
type mockRepo struct {
	createTrip         func(trip *data.Trip, comments []*data.Comment) error
	getTrip            func(tripID int64) (*data.Trip, error)
	getAllTripsByOwner func(ownerID int64) ([]*data.Trip, error)
	updateTrip         func(trip *data.Trip) error
	upsertComments     func(tripID int64, comments []*data.Comment) error
	deleteTrip         func(tripID int64) error
	createComment      func(comment *data.Comment) error
	getAllComments     func(tripID int64) ([]*data.Comment, error)
	getVehicleByPlate  func(plate string) (*data.Vehicle, error)
	getUser            func(userID int64) (*data.User, error)
}

func (m *mockRepo) CreateTrip(trip *data.Trip, comments []*data.Comment) error {
	return m.createTrip(trip, comments)
}
func (m *mockRepo) GetTrip(tripID int64) (*data.Trip, error) {
	return m.getTrip(tripID)
}
func (m *mockRepo) GetAllTripsByOwner(ownerID int64) ([]*data.Trip, error) {
	return m.getAllTripsByOwner(ownerID)
}
func (m *mockRepo) UpdateTrip(trip *data.Trip) error {
	return m.updateTrip(trip)
}
func (m *mockRepo) UpsertComments(tripID int64, comments []*data.Comment) error {
	return m.upsertComments(tripID, comments)
}
func (m *mockRepo) DeleteTrip(tripID int64) error {
	return m.deleteTrip(tripID)
}
func (m *mockRepo) CreateComment(comment *data.Comment) error {
	return m.createComment(comment)
}
func (m *mockRepo) GetAllComments(tripID int64) ([]*data.Comment, error) {
	return m.getAllComments(tripID)
}
func (m *mockRepo) GetVehicleByPlate(plate string) (*data.Vehicle, error) {
	return m.getVehicleByPlate(plate)
}
func (m *mockRepo) GetUser(userID int64) (*data.User, error) {
	return m.getUser(userID)
}

var _ repository.Repository = (*mockRepo)(nil)

// mockBlob is a test double for BlobStore.
type mockBlob struct {
	upload    func(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	signedURL func(ctx context.Context, key string, ttl time.Duration) (string, error)
	delete    func(ctx context.Context, key string) error
}

func (m *mockBlob) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	return m.upload(ctx, key, body, size, contentType)
}
func (m *mockBlob) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return m.signedURL(ctx, key, ttl)
}
func (m *mockBlob) Delete(ctx context.Context, key string) error {
	return m.delete(ctx, key)
}

var _ BlobStore = (*mockBlob)(nil)

// okBlob returns a blob store where uploads succeed and signing yields a
// stable URL.
func okBlob() *mockBlob {
	return &mockBlob{
		upload: func(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
			return nil
		},
		signedURL: func(ctx context.Context, key string, ttl time.Duration) (string, error) {
			return "https://blob.example.com/signed/" + key, nil
		},
	}
}

func newTestService(repo repository.Repository, blob BlobStore) *service {
	var cfg config.Config
	return &service{
		config: cfg,
		wg:     &sync.WaitGroup{},
		logger: jsonlog.New(io.Discard, jsonlog.LevelError),
		repo:   repo,
		blob:   blob,
		cache:  ttlcache.New(ttlcache.WithTTL[string, []byte](time.Minute)),
	}
}
