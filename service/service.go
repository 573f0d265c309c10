package service

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/buscavan/api/config"
	"github.com/buscavan/api/internal/jsonlog"
	"github.com/buscavan/api/internal/mailer"
	"github.com/buscavan/api/repository"
	"github.com/jellydator/ttlcache/v3"
)

type Service interface {
	trips
	comments
	vehicles
	locations
}

// BlobStore is the subset of blob-provider operations the service layer
// needs for attaching trip photos. clients.BlobStore satisfies it.
type BlobStore interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// service defines the app's service layer.
type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	repo   repository.Repository
	blob   BlobStore
	client *http.Client
	cache  *ttlcache.Cache[string, []byte]
	mailer mailer.Mailer
}

// New creates a new instance of Service.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository, blob BlobStore, client *http.Client, cache *ttlcache.Cache[string, []byte]) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		repo:   repo,
		blob:   blob,
		client: client,
		cache:  cache,
		mailer: mailer.New(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
	}
}
