package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// signedURLTTL is the validity window requested for trip photo URLs. The
// link is shared in listings and never rotated, so it is effectively
// permanent: roughly 100 years.
const signedURLTTL = 3155760000 * time.Second

// attachTripPhoto uploads a trip photo to blob storage under a key derived
// from the vehicle and returns a long-lived signed URL for it. When URL
// signing fails after a successful upload, the uploaded object is deleted
// again so no orphaned blob outlives a failed attachment.
func (s *service) attachTripPhoto(buffer []byte, mtype *mimetype.MIME, fileHeader *multipart.FileHeader, vehicleID int64) (string, error) {
	randomBytes := make([]byte, 16)
	_, err := rand.Read(randomBytes)
	if err != nil {
		return "", err
	}
	suffix := strings.ToLower(base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes))
	key := fmt.Sprintf("trips/%d-trip-%s%s", vehicleID, suffix, filepath.Ext(fileHeader.Filename))

	ctx := context.TODO()
	err = s.blob.Upload(ctx, key, bytes.NewReader(buffer), fileHeader.Size, mtype.String())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	signedURL, err := s.blob.SignedURL(ctx, key, signedURLTTL)
	if err != nil {
		if delErr := s.blob.Delete(ctx, key); delErr != nil {
			s.logger.PrintError(delErr, map[string]string{
				"operation": "delete orphaned trip photo",
				"key":       key,
			})
		}
		return "", fmt.Errorf("%w: %v", ErrSignedURL, err)
	}
	return signedURL, nil
}
