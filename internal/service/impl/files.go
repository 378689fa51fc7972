package core

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/magazine/internal/domain"
	"github.com/sidereusnuntius/magazine/internal/service"
	"github.com/sidereusnuntius/magazine/internal/storage"
)

// SetAuthorPhoto stores the photo under the hex sha256 digest of its content, so that identical uploads share a
// single file.
func (s *AppService) SetAuthorPhoto(ctx context.Context, userId int64, content []byte) (domain.Author, error) {
	author, err := s.DB.GetAuthorByUser(ctx, userId)
	if err != nil {
		return domain.Author{}, err
	}

	if len(content) == 0 {
		return domain.Author{}, fmt.Errorf("%w: empty photo", service.ErrInvalidInput)
	}
	mimeType := http.DetectContentType(content)
	if !strings.HasPrefix(mimeType, "image/") {
		return domain.Author{}, fmt.Errorf("%w: expected an image, got %s", service.ErrInvalidInput, mimeType)
	}

	sum := sha256.Sum256(content)
	digest := hex.EncodeToString(sum[:])

	created := true
	err = s.storage.Create(bytes.NewReader(content), digest)
	if errors.Is(err, storage.ErrAlreadyExists) {
		created = false
	} else if err != nil {
		return domain.Author{}, fmt.Errorf("%w: %s", service.ErrInternal, err)
	}

	if err = s.DB.SetAuthorPhoto(ctx, author.ID, digest); err != nil {
		if created {
			if err := s.storage.Delete(digest); err != nil {
				log.Error().
					Str("path", digest).
					Str("type", mimeType).
					Err(err).
					Msg("error when trying to delete file after failed update")
			}
		}
		return domain.Author{}, err
	}

	author.Photo = digest
	return author, nil
}

func (s *AppService) GetPhoto(ctx context.Context, digest string) ([]byte, error) {
	if _, err := hex.DecodeString(digest); err != nil || len(digest) != 2*sha256.Size {
		return nil, fmt.Errorf("photo %q: %w", digest, service.ErrNotFound)
	}

	content, err := s.storage.Open(digest)
	switch {
	case errors.Is(err, storage.ErrNotExist):
		return nil, fmt.Errorf("photo %s: %w", digest, service.ErrNotFound)
	case err != nil:
		return nil, fmt.Errorf("%w: %s", service.ErrInternal, err)
	}
	return content, nil
}
