package media

import (
	"context"
	"mime/multipart"
	"path"

	"github.com/google/uuid"
)

type Upload struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type Service interface {
	Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*Upload, error)
}

type service struct {
	storage   *Storage
	publicURL string
}

func NewService(st *Storage, publicURL string) Service {
	return &service{storage: st, publicURL: publicURL}
}

func (s *service) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*Upload, error) {
	key := uuid.NewString() + path.Ext(header.Filename)
	ct := header.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	if err := s.storage.Put(ctx, key, ct, file, header.Size); err != nil {
		return nil, err
	}
	return &Upload{
		URL:         s.publicURL + "/" + key,
		ContentType: ct,
		Size:        header.Size,
	}, nil
}
