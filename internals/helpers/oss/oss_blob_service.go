// internals/helpers/oss/oss_blob_service.go
package helper

import (
	"context"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

/*
BlobService adalah facade storage yang seragam untuk controller.

Kontrak:
  - UploadAttachment: simpan blob, balikin (publicURL, objectKey, contentType).
    Key yang dibalikin adalah identitas blob di DB (attachments.attachment_key).
  - DeleteByKey: hapus blob by key, maksimal 1x retry. Gagal setelah retry
    = StorageUnavailable; keputusan lanjut/berhenti ada di pemanggil.
  - DeleteManyByKey: best-effort, kumpulkan kegagalan per key tanpa berhenti.
    DB row adalah source of truth; blob yatim bukan alasan gagalkan request.
*/
type BlobService interface {
	UploadAttachment(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, objectKey, contentType string, err error)
	DeleteByKey(ctx context.Context, key string) error
	DeleteManyByKey(ctx context.Context, keys []string) (deleted []string, failed map[string]error)
}

type OSSBlobService struct {
	svc *OSSService
}

// Buat instance dari ENV. prefix opsional (contoh: "uploads/")
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadAttachment(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, string, error) {
	if fh == nil {
		return "", "", "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}

	// Gambar dinormalisasi ke WebP, selain itu upload raw
	if ct := fh.Header.Get("Content-Type"); IsImageContentType(ct) {
		key, err := b.svc.UploadWebPToDir(ctx, dir, fh)
		if err != nil {
			return "", "", "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
		}
		return b.svc.PublicURL(key), key, "image/webp", nil
	}

	key, ct, err := b.svc.UploadFromFormFileToDir(ctx, dir, fh)
	if err != nil {
		return "", "", "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	return b.svc.PublicURL(key), key, ct, nil
}

// DeleteByKey: 1x percobaan + 1x retry (bounded, jangan retry terus-terusan).
func (b *OSSBlobService) DeleteByKey(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := b.svc.DeleteObject(ctx, key); err != nil {
		log.Printf("[OSS] delete %s gagal, retry 1x: %v", key, err)
		if err := b.svc.DeleteObject(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (b *OSSBlobService) DeleteManyByKey(ctx context.Context, keys []string) ([]string, map[string]error) {
	deleted := make([]string, 0, len(keys))
	failed := map[string]error{}
	for _, key := range keys {
		if err := b.DeleteByKey(ctx, key); err != nil {
			// blob mungkin sudah tidak ada; ditolerir & dicatat
			log.Printf("[OSS] best-effort delete %s: %v", key, err)
			failed[key] = err
			continue
		}
		deleted = append(deleted, key)
	}
	return deleted, failed
}
