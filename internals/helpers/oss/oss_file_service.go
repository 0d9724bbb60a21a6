package oss

import (
	"context"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"atletku_backend/internals/constants"
)

/*
BlobService adalah facade upload/hapus yang seragam untuk controller.
Dibuat eksplisit (dependency injection, bukan singleton import-time) supaya
controller bisa dites dengan implementasi dummy.
*/
type BlobService interface {
	// UploadImage: re-encode → WebP, dipakai foto profil & bukti sertifikat gambar
	UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	// UploadImageWithThumb: WebP utama + thumbnail persegi (foto profil)
	UploadImageWithThumb(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL, thumbURL string, err error)
	// UploadVideo: raw upload dengan guard ekstensi + ukuran (video tes & video referensi)
	UploadVideo(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)
	// UploadDocument: raw upload untuk dokumen identitas / bukti umur (pdf/gambar)
	UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (publicURL string, err error)

	DeleteByPublicURL(ctx context.Context, publicURL string) error
}

// --------------------------------------------------
// Implementasi berbasis Aliyun OSS
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

// NewOSSBlobServiceFromEnv membuat instance dari ENV. prefix opsional (contoh: "uploads/")
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadImage(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if fh.Size > MaxImageUploadSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran gambar melebihi batas")
	}
	all, err := readAll(fh)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Gagal membaca file")
	}
	webpBytes, err := ConvertToWebP(all)
	if err != nil {
		return "", fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	}
	key, err := b.svc.UploadBytesToDir(ctx, dir, replaceExt(fh.Filename, ".webp"), "image/webp", webpBytes)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	return b.svc.PublicURL(key), nil
}

const profileThumbSize = 256

func (b *OSSBlobService) UploadImageWithThumb(ctx context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if fh.Size > MaxImageUploadSize {
		return "", "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran gambar melebihi batas")
	}
	all, err := readAll(fh)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Gagal membaca file")
	}

	webpBytes, err := ConvertToWebP(all)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	}
	thumbBytes, err := MakeThumbnailWebP(all, profileThumbSize)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	}

	base := replaceExt(fh.Filename, ".webp")
	key, err := b.svc.UploadBytesToDir(ctx, dir, base, "image/webp", webpBytes)
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	thumbKey, err := b.svc.UploadBytesToDir(ctx, dir+"/thumbs", base, "image/webp", thumbBytes)
	if err != nil {
		// jangan tinggalkan objek utama yatim
		_ = b.svc.DeleteByPublicURL(ctx, b.svc.PublicURL(key))
		return "", "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload thumbnail ke OSS")
	}
	return b.svc.PublicURL(key), b.svc.PublicURL(thumbKey), nil
}

func (b *OSSBlobService) UploadVideo(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if !constants.IsVideoFilename(fh.Filename) {
		return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "File harus berupa video (mp4/mov/mkv/webm)")
	}
	if fh.Size > MaxVideoUploadSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran video melebihi batas")
	}
	key, _, err := b.svc.UploadFromFormFileToDir(ctx, dir, fh)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) UploadDocument(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if t := constants.DetectFileTypeFromExt(fh.Filename); t != constants.FileTypePDF && t != constants.FileTypeImage {
		return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Dokumen harus pdf atau gambar")
	}
	if fh.Size > MaxImageUploadSize {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "Ukuran dokumen melebihi batas")
	}
	key, _, err := b.svc.UploadFromFormFileToDir(ctx, dir, fh)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadGateway, "Gagal upload ke OSS")
	}
	return b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if strings.TrimSpace(publicURL) == "" {
		return nil
	}
	return b.svc.DeleteByPublicURL(ctx, publicURL)
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

func replaceExt(filename, newExt string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[:i] + newExt
	}
	return filename + newExt
}
