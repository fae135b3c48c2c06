package media

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	MaxBytes  int     `env:"IMAGE_MAX_BYTES" envDefault:"5242880"`
	MaxPixels int     `env:"IMAGE_MAX_PIXELS" envDefault:"40000000"`
	MaxW      int     `env:"IMAGE_WEBP_MAX_W" envDefault:"1600"`
	MaxH      int     `env:"IMAGE_WEBP_MAX_H" envDefault:"1600"`
	Quality   float32 `env:"IMAGE_WEBP_QUALITY" envDefault:"80"`
	TargetKB  int     `env:"IMAGE_WEBP_TARGET_KB" envDefault:"0"`
	MinQ      float32 `env:"IMAGE_WEBP_MIN_Q" envDefault:"45"`
	MaxQ      float32 `env:"IMAGE_WEBP_MAX_Q" envDefault:"85"`
}

func DefaultOptions() Options {
	return Options{MaxBytes: 5 << 20, MaxPixels: 40_000_000, MaxW: 1600, MaxH: 1600, Quality: 80, MinQ: 45, MaxQ: 85}
}

// Service turns image fields (data URL, bare base64 or an existing URL) into stored URLs.
type Service struct {
	store Store
	opts  Options
}

func NewService(store Store, opts Options) *Service {
	if store == nil {
		store = InlineStore{}
	}
	return &Service{store: store, opts: opts}
}

// NewServiceFromEnv uses Aliyun OSS when ALI_OSS_* is complete, else inline data URLs.
func NewServiceFromEnv() *Service {
	opts := DefaultOptions()
	if err := env.Parse(&opts); err != nil {
		log.Warnf("[media] invalid IMAGE_* env, using defaults: %v", err)
		opts = DefaultOptions()
	}

	var ossCfg OSSConfig
	if err := env.Parse(&ossCfg); err == nil && ossCfg.Enabled() {
		store, err := NewOSSStore(ossCfg)
		if err == nil {
			log.Info("[media] images stored in Aliyun OSS")
			return NewService(store, opts)
		}
		log.Errorf("[media] OSS unavailable, falling back to inline images: %v", err)
	}
	log.Info("[media] images stored inline as data URLs")
	return NewService(InlineStore{}, opts)
}

// Save stores value under folder and returns the URL to persist.
// Empty values yield "", remote URLs are kept as they are.
func (s *Service) Save(ctx context.Context, folder, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if isRemoteURL(value) {
		return value, nil
	}

	raw, err := decodePayload(value)
	if err != nil {
		return "", err
	}
	if s.opts.MaxBytes > 0 && len(raw) > s.opts.MaxBytes {
		return "", ErrImageTooLarge
	}

	img, err := decodeImage(raw, s.opts.MaxPixels)
	if err != nil {
		return "", err
	}
	img = downscale(img, s.opts.MaxW, s.opts.MaxH)

	data, err := encodeWebP(img, s.opts)
	if err != nil {
		return "", err
	}

	url, err := s.store.Put(ctx, objectKey(folder), data, "image/webp")
	if err != nil {
		return "", errors.Wrap(err, "store image")
	}
	return url, nil
}

// Replace saves value when it differs from current and returns the URL to persist.
// An empty value keeps current. Nothing is deleted here: call Settle once the
// record has been written.
func (s *Service) Replace(ctx context.Context, folder, value, current string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == current {
		return current, nil
	}
	return s.Save(ctx, folder, value)
}

// Settle drops whichever of next and previous the record no longer points at.
// On a failed write the freshly stored next goes, otherwise the old previous.
func (s *Service) Settle(ctx context.Context, writeErr error, next, previous string) {
	if next == previous {
		return
	}
	if writeErr != nil {
		s.Remove(ctx, next)
		return
	}
	s.Remove(ctx, previous)
}

// Remove deletes a stored image, logging failures.
func (s *Service) Remove(ctx context.Context, url string) {
	if strings.TrimSpace(url) == "" || strings.HasPrefix(url, "data:") {
		return
	}
	if err := s.store.Delete(ctx, url); err != nil {
		log.WithError(err).Warnf("[media] failed to delete %s", url)
	}
}

// ToFiberError maps media errors to HTTP errors for the JSON envelope.
func ToFiberError(err error) *fiber.Error {
	switch errors.Cause(err) {
	case ErrInvalidImage:
		return fiber.NewError(fiber.StatusBadRequest, ErrInvalidImage.Error())
	case ErrImageTooLarge:
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, ErrImageTooLarge.Error())
	case ErrUnsupportedImage:
		return fiber.NewError(fiber.StatusUnsupportedMediaType, ErrUnsupportedImage.Error())
	}
	log.WithError(err).Error("[media] image processing failed")
	return fiber.NewError(fiber.StatusBadGateway, "Failed to store image")
}

func objectKey(folder string) string {
	folder = strings.Trim(strings.ToLower(strings.TrimSpace(folder)), "/")
	if folder == "" {
		folder = "misc"
	}
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	name := fmt.Sprintf("%s_%s.webp", time.Now().UTC().Format("20060102_150405"), hex.EncodeToString(b))
	return path.Join(folder, name)
}
