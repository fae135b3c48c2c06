package media

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

var (
	ErrInvalidImage     = errors.New("image is not valid base64")
	ErrImageTooLarge    = errors.New("image is too large")
	ErrUnsupportedImage = errors.New("unsupported image format (use jpg, png or webp)")
)

// decodePayload accepts "data:image/png;base64,...." or a bare base64 payload.
func decodePayload(value string) ([]byte, error) {
	payload := value
	if strings.HasPrefix(value, "data:") {
		comma := strings.IndexByte(value, ',')
		if comma < 0 {
			return nil, ErrInvalidImage
		}
		header := strings.ToLower(value[len("data:"):comma])
		if !strings.HasSuffix(header, ";base64") {
			return nil, ErrInvalidImage
		}
		if mt := strings.TrimSuffix(header, ";base64"); mt != "" && !strings.HasPrefix(mt, "image/") {
			return nil, ErrUnsupportedImage
		}
		payload = value[comma+1:]
	}

	payload = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, payload)
	if payload == "" {
		return nil, ErrInvalidImage
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if err != nil {
			return nil, ErrInvalidImage
		}
	}
	return raw, nil
}

// decodeImage sniffs the first bytes and decodes jpeg, png or webp.
// Images above maxPixels are refused from their header, before any pixel is decoded.
func decodeImage(all []byte, maxPixels int) (image.Image, error) {
	if len(all) == 0 {
		return nil, ErrInvalidImage
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}

	var (
		decodeConfig func(io.Reader) (image.Config, error)
		decode       func(io.Reader) (image.Image, error)
	)
	switch ct := http.DetectContentType(head); {
	case strings.Contains(ct, "jpeg"):
		decodeConfig, decode = jpeg.DecodeConfig, jpeg.Decode
	case strings.Contains(ct, "png"):
		decodeConfig, decode = png.DecodeConfig, png.Decode
	case strings.Contains(ct, "webp"):
		decodeConfig, decode = webp.DecodeConfig, webp.Decode
	default:
		return nil, ErrUnsupportedImage
	}

	cfg, err := decodeConfig(bytes.NewReader(all))
	if err != nil {
		return nil, errors.Wrap(ErrUnsupportedImage, err.Error())
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrUnsupportedImage
	}
	if maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, ErrImageTooLarge
	}

	img, err := decode(bytes.NewReader(all))
	if err != nil {
		return nil, errors.Wrap(ErrUnsupportedImage, err.Error())
	}
	return img, nil
}

// downscale keeps the aspect ratio and never upscales.
func downscale(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	if (maxW <= 0 || b.Dx() <= maxW) && (maxH <= 0 || b.Dy() <= maxH) {
		return src
	}
	if maxW <= 0 {
		maxW = b.Dx()
	}
	if maxH <= 0 {
		maxH = b.Dy()
	}
	return imaging.Fit(src, maxW, maxH, imaging.CatmullRom)
}

// encodeWebP encodes once at opt.Quality, or, with TargetKB set, binary-searches
// the quality between MinQ and MaxQ for the largest output under the target.
func encodeWebP(img image.Image, opt Options) ([]byte, error) {
	encodeQ := func(q float32) ([]byte, error) {
		buf := new(bytes.Buffer)
		if err := webp.Encode(buf, img, &webp.Options{Quality: q}); err != nil {
			return nil, errors.Wrap(err, "webp encode")
		}
		return buf.Bytes(), nil
	}

	if opt.TargetKB <= 0 {
		q := opt.Quality
		if q <= 0 {
			q = 80
		}
		return encodeQ(q)
	}

	target := opt.TargetKB * 1024
	low, high := opt.MinQ, opt.MaxQ
	if low <= 0 {
		low = 45
	}
	if high <= 0 || high > 100 {
		high = 85
	}
	if low > high {
		low, high = high, low
	}
	minQ := low

	var best []byte
	for i := 0; i < 7; i++ {
		q := (low + high) / 2
		data, err := encodeQ(q)
		if err != nil {
			return nil, err
		}
		if len(data) <= target {
			best = data
			low = q
		} else {
			high = q
		}
	}
	if best == nil {
		return encodeQ(minQ)
	}
	return best, nil
}
