package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURL(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

type memStore struct {
	puts    []string
	deleted []string
}

func (m *memStore) Put(_ context.Context, key string, _ []byte, _ string) (string, error) {
	url := "https://cdn.test/" + key
	m.puts = append(m.puts, url)
	return url, nil
}

func (m *memStore) Delete(_ context.Context, url string) error {
	m.deleted = append(m.deleted, url)
	return nil
}

func TestSaveInlineConvertsToWebPAndDownscales(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxW, opts.MaxH = 40, 40
	svc := NewService(InlineStore{}, opts)

	url, err := svc.Save(context.Background(), "courses", pngDataURL(t, 120, 60))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/webp;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/webp;base64,"))
	require.NoError(t, err)
	img, err := webp.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestSaveKeepsRemoteURLAndEmpty(t *testing.T) {
	svc := NewService(InlineStore{}, DefaultOptions())

	url, err := svc.Save(context.Background(), "x", "https://example.com/a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", url)

	url, err = svc.Save(context.Background(), "x", "  ")
	require.NoError(t, err)
	assert.Empty(t, url)
}

func TestSaveRejectsBadPayloads(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxBytes = 64
	svc := NewService(InlineStore{}, opts)
	ctx := context.Background()

	_, err := svc.Save(ctx, "x", "data:image/png;base64,@@@")
	assert.Equal(t, fiber.StatusBadRequest, ToFiberError(err).Code)

	_, err = svc.Save(ctx, "x", "data:text/plain;base64,aGVsbG8=")
	assert.Equal(t, fiber.StatusUnsupportedMediaType, ToFiberError(err).Code)

	_, err = svc.Save(ctx, "x", base64.StdEncoding.EncodeToString([]byte("plain text, not an image")))
	assert.Equal(t, fiber.StatusUnsupportedMediaType, ToFiberError(err).Code)

	_, err = svc.Save(ctx, "x", pngDataURL(t, 50, 50))
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, ToFiberError(err).Code)
}

func TestReplaceLeavesPreviousObjectUntilSettled(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, DefaultOptions())
	ctx := context.Background()

	first, err := svc.Save(ctx, "mentors", pngDataURL(t, 10, 10))
	require.NoError(t, err)

	same, err := svc.Replace(ctx, "mentors", first, first)
	require.NoError(t, err)
	assert.Equal(t, first, same)

	kept, err := svc.Replace(ctx, "mentors", "", first)
	require.NoError(t, err)
	assert.Equal(t, first, kept)
	svc.Settle(ctx, nil, kept, first)
	assert.Empty(t, store.deleted)

	second, err := svc.Replace(ctx, "mentors", pngDataURL(t, 12, 12), first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(second, "https://cdn.test/mentors/"))
	assert.Empty(t, store.deleted, "nothing is deleted before the record is written")

	svc.Settle(ctx, errors.New("write failed"), second, first)
	assert.Equal(t, []string{second}, store.deleted)

	third, err := svc.Replace(ctx, "mentors", pngDataURL(t, 14, 14), first)
	require.NoError(t, err)
	svc.Settle(ctx, nil, third, first)
	assert.Equal(t, []string{second, first}, store.deleted)
}

func TestSaveRejectsOversizedDimensions(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxPixels = 20 * 20
	svc := NewService(InlineStore{}, opts)
	ctx := context.Background()

	_, err := svc.Save(ctx, "x", pngDataURL(t, 20, 20))
	require.NoError(t, err)

	_, err = svc.Save(ctx, "x", pngDataURL(t, 21, 20))
	require.ErrorIs(t, err, ErrImageTooLarge)
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, ToFiberError(err).Code)
}

func TestDecodeImageChecksHeaderBeforePixels(t *testing.T) {
	// a valid PNG header claiming 100000x100000 with no pixel data behind it
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	raw := buf.Bytes()
	raw[16], raw[17], raw[18], raw[19] = 0x00, 0x01, 0x86, 0xA0
	raw[20], raw[21], raw[22], raw[23] = 0x00, 0x01, 0x86, 0xA0
	binary.BigEndian.PutUint32(raw[29:33], crc32.ChecksumIEEE(raw[12:29]))

	_, err := decodeImage(raw, DefaultOptions().MaxPixels)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}
