package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"strings"
	"testing"

	"Go-Recipe-Share/domain"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func fileHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("photo", name)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&body, mw.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["photo"][0]
}

func TestReadImage(t *testing.T) {
	data := pngBytes(t, 4, 4)

	got, mime, err := ReadImage(fileHeader(t, "dish.PNG", data))
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, data, got)
}

func TestReadImage_Rejects(t *testing.T) {
	_, _, err := ReadImage(fileHeader(t, "notes.txt", pngBytes(t, 2, 2)))
	assert.ErrorIs(t, err, domain.ErrPhotoNotAnImage)

	_, _, err = ReadImage(fileHeader(t, "fake.jpg", []byte("plain text pretending")))
	assert.ErrorIs(t, err, domain.ErrPhotoNotAnImage)

	big := append(pngBytes(t, 2, 2), bytes.Repeat([]byte{0}, domain.MaxPhotoBytes)...)
	_, _, err = ReadImage(fileHeader(t, "big.png", big))
	assert.ErrorIs(t, err, domain.ErrPhotoTooLarge)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestFit(t *testing.T) {
	small := pngBytes(t, 100, 50)
	out, err := Fit(small, "image/png", AvatarSize)
	require.NoError(t, err)
	assert.Equal(t, small, out)

	out, err = Fit(pngBytes(t, 1024, 512), "image/png", AvatarSize)
	require.NoError(t, err)
	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())

	_, err = Fit([]byte("nope"), "image/png", AvatarSize)
	assert.ErrorIs(t, err, domain.ErrPhotoNotAnImage)
}

func TestInlineStore(t *testing.T) {
	ref, err := NewInlineStore().Save(context.Background(), "recipes", []byte("abc"), "image/gif")
	require.NoError(t, err)
	assert.Equal(t, "data:image/gif;base64,YWJj", ref)
}

type fakeS3 struct {
	uploaded map[string][]byte
	deleted  []string
}

func (f *fakeS3) UploadFile(_ context.Context, fileName string, data []byte, folder string, _ string) (string, error) {
	key := folder + "/" + fileName
	f.uploaded[key] = data
	return key, nil
}

func (f *fakeS3) DeleteFile(_ context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, "https://bucket.example/") {
		return ""
	}
	return strings.TrimPrefix(link, "https://bucket.example/")
}

func TestS3PhotoStore(t *testing.T) {
	fake := &fakeS3{uploaded: map[string][]byte{}}
	store := NewS3PhotoStore(fake)

	ref, err := store.Save(context.Background(), "avatars", []byte("img"), "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "https://bucket.example/avatars/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))
	assert.Len(t, fake.uploaded, 1)

	require.NoError(t, store.Delete(context.Background(), ref))
	require.NoError(t, store.Delete(context.Background(), "data:image/png;base64,AAAA"))
	assert.Len(t, fake.deleted, 1)
}
