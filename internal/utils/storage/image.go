package storage

import (
	"bytes"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"Go-Recipe-Share/domain"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

const AvatarSize = 512

var AllowImage = []string{"image/jpeg", "image/png", "image/gif"}

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// ReadImage loads an uploaded photo into memory and checks its size,
// extension and sniffed content type.
func ReadImage(fh *multipart.FileHeader) ([]byte, string, error) {
	if fh.Size > domain.MaxPhotoBytes {
		return nil, "", domain.ErrPhotoTooLarge
	}
	if !allowedExt[strings.ToLower(filepath.Ext(fh.Filename))] {
		return nil, "", domain.ErrPhotoNotAnImage
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, domain.MaxPhotoBytes+1))
	if err != nil {
		return nil, "", err
	}
	if len(data) > domain.MaxPhotoBytes {
		return nil, "", domain.ErrPhotoTooLarge
	}

	mime, err := CheckImage(data)
	if err != nil {
		return nil, "", err
	}
	return data, mime, nil
}

func CheckImage(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	if !mimetype.EqualsAny(mtype.String(), AllowImage...) {
		return "", domain.ErrPhotoNotAnImage
	}
	return mtype.String(), nil
}

// Fit downscales an image so it fits in size x size, keeping the aspect
// ratio. Images already small enough are returned untouched.
func Fit(data []byte, mime string, size int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.ErrPhotoNotAnImage
	}
	b := img.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return data, nil
	}

	format := imaging.JPEG
	switch mime {
	case "image/png":
		format = imaging.PNG
	case "image/gif":
		format = imaging.GIF
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, imaging.Fit(img, size, size, imaging.Lanczos), format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func extensionFor(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
