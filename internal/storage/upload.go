package storage

import (
	"context"
	"mime/multipart"
)

// UploadMultipartFile opens a multipart header and pushes it to the
// bucket, preserving the browser-reported content type.
func UploadMultipartFile(
	ctx context.Context,
	client *R2Client,
	key string,
	file *multipart.FileHeader,
) (string, error) {

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return client.Upload(ctx, key, f, file.Header.Get("Content-Type"))
}
