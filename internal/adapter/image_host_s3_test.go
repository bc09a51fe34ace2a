package adapter

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	putErr  error
	headErr error
	delErr  error

	lastContentType string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = body
	f.lastContentType = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.delErr != nil {
		return nil, f.delErr
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func newTestS3Host(client s3API) *s3ImageHost {
	h := newS3ImageHost(client, config.ImageHost{
		Folder: "avatars",
		S3: config.S3{
			Bucket:        "images",
			PublicBaseURL: "https://cdn.example/",
		},
	}, logger.Nop())
	h.newKey = func(ext string) string { return "fixed" + ext }
	return h
}

func TestS3ImageHost_UploadThenDelete(t *testing.T) {
	fake := newFakeS3()
	h := newTestS3Host(fake)
	ctx := context.Background()

	img, err := h.Upload(ctx, writeTempImage(t))
	require.NoError(t, err)
	assert.Equal(t, models.Image{URL: "https://cdn.example/avatars/fixed.png", PublicID: "avatars/fixed.png"}, img)
	assert.Equal(t, "image/png", fake.lastContentType)
	assert.Equal(t, []byte("\x89PNG fake"), fake.objects["avatars/fixed.png"])

	res, err := h.Delete(ctx, img.PublicID)
	require.NoError(t, err)
	assert.Equal(t, models.DeletionResultOK, res.Result)
	assert.Empty(t, fake.objects)

	// second delete finds nothing, which still counts as deleted
	res, err = h.Delete(ctx, img.PublicID)
	require.NoError(t, err)
	assert.Equal(t, models.DeletionResultNotFound, res.Result)
	assert.True(t, res.Deleted())
}

func TestS3ImageHost_UploadErrors(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = errors.New("access denied")
	h := newTestS3Host(fake)

	_, err := h.Upload(context.Background(), writeTempImage(t))
	assert.ErrorIs(t, err, ErrUploadFailed)

	_, err = h.Upload(context.Background(), "/does/not/exist.png")
	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestS3ImageHost_UploadWithoutPublicURL(t *testing.T) {
	h := newS3ImageHost(newFakeS3(), config.ImageHost{S3: config.S3{Bucket: "images"}}, logger.Nop())

	_, err := h.Upload(context.Background(), writeTempImage(t))
	assert.ErrorIs(t, err, ErrEmptyImageURL)
}

func TestS3ImageHost_DeleteErrors(t *testing.T) {
	fake := newFakeS3()
	fake.objects["k"] = []byte("x")
	fake.delErr = errors.New("boom")
	h := newTestS3Host(fake)

	_, err := h.Delete(context.Background(), "k")
	assert.ErrorIs(t, err, ErrDeleteFailed)

	fake.headErr = errors.New("timeout")
	_, err = h.Delete(context.Background(), "k")
	assert.ErrorIs(t, err, ErrDeleteFailed)

	_, err = h.Delete(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyPublicID)
}

func TestNewS3ImageHost_EndpointBuildsPublicURL(t *testing.T) {
	h := newS3ImageHost(newFakeS3(), config.ImageHost{S3: config.S3{
		Bucket:   "images",
		Endpoint: "http://minio:9000/",
	}}, logger.Nop())
	assert.Equal(t, "http://minio:9000/images", h.publicBaseURL)
}

func TestNewS3ImageHost_RequiresBucket(t *testing.T) {
	_, err := NewS3ImageHost(context.Background(), config.ImageHost{}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}
