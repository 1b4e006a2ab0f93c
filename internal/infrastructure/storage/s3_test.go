package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"claims-backoffice/internal/domain/apperr"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// fakeS3 keeps objects in a map and records the last input of each call.
type fakeS3 struct {
	objects map[string][]byte
	ctypes  map[string]string
	lastPut *s3.PutObjectInput
	getErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, ctypes: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, _ := io.ReadAll(in.Body)
	f.objects[aws.ToString(in.Key)] = b
	f.ctypes[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	f.lastPut = in
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:        io.NopCloser(bytes.NewReader(b)),
		ContentType: aws.String(f.ctypes[aws.ToString(in.Key)]),
	}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_PutGetDelete(t *testing.T) {
	api := newFakeS3()
	st := NewS3Store(api, "claims-docs")
	ctx := context.Background()

	if err := st.Put(ctx, "claims/c1/a.pdf", "application/pdf", []byte("%PDF")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if got := aws.ToString(api.lastPut.Bucket); got != "claims-docs" {
		t.Fatalf("bucket=%q", got)
	}
	if got := aws.ToInt64(api.lastPut.ContentLength); got != 4 {
		t.Fatalf("content length=%d", got)
	}

	obj, err := st.Get(ctx, "claims/c1/a.pdf")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(obj.Body) != "%PDF" || obj.ContentType != "application/pdf" {
		t.Fatalf("unexpected object: %+v", obj)
	}

	if err := st.Delete(ctx, "claims/c1/a.pdf"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Get(ctx, "claims/c1/a.pdf"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want ErrNotFound after delete, got %v", err)
	}
}

func TestS3Store_DefaultContentType(t *testing.T) {
	api := newFakeS3()
	st := NewS3Store(api, "b")
	if err := st.Put(context.Background(), "k", "", nil); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if got := aws.ToString(api.lastPut.ContentType); got != "application/octet-stream" {
		t.Fatalf("content type=%q", got)
	}
}

func TestS3Store_GetUpstreamError(t *testing.T) {
	api := newFakeS3()
	api.getErr = errors.New("connection reset")
	st := NewS3Store(api, "b")
	_, err := st.Get(context.Background(), "k")
	if err == nil || errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want upstream error, got %v", err)
	}
}
