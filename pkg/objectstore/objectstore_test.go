package objectstore

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type fakeS3 struct {
	putInput   *s3.PutObjectInput
	putErr     error
	headErr    error
	createErr  error
	created    bool
	headCalled bool
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = in
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(_ context.Context, _ *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	f.headCalled = true
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeS3) CreateBucket(_ context.Context, _ *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.created = true
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &s3.CreateBucketOutput{}, nil
}

func newTestClient(api s3API) *Client {
	return &Client{api: api, endpoint: "https://o3.akave.ai", bucket: "metadata"}
}

func TestPutJSON_OK(t *testing.T) {
	fake := &fakeS3{}
	c := newTestClient(fake)

	url, err := c.PutJSON(context.Background(), "123-abcdef-metadata.json", map[string]string{"name": "n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://o3.akave.ai/metadata/123-abcdef-metadata.json" {
		t.Fatalf("unexpected url: %q", url)
	}

	in := fake.putInput
	if in == nil {
		t.Fatal("PutObject not called")
	}
	if *in.Bucket != "metadata" || *in.Key != "123-abcdef-metadata.json" {
		t.Fatalf("unexpected bucket/key: %s/%s", *in.Bucket, *in.Key)
	}
	if *in.ContentType != "application/json" {
		t.Fatalf("unexpected content type: %q", *in.ContentType)
	}
	if in.ACL != types.ObjectCannedACLPublicRead {
		t.Fatalf("unexpected ACL: %v", in.ACL)
	}
	raw, _ := io.ReadAll(in.Body)
	var doc map[string]string
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if doc["name"] != "n" {
		t.Fatalf("unexpected body: %s", raw)
	}
}

func TestPutJSON_UploadError(t *testing.T) {
	fake := &fakeS3{putErr: errors.New("boom")}
	c := newTestClient(fake)
	if _, err := c.PutJSON(context.Background(), "k", "v"); err == nil {
		t.Fatal("expected error")
	}
}

func TestEnsureBucket_Exists(t *testing.T) {
	fake := &fakeS3{}
	c := newTestClient(fake)
	if err := c.EnsureBucket(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fake.headCalled || fake.created {
		t.Fatal("expected head without create")
	}
}

func TestEnsureBucket_CreatesMissing(t *testing.T) {
	fake := &fakeS3{headErr: &types.NotFound{}}
	c := newTestClient(fake)
	if err := c.EnsureBucket(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fake.created {
		t.Fatal("expected CreateBucket call")
	}
}

func TestEnsureBucket_OtherHeadError(t *testing.T) {
	fake := &fakeS3{headErr: errors.New("access denied")}
	c := newTestClient(fake)
	if err := c.EnsureBucket(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if fake.created {
		t.Fatal("should not attempt create on non-404 error")
	}
}
