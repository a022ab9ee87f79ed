// Copyright © Rob Burke inchworks.com, 2025.

// This file is part of OsisWeb.
//
// OsisWeb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// OsisWeb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with OsisWeb.  If not, see <https://www.gnu.org/licenses/>.

package publish

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type object struct {
	contentType string
	body        string
}

type fakeUploader struct {
	mu      sync.Mutex
	objects map[string]object
	fail    string
}

func (u *fakeUploader) Upload(ctx context.Context, in *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	key := aws.ToString(in.Key)
	if key == u.fail {
		return nil, errors.New("access denied")
	}

	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[key] = object{contentType: aws.ToString(in.ContentType), body: string(b)}
	return &manager.UploadOutput{Key: in.Key}, nil
}

type fakeInvalidator struct {
	calls []*cloudfront.CreateInvalidationInput
}

func (f *fakeInvalidator) CreateInvalidation(ctx context.Context, in *cloudfront.CreateInvalidationInput, opts ...func(*cloudfront.Options)) (*cloudfront.CreateInvalidationOutput, error) {
	f.calls = append(f.calls, in)
	return &cloudfront.CreateInvalidationOutput{Invalidation: &types.Invalidation{Id: aws.String("I1")}}, nil
}

func exported(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"index.html":            "<html></html>",
		"struktur/index.html":   "<html>OSIS</html>",
		"static/css/styles.css": "body{}",
		"static/data.bin":       "x",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestPublish(t *testing.T) {

	up := &fakeUploader{objects: map[string]object{}}
	inv := &fakeInvalidator{}
	p := &Publisher{Uploader: up, Invalidator: inv, Bucket: "osis-site", Distribution: "D1"}

	n, err := p.Publish(context.Background(), exported(t))
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	keys := make([]string, 0, len(up.objects))
	for k := range up.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	assert.Equal(t, []string{"index.html", "static/css/styles.css", "static/data.bin", "struktur/index.html"}, keys)

	assert.Contains(t, up.objects["index.html"].contentType, "text/html")
	assert.Contains(t, up.objects["static/css/styles.css"].contentType, "text/css")
	assert.Equal(t, defaultContentType, up.objects["static/data.bin"].contentType)
	assert.Equal(t, "<html>OSIS</html>", up.objects["struktur/index.html"].body)

	require.Len(t, inv.calls, 1)
	assert.Equal(t, "D1", aws.ToString(inv.calls[0].DistributionId))
	assert.Equal(t, []string{"/*"}, inv.calls[0].InvalidationBatch.Paths.Items)
}

func TestPublishNoDistribution(t *testing.T) {

	up := &fakeUploader{objects: map[string]object{}}
	inv := &fakeInvalidator{}
	p := &Publisher{Uploader: up, Invalidator: inv, Bucket: "osis-site"}

	_, err := p.Publish(context.Background(), exported(t))
	require.NoError(t, err)
	assert.Empty(t, inv.calls)
}

func TestPublishUploadFails(t *testing.T) {

	up := &fakeUploader{objects: map[string]object{}, fail: "index.html"}
	inv := &fakeInvalidator{}
	p := &Publisher{Uploader: up, Invalidator: inv, Bucket: "osis-site", Distribution: "D1"}

	_, err := p.Publish(context.Background(), exported(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index.html")
	assert.Empty(t, inv.calls)
}
