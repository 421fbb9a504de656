package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/dominoes-tournament/models"
)

type fakeObjectAPI struct {
	puts    map[string][]byte
	types   map[string]string
	deleted []string
	err     error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, _ := io.ReadAll(in.Body)
	if f.puts == nil {
		f.puts, f.types = map[string][]byte{}, map[string]string{}
	}
	f.puts[aws.ToString(in.Key)] = body
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{ETag: aws.String(`"abc123"`)}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func newTestUploader(t *testing.T, api objectAPI, base string) *cloudflareR2Uploader {
	t.Helper()
	u, err := url.Parse(base)
	require.NoError(t, err)
	return newR2Uploader(api, "bucket", u)
}

func TestGetPublicURL(t *testing.T) {
	tests := []struct {
		base string
		key  string
		want string
	}{
		{base: "https://cdn.example.com", key: "champions/a.json", want: "https://cdn.example.com/champions/a.json"},
		{base: "https://cdn.example.com/", key: "/champions/a.json", want: "https://cdn.example.com/champions/a.json"},
		{base: "https://cdn.example.com/archive", key: "a.json", want: "https://cdn.example.com/archive/a.json"},
		{base: "https://cdn.example.com", key: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.base+"|"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestUploader(t, &fakeObjectAPI{}, tt.base).GetPublicURL(tt.key))
		})
	}
}

func TestUploadAndDelete(t *testing.T) {
	api := &fakeObjectAPI{}
	u := newTestUploader(t, api, "https://cdn.example.com")

	res, err := u.Upload(context.Background(), "x/y.json", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	assert.Equal(t, "abc123", res.ETag)
	assert.Equal(t, "https://cdn.example.com/x/y.json", res.Location)

	require.NoError(t, u.Delete(context.Background(), "x/y.json"))
	assert.Equal(t, []string{"x/y.json"}, api.deleted)

	api.err = errors.New("boom")
	_, err = u.Upload(context.Background(), "k", "text/plain", strings.NewReader("x"))
	assert.ErrorContains(t, err, "key: k")
}

func TestNewCloudflareR2UploaderRequiresAllFields(t *testing.T) {
	_, err := NewCloudflareR2Uploader(context.Background(), CloudflareR2UploaderConfig{AccountID: "acc"})
	assert.Error(t, err)
	assert.False(t, CloudflareR2UploaderConfig{}.Configured())
}

func TestChampionArchive(t *testing.T) {
	api := &fakeObjectAPI{}
	archive := NewChampionArchive(newTestUploader(t, api, "https://cdn.example.com"))
	archive.now = func() time.Time { return time.Unix(1700000000, 0) }

	_, err := archive.Store(context.Background(), &models.Tournament{League: "dominoes"})
	assert.ErrorIs(t, err, ErrNoChampion)

	decided := &models.Tournament{
		League:       "dominoes",
		Model:        "mdlc",
		CurrentRound: 9,
		Winner:       &models.Team{ID: 7, Name: "Fichas de Oro"},
	}
	res, err := archive.Store(context.Background(), decided)
	require.NoError(t, err)
	assert.Equal(t, "champions/dominoes/mdlc/1700000000-team-7.json", res.Key)
	assert.Equal(t, "application/json", api.types[res.Key])

	var stored models.Tournament
	require.NoError(t, json.Unmarshal(api.puts[res.Key], &stored))
	assert.Equal(t, 9, stored.CurrentRound)
	assert.Equal(t, "Fichas de Oro", stored.Winner.Name)
}
