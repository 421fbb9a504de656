package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Dosada05/dominoes-tournament/models"
)

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader puts objects into a bucket and resolves their public URL.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

var ErrNoChampion = errors.New("tournament has no champion")

// ChampionArchive keeps a JSON snapshot of every decided tournament.
type ChampionArchive struct {
	uploader FileUploader
	now      func() time.Time
}

func NewChampionArchive(uploader FileUploader) *ChampionArchive {
	return &ChampionArchive{uploader: uploader, now: time.Now}
}

// ArchiveKey is champions/<league>/<model>/<unix seconds>-team-<winner id>.json.
func ArchiveKey(t *models.Tournament, at time.Time) string {
	return fmt.Sprintf("champions/%s/%s/%d-team-%d.json", t.League, t.Model, at.Unix(), t.Winner.ID)
}

// Store uploads the full tournament history of a decided tournament.
func (a *ChampionArchive) Store(ctx context.Context, t *models.Tournament) (*UploadResult, error) {
	if t == nil || t.Winner == nil {
		return nil, ErrNoChampion
	}
	body, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tournament snapshot: %w", err)
	}
	return a.uploader.Upload(ctx, ArchiveKey(t, a.now()), "application/json", bytes.NewReader(body))
}
