package download

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"mirkit/internal/logging"
)

// Kind identifies how a remote artifact is unpacked after download.
type Kind string

const (
	// KindZip extracts the artifact as a zip archive.
	KindZip Kind = "zip"
	// KindTarGz extracts the artifact as a gzip-compressed tarball.
	KindTarGz Kind = "targz"
	// KindFile places the artifact as-is (no extraction).
	KindFile Kind = "file"
)

// RemoteFile describes one downloadable dataset artifact.
type RemoteFile struct {
	Name     string // archive filename under the data root
	URL      string
	Checksum string // expected MD5 of the archive itself
	Kind     Kind
	DestDir  string // extraction subdirectory under the data root ("" = root)
}

const lockFileName = ".mirkit.lock"

// Downloader fetches remote dataset artifacts into data roots.
type Downloader struct {
	client  *http.Client
	logger  *slog.Logger
	cleanup bool
}

// New constructs a Downloader. If logger is nil a no-op logger is used;
// timeout <= 0 selects a 10 minute default. cleanup removes archives after
// successful extraction.
func New(logger *slog.Logger, timeout time.Duration, cleanup bool) *Downloader {
	if timeout <= 0 {
		timeout = 10 * time.Minute
	}
	return &Downloader{
		client:  &http.Client{Timeout: timeout},
		logger:  logging.NewComponentLogger(logger, "download"),
		cleanup: cleanup,
	}
}

// Fetch downloads and unpacks every remote into dataRoot. The data root is
// created if needed and held under a file lock for the duration so concurrent
// invocations against the same root fail fast rather than interleave
// extraction.
func (d *Downloader) Fetch(ctx context.Context, dataRoot string, remotes []RemoteFile) error {
	if err := os.MkdirAll(dataRoot, 0o755); err != nil {
		return fmt.Errorf("create data root: %w", err)
	}

	lock := flock.New(filepath.Join(dataRoot, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire data root lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("data root %s is locked by another download", dataRoot)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	for _, remote := range remotes {
		if err := d.fetchOne(ctx, dataRoot, remote); err != nil {
			return err
		}
	}
	return nil
}

func (d *Downloader) fetchOne(ctx context.Context, dataRoot string, remote RemoteFile) error {
	archivePath := filepath.Join(dataRoot, remote.Name)

	d.logger.Info("downloading artifact",
		logging.String("url", remote.URL),
		logging.String(logging.FieldPath, archivePath))

	if err := d.downloadVerified(ctx, remote, archivePath); err != nil {
		return err
	}

	destDir := dataRoot
	if remote.DestDir != "" {
		destDir = filepath.Join(dataRoot, remote.DestDir)
	}

	switch remote.Kind {
	case KindZip:
		if err := extractZip(archivePath, destDir); err != nil {
			return fmt.Errorf("extract %s: %w", remote.Name, err)
		}
	case KindTarGz:
		if err := extractTarGz(archivePath, destDir); err != nil {
			return fmt.Errorf("extract %s: %w", remote.Name, err)
		}
	case KindFile:
		// Nothing to unpack.
	default:
		return fmt.Errorf("unknown archive kind %q for %s", remote.Kind, remote.Name)
	}

	if d.cleanup && remote.Kind != KindFile {
		if err := os.Remove(archivePath); err != nil {
			d.logger.Warn("archive cleanup failed",
				logging.String(logging.FieldPath, archivePath),
				logging.Error(err))
		}
	}

	d.logger.Info("artifact ready",
		logging.String("name", remote.Name),
		logging.String(logging.FieldPath, destDir))
	return nil
}

// downloadVerified streams the response body to a temp file while hashing it,
// then moves it into place only when the checksum matches.
func (d *Downloader) downloadVerified(ctx context.Context, remote RemoteFile, archivePath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, remote.URL, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", remote.URL, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", remote.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: unexpected status %d", remote.Name, resp.StatusCode)
	}

	tempPath := archivePath + ".tmp"
	out, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("create archive file: %w", err)
	}

	hasher := md5.New()
	_, err = io.Copy(out, io.TeeReader(resp.Body, hasher))
	closeErr := out.Close()
	if err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("write %s: %w", remote.Name, err)
	}
	if closeErr != nil {
		os.Remove(tempPath)
		return fmt.Errorf("write %s: %w", remote.Name, closeErr)
	}

	if remote.Checksum != "" {
		sum := hex.EncodeToString(hasher.Sum(nil))
		if sum != remote.Checksum {
			os.Remove(tempPath)
			return fmt.Errorf("download %s: checksum mismatch (got %s, want %s)", remote.Name, sum, remote.Checksum)
		}
	}

	if err := os.Rename(tempPath, archivePath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("place archive: %w", err)
	}
	return nil
}
