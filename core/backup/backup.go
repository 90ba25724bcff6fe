package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrBackupFailed wraps every failure to produce a requested backup.
var ErrBackupFailed = errors.New("backup failed")

// TimestampLayout is the second-resolution stamp inserted into backup names.
const TimestampLayout = "20060102150405"

// Config holds configuration for EVT backups.
type Config struct {
	// Enabled makes every update snapshot the EVT file first.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Directory is created next to the EVT file and receives the snapshots.
	Directory string `mapstructure:"directory" default:"backups" validate:"required_if=Enabled true"`
}

// Path returns the backup location for target at time now:
// <dir of target>/<dirName>/<base>.<timestamp><ext>.
func Path(target, dirName string, now time.Time) string {
	base := filepath.Base(target)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	return filepath.Join(filepath.Dir(target), dirName, name+"."+now.Format(TimestampLayout)+ext)
}

// Create copies target unmodified into the backup directory and returns the
// backup path. An existing backup with the same name is never overwritten.
func Create(target, dirName string, now time.Time) (string, error) {
	if strings.TrimSpace(dirName) == "" {
		return "", fmt.Errorf("%w: empty backup directory name for '%s'", ErrBackupFailed, target)
	}

	dst := Path(target, dirName, now)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("%w: creating directory for '%s': %w", ErrBackupFailed, target, err)
	}

	if err := copyFile(target, dst); err != nil {
		return "", fmt.Errorf("%w: copying '%s' to '%s': %w", ErrBackupFailed, target, dst, err)
	}

	return dst, nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
