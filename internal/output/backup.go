package output

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/ulikunitz/xz"
)

// backupSuffix marks the pre-iro copy of a config file.
const backupSuffix = ".iro.bak.xz"

// backupOnce stores an xz-compressed copy of the file before its first
// modification. Later runs leave the backup alone so the user's
// original config stays recoverable. A missing source file needs no
// backup.
func backupOnce(path string, log hclog.Logger) error {
	backupPath := path + backupSuffix
	if _, err := os.Stat(backupPath); err == nil {
		return nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - User config path controlled by application
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s for backup: %w", path, err)
	}

	out, err := os.Create(backupPath) // #nosec G304 - Backup path derived from config path
	if err != nil {
		return fmt.Errorf("failed to create backup %s: %w", backupPath, err)
	}

	xzw, err := xz.NewWriter(out)
	if err != nil {
		out.Close()
		return fmt.Errorf("failed to create xz writer: %w", err)
	}

	_, writeErr := xzw.Write(data)
	closeErr := xzw.Close()
	fileErr := out.Close()

	if writeErr != nil {
		return fmt.Errorf("failed to compress backup: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to finalise backup: %w", closeErr)
	}
	if fileErr != nil {
		return fmt.Errorf("failed to close backup file: %w", fileErr)
	}

	log.Debug("backed up config", "path", path, "backup", backupPath)
	return nil
}
