package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix names the staging files of atomic saves. The watcher
// skips them since only the notes file itself is reported.
const TempFilePrefix = ".scribe-tmp-"

// writeFileAtomic stages data in a sibling temp file with the final mode
// already applied, flushes it and renames it over filename. On any error the
// staged file is removed and filename keeps its previous contents.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	staged, err := os.CreateTemp(filepath.Dir(filename), TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("stage %s: %w", filename, err)
	}
	defer func() {
		if err != nil {
			_ = staged.Close()
			_ = os.Remove(staged.Name())
			err = fmt.Errorf("atomic write %s: %w", filename, err)
		}
	}()

	if err = staged.Chmod(perm); err != nil {
		return err
	}
	if _, err = staged.Write(data); err != nil {
		return err
	}
	if err = staged.Sync(); err != nil {
		return err
	}
	if err = staged.Close(); err != nil {
		return err
	}
	return os.Rename(staged.Name(), filename)
}
