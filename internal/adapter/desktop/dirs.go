package desktop

import (
	"os"
	"path/filepath"

	"github.com/GoArmGo/Wallsplash/internal/adapter/download"
	"github.com/GoArmGo/Wallsplash/internal/domain"
	"github.com/adrg/xdg"
)

// PicturesDir возвращает каталог изображений пользователя:
// override, если задан, иначе XDG_PICTURES_DIR.
func PicturesDir(override string) string {
	if override != "" {
		return override
	}
	return xdg.UserDirs.Pictures
}

// PrepareBackgroundsDir создает <picturesDir>/backgrounds, если его еще нет.
func PrepareBackgroundsDir(picturesDir string) (string, error) {
	dir := filepath.Join(picturesDir, download.BackgroundsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.FilesystemError{Op: "create backgrounds dir", Path: dir, Err: err}
	}
	return dir, nil
}
