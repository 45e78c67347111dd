package validate

import (
	"fmt"
	"path"

	"github.com/erikmannerfelt/xdem-data/internal/utils"
)

// FixtureDirectory validates that given directory is a valid DEM fixture directory
func FixtureDirectory(fixtureDirPath string) error {
	if !utils.IsDirectory(fixtureDirPath) {
		return fmt.Errorf("%s does not exist or is no directory", fixtureDirPath)
	}

	// check DEM
	if !utils.IsFile(path.Join(fixtureDirPath, "dem.asc.gz")) {
		return fmt.Errorf("%s is missing", path.Join(fixtureDirPath, "dem.asc.gz"))
	}

	// check meta.json
	if !utils.IsFile(path.Join(fixtureDirPath, "meta.json")) {
		return fmt.Errorf("%s is missing", path.Join(fixtureDirPath, "meta.json"))
	}

	return nil
}
