package env

import (
	"fmt"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/firdawws/massive-tools/internal/pkg/filesystem"
)

// LoadDotEnv loads envs from ".env" files if they exist. Existing envs take precedence.
func LoadDotEnv(logger *zap.SugaredLogger, osEnvs *Map, fs filesystem.Fs, dir string) *Map {
	envs := FromMap(osEnvs.ToMap()) // copy

	for _, file := range Files() {
		path := filesystem.Join(dir, file)
		if !fs.Exists(path) || fs.IsDir(path) {
			continue
		}

		fileEnvs, err := LoadEnvFile(fs, path)
		if err != nil {
			logger.Warnf("%s", err.Error())
			continue
		}
		logger.Debugf("Loaded env file \"%s\"", path)

		// Merge ENVs, existing keys take precedence.
		envs.Merge(fileEnvs, false)
	}

	return envs
}

func LoadEnvFile(fs filesystem.Fs, path string) (*Map, error) {
	content, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read env file \"%s\": %w", path, err)
	}

	data, err := godotenv.Unmarshal(content)
	if err != nil {
		return nil, fmt.Errorf("cannot parse env file \"%s\": %w", path, err)
	}

	return FromMap(data), nil
}
