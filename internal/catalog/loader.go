package catalog

import (
	"os"
	"strings"

	"github.com/guonaihong/gout"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aminegames/gamekiosk/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadSeed reads the seed catalog document from a local path or http(s) URL.
// Any failure falls back to the built-in default catalog so the kiosk always
// starts with something sellable.
func LoadSeed(source string) domain.GamesData {
	data, err := readSeed(source)
	if err != nil {
		zap.L().Warn("seed catalog unavailable, using built-in defaults",
			zap.String("source", source), zap.Error(err))
		return DefaultGamesData()
	}
	if len(data.Categories) == 0 {
		data.Categories = DefaultCategories()
	}
	zap.L().Info("seed catalog loaded",
		zap.String("source", source), zap.Int("games", len(data.Games)))
	return data
}

func readSeed(source string) (domain.GamesData, error) {
	var data domain.GamesData
	if source == "" {
		return data, errors.New("no seed source configured")
	}
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if err := gout.GET(source).BindJSON(&data).Do(); err != nil {
			return data, errors.Wrap(err, "fetch seed catalog")
		}
	} else {
		raw, err := os.ReadFile(source)
		if err != nil {
			return data, errors.Wrap(err, "read seed catalog")
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			return data, errors.Wrap(domain.ErrMalformedPersistedData, err.Error())
		}
	}
	if len(data.Games) == 0 {
		return data, errors.New("seed catalog contains no games")
	}
	return data, nil
}
