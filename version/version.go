// Package version compares release versions and tells the user when a newer one is out.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jellytv/jellytv/filesystem"
	"github.com/jellytv/jellytv/network"
	"github.com/jellytv/jellytv/util"
	"github.com/jellytv/jellytv/where"
	"github.com/metafates/gache"
)

// ReleasesURL is the GitHub endpoint describing the latest release.
var ReleasesURL = "https://api.github.com/repos/jellytv/jellytv/releases/latest"

var latestCache = sync.OnceValue(func() *gache.Cache[string] {
	return gache.New[string](&gache.Options{
		Path:       filepath.Join(where.Cache(), "version.json"),
		Lifetime:   48 * time.Hour,
		FileSystem: &filesystem.GacheFs{},
	})
})

// Latest returns the newest released version without its "v" prefix. Results are kept for two days.
func Latest(ctx context.Context) (string, error) {
	if cached, expired, err := latestCache().Get(); err == nil && !expired && cached != "" {
		return cached, nil
	}

	version, err := fetchLatest(ctx)
	if err != nil {
		return "", err
	}

	_ = latestCache().Set(version)
	return version, nil
}

func fetchLatest(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReleasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("latest release: status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}
	return strings.TrimPrefix(release.TagName, "v"), nil
}
