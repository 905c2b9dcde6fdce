package connector

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// cleanFileName reduces an uploaded file name to a slugged stem and a lowercase extension
func cleanFileName(name string) (string, string) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(base))
	stem := slug.Make(strings.TrimSuffix(base, filepath.Ext(base)))

	if !extPattern.MatchString(ext) {
		ext = ""
	}
	if stem == "" {
		stem = "file"
	}
	return stem, ext
}

// uniqueSuffix returns eight random hex characters
func uniqueSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// objectKey builds "<folder>/<stem>-<suffix><ext>" for remote stores
func objectKey(folder, fileName string, keepExt bool) string {
	stem, ext := cleanFileName(fileName)
	name := stem + "-" + uniqueSuffix()
	if keepExt {
		name += ext
	}
	return path.Join(folder, name)
}
