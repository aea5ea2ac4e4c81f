package compose

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"cssel/config"
	"cssel/state"
)

// buildOutputPath returns constructed output file path/name based on various
// input parameters. A destination naming an existing directory (or carrying
// no extension) gets a file name from either default naming scheme or user
// defined template, anything else is taken as the output file itself. It
// cleans up path and if requested transliterates it.
func buildOutputPath(src, dst string, format config.EmitFmt, env *state.LocalEnv) string {
	if !isDirTarget(dst) {
		return dst
	}

	docName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	defaultFile := buildDefaultFileName(docName, format, env)

	if env.Cfg.Compose.OutputNameTemplate == "" {
		return filepath.Join(dst, defaultFile)
	}

	expandedName := expandOutputNameTemplate(docName, format, env)
	if expandedName == "" {
		// fallback to default name if template expansion failed
		return filepath.Join(dst, defaultFile)
	}

	return assemblePathWithSubdirs(dst, expandedName, format, env)
}

func isDirTarget(dst string) bool {
	if fi, err := os.Stat(dst); err == nil {
		return fi.IsDir()
	}
	return filepath.Ext(dst) == ""
}

func buildDefaultFileName(docName string, format config.EmitFmt, env *state.LocalEnv) string {
	if env.Cfg.Compose.TransliterateNames {
		docName = slug.Make(docName)
	}
	return config.CleanFileName(docName) + format.Ext()
}

func expandOutputNameTemplate(docName string, format config.EmitFmt, env *state.LocalEnv) string {
	expandedName, err := expandTemplate(config.OutputNameTemplateFieldName, env.Cfg.Compose.OutputNameTemplate, Values{
		Name:   docName,
		Format: format.String(),
		Ext:    format.Ext(),
		Time:   time.Now(),
	})
	if err != nil {
		env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		return ""
	}
	return filepath.FromSlash(expandedName)
}

// assemblePathWithSubdirs takes an expanded template name (which may contain
// path separators for subdirectories) and assembles it into a full output path,
// cleaning and transliterating segments as needed
func assemblePathWithSubdirs(outDir, expandedName string, format config.EmitFmt, env *state.LocalEnv) string {
	outExt := format.Ext()
	pathSegments := splitAndCleanPath(expandedName)

	if len(pathSegments) == 0 {
		return outDir
	}

	// templates may already expand {{ .Ext }}, do not double the extension
	last := strings.TrimSuffix(pathSegments[len(pathSegments)-1], outExt)
	fileName := cleanPathSegment(last, env) + outExt

	dirParts := make([]string, 0, len(pathSegments)+1)
	dirParts = append(dirParts, outDir)

	for _, segment := range pathSegments[:len(pathSegments)-1] {
		dirParts = append(dirParts, cleanPathSegment(segment, env))
	}

	dirParts = append(dirParts, fileName)
	return filepath.Join(dirParts...)
}

func splitAndCleanPath(path string) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		segments = slices.Insert(segments, 0, tail)
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
		path = head
	}

	return segments
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Compose.TransliterateNames {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
