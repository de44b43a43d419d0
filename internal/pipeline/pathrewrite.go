package pipeline

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ResolveImagePaths points relative <img> sources at local files so the
// browser preview can show vault attachments.
//
// Each relative source is looked up in sourceDir first, then in every
// attachment directory (relative to sourceDir). The first existing file wins;
// when none exists the source is resolved against sourceDir anyway. Sources
// that escape sourceDir are left alone. If sourceDir is empty, the HTML is
// returned unchanged.
func ResolveImagePaths(htmlContent, sourceDir string, attachmentDirs []string) (string, error) {
	if sourceDir == "" {
		return htmlContent, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	nodes, err := html.ParseFragment(strings.NewReader(htmlContent), &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		return "", err
	}

	r := imageResolver{
		sourceDir:  absSourceDir,
		searchDirs: searchDirs(absSourceDir, attachmentDirs),
	}

	var buf strings.Builder
	for _, n := range nodes {
		r.walk(n)
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// searchDirs lists the lookup directories in order, skipping any that escape
// the source directory.
func searchDirs(sourceDir string, attachmentDirs []string) []string {
	dirs := []string{sourceDir}
	for _, d := range attachmentDirs {
		if d == "" {
			continue
		}
		abs := filepath.Join(sourceDir, d)
		if !isPathUnderDir(abs, sourceDir) {
			continue
		}
		dirs = append(dirs, abs)
	}
	return dirs
}

type imageResolver struct {
	sourceDir  string
	searchDirs []string
}

func (r imageResolver) walk(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Img {
		r.rewriteSrc(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
}

func (r imageResolver) rewriteSrc(n *html.Node) {
	for i, attr := range n.Attr {
		if attr.Key != "src" || !isRelativePath(attr.Val) {
			continue
		}

		// Goldmark percent-encodes destinations ("Pasted%20image.png").
		rel, err := url.PathUnescape(attr.Val)
		if err != nil {
			rel = attr.Val
		}

		if abs, ok := r.locate(rel); ok {
			n.Attr[i].Val = pathToFileURL(abs)
		}
	}
}

// locate returns the first existing candidate for rel, falling back to
// rel resolved against the source directory.
func (r imageResolver) locate(rel string) (string, bool) {
	for _, dir := range r.searchDirs {
		candidate := filepath.Join(dir, rel)
		if !isPathUnderDir(candidate, r.sourceDir) {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	fallback := filepath.Join(r.sourceDir, rel)
	if !isPathUnderDir(fallback, r.sourceDir) {
		return "", false
	}
	return fallback, true
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}

	// Skip URLs (http, https, file, data, protocol-relative)
	if strings.HasPrefix(path, "http://") ||
		strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "file://") ||
		strings.HasPrefix(path, "data:") ||
		strings.HasPrefix(path, "//") {
		return false
	}

	if strings.HasPrefix(path, "#") {
		return false
	}

	return !filepath.IsAbs(path)
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}
