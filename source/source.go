package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/zero-day-ai/stixgraph/stix"
)

// Sentinel errors for source resolution.
var (
	// ErrInvalidSource indicates a source specifier of an unsupported
	// shape or value.
	ErrInvalidSource = errors.New("invalid bundle source")

	// ErrNotFound indicates a referenced file or directory does not exist.
	ErrNotFound = errors.New("bundle source not found")

	// ErrParse indicates bundle content that is not a well-formed JSON object.
	ErrParse = errors.New("bundle parse failed")

	// ErrFetch indicates a remote bundle could not be retrieved.
	ErrFetch = errors.New("bundle fetch failed")
)

// Resolver turns source specifiers into parsed bundles. The zero value
// is usable; Logger and Client default to slog.Default and
// http.DefaultClient.
type Resolver struct {
	Logger *slog.Logger
	Client *http.Client
}

// Resolve resolves a source specifier into an ordered list of bundles.
//
// Supported specifier shapes:
//   - string: path to a .json file, a directory (all *.json files,
//     sorted by name, non-recursive), or an http(s) URL
//   - []string: JSON bundle texts
//   - []stix.Bundle or []map[string]any: already-parsed bundles
//   - []any whose elements are uniformly strings or mappings
//
// Bundles missing an "id" get a synthesized "bundle--<uuid>" identifier
// so every bundle in a session is addressable.
func (r *Resolver) Resolve(ctx context.Context, src any) ([]stix.Bundle, error) {
	switch s := src.(type) {
	case string:
		return r.resolveString(ctx, s)
	case []string:
		return parseTexts(s)
	case []stix.Bundle:
		out := make([]stix.Bundle, 0, len(s))
		for _, b := range s {
			out = append(out, normalize(b))
		}
		return out, nil
	case []map[string]any:
		out := make([]stix.Bundle, 0, len(s))
		for _, b := range s {
			out = append(out, normalize(stix.Bundle(b)))
		}
		return out, nil
	case []any:
		return r.resolveMixed(s)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidSource, src)
	}
}

// Resolve resolves a source specifier using a default Resolver.
func Resolve(ctx context.Context, src any) ([]stix.Bundle, error) {
	r := &Resolver{}
	return r.Resolve(ctx, src)
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Resolver) resolveString(ctx context.Context, s string) ([]stix.Bundle, error) {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		b, err := r.fetch(ctx, s)
		if err != nil {
			return nil, err
		}
		return []stix.Bundle{b}, nil
	}

	info, err := os.Stat(s)
	switch {
	case err == nil && info.IsDir():
		return r.resolveDir(s)
	case err == nil:
		b, err := parseFile(s)
		if err != nil {
			return nil, err
		}
		return []stix.Bundle{b}, nil
	case strings.HasSuffix(s, ".json"):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s)
	default:
		return nil, fmt.Errorf("%w: %q is not a .json file, directory, or URL", ErrInvalidSource, s)
	}
}

func (r *Resolver) resolveDir(dir string) ([]stix.Bundle, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		r.logger().Warn("no .json files found in source directory", "dir", dir)
		return nil, nil
	}

	bundles := make([]stix.Bundle, 0, len(files))
	for _, f := range files {
		b, err := parseFile(f)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

func (r *Resolver) fetch(ctx context.Context, url string) (stix.Bundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: unexpected status %s", ErrFetch, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}
	return parseBundle(data, url)
}

func (r *Resolver) resolveMixed(items []any) ([]stix.Bundle, error) {
	bundles := make([]stix.Bundle, 0, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case string:
			b, err := parseBundle([]byte(v), fmt.Sprintf("source[%d]", i))
			if err != nil {
				return nil, err
			}
			bundles = append(bundles, b)
		case map[string]any:
			bundles = append(bundles, normalize(stix.Bundle(v)))
		case stix.Bundle:
			bundles = append(bundles, normalize(v))
		default:
			return nil, fmt.Errorf("%w: element %d has unsupported type %T", ErrInvalidSource, i, item)
		}
	}
	return bundles, nil
}

func parseTexts(texts []string) ([]stix.Bundle, error) {
	bundles := make([]stix.Bundle, 0, len(texts))
	for i, text := range texts {
		b, err := parseBundle([]byte(text), fmt.Sprintf("source[%d]", i))
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}

func parseFile(path string) (stix.Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	return parseBundle(data, path)
}

func parseBundle(data []byte, origin string) (stix.Bundle, error) {
	var b map[string]any
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, origin, err)
	}
	return normalize(stix.Bundle(b)), nil
}

// normalize gives an id-less bundle a synthetic identifier. The input
// is not mutated; a copy is made only when an id has to be added.
func normalize(b stix.Bundle) stix.Bundle {
	if b.ID() != "" {
		return b
	}
	out := make(stix.Bundle, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	out["id"] = "bundle--" + uuid.NewString()
	return out
}
