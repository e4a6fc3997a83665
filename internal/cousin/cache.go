package cousin

import (
	"bytes"
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elliotchance/orderedmap/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/cacack/pedigree-engine/internal/pedigree"
)

// memoCacheSize bounds the in-memory cousin-matrix cache: matrix results
// keyed by summary fingerprint + settings fragment.
const memoCacheSize = 256

// Engine owns a cousin computation's settings and caches, so no
// module-level mutable defaults exist; every caller passes its settings
// through an Engine value.
type Engine struct {
	settings CousinComputationSettings
	memo     *lru.Cache[string, CousinMatrix]
	logger   *zap.Logger
}

// NewEngine creates an Engine with the given settings. A nil logger
// defaults to a no-op logger, matching internal/logging's convention that
// the algorithmic layers never log by themselves.
func NewEngine(settings CousinComputationSettings, logger *zap.Logger) (*Engine, error) {
	memo, err := lru.New[string, CousinMatrix](memoCacheSize)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{settings: settings, memo: memo, logger: logger}, nil
}

// Settings returns the engine's current settings.
func (e *Engine) Settings() CousinComputationSettings { return e.settings }

// BuildCousinMatrix returns the cousin matrix for summary, consulting the
// in-memory cache and then (if enabled) the on-disk cache before falling
// back to BuildCousinMatrix's pure computation. A disk read/write failure
// is logged and treated as a cache miss, never surfaced to the caller.
func (e *Engine) BuildCousinMatrix(summary *RelationshipSummary) CousinMatrix {
	key := e.cacheKey(summary)

	if m, ok := e.memo.Get(key); ok {
		return m
	}

	if e.settings.CacheEnabled {
		if m, ok := e.readDisk(key); ok {
			e.memo.Add(key, m)
			return m
		}
	}

	m := BuildCousinMatrix(summary, e.settings)
	e.memo.Add(key, m)

	if e.settings.CacheEnabled {
		if err := e.writeDisk(key, m); err != nil {
			e.logger.Warn("cousin disk cache write failed", zap.Error(err))
		}
	}

	return m
}

// ClearCousinDegreeCache empties the in-memory cache and, if includeDisk is
// true, every file this engine's cache_prefix owns in CacheDirectory.
func (e *Engine) ClearCousinDegreeCache(includeDisk bool) error {
	e.memo.Purge()
	if !includeDisk || e.settings.CacheDirectory == "" {
		return nil
	}

	matches, err := filepath.Glob(filepath.Join(e.settings.CacheDirectory, e.settings.CachePrefix+"-*."+diskCacheExtension))
	if err != nil {
		return &pedigree.DiskCacheError{Path: e.settings.CacheDirectory, Op: "glob", Err: err}
	}
	for _, path := range matches {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return &pedigree.DiskCacheError{Path: path, Op: "remove", Err: err}
		}
	}
	return nil
}

// cacheKey combines the summary's fingerprint with the settings fragment
// relevant to matrix shape (depth caps, result cap, cache version) so a
// settings change invalidates both caches rather than serving stale
// entries from a prior configuration.
func (e *Engine) cacheKey(summary *RelationshipSummary) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d",
		summary.Fingerprint(),
		intPtrKey(e.settings.MaxDepthA),
		intPtrKey(e.settings.MaxDepthB),
		intPtrKey(e.settings.MaxResults),
		e.settings.CacheVersion,
	)
}

func intPtrKey(p *int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *p)
}

const diskCacheExtension = "cmat"

// diskEnvelope is the gob-serializable on-disk representation of a
// CousinMatrix. The Version field is checked on read so files written
// under a different cache_version are rejected as stale.
type diskEnvelope struct {
	Version int
	Rows    []diskRow
}

type diskRow struct {
	DepthA  int
	Columns []diskColumn
}

type diskColumn struct {
	DepthB  int
	Entries []MatrixEntry
}

// diskPath returns {cache_prefix}-{sha1(key)}.{extension} under
// CacheDirectory.
func (e *Engine) diskPath(key string) string {
	sum := sha1.Sum([]byte(key))
	name := fmt.Sprintf("%s-%s.%s", e.settings.CachePrefix, hex.EncodeToString(sum[:]), diskCacheExtension)
	return filepath.Join(e.settings.CacheDirectory, name)
}

func (e *Engine) readDisk(key string) (CousinMatrix, bool) {
	path := e.diskPath(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			e.logger.Warn("cousin disk cache read failed", zap.String("path", path), zap.Error(err))
		}
		return nil, false
	}

	var env diskEnvelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		e.logger.Warn("cousin disk cache decode failed", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	if env.Version != e.settings.CacheVersion {
		return nil, false
	}

	return fromEnvelope(env), true
}

func (e *Engine) writeDisk(key string, m CousinMatrix) error {
	if err := os.MkdirAll(e.settings.CacheDirectory, 0o755); err != nil {
		return &pedigree.DiskCacheError{Path: e.settings.CacheDirectory, Op: "mkdir", Err: err}
	}

	env := toEnvelope(m, e.settings.CacheVersion)
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(env); err != nil {
		return &pedigree.DiskCacheError{Path: e.diskPath(key), Op: "encode", Err: err}
	}

	path := e.diskPath(key)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &pedigree.DiskCacheError{Path: path, Op: "write", Err: err}
	}
	return nil
}

func toEnvelope(m CousinMatrix, version int) diskEnvelope {
	env := diskEnvelope{Version: version}
	for a := m.Front(); a != nil; a = a.Next() {
		row := diskRow{DepthA: a.Key}
		bucket := a.Value
		for b := bucket.Front(); b != nil; b = b.Next() {
			row.Columns = append(row.Columns, diskColumn{DepthB: b.Key, Entries: b.Value})
		}
		env.Rows = append(env.Rows, row)
	}
	return env
}

func fromEnvelope(env diskEnvelope) CousinMatrix {
	matrix := orderedmap.NewOrderedMap[int, DepthBucket]()
	for _, row := range env.Rows {
		bucket := orderedmap.NewOrderedMap[int, []MatrixEntry]()
		for _, col := range row.Columns {
			bucket.Set(col.DepthB, col.Entries)
		}
		matrix.Set(row.DepthA, bucket)
	}
	return matrix
}
