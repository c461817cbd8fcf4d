// Package wire (de)serializes resolved semantic trees as msgpack artifacts.
//
// The host compiler dumps one artifact per compilation unit: the unit's
// declarations, the slice of its definition table the rules consume, and the
// source files its spans point into. Content hashes are carried along and
// verified on decode so a stale or truncated artifact is rejected instead of
// producing diagnostics with dangling spans.
package wire

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/vmihailenco/msgpack/v5"

	"sglint/internal/source"
	"sglint/internal/tree"
)

// schemaVersion is incremented whenever the artifact layout changes.
const schemaVersion uint16 = 1

// ErrSchema indicates an artifact written by an incompatible schema.
var ErrSchema = errors.New("unsupported artifact schema")

// ErrCorrupt indicates an artifact whose file contents fail hash validation.
var ErrCorrupt = errors.New("artifact content hash mismatch")

type artifact struct {
	Schema uint16 `msgpack:"schema"`
	Unit   unitW  `msgpack:"unit"`
	Files  []fileW `msgpack:"files"`
	Defs   []defW  `msgpack:"defs"`
	// Indexing-capability interface definitions, DefNone when absent.
	IndexRead  uint32 `msgpack:"index_read"`
	IndexWrite uint32 `msgpack:"index_write"`
}

type fileW struct {
	Path    string   `msgpack:"path"`
	Content []byte   `msgpack:"content"`
	Hash    [32]byte `msgpack:"hash"`
}

type defW struct {
	ID   uint32 `msgpack:"id"`
	Path string `msgpack:"path"`
}

type unitW struct {
	Name  string   `msgpack:"name"`
	File  uint32   `msgpack:"file"`
	Decls []*declW `msgpack:"decls"`
}

type spanW struct {
	File  uint32   `msgpack:"f"`
	Start uint32   `msgpack:"s"`
	End   uint32   `msgpack:"e"`
	Orig  *originW `msgpack:"o,omitempty"`
}

type originW struct {
	Expansion bool   `msgpack:"x"`
	CallSite  *spanW `msgpack:"c,omitempty"`
	Desugar   uint8  `msgpack:"d"`
}

// Save writes the artifact for one unit to path.
func Save(path string, unit *tree.Unit, fs *source.FileSet, defs *tree.DefTable) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, unit, fs, defs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads one unit artifact from path.
func Load(path string) (*tree.Unit, *source.FileSet, *tree.DefTable, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Encode serializes one unit, its files and its definition table.
func Encode(w io.Writer, unit *tree.Unit, fs *source.FileSet, defs *tree.DefTable) error {
	art := artifact{Schema: schemaVersion}
	art.Unit = encodeUnit(unit)

	for i := 0; i < fs.Len(); i++ {
		f := fs.Get(source.FileID(i))
		art.Files = append(art.Files, fileW{Path: f.Path, Content: f.Content, Hash: f.Hash})
	}

	defs.Each(func(id tree.DefID, path string) {
		art.Defs = append(art.Defs, defW{ID: uint32(id), Path: path})
	})
	// Стабильный порядок для воспроизводимых артефактов.
	sort.Slice(art.Defs, func(i, j int) bool { return art.Defs[i].ID < art.Defs[j].ID })

	read, write := defs.IndexCapabilities()
	art.IndexRead = uint32(read)
	art.IndexWrite = uint32(write)

	return msgpack.NewEncoder(w).Encode(&art)
}

// Decode reads one unit artifact, validating schema and file hashes.
func Decode(r io.Reader) (*tree.Unit, *source.FileSet, *tree.DefTable, error) {
	var art artifact
	if err := msgpack.NewDecoder(r).Decode(&art); err != nil {
		return nil, nil, nil, fmt.Errorf("decode artifact: %w", err)
	}
	if art.Schema != schemaVersion {
		return nil, nil, nil, fmt.Errorf("%w: got %d, want %d", ErrSchema, art.Schema, schemaVersion)
	}

	fs := source.NewFileSet()
	for _, f := range art.Files {
		if sha256.Sum256(f.Content) != f.Hash {
			return nil, nil, nil, fmt.Errorf("%w: %s", ErrCorrupt, f.Path)
		}
		fs.AddVirtual(f.Path, f.Content)
	}

	defs := tree.NewDefTable()
	for _, d := range art.Defs {
		defs.Set(tree.DefID(d.ID), d.Path)
	}
	defs.SetIndexCapabilities(tree.DefID(art.IndexRead), tree.DefID(art.IndexWrite))

	unit, err := decodeUnit(&art.Unit)
	if err != nil {
		return nil, nil, nil, err
	}
	return unit, fs, defs, nil
}

func encodeSpan(s source.Span) spanW {
	w := spanW{File: uint32(s.File), Start: s.Start, End: s.End}
	if s.Origin != nil {
		ow := &originW{Expansion: s.Origin.FromExpansion, Desugar: uint8(s.Origin.Desugar)}
		if s.Origin.FromExpansion {
			cs := encodeSpan(s.Origin.CallSite)
			ow.CallSite = &cs
		}
		w.Orig = ow
	}
	return w
}

func decodeSpan(w spanW) source.Span {
	s := source.Span{File: source.FileID(w.File), Start: w.Start, End: w.End}
	if w.Orig != nil {
		o := &source.Origin{
			FromExpansion: w.Orig.Expansion,
			Desugar:       source.DesugarKind(w.Orig.Desugar),
		}
		if w.Orig.CallSite != nil {
			o.CallSite = decodeSpan(*w.Orig.CallSite)
		}
		s.Origin = o
	}
	return s
}
