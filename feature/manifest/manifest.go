package manifest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"hogger/core/codec"
	"hogger/core/reconcile"
	"hogger/core/storage"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// APIVersion is the manifest format version this package reads.
const APIVersion = "hogger/v1"

// Extensions lists the file extensions recognized as manifests.
var Extensions = []string{".hogger", ".yaml", ".yml"}

// Factory returns a new entity holding its type's defaults.
type Factory func() reconcile.Entity

type document struct {
	APIVersion string      `yaml:"apiVersion"`
	Entities   []yaml.Node `yaml:"entities"`
}

type normalizer interface {
	Normalize()
}

type validator interface {
	Validate() error
}

// Loader turns manifests into desired entities.
type Loader struct {
	registry  *reconcile.Registry
	factories map[string]Factory
	logger    *zap.Logger
}

// NewLoader creates a Loader resolving manifest type names through factories.
// Every entity produced by a factory must be owned by a type of registry.
func NewLoader(registry *reconcile.Registry, factories map[string]func() reconcile.Entity, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loader{registry: registry, factories: make(map[string]Factory, len(factories)), logger: logger}
	for name, f := range factories {
		l.factories[name] = f
	}
	return l
}

// TypeNames returns the accepted manifest type names, sorted.
func (l *Loader) TypeNames() []string {
	names := make([]string, 0, len(l.factories))
	for name := range l.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsManifest reports whether name has a manifest extension.
func IsManifest(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// LoadPath reads the manifest at path, or every manifest below path when it
// is a directory.
func (l *Loader) LoadPath(path string) ([]reconcile.Entity, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifests: %w", err)
	}

	var files []string
	if info.IsDir() {
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && IsManifest(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", path, err)
		}
	} else {
		files = []string{path}
	}

	b := newBatch(l)
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		if err := b.add(file, data); err != nil {
			return nil, err
		}
	}
	l.logger.Debug("Loaded manifests", zap.String("path", path), zap.Int("files", len(files)), zap.Int("entities", len(b.entities)))
	return b.entities, nil
}

// LoadBucket reads every manifest object under prefix in bucket.
func (l *Loader) LoadBucket(ctx context.Context, client storage.Client, bucket, prefix string) ([]reconcile.Entity, error) {
	keys, err := storage.ListKeys(ctx, client, bucket, prefix, IsManifest)
	if err != nil {
		return nil, err
	}

	b := newBatch(l)
	for _, key := range keys {
		data, err := storage.ReadObject(ctx, client, bucket, key)
		if err != nil {
			return nil, err
		}
		if err := b.add(bucket+"/"+key, data); err != nil {
			return nil, err
		}
	}
	l.logger.Debug("Loaded manifests", zap.String("bucket", bucket), zap.String("prefix", prefix), zap.Int("objects", len(keys)), zap.Int("entities", len(b.entities)))
	return b.entities, nil
}

// Parse reads a single manifest. source names it in errors.
func (l *Loader) Parse(source string, r io.Reader) ([]reconcile.Entity, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	b := newBatch(l)
	if err := b.add(source, data); err != nil {
		return nil, err
	}
	return b.entities, nil
}

// batch accumulates the entities of several manifests and rejects duplicate
// identifiers across them.
type batch struct {
	loader   *Loader
	entities []reconcile.Entity
	seen     map[int]map[string]string
}

func newBatch(l *Loader) *batch {
	return &batch{loader: l, seen: make(map[int]map[string]string)}
}

func (b *batch) add(source string, data []byte) error {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%s: %w", source, err)
	}
	if doc.APIVersion != "" && doc.APIVersion != APIVersion {
		return fmt.Errorf("%s: unsupported apiVersion %q, expected %q", source, doc.APIVersion, APIVersion)
	}

	for i := range doc.Entities {
		node := &doc.Entities[i]
		e, err := b.loader.decode(node)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", source, node.Line, err)
		}
		code, err := b.loader.registry.CodeFor(e)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", source, node.Line, err)
		}
		where := fmt.Sprintf("%s:%d", source, node.Line)
		if b.seen[code] == nil {
			b.seen[code] = make(map[string]string)
		}
		if first, dup := b.seen[code][e.Identifier()]; dup {
			return fmt.Errorf("%s: identifier %q already declared at %s", where, e.Identifier(), first)
		}
		b.seen[code][e.Identifier()] = where
		b.entities = append(b.entities, e)
	}
	return nil
}

func (l *Loader) decode(node *yaml.Node) (reconcile.Entity, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.New("entity must be a mapping")
	}

	typeName := ""
	fields := &yaml.Node{Kind: yaml.MappingNode, Tag: node.Tag, Line: node.Line, Column: node.Column}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Value == "type" {
			typeName = v.Value
			continue
		}
		fields.Content = append(fields.Content, k, v)
	}
	if typeName == "" {
		return nil, errors.New("entity has no type")
	}

	factory, ok := l.factories[typeName]
	if !ok {
		return nil, &codec.Error{
			Field:      "type",
			Value:      typeName,
			Reason:     "unknown entity type",
			Suggestion: codec.Suggest(typeName, l.TypeNames()),
		}
	}

	// Node.Decode has no KnownFields; decode a re-encoded copy instead.
	raw, err := yaml.Marshal(fields)
	if err != nil {
		return nil, err
	}
	e := factory()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(e); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", typeName, err)
	}
	if n, ok := e.(normalizer); ok {
		n.Normalize()
	}
	if v, ok := e.(validator); ok {
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", typeName, err)
		}
	}
	return e, nil
}
