// Package catalog implementa repository.SegmentCatalog a partir de um arquivo YAML
// (por padrão o catálogo embutido no binário).
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
	"github.com/webytehub/ploutosledger-api/internal/domain/repository"
)

//go:embed segments.yaml
var embedded []byte

var _ repository.SegmentCatalog = (*Catalog)(nil)

// File formato do arquivo YAML do catálogo.
type File struct {
	Segments []*entity.BusinessSegment `yaml:"segments"`
}

// Catalog catálogo somente leitura; devolve cópias para que chamadores não alterem o estado.
type Catalog struct {
	segments []*entity.BusinessSegment
	byID     map[string]*entity.BusinessSegment
	byCode   map[string]*entity.BusinessSegment
}

// NewDefault carrega o catálogo embutido.
func NewDefault() (*Catalog, error) {
	return parseWithGeneric(embedded)
}

// LoadFile carrega o catálogo de um arquivo YAML (SEGMENT_CATALOG_FILE). Como o embutido,
// precisa conter o varejo genérico.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catálogo: ler %s: %w", path, err)
	}
	return parseWithGeneric(data)
}

func parseWithGeneric(data []byte) (*Catalog, error) {
	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if _, ok := c.byCode[entity.GenericRetailCode]; !ok {
		return nil, fmt.Errorf("catálogo: segmento %s ausente", entity.GenericRetailCode)
	}
	return c, nil
}

// Parse valida e indexa o YAML. IDs e códigos devem ser únicos e não vazios.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catálogo: YAML inválido: %w", err)
	}
	c := &Catalog{
		byID:   make(map[string]*entity.BusinessSegment, len(f.Segments)),
		byCode: make(map[string]*entity.BusinessSegment, len(f.Segments)),
	}
	for i, s := range f.Segments {
		if s == nil || s.ID == "" || s.Codigo == "" {
			return nil, fmt.Errorf("catálogo: segmento %d sem id ou código", i)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("catálogo: id duplicado %s", s.ID)
		}
		if _, dup := c.byCode[s.Codigo]; dup {
			return nil, fmt.Errorf("catálogo: código duplicado %s", s.Codigo)
		}
		c.byID[s.ID] = s
		c.byCode[s.Codigo] = s
		c.segments = append(c.segments, s)
	}
	return c, nil
}

// Encode serializa segmentos no formato do catálogo.
func Encode(segments []*entity.BusinessSegment) ([]byte, error) {
	return yaml.Marshal(File{Segments: segments})
}

func (c *Catalog) List(_ context.Context) ([]*entity.BusinessSegment, error) {
	out := make([]*entity.BusinessSegment, 0, len(c.segments))
	for _, s := range c.segments {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (c *Catalog) GetByID(_ context.Context, id string) (*entity.BusinessSegment, error) {
	return c.byID[id].Clone(), nil
}

func (c *Catalog) GetByCode(_ context.Context, code string) (*entity.BusinessSegment, error) {
	return c.byCode[code].Clone(), nil
}
