package repository

import (
	"context"

	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
)

// SegmentCatalog define o catálogo de ramos de atuação conhecidos.
// GetByID e GetByCode devolvem (nil, nil) quando o segmento não existe.
type SegmentCatalog interface {
	List(ctx context.Context) ([]*entity.BusinessSegment, error)
	GetByID(ctx context.Context, id string) (*entity.BusinessSegment, error)
	GetByCode(ctx context.Context, code string) (*entity.BusinessSegment, error)
}
