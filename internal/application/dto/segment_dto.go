package dto

import "github.com/webytehub/ploutosledger-api/internal/domain/entity"

// SetSegmentRequest corpo de PUT /api/segment.
type SetSegmentRequest struct {
	SegmentID string `json:"segment_id" validate:"required"`
}

// SegmentResponse configuração efetiva do ramo de atuação da empresa.
// Segment é nulo quando o carregamento falhou.
type SegmentResponse struct {
	Segment            *entity.CompanyBusinessSegment `json:"segment"`
	Category           string                         `json:"category"`
	Nomenclaturas      map[string]string              `json:"nomenclaturas"`
	CategoriasEntradas []string                       `json:"categorias_entradas"`
	CategoriasSaidas   []string                       `json:"categorias_saidas"`
	TiposPagamento     []string                       `json:"tipos_pagamento"`
	CamposObrigatorios []string                       `json:"campos_obrigatorios"`
	Validacoes         []string                       `json:"validacoes"`
	Relatorios         []string                       `json:"relatorios"`
	Funcionalidades    []entity.Funcionalidade        `json:"funcionalidades"`
}

// SegmentListResponse catálogo de segmentos.
type SegmentListResponse struct {
	Items []*entity.BusinessSegment `json:"items"`
	Total int                       `json:"total"`
}

// TermResponse termo traduzido para o ramo da empresa.
type TermResponse struct {
	Term  string `json:"term"`
	Value string `json:"value"`
}

// FeatureResponse situação de uma funcionalidade.
type FeatureResponse struct {
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

// PaymentMethodsResponse formas de pagamento exibidas e ocultas para o ramo.
type PaymentMethodsResponse struct {
	Category string   `json:"category"`
	Visible  []string `json:"visible"`
	Hidden   []string `json:"hidden"`
	ShowVRVA bool     `json:"show_vr_va"`
}
