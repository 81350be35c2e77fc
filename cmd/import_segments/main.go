// import_segments converte a planilha de segmentos (CSV exportado em ISO-8859-1, separado por ";")
// no catálogo YAML embutido na API.
//
// Uso: go run ./cmd/import_segments [segmentos.csv] [saida.yaml]
// Por padrão lê segmentos.csv e escreve internal/infrastructure/catalog/segments.yaml.
//
// Colunas: id;codigo;nome;descricao;categoria;nomenclaturas;entradas;saidas;tipos_pagamento;
// campos_obrigatorios;validacoes;relatorios;funcionalidades
// Listas usam "|". Nomenclaturas: termo=valor|termo=valor. Funcionalidades: codigo:nome:ativa|...
// Linhas sem id recebem um UUID novo.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/webytehub/ploutosledger-api/internal/domain/entity"
	"github.com/webytehub/ploutosledger-api/internal/infrastructure/catalog"
)

var columns = []string{
	"id", "codigo", "nome", "descricao", "categoria", "nomenclaturas", "entradas", "saidas",
	"tipos_pagamento", "campos_obrigatorios", "validacoes", "relatorios", "funcionalidades",
}

func main() {
	csvPath := "segmentos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "catalog", "segments.yaml")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	segments, err := parseSegments(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ler CSV: %v\n", err)
		os.Exit(1)
	}

	data, err := catalog.Encode(segments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gerar YAML: %v\n", err)
		os.Exit(1)
	}
	// mesma validação que a API faz ao carregar o catálogo
	if _, err := catalog.Parse(data); err != nil {
		fmt.Fprintf(os.Stderr, "Catálogo inválido: %v\n", err)
		os.Exit(1)
	}

	header := "# Catálogo de ramos de atuação. Gerado/atualizado com cmd/import_segments.\n"
	if err := os.WriteFile(outPath, append([]byte(header), data...), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Gravar arquivo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Gerado %s: %d segmentos\n", outPath, len(segments))
}

// parseSegments lê o CSV (já em UTF-8). A primeira linha é o cabeçalho e deve conter todas as colunas.
func parseSegments(r io.Reader) ([]*entity.BusinessSegment, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cabeçalho: %w", err)
	}
	idx := make(map[string]int, len(head))
	for i, h := range head {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, c := range columns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("coluna ausente: %s", c)
		}
	}

	var out []*entity.BusinessSegment
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", line, err)
		}
		col := func(name string) string {
			if i := idx[name]; i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		if col("codigo") == "" {
			continue
		}

		funcs, err := parseFuncionalidades(col("funcionalidades"))
		if err != nil {
			return nil, fmt.Errorf("linha %d: %w", line, err)
		}
		seg := &entity.BusinessSegment{
			ID:        col("id"),
			Codigo:    col("codigo"),
			Nome:      col("nome"),
			Descricao: col("descricao"),
			Categoria: col("categoria"),
			Config: entity.BusinessSegmentConfig{
				Nomenclaturas: parsePairs(col("nomenclaturas")),
				CategoriasFinanceiras: entity.CategoriasFinanceiras{
					Entradas: splitList(col("entradas")),
					Saidas:   splitList(col("saidas")),
				},
				TiposPagamento:     splitList(col("tipos_pagamento")),
				CamposObrigatorios: splitList(col("campos_obrigatorios")),
				Validacoes:         splitList(col("validacoes")),
				Relatorios:         splitList(col("relatorios")),
				Funcionalidades:    funcs,
			},
		}
		if seg.ID == "" {
			seg.ID = uuid.NewString()
		}
		out = append(out, seg)
	}
	return out, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, "|") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parsePairs(s string) map[string]string {
	out := make(map[string]string)
	for _, p := range splitList(s) {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

func parseFuncionalidades(s string) ([]entity.Funcionalidade, error) {
	out := []entity.Funcionalidade{}
	for _, p := range splitList(s) {
		parts := strings.SplitN(p, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("funcionalidade %q: use codigo:nome:ativa", p)
		}
		ativa, err := strconv.ParseBool(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("funcionalidade %q: ativa deve ser true/false", p)
		}
		out = append(out, entity.Funcionalidade{
			Codigo: strings.TrimSpace(parts[0]),
			Nome:   strings.TrimSpace(parts[1]),
			Ativa:  ativa,
		})
	}
	return out, nil
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
