package perf

import (
	"maps"
	"sync"
)

// ValidateFunc devolve as mensagens de erro por campo; campo válido não aparece ou tem "".
type ValidateFunc func(values map[string]string) map[string]string

// Form mantém valores, erros e campos tocados de um formulário.
// SetValue revalida apenas o campo alterado.
type Form struct {
	mu       sync.RWMutex
	initial  map[string]string
	values   map[string]string
	errors   map[string]string
	touched  map[string]bool
	validate ValidateFunc
}

// NewForm cria um formulário com os valores iniciais e a validação opcional.
func NewForm(initial map[string]string, validate ValidateFunc) *Form {
	f := &Form{initial: maps.Clone(initial), validate: validate}
	f.reset()
	return f
}

// SetValue altera field e atualiza o erro desse campo.
func (f *Form) SetValue(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
	if f.validate != nil {
		errs := f.validate(maps.Clone(f.values))
		f.errors[field] = errs[field]
	}
}

// SetTouched marca field como tocado.
func (f *Form) SetTouched(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched[field] = true
}

// Reset volta aos valores iniciais e limpa erros e campos tocados.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Form) reset() {
	f.values = maps.Clone(f.initial)
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.errors = make(map[string]string)
	f.touched = make(map[string]bool)
}

// Values devolve uma cópia dos valores atuais.
func (f *Form) Values() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return maps.Clone(f.values)
}

// Errors devolve uma cópia dos erros atuais.
func (f *Form) Errors() map[string]string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return maps.Clone(f.errors)
}

// Touched informa se field já foi tocado.
func (f *Form) Touched(field string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.touched[field]
}

// IsValid é verdadeiro quando nenhum campo tem mensagem de erro.
func (f *Form) IsValid() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, msg := range f.errors {
		if msg != "" {
			return false
		}
	}
	return true
}
