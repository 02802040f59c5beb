package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro padronizados da API
const (
	// Erros de fontes de dados (fonte ausente é informativo, não aborta o pipeline)
	ErrSourceMissing   = "SRC_001" // Arquivo da fonte não encontrado
	ErrSourceMalformed = "SRC_002" // Arquivo presente mas não tabular

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFormat  = "VAL_002" // Formato de parâmetro inválido

	// Erros do pipeline
	ErrAllSourcesEmpty = "PIP_001" // Nenhuma fonte de marketing ou negócio disponível

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrSourceMissing:   http.StatusNotFound,
	ErrSourceMalformed: http.StatusUnprocessableEntity,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrInvalidFormat:   http.StatusBadRequest,
	ErrAllSourcesEmpty: http.StatusServiceUnavailable,
	ErrInternalServer:  http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
