package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros de dataset (1000-1999)
	ErrDatasetNotFound       = "DS_001" // Dataset não encontrado ou expirado
	ErrNoDateColumn          = "DS_002" // Nenhuma coluna de data reconhecida
	ErrUnparsableDate        = "DS_003" // Célula de data não reconhecida
	ErrMissingRequiredColumn = "DS_004" // Coluna obrigatória ausente
	ErrEmptyFile             = "DS_005" // Arquivo vazio ou sem linhas de dados
	ErrFileTooLarge          = "DS_006" // Arquivo maior que o limite de upload

	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrDatasetNotFound:       http.StatusNotFound,
	ErrNoDateColumn:          http.StatusBadRequest,
	ErrUnparsableDate:        http.StatusBadRequest,
	ErrMissingRequiredColumn: http.StatusBadRequest,
	ErrEmptyFile:             http.StatusBadRequest,
	ErrFileTooLarge:          http.StatusRequestEntityTooLarge,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
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

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
