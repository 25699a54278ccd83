package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// APIError é o erro devolvido pelo client quando a Graph API responde com status diferente de 200
type APIError struct {
	StatusCode int
	Details    ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details.ErrorSubcode != 0 {
		return fmt.Sprintf("meta api error %d (subcode %d, status %d): %s", e.Details.Code, e.Details.ErrorSubcode, e.StatusCode, e.Details.Message)
	}
	return fmt.Sprintf("meta api error %d (status %d): %s", e.Details.Code, e.StatusCode, e.Details.Message)
}

func (e *APIError) IsTokenExpired() bool {
	resp := ErrorResponse{Error: e.Details}
	return resp.IsTokenExpired()
}
