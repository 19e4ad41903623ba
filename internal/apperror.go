package internal

// Kind classifies an AppError. The core returns kinds; only the HTTP
// edge translates them into status codes.
type Kind int

const (
	KindInternal Kind = iota
	KindAuthentication
	KindValidation
	KindNotFound
)

type AppError struct {
	Kind    Kind   `json:"-"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(code int, msg string) *AppError {
	return &AppError{Kind: KindInternal, Code: code, Message: msg}
}

// AuthenticationError covers absent, malformed, invalid, and expired
// credentials. Always terminal; never retried by the core.
func AuthenticationError(msg string) *AppError {
	return &AppError{Kind: KindAuthentication, Code: 401, Message: msg}
}

// ValidationError covers malformed dates, page sizes, and continuation
// tokens. The request is rejected, not repaired.
func ValidationError(msg string) *AppError {
	return &AppError{Kind: KindValidation, Code: 400, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Code: 404, Message: msg}
}
