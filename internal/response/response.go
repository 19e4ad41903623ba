package response

import "github.com/yourname/wearmock/internal"

type APIResponse struct {
	Data  interface{}        `json:"data,omitempty"`
	Meta  map[string]any     `json:"meta,omitempty"`
	Error *internal.AppError `json:"error,omitempty"`
}

func Success(data interface{}, meta map[string]any) APIResponse {
	return APIResponse{Data: data, Meta: meta, Error: nil}
}

func BadRequest(msg string) APIResponse {
	return APIResponse{Error: internal.ValidationError(msg)}
}

func Unauthorized(msg string) APIResponse {
	return APIResponse{Error: internal.AuthenticationError(msg)}
}

func NotFound(msg string) APIResponse {
	return APIResponse{Error: internal.NotFoundError(msg)}
}

func InternalError(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(500, msg)}
}

func FromAppError(err *internal.AppError) APIResponse {
	return APIResponse{Error: err}
}
