package response

type ResponseCode int

// Success 成功；失败码见 errors.go
const Success ResponseCode = 100

// Response JSON 信封，成功与失败共用
type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data"`
}

func SuccessResponse(data any) Response {
	return Response{Message: "success", Code: Success, Data: data}
}

// ErrorResponse 失败时 data 恒为 null
func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{Message: msg, Code: code}
}

// FromError 由业务错误构造响应
func FromError(err *BusinessError) Response {
	if err == nil {
		return SuccessResponse(nil)
	}
	return ErrorResponse(err.Code, err.Msg)
}
