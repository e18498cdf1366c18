package dto

// ==================== 通用响应外壳 ====================

// Resp 单对象响应
type Resp struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResp 列表响应
type ListResp struct {
	Code     int         `json:"code"`
	Message  string      `json:"message"`
	Data     interface{} `json:"data"`
	Total    int64       `json:"total"`
	Page     int         `json:"page,omitempty"`
	PageSize int         `json:"page_size,omitempty"`
}

// OK 成功响应
func OK(data interface{}) Resp {
	return Resp{Code: 0, Message: "success", Data: data}
}

// Err 失败响应
func Err(code int, message string) Resp {
	return Resp{Code: code, Message: message}
}
