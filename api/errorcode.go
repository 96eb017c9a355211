package api

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1012: "resource not found",

		1100: "poi query failed",
		1101: "poi analytics failed",
		1102: "poi search failed",
	}

	errorInternalServer = errorJSON(999)
	errorNotFound       = errorJSON(1012)

	errorQueryPOI     = errorJSON(1100)
	errorAnalyticsPOI = errorJSON(1101)
	errorSearchPOI    = errorJSON(1102)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// withCause reports the underlying failure in place of the standard message
func (e ErrorResponse) withCause(err error) ErrorResponse {
	if err != nil {
		e.Message = err.Error()
	}
	return e
}
