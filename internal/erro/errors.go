package erro

const PhotoBotUnavailable = "Photo-Bot is unavailable"
const ClientErrorType = "Client"
const ServerErrorType = "Server"
const InvalidDateFormat = "Please enter a valid date in YYYY-MM-DD format."
const ContextCanceled = "Context canceled or timeout"
const ErrorOverflowTaskQ = "Task queue is full"
const ErrorAfterReqPhotos = "Error after request into photos: %v"
const ErrorScan = "Scan error: %v"
const ErrorSetPhotos = "Set photos-cache error: %v"
const ErrorGetPhotos = "Get photos-cache error: %v"
const ErrorDelPhotos = "Del photos-cache error: %v"
const ErrorMarshal = "Data marshal error: %v"
const ErrorUnmarshal = "Data unmarshal error: %v"

type CustomError struct {
	Message string
	Type    string
}

func (e *CustomError) Error() string {
	return e.Message
}

func ServerError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ServerErrorType}
}
func ClientError(reason string) *CustomError {
	return &CustomError{Message: reason, Type: ClientErrorType}
}
