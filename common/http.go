package common

// HttpResponse is the envelope of every API response: exactly one of Error or Result is set.
type HttpResponse[T any] struct {
	Error  *string `json:"error"`
	Result *T      `json:"result,omitempty"`
}

func NewHttpResult[T any](result T) HttpResponse[T] {
	return HttpResponse[T]{Result: &result}
}

func NewHttpError[T any](message string) HttpResponse[T] {
	return HttpResponse[T]{Error: &message}
}
