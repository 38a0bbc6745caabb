package httpclient

type Response struct {
	StatusCode int
	Body       []byte
}
