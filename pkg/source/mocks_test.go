package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
)

// mockHTTPClient は HTTPClient を実装します。doFunc が nil の場合は data を 200 で返します。
type mockHTTPClient struct {
	doFunc  func(req *http.Request) (*http.Response, error)
	data    []byte
	err     error
	safeErr error
	calls   int
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.calls++
	if m.doFunc != nil {
		return m.doFunc(req)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(m.data)), ContentLength: -1}, nil
}

func (m *mockHTTPClient) IsSafeURL(urlStr string) (bool, error) {
	if m.safeErr != nil {
		return false, m.safeErr
	}
	return true, nil
}

// endlessReader は読み出されたバイト数を数えながら無限にデータを返します。
type endlessReader struct {
	read int64
}

func (r *endlessReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0xFF
	}
	r.read += int64(len(p))
	return len(p), nil
}

func (r *endlessReader) Close() error { return nil }

type mockReader struct {
	objects map[string][]byte
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	data, ok := m.objects[uri]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	for k := range m.objects {
		if err := fn(k); err != nil {
			return err
		}
	}
	return nil
}
