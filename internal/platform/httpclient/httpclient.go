package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 15 * time.Second
)

var (
	// ErrNotConfigured: no hay base URL resuelta; se corta antes de tocar la red.
	ErrNotConfigured = errors.New("httpclient: backend address not configured")
)

// ClientError: el backend rechazó el request (4xx). Detail viene del
// campo "detail" del body de error, listo para mostrar al usuario.
type ClientError struct {
	StatusCode int
	Detail     string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("client error: status=%d detail=%s", e.StatusCode, e.Detail)
}

// ServerError: fallo del backend (5xx). No se expone el body.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: status=%d", e.StatusCode)
}

// NetworkError: fallo de transporte (DNS, conexión, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedResponseError: 2xx con body que no es JSON válido.
// Para UI se trata como error de servidor; se loguea aparte.
type MalformedResponseError struct {
	StatusCode int
	Err        error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: status=%d err=%v", e.StatusCode, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// Client envuelve *http.Client: único punto de salida hacia el backend.
// Clasifica toda respuesta en éxito / ClientError / ServerError /
// NetworkError / MalformedResponseError. Sin retries, sin cache.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewWithBaseURL crea un Client con BaseURL + timeout.
// BaseURL vacía es válida: el cliente queda "no configurado" y cada
// request retorna ErrNotConfigured.
func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	c := New(timeout)
	if strings.TrimSpace(baseURL) == "" {
		return c, nil
	}
	_, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(baseURL, "/")
	return c, nil
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(timeout time.Duration, tr http.RoundTripper) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &Client{
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
	}
}

// DoJSON hace un request JSON y clasifica la respuesta.
// - method: GET/POST/etc
// - path: path relativo contra BaseURL
// - in: body a enviar (opcional). Si nil => no body.
// - out: donde decodificar JSON (opcional). Si nil => ignora body.
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	path string,
	in any,
	out any,
) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(path)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	// Leer body (limitado) para errores / decode
	raw, _ := readAtMost(resp.Body, 8<<20) // fotos en base64 abultan

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// sigue abajo
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return &ClientError{
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(raw, resp.StatusCode),
		}
	default:
		// 5xx y cualquier status fuera de contrato
		return &ServerError{StatusCode: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &MalformedResponseError{StatusCode: resp.StatusCode, Err: err}
	}

	return nil
}

// parseDetail extrae el campo "detail" de un body de error.
// El backend manda dos formas:
//
//	{"detail": "texto"}
//	{"detail": [{"msg": "..."}, ...]}   (errores de validación por campo)
//
// Si no se puede parsear, cae a un texto genérico con el status.
func parseDetail(raw []byte, status int) string {
	fallback := fmt.Sprintf("request failed (%d %s)", status, http.StatusText(status))
	if len(raw) == 0 {
		return fallback
	}

	var asString struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &asString); err == nil && strings.TrimSpace(asString.Detail) != "" {
		return asString.Detail
	}

	var asList struct {
		Detail []struct {
			Msg string `json:"msg"`
		} `json:"detail"`
	}
	if err := json.Unmarshal(raw, &asList); err == nil && len(asList.Detail) > 0 {
		msgs := make([]string, 0, len(asList.Detail))
		for _, d := range asList.Detail {
			if strings.TrimSpace(d.Msg) != "" {
				msgs = append(msgs, d.Msg)
			}
		}
		if len(msgs) > 0 {
			return strings.Join(msgs, "; ")
		}
	}

	return fallback
}

func (c *Client) resolveURL(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("httpclient: empty path")
	}

	if strings.TrimSpace(c.BaseURL) == "" {
		return "", ErrNotConfigured
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path, nil
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = 1 << 20
	}
	lr := io.LimitReader(r, max)
	return io.ReadAll(lr)
}
