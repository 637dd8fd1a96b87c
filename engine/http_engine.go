package engine

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	tls "github.com/refraction-networking/utls"
	"github.com/use-agent/zoroscrape/config"
	"github.com/use-agent/zoroscrape/models"
)

// maxBody caps how much of an upstream response is read.
const maxBody = 10 << 20

// HTTPEngine fetches pages with a single net/http GET bounded by a fixed
// total timeout. With fingerprinting enabled it dials HTTPS directly with a
// Chrome-like ClientHello and sends browser-like headers; proxy environment
// variables are not honoured on that path.
type HTTPEngine struct {
	client      *http.Client
	fingerprint bool

	// rootCAs overrides the system roots for the fingerprinted dialer.
	rootCAs *x509.CertPool
}

// chromeH1Spec builds a Chrome-like TLS ClientHello with ALPN forced to
// http/1.1 only. utls extensions hold per-handshake state, so every
// connection gets a fresh spec.
var chromeH1Spec = func() (*tls.ClientHelloSpec, error) {
	spec, err := tls.UTLSIdToSpec(tls.HelloChrome_Auto)
	if err != nil {
		return nil, err
	}
	// Go's http.Transport cannot speak h2 over a utls connection.
	for i, ext := range spec.Extensions {
		if alpn, ok := ext.(*tls.ALPNExtension); ok {
			alpn.AlpnProtocols = []string{"http/1.1"}
			spec.Extensions[i] = alpn
			break
		}
	}
	return &spec, nil
}

// NewHTTPEngine creates an HTTPEngine from the fetch configuration.
// If the Chrome ClientHello cannot be built, fingerprinting is disabled
// and the plain transport is used.
func NewHTTPEngine(cfg config.FetchConfig) *HTTPEngine {
	e := &HTTPEngine{fingerprint: cfg.TLSFingerprint}
	if e.fingerprint {
		if _, err := chromeH1Spec(); err != nil {
			slog.Warn("chrome tls spec unavailable, fingerprinting disabled", "error", err)
			e.fingerprint = false
		}
	}

	var transport *http.Transport
	if e.fingerprint {
		transport = &http.Transport{
			DialTLSContext:    e.dialTLSChrome,
			ForceAttemptHTTP2: false,
		}
	} else {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}

	e.client = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}
	return e
}

// dialTLSChrome establishes a TLS connection using the http/1.1 Chrome spec.
func (e *HTTPEngine) dialTLSChrome(ctx context.Context, network, addr string) (net.Conn, error) {
	spec, err := chromeH1Spec()
	if err != nil {
		return nil, fmt.Errorf("http_engine: build tls spec: %w", err)
	}

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}
	host, _, _ := net.SplitHostPort(addr)
	tlsConn := tls.UClient(conn, &tls.Config{ServerName: host, RootCAs: e.rootCAs}, tls.HelloCustom)
	if err := tlsConn.ApplyPreset(spec); err != nil {
		conn.Close()
		return nil, fmt.Errorf("http_engine: apply tls spec: %w", err)
	}
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return tlsConn, nil
}

func (e *HTTPEngine) Name() string {
	if e.fingerprint {
		return "http-chrome"
	}
	return "http"
}

func (e *HTTPEngine) Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, models.NewScrapeError(models.ErrCodeFetchFailed, "invalid upstream URL", err)
	}

	if e.fingerprint {
		httpReq.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36")
		httpReq.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
		httpReq.Header.Set("Accept-Language", "en-US,en;q=0.9")
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, transportError("request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, transportError("read body", err)
	}

	return &FetchResult{
		Body:       string(body),
		StatusCode: resp.StatusCode,
		FinalURL:   resp.Request.URL.String(),
		EngineName: e.Name(),
	}, nil
}

// transportError classifies a client error as FETCH_TIMEOUT or FETCH_FAILED.
func transportError(msg string, err error) *models.ScrapeError {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return models.NewScrapeError(models.ErrCodeTimeout, "upstream timed out: "+msg, err)
	}
	return models.NewScrapeError(models.ErrCodeFetchFailed, "upstream unreachable: "+msg, err)
}
