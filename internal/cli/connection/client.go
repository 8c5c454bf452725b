package connection

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"

	"github.com/yndnr/keyval-go/api/proto/v1/keyvalv1connect"
)

// Protocol selects the RPC wire protocol.
type Protocol string

const (
	ProtocolConnect Protocol = "connect"
	ProtocolGRPC    Protocol = "grpc"
	ProtocolGRPCWeb Protocol = "grpc-web"
)

// ParseProtocol validates a user-supplied protocol name.
func ParseProtocol(s string) (Protocol, error) {
	switch p := Protocol(strings.ToLower(s)); p {
	case "":
		return ProtocolConnect, nil
	case ProtocolConnect, ProtocolGRPC, ProtocolGRPCWeb:
		return p, nil
	default:
		return "", fmt.Errorf("unknown protocol %q (want connect, grpc or grpc-web)", s)
	}
}

// Options configures a Client.
type Options struct {
	Server   string
	Protocol Protocol
	// JSON selects the JSON codec instead of binary protobuf.
	JSON    bool
	Timeout time.Duration
}

// Client bundles the keyval service clients for one server.
type Client struct {
	baseURL string
	Value   keyvalv1connect.ValueClient
	Admin   keyvalv1connect.AdminClient
}

// NewClient creates a client for opts.Server.
func NewClient(opts Options) *Client {
	baseURL := BaseURL(opts.Server)

	clientOpts := []connect.ClientOption{}
	switch opts.Protocol {
	case ProtocolGRPC:
		clientOpts = append(clientOpts, connect.WithGRPC())
	case ProtocolGRPCWeb:
		clientOpts = append(clientOpts, connect.WithGRPCWeb())
	}
	if opts.JSON {
		clientOpts = append(clientOpts, connect.WithProtoJSON())
	}

	httpClient := newHTTPClient(opts.Protocol, baseURL, opts.Timeout)
	return &Client{
		baseURL: baseURL,
		Value:   keyvalv1connect.NewValueClient(httpClient, baseURL, clientOpts...),
		Admin:   keyvalv1connect.NewAdminClient(httpClient, baseURL, clientOpts...),
	}
}

// BaseURL returns the base URL of the client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BaseURL turns a host:port or URL into a base URL with a scheme.
func BaseURL(server string) string {
	if !strings.HasPrefix(server, "http://") && !strings.HasPrefix(server, "https://") {
		server = "http://" + server
	}
	return strings.TrimRight(server, "/")
}

// newHTTPClient returns a client for p. gRPC needs HTTP/2: over https the
// transport negotiates it with TLS, over http it speaks h2c.
func newHTTPClient(p Protocol, baseURL string, timeout time.Duration) *http.Client {
	if p != ProtocolGRPC {
		return &http.Client{Timeout: timeout}
	}
	if strings.HasPrefix(baseURL, "https://") {
		return &http.Client{
			Timeout:   timeout,
			Transport: &http2.Transport{},
		}
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
		},
	}
}
