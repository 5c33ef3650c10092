package router

import (
	"bytes"
	"compress/gzip"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andymarkow/go-hmac-signer/internal/signature"
)

// RFC 4231 test case 1.
var (
	testSignKey = bytes.Repeat([]byte{0x0b}, 20)
	testPayload = []byte("Hi There")
	testSumHex  = "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7"
)

func TestPing(t *testing.T) {
	ts := httptest.NewServer(NewRouter())
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/ping")
	require.NoError(t, err)

	defer func() {
		require.NoError(t, resp.Body.Close())
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestSignHandler(t *testing.T) {
	ts := httptest.NewServer(NewRouter(WithSignKey(testSignKey)))
	defer ts.Close()

	testCases := []struct {
		name    string
		body    io.Reader
		headers map[string]string
		want    string
	}{
		{
			name: "PlainPayload",
			body: bytes.NewReader(testPayload),
			want: testSumHex,
		},
		{
			name:    "GzipPayload",
			body:    gzipReader(t, testPayload),
			headers: map[string]string{"Content-Encoding": "gzip"},
			want:    testSumHex,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/sign", tc.body) //nolint:noctx
			require.NoError(t, err)

			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			resp, err := ts.Client().Do(req)
			require.NoError(t, err)

			defer func() {
				require.NoError(t, resp.Body.Close())
			}()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tc.want, string(body))
			assert.Equal(t, tc.want, resp.Header.Get("HashSHA256"))
		})
	}
}

func TestSignHandlerEmptyPayload(t *testing.T) {
	// HMAC-SHA256 of empty key and empty payload.
	ts := httptest.NewServer(NewRouter())
	defer ts.Close()

	resp, err := ts.Client().Post(ts.URL+"/api/v1/sign", "application/octet-stream", http.NoBody)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, resp.Body.Close())
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "b613679a0814d9ec772f95d778c35fc5ff1699c5cbb1af71c51c1e5f4f2cb8f2", string(body))
}

func TestVerifyHandler(t *testing.T) {
	ts := httptest.NewServer(NewRouter(WithSignKey(testSignKey)))
	defer ts.Close()

	validSum, err := signature.CalculateHashSumHex(testSignKey, testPayload)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		payload []byte
		sumHex  string
		status  int
	}{
		{"ValidHashSum", testPayload, validSum, http.StatusOK},
		{"MismatchedHashSum", []byte("tampered payload"), validSum, http.StatusBadRequest},
		{"MissingHashSumHeader", testPayload, "", http.StatusBadRequest},
		{"NotHexHashSum", testPayload, strings.Repeat("zz", signature.Size), http.StatusBadRequest},
		{"TruncatedHashSum", testPayload, validSum[:8], http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, //nolint:noctx
				ts.URL+"/api/v1/verify", bytes.NewReader(tc.payload))
			require.NoError(t, err)

			if tc.sumHex != "" {
				req.Header.Set("HashSHA256", tc.sumHex) //nolint:canonicalheader,nolintlint
			}

			resp, err := ts.Client().Do(req)
			require.NoError(t, err)

			defer func() {
				require.NoError(t, resp.Body.Close())
			}()

			_, err = io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestWhitelist(t *testing.T) {
	ts := httptest.NewServer(NewRouter(
		WithSignKey(testSignKey),
		WithTrustedSubnet(mustParseCIDR(t, "10.0.0.0/8")),
	))
	defer ts.Close()

	testCases := []struct {
		name   string
		realIP string
		status int
	}{
		{"TrustedIP", "10.1.2.3", http.StatusOK},
		{"UntrustedIP", "192.168.1.1", http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, ts.URL+"/ping", nil) //nolint:noctx
			require.NoError(t, err)

			req.Header.Set("X-Real-IP", tc.realIP)

			resp, err := ts.Client().Do(req)
			require.NoError(t, err)

			defer func() {
				require.NoError(t, resp.Body.Close())
			}()

			_, err = io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func mustParseCIDR(t *testing.T, cidr string) *net.IPNet {
	t.Helper()

	_, subnet, err := net.ParseCIDR(cidr)
	require.NoError(t, err)

	return subnet
}

func gzipReader(t *testing.T, data []byte) io.Reader {
	t.Helper()

	buf := bytes.NewBuffer(nil)

	zbuf := gzip.NewWriter(buf)

	_, err := zbuf.Write(data)
	require.NoError(t, err)
	require.NoError(t, zbuf.Close())

	return buf
}
