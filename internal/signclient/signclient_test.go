package signclient

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andymarkow/go-hmac-signer/internal/errormsg"
	"github.com/andymarkow/go-hmac-signer/internal/server/httpserver/router"
	"github.com/andymarkow/go-hmac-signer/internal/signature"
)

func TestSignClient(t *testing.T) {
	// RFC 4231 test case 1.
	signKey := bytes.Repeat([]byte{0x0b}, 20)
	payload := []byte("Hi There")
	wantSum := "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7"

	ts := httptest.NewServer(router.NewRouter(router.WithSignKey(signKey)))
	defer ts.Close()

	client := NewSignClient(WithServerAddr(ts.URL))

	ctx := context.Background()

	t.Run("Sign", func(t *testing.T) {
		sumHex, err := client.Sign(ctx, payload)
		require.NoError(t, err)

		assert.Equal(t, wantSum, sumHex)
	})

	t.Run("VerifyValid", func(t *testing.T) {
		require.NoError(t, client.Verify(ctx, payload, wantSum))
	})

	t.Run("VerifyMismatch", func(t *testing.T) {
		err := client.Verify(ctx, []byte("tampered payload"), wantSum)
		assert.ErrorIs(t, err, errormsg.ErrHashSumValueMismatch)
	})

	t.Run("VerifyBadHashSum", func(t *testing.T) {
		err := client.Verify(ctx, payload, strings.Repeat("zz", signature.Size))
		assert.ErrorIs(t, err, errormsg.ErrHashSumValueMismatch)
	})
}
