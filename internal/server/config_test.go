package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrustedSubnet(t *testing.T) {
	testCases := []struct {
		name    string
		cidr    string
		want    string
		wantNil bool
		wantErr bool
	}{
		{"Empty", "", "", true, false},
		{"ValidCIDR", "10.0.0.0/8", "10.0.0.0/8", false, false},
		{"HostBitsSet", "10.1.2.3/8", "10.0.0.0/8", false, false},
		{"InvalidCIDR", "10.0.0.0", "", false, true},
		{"Garbage", "not-a-subnet", "", false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			subnet, err := parseTrustedSubnet(tc.cidr)

			if tc.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)

			if tc.wantNil {
				assert.Nil(t, subnet)

				return
			}

			require.NotNil(t, subnet)
			assert.Equal(t, tc.want, subnet.String())
		})
	}
}
